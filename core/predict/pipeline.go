// Package predict implements the fare prediction pipeline: input
// validation, feature derivation, scaling and model inference. The
// pipeline is built once at startup around the loaded artifacts and is
// safe for concurrent use; nothing in it mutates after construction.
package predict

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flightfare/farecast/core/feature"
	"github.com/flightfare/farecast/core/logger"
	"github.com/flightfare/farecast/core/model"
	"github.com/flightfare/farecast/core/vocab"
)

// Duration bounds accepted by the form, inclusive.
const (
	MinDurationHours = 0.1
	MaxDurationHours = 24.0
)

// Pipeline performs one synchronous prediction pass. All fields are
// read-only after New.
type Pipeline struct {
	encoders *vocab.EncoderSet
	scaler   Scaler
	model    Model
	log      logger.Logger
}

// New builds a Pipeline around the loaded artifacts.
func New(enc *vocab.EncoderSet, scaler Scaler, m Model, log logger.Logger) *Pipeline {
	return &Pipeline{encoders: enc, scaler: scaler, model: m, log: log}
}

// Encoders exposes the loaded vocabularies so the input surfaces can
// render their choices from the same ordering the model was trained on.
func (p *Pipeline) Encoders() *vocab.EncoderSet { return p.encoders }

// Validate checks the query before any feature work. The route check
// runs first: an equal-city query must be rejected without building any
// part of the vector.
func (p *Pipeline) Validate(q model.FlightQuery) error {
	if q.SourceCity == q.DestinationCity {
		return ErrSameCity
	}
	if _, err := feature.ParseClock(q.DepartureTime); err != nil {
		return fmt.Errorf("departure %w", ErrBadClock)
	}
	if _, err := feature.ParseClock(q.ArrivalTime); err != nil {
		return fmt.Errorf("arrival %w", ErrBadClock)
	}
	if q.DurationHours < MinDurationHours || q.DurationHours > MaxDurationHours {
		return ErrDurationRange
	}
	if q.Stops != 0 && q.Stops != 1 {
		return ErrStops
	}
	return nil
}

// Predict runs the full pass: validate, derive features, scale, infer.
// Validation errors come back as the sentinel variants above; anything
// past validation is an internal failure.
func (p *Pipeline) Predict(q model.FlightQuery) (model.PredictionResult, error) {
	if err := p.Validate(q); err != nil {
		return model.PredictionResult{}, err
	}

	fv, err := feature.Build(q, p.encoders)
	if err != nil {
		return model.PredictionResult{}, fmt.Errorf("derive features: %w", err)
	}

	scaled, err := p.scaler.Transform(fv)
	if err != nil {
		return model.PredictionResult{}, fmt.Errorf("scale features: %w", err)
	}

	fare, err := p.model.Predict(scaled)
	if err != nil {
		return model.PredictionResult{}, fmt.Errorf("model inference: %w", err)
	}

	res := model.PredictionResult{
		ID:          uuid.NewString(),
		FareINR:     fare,
		FareDisplay: FormatINR(fare),
		Query:       q,
		PredictedAt: time.Now().UTC(),
	}
	p.log.Debugw("prediction computed", map[string]any{
		"id":      res.ID,
		"route":   q.Route(),
		"airline": q.Airline,
		"fare":    fare,
	})
	return res, nil
}
