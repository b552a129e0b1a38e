package predict

import (
	"errors"
	"testing"
	"time"

	"github.com/flightfare/farecast/core/model"
	"github.com/flightfare/farecast/core/vocab"
	"github.com/flightfare/farecast/infra/logger"
)

// identityScaler passes vectors through unchanged.
type identityScaler struct{}

func (identityScaler) Transform(fv model.FeatureVector) (model.FeatureVector, error) {
	return fv, nil
}

// spyModel counts inference calls so tests can assert the model is
// never reached on rejected input.
type spyModel struct {
	calls int
	fare  float64
	err   error
}

func (m *spyModel) Predict(model.FeatureVector) (float64, error) {
	m.calls++
	return m.fare, m.err
}

func validQuery() model.FlightQuery {
	return model.FlightQuery{
		Airline:         "IndiGo",
		SourceCity:      "Delhi",
		DestinationCity: "Mumbai",
		DepartureTime:   "10:00",
		ArrivalTime:     "12:00",
		DurationHours:   2.0,
		Stops:           0,
		Class:           "Economy",
		JourneyDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func newTestPipeline(m Model) *Pipeline {
	return New(vocab.Default(), identityScaler{}, m, logger.NopLogger{})
}

func TestPredictSuccess(t *testing.T) {
	spy := &spyModel{fare: 4999.5}
	p := newTestPipeline(spy)
	res, err := p.Predict(validQuery())
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if spy.calls != 1 {
		t.Fatalf("model called %d times, want 1", spy.calls)
	}
	if res.FareINR != 4999.5 {
		t.Fatalf("fare %v, want 4999.5", res.FareINR)
	}
	if res.FareDisplay != "₹4,999.50" {
		t.Fatalf("display %q", res.FareDisplay)
	}
	if res.ID == "" {
		t.Fatalf("missing prediction id")
	}
	if res.Query.Airline != "IndiGo" {
		t.Fatalf("query not echoed: %#v", res.Query)
	}
}

func TestPredictSameCityRejectedBeforeModel(t *testing.T) {
	spy := &spyModel{}
	p := newTestPipeline(spy)
	q := validQuery()
	q.DestinationCity = q.SourceCity
	_, err := p.Predict(q)
	if !errors.Is(err, ErrSameCity) {
		t.Fatalf("expected ErrSameCity, got %v", err)
	}
	if spy.calls != 0 {
		t.Fatalf("model invoked %d times on invalid route", spy.calls)
	}
}

func TestPredictBadClock(t *testing.T) {
	spy := &spyModel{}
	p := newTestPipeline(spy)
	for _, bad := range []string{"14:65", "25:00", "abc"} {
		q := validQuery()
		q.DepartureTime = bad
		if _, err := p.Predict(q); !errors.Is(err, ErrBadClock) {
			t.Fatalf("%q: expected ErrBadClock, got %v", bad, err)
		}
	}
	q := validQuery()
	q.ArrivalTime = "99:99"
	if _, err := p.Predict(q); !errors.Is(err, ErrBadClock) {
		t.Fatalf("arrival: expected ErrBadClock")
	}
	if spy.calls != 0 {
		t.Fatalf("model invoked on invalid time")
	}
}

func TestPredictDurationBounds(t *testing.T) {
	p := newTestPipeline(&spyModel{})
	for _, ok := range []float64{MinDurationHours, MaxDurationHours, 2.0} {
		q := validQuery()
		q.DurationHours = ok
		if _, err := p.Predict(q); err != nil {
			t.Fatalf("duration %v rejected: %v", ok, err)
		}
	}
	for _, bad := range []float64{0, 0.05, 24.1, -1} {
		q := validQuery()
		q.DurationHours = bad
		if _, err := p.Predict(q); !errors.Is(err, ErrDurationRange) {
			t.Fatalf("duration %v: expected ErrDurationRange, got %v", bad, err)
		}
	}
}

func TestPredictStops(t *testing.T) {
	p := newTestPipeline(&spyModel{})
	for _, bad := range []int{-1, 2, 5} {
		q := validQuery()
		q.Stops = bad
		if _, err := p.Predict(q); !errors.Is(err, ErrStops) {
			t.Fatalf("stops %d: expected ErrStops, got %v", bad, err)
		}
	}
	q := validQuery()
	q.Stops = 1
	if _, err := p.Predict(q); err != nil {
		t.Fatalf("stops 1 rejected: %v", err)
	}
}

func TestPredictUnknownCategory(t *testing.T) {
	p := newTestPipeline(&spyModel{})
	q := validQuery()
	q.Airline = "Emirates"
	_, err := p.Predict(q)
	var uc *vocab.UnknownCategoryError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnknownCategoryError, got %v", err)
	}
}

func TestPredictModelFailure(t *testing.T) {
	p := newTestPipeline(&spyModel{err: errors.New("boom")})
	_, err := p.Predict(validQuery())
	if err == nil {
		t.Fatalf("expected inference error")
	}
}

func TestPredictEndToEndDeterministic(t *testing.T) {
	// With fixed artifacts the pipeline is pure: same query, same fare.
	w := make([]float64, model.NumFeatures)
	w[model.FeatDuration] = 100
	w[model.FeatClass] = 500
	lm := &LinearModel{Weights: w, Intercept: 50}
	p := New(vocab.Default(), identityScaler{}, lm, logger.NopLogger{})
	a, err := p.Predict(validQuery())
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	b, err := p.Predict(validQuery())
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if a.FareINR != b.FareINR || a.FareINR != 250 {
		t.Fatalf("fares %v and %v, want 250", a.FareINR, b.FareINR)
	}
}
