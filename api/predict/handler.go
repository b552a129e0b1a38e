// Package predict exposes the prediction pipeline over a small JSON
// API: POST /api/predict runs one pass, GET /api/schema describes the
// legal inputs so clients render choices from the loaded vocabularies
// instead of hardcoding them.
package predict

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/flightfare/farecast/core/logger"
	coremetrics "github.com/flightfare/farecast/core/metrics"
	"github.com/flightfare/farecast/core/model"
	corepredict "github.com/flightfare/farecast/core/predict"
	"github.com/flightfare/farecast/internal/eventbus"
)

// DateLayout is the wire format of the journey date.
const DateLayout = "2006-01-02"

// Handler serves the JSON prediction endpoints.
type Handler struct {
	pipe *corepredict.Pipeline
	bus  eventbus.EventBus
	log  logger.Logger
}

// NewHandler builds a Handler. The bus may be nil when no metrics
// recording is wired (one-shot CLI use).
func NewHandler(pipe *corepredict.Pipeline, bus eventbus.EventBus, log logger.Logger) *Handler {
	return &Handler{pipe: pipe, bus: bus, log: log}
}

// Register mounts the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/predict", h.handlePredict)
	mux.HandleFunc("/api/schema", h.handleSchema)
}

type predictRequest struct {
	Airline         string  `json:"airline"`
	SourceCity      string  `json:"source_city"`
	DestinationCity string  `json:"destination_city"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	DurationHours   float64 `json:"duration_hours"`
	Stops           int     `json:"stops"`
	Class           string  `json:"class"`
	JourneyDate     string  `json:"journey_date"` // YYYY-MM-DD
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	date, err := time.Parse(DateLayout, req.JourneyDate)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "journey_date must be YYYY-MM-DD"})
		return
	}

	q := model.FlightQuery{
		Airline:         req.Airline,
		SourceCity:      req.SourceCity,
		DestinationCity: req.DestinationCity,
		DepartureTime:   req.DepartureTime,
		ArrivalTime:     req.ArrivalTime,
		DurationHours:   req.DurationHours,
		Stops:           req.Stops,
		Class:           req.Class,
		JourneyDate:     date,
	}

	start := time.Now()
	res, err := h.pipe.Predict(q)
	h.publish(q, res, err, time.Since(start))
	if err != nil {
		status, msg := responseFor(err)
		if status == http.StatusInternalServerError {
			h.log.Errorf("prediction failed: %v", err)
		}
		writeJSON(w, status, errorResponse{Error: msg})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type schemaResponse struct {
	Version     string   `json:"version"`
	Airlines    []string `json:"airlines"`
	Cities      []string `json:"cities"`
	Classes     []string `json:"classes"`
	MinDuration float64  `json:"min_duration_hours"`
	MaxDuration float64  `json:"max_duration_hours"`
	Stops       []int    `json:"stops"`
}

func (h *Handler) handleSchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	enc := h.pipe.Encoders()
	writeJSON(w, http.StatusOK, schemaResponse{
		Version:     enc.Version,
		Airlines:    enc.Airline.Names,
		Cities:      enc.City.Names,
		Classes:     enc.Class.Names,
		MinDuration: corepredict.MinDurationHours,
		MaxDuration: corepredict.MaxDurationHours,
		Stops:       []int{0, 1},
	})
}

// publish emits a prediction event for the metrics recorder.
func (h *Handler) publish(q model.FlightQuery, res model.PredictionResult, err error, latency time.Duration) {
	if h.bus == nil {
		return
	}
	h.bus.Publish(coremetrics.PredictionEvent{
		ID:      res.ID,
		Airline: q.Airline,
		Source:  q.SourceCity,
		Dest:    q.DestinationCity,
		Class:   q.Class,
		FareINR: res.FareINR,
		Outcome: coremetrics.OutcomeFor(err),
		Latency: latency,
		Time:    time.Now().UTC(),
	})
}

// responseFor maps pipeline errors to an HTTP status and a user-facing
// message. Internal failures never leak their cause to the client.
func responseFor(err error) (int, string) {
	switch {
	case errors.Is(err, corepredict.ErrSameCity),
		errors.Is(err, corepredict.ErrBadClock),
		errors.Is(err, corepredict.ErrDurationRange),
		errors.Is(err, corepredict.ErrStops):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, "prediction failed, please try again"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
