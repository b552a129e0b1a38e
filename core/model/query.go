package model

import "time"

// FlightQuery holds the raw flight attributes submitted by the user.
// Categorical fields carry the display names; encoding happens later
// against the loaded vocabularies.
type FlightQuery struct {
	Airline         string    `json:"airline"`
	SourceCity      string    `json:"source_city"`
	DestinationCity string    `json:"destination_city"`
	DepartureTime   string    `json:"departure_time"` // HH:MM, 24-hour clock
	ArrivalTime     string    `json:"arrival_time"`   // HH:MM, 24-hour clock
	DurationHours   float64   `json:"duration_hours"`
	Stops           int       `json:"stops"`
	Class           string    `json:"class"`
	JourneyDate     time.Time `json:"journey_date"`
}

// Route returns a human-readable source→destination string.
func (q FlightQuery) Route() string {
	return q.SourceCity + " → " + q.DestinationCity
}

// PredictionResult is the outcome of one fare prediction. It lives for
// a single render cycle and is never persisted.
type PredictionResult struct {
	ID          string      `json:"id"`
	FareINR     float64     `json:"fare_inr"`
	FareDisplay string      `json:"fare_display"`
	Query       FlightQuery `json:"query"`
	PredictedAt time.Time   `json:"predicted_at"`
}
