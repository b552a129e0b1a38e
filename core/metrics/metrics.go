package metrics

import "time"

// Outcome labels attached to prediction events.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidRoute = "invalid_route"
	OutcomeInvalidTime  = "invalid_time"
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)

// PredictionEvent describes one completed (or failed) prediction pass
// for observability purposes.
type PredictionEvent struct {
	ID      string
	Airline string
	Source  string
	Dest    string
	Class   string
	FareINR float64
	Outcome string
	Latency time.Duration
	Time    time.Time
}

// Sink records prediction events.
type Sink interface {
	RecordPrediction(ev PredictionEvent) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPrediction(PredictionEvent) error { return nil }

// Config enables the optional metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":9092"
	}
}
