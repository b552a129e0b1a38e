package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/flightfare/farecast/core/metrics"
)

// PromSink records prediction events in Prometheus metrics.
type PromSink struct {
	predictions *prometheus.CounterVec
	fares       prometheus.Histogram
	latency     prometheus.Histogram
}

// NewPromSink registers prediction metrics on the default Prometheus
// registerer. The /metrics server is started separately.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	predictions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "farecast_predictions_total",
		Help: "Total number of fare predictions by outcome.",
	}, []string{"outcome", "airline", "class"})
	fares := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "farecast_predicted_fare_inr",
		Help:    "Distribution of predicted fares in INR.",
		Buckets: prometheus.ExponentialBuckets(500, 2, 10),
	})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "farecast_prediction_duration_seconds",
		Help:    "Time spent in one prediction pass.",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(predictions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			predictions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fares); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fares = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(latency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			latency = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{predictions: predictions, fares: fares, latency: latency}, nil
}

// RecordPrediction updates the counters and histograms for one event.
func (s *PromSink) RecordPrediction(ev coremetrics.PredictionEvent) error {
	s.predictions.WithLabelValues(ev.Outcome, ev.Airline, ev.Class).Inc()
	s.latency.Observe(ev.Latency.Seconds())
	if ev.Outcome == coremetrics.OutcomeOK {
		s.fares.Observe(ev.FareINR)
	}
	return nil
}
