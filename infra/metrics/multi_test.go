package metrics

import (
	"errors"
	"testing"

	coremetrics "github.com/flightfare/farecast/core/metrics"
)

type recordingSink struct {
	events []coremetrics.PredictionEvent
	err    error
}

func (s *recordingSink) RecordPrediction(ev coremetrics.PredictionEvent) error {
	s.events = append(s.events, ev)
	return s.err
}

func TestMultiSinkFanout(t *testing.T) {
	a := &recordingSink{}
	b := &recordingSink{}
	m := NewMultiSink(a, b)
	if err := m.RecordPrediction(coremetrics.PredictionEvent{ID: "p1"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("fanout %d/%d, want 1/1", len(a.events), len(b.events))
	}
}

func TestMultiSinkFirstError(t *testing.T) {
	boom := errors.New("boom")
	a := &recordingSink{err: boom}
	b := &recordingSink{}
	m := NewMultiSink(a, b)
	if err := m.RecordPrediction(coremetrics.PredictionEvent{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
