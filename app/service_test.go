package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/flightfare/farecast/config"
	"github.com/flightfare/farecast/core/model"
)

func TestNewFailsWithoutArtifacts(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.SetDefaults()
	cfg.Logging.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Artifacts.Dir = t.TempDir() // empty: no model/scaler/encoders

	_, err := New(cfg)
	if err == nil {
		t.Fatalf("expected startup failure with missing artifacts")
	}
	if !strings.Contains(err.Error(), "artifact") {
		t.Fatalf("diagnostic should mention artifacts: %v", err)
	}
}

func writeArtifacts(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"model.json": `{
			"type": "linear_regression",
			"version": "v1",
			"features": ["airline","source_city","destination_city","duration_hours","stops","class","journey_month","journey_day","journey_weekday","departure_hour","arrival_hour"],
			"weights": [0,0,0,100,0,0,0,0,0,0,0],
			"intercept": 50
		}`,
		"scaler.json": `{
			"type": "standard",
			"mean": [0,0,0,0,0,0,0,0,0,0,0],
			"scale": [1,1,1,1,1,1,1,1,1,1,1]
		}`,
		"encoders.json": `{
			"version": "v1",
			"airlines": ["Air India","AirAsia","GoAir","IndiGo","SpiceJet","Vistara"],
			"cities": ["Bangalore","Chennai","Delhi","Hyderabad","Kolkata","Mumbai"],
			"classes": ["Economy","Business"]
		}`,
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestNewBuildsWorkingPipeline(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir)
	cfg := &config.Config{}
	cfg.Server.SetDefaults()
	cfg.Logging.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Artifacts.Dir = dir

	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}()

	res, err := svc.Pipeline().Predict(model.FlightQuery{
		Airline:         "IndiGo",
		SourceCity:      "Delhi",
		DestinationCity: "Mumbai",
		DepartureTime:   "10:00",
		ArrivalTime:     "12:00",
		DurationHours:   2.0,
		Stops:           0,
		Class:           "Economy",
		JourneyDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	// Identity scaler, weight 100 on duration, intercept 50.
	if res.FareINR != 250 {
		t.Fatalf("fare %v, want 250", res.FareINR)
	}
}
