package feature

import (
	"errors"
	"testing"
	"time"

	"github.com/flightfare/farecast/core/model"
	"github.com/flightfare/farecast/core/vocab"
)

func query() model.FlightQuery {
	return model.FlightQuery{
		Airline:         "IndiGo",
		SourceCity:      "Delhi",
		DestinationCity: "Mumbai",
		DepartureTime:   "10:00",
		ArrivalTime:     "12:00",
		DurationHours:   2.0,
		Stops:           0,
		Class:           "Economy",
		JourneyDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), // a Friday
	}
}

func TestBuildScenario(t *testing.T) {
	fv, err := Build(query(), vocab.Default())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// IndiGo=3, Delhi=2, Mumbai=5, Economy=0; Friday=4 under Monday=0.
	want := model.FeatureVector{3, 2, 5, 2.0, 0, 0, 3, 15, 4, 10, 12}
	if fv != want {
		t.Fatalf("vector %v, want %v", fv, want)
	}
}

func TestBuildVectorLength(t *testing.T) {
	fv, err := Build(query(), vocab.Default())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(fv) != 11 || model.NumFeatures != 11 {
		t.Fatalf("vector has %d elements, want 11", len(fv))
	}
}

func TestBuildMinutesTruncated(t *testing.T) {
	q := query()
	q.DepartureTime = "14:30"
	q.ArrivalTime = "16:59"
	fv, err := Build(q, vocab.Default())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if fv[model.FeatDepartureHour] != 14 {
		t.Fatalf("departure hour %v, want 14", fv[model.FeatDepartureHour])
	}
	if fv[model.FeatArrivalHour] != 16 {
		t.Fatalf("arrival hour %v, want 16", fv[model.FeatArrivalHour])
	}
}

func TestBuildUnknownCategory(t *testing.T) {
	q := query()
	q.SourceCity = "Pune"
	_, err := Build(q, vocab.Default())
	var uc *vocab.UnknownCategoryError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnknownCategoryError, got %v", err)
	}
}

func TestWeekdayConvention(t *testing.T) {
	// Monday=0 .. Sunday=6.
	cases := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), 0}, // Monday
		{time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 4}, // Friday
		{time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), 6}, // Sunday
	}
	for _, c := range cases {
		if got := Weekday(c.date); got != c.want {
			t.Fatalf("%s: weekday %d, want %d", c.date.Format("2006-01-02"), got, c.want)
		}
	}
}
