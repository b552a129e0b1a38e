// Package feature derives the fixed-order model input vector from a
// validated flight query: calendar decomposition of the journey date,
// hour extraction from the clock fields, and positional encoding of the
// categorical attributes.
package feature

import (
	"fmt"
	"time"

	"github.com/flightfare/farecast/core/model"
	"github.com/flightfare/farecast/core/vocab"
)

// Weekday returns the journey weekday with Monday=0 .. Sunday=6, the
// convention the model was trained with. Go's time.Weekday starts at
// Sunday, hence the rotation.
func Weekday(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// Build assembles the feature vector for a validated query. Categorical
// values outside their vocabulary fail loudly; silently defaulting
// would corrupt the prediction without any visible error.
func Build(q model.FlightQuery, enc *vocab.EncoderSet) (model.FeatureVector, error) {
	var fv model.FeatureVector

	airline, err := enc.Airline.Code(q.Airline)
	if err != nil {
		return fv, err
	}
	src, err := enc.City.Code(q.SourceCity)
	if err != nil {
		return fv, err
	}
	dst, err := enc.City.Code(q.DestinationCity)
	if err != nil {
		return fv, err
	}
	class, err := enc.Class.Code(q.Class)
	if err != nil {
		return fv, err
	}

	depHour, err := ParseClock(q.DepartureTime)
	if err != nil {
		return fv, fmt.Errorf("departure time: %w", err)
	}
	arrHour, err := ParseClock(q.ArrivalTime)
	if err != nil {
		return fv, fmt.Errorf("arrival time: %w", err)
	}

	fv[model.FeatAirline] = float64(airline)
	fv[model.FeatSourceCity] = float64(src)
	fv[model.FeatDestinationCity] = float64(dst)
	fv[model.FeatDuration] = q.DurationHours
	fv[model.FeatStops] = float64(q.Stops)
	fv[model.FeatClass] = float64(class)
	fv[model.FeatMonth] = float64(q.JourneyDate.Month())
	fv[model.FeatDay] = float64(q.JourneyDate.Day())
	fv[model.FeatWeekday] = float64(Weekday(q.JourneyDate))
	fv[model.FeatDepartureHour] = float64(depHour)
	fv[model.FeatArrivalHour] = float64(arrHour)
	return fv, nil
}
