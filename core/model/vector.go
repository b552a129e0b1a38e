package model

// Feature indices of the model input vector. The order is a contract
// with the trained artifacts and must never change independently of
// them: the scaler's mean/scale and the regression weights are fitted
// against exactly this layout.
const (
	FeatAirline = iota
	FeatSourceCity
	FeatDestinationCity
	FeatDuration
	FeatStops
	FeatClass
	FeatMonth
	FeatDay
	FeatWeekday
	FeatDepartureHour
	FeatArrivalHour

	NumFeatures
)

// FeatureNames lists the features in vector order. The model artifact
// carries the same list as its manifest; the loader compares the two so
// an ordering drift fails at startup instead of silently mispredicting.
var FeatureNames = [NumFeatures]string{
	"airline",
	"source_city",
	"destination_city",
	"duration_hours",
	"stops",
	"class",
	"journey_month",
	"journey_day",
	"journey_weekday",
	"departure_hour",
	"arrival_hour",
}

// FeatureVector is the fixed-order numeric input consumed by the
// scaler and the regression model.
type FeatureVector [NumFeatures]float64
