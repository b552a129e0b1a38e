package predict

import "errors"

// Validation errors returned before any feature derivation happens.
// Handlers map them to user-facing messages; anything else coming out
// of the pipeline is an internal failure and is surfaced generically.
var (
	// ErrSameCity rejects routes where source equals destination.
	ErrSameCity = errors.New("source and destination cities must differ")

	// ErrBadClock rejects departure/arrival times that are not valid
	// HH:MM 24-hour values.
	ErrBadClock = errors.New("time must be a valid HH:MM 24-hour value")

	// ErrDurationRange rejects durations outside [0.1, 24.0] hours.
	ErrDurationRange = errors.New("duration must be between 0.1 and 24.0 hours")

	// ErrStops rejects stop counts other than 0 or 1.
	ErrStops = errors.New("stops must be 0 or 1")
)
