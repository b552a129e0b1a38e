package metrics

import (
	"errors"

	"github.com/flightfare/farecast/core/predict"
)

// OutcomeFor maps a pipeline error to the outcome label recorded on the
// prediction event. A nil error is OutcomeOK.
func OutcomeFor(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, predict.ErrSameCity):
		return OutcomeInvalidRoute
	case errors.Is(err, predict.ErrBadClock):
		return OutcomeInvalidTime
	case errors.Is(err, predict.ErrDurationRange), errors.Is(err, predict.ErrStops):
		return OutcomeInvalidInput
	default:
		return OutcomeError
	}
}
