package feature

import (
	"fmt"
	"time"
)

// ParseClock parses a 24-hour HH:MM wall-clock string and returns the
// hour component. Minutes are parsed for validation but dropped: the
// model was trained on hour granularity only.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return t.Hour(), nil
}
