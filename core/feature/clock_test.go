package feature

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		hour int
		ok   bool
	}{
		{"14:30", 14, true}, // minutes truncated, not rounded
		{"00:00", 0, true},
		{"23:59", 23, true},
		{"14:65", 0, false},
		{"25:00", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"14:30:00", 0, false},
	}
	for _, c := range cases {
		h, err := ParseClock(c.in)
		if c.ok != (err == nil) {
			t.Fatalf("%q: unexpected error state %v", c.in, err)
		}
		if c.ok && h != c.hour {
			t.Fatalf("%q: hour %d, want %d", c.in, h, c.hour)
		}
	}
}
