package predict

import (
	"strconv"
	"strings"
)

// FormatINR renders a fare with the rupee symbol, thousands grouping
// and two decimals. Display only: the underlying value is not rounded.
func FormatINR(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteRune('₹')
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
