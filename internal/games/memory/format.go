package memory

import (
	"fmt"
	"math"
)

// FormatElapsed renders seconds as mm:ss, with an hh: prefix past one hour.
func FormatElapsed(seconds float64) string {
	total := 0
	if seconds > 0 {
		total = int(math.Floor(seconds))
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
