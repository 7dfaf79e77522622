package schema

import (
	"math"
	"strconv"
	"strings"
)

// Round2 rounds to 2 decimal places, the precision used by all derived metrics.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// Round3 rounds to 3 decimal places.
func Round3(value float64) float64 {
	return math.Round(value*1000) / 1000
}

// decimalPlaces returns the number of digits after the point
// in the shortest decimal representation of value.
func decimalPlaces(value float64) int {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}

func isWholeNumber(value float64) bool {
	return value == math.Trunc(value)
}
