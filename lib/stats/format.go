package stats

import (
	"strconv"
)

// FormatAverage rounds for display only, always showing the given number of decimals.
func FormatAverage(avg float64, digits int) string {
	return strconv.FormatFloat(avg, 'f', digits, 64)
}
