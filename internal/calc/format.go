package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatValue renders a finite value with exactly places decimal places.
// With thousands set, the integer part is grouped with commas. Grouping
// handles at most nine decimal places and magnitudes below 1e15; anything
// past that renders ungrouped.
func FormatValue(v float64, places int, thousands bool) string {
	if !thousands || places > 9 || math.Abs(v) >= 1e15 {
		return strconv.FormatFloat(v, 'f', places, 64)
	}
	format := "#,###."
	if places > 0 {
		format += strings.Repeat("#", places)
	}
	return humanize.FormatFloat(format, v)
}

// FormatNumber renders a value in its shortest exact decimal form, the
// way memory and history amounts are shown.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
