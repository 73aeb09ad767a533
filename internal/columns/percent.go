package columns

import (
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// Round2 rounds x to two decimals, halves away from zero. Every normalized
// value and every derived statistic goes through it, so sums and variances
// are computed on already rounded inputs.
func Round2(x float64) float64 {
	r, err := stats.Round(x, 2)
	if err != nil {
		return 0
	}
	return r
}

// IsPercent reports whether raw is a decimal immediately followed by '%'.
func IsPercent(raw string) bool { return percentNumber.MatchString(raw) }

// Normalize converts a NUMBER value to its numeric form: "50%" is 0.5,
// "42" is 42. The result is rounded with Round2. Values that do not parse
// normalize to 0; callers only pass values that passed Classify.
func Normalize(raw string) float64 {
	if IsPercent(raw) {
		f, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			return 0
		}
		return Round2(f / 100)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return Round2(f)
}
