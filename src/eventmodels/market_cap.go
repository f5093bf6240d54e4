package eventmodels

import (
	"strconv"
	"strings"
)

// ParseMarketCap converts a human-formatted market cap such as "$1.5B",
// "$500M" or "$2.3T" into its numeric value. Plain numerics parse directly.
// Empty strings, "-" and anything unparseable degrade to 0 rather than
// erroring: the upstream calendar feed routinely omits the field.
func ParseMarketCap(s string) float64 {
	clean := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, "$", ""), ",", ""))

	if clean == "" || clean == "-" {
		return 0
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(clean, "T"):
		multiplier = 1_000_000_000_000
		clean = strings.TrimSuffix(clean, "T")
	case strings.HasSuffix(clean, "B"):
		multiplier = 1_000_000_000
		clean = strings.TrimSuffix(clean, "B")
	case strings.HasSuffix(clean, "M"):
		multiplier = 1_000_000
		clean = strings.TrimSuffix(clean, "M")
	}

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}

	return value * multiplier
}
