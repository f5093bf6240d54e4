package eventmodels

import (
	"math"
	"time"
)

// ExpirationChain holds all call and put quotes for a single expiration of
// one underlying.
type ExpirationChain struct {
	Underlying StockSymbol
	Expiration time.Time
	Calls      []OptionQuote
	Puts       []OptionQuote
}

func (c *ExpirationChain) IsEmpty() bool {
	return len(c.Calls) == 0 || len(c.Puts) == 0
}

// NearestStrike returns the quote whose strike is closest to price by
// absolute distance. The second return value is false for an empty slice.
func NearestStrike(quotes []OptionQuote, price float64) (OptionQuote, bool) {
	if len(quotes) == 0 {
		return OptionQuote{}, false
	}

	best := quotes[0]
	bestDiff := math.Abs(quotes[0].Strike - price)

	for _, q := range quotes[1:] {
		diff := math.Abs(q.Strike - price)
		if diff < bestDiff {
			bestDiff = diff
			best = q
		}
	}

	return best, true
}
