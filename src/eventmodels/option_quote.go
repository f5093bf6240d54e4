package eventmodels

import "time"

// OptionQuote is a single contract quote within one chain snapshot, keyed by
// (expiration, strike, option type). Quotes are transient: fetched per
// evaluation cycle and never persisted.
type OptionQuote struct {
	Strike            float64
	Expiration        time.Time
	OptionType        OptionType
	Bid               float64
	Ask               float64
	ImpliedVolatility float64
	Volume            float64
}

func (q OptionQuote) Mid() float64 {
	if q.Bid > 0 && q.Ask > 0 {
		return (q.Bid + q.Ask) / 2.0
	}

	if q.Ask > 0 {
		return q.Ask
	}

	return q.Bid
}
