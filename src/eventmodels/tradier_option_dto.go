package eventmodels

import (
	"fmt"
	"time"
)

// TradierExpirationsDTO mirrors the markets/options/expirations payload.
type TradierExpirationsDTO struct {
	Expirations struct {
		Date []string `json:"date"`
	} `json:"expirations"`
}

func (dto *TradierExpirationsDTO) ToExpirationDates() ([]time.Time, error) {
	var dates []time.Time
	for _, d := range dto.Expirations.Date {
		date, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, fmt.Errorf("TradierExpirationsDTO: ToExpirationDates: failed to parse date %q: %w", d, err)
		}

		dates = append(dates, date)
	}

	return dates, nil
}

type TradierGreeksDTO struct {
	MidIV float64 `json:"mid_iv"`
}

// TradierOptionDTO is one contract row of the markets/options/chains
// payload, with greeks requested.
type TradierOptionDTO struct {
	Symbol         string           `json:"symbol"`
	Strike         float64          `json:"strike"`
	OptionType     string           `json:"option_type"`
	ExpirationDate string           `json:"expiration_date"`
	Bid            float64          `json:"bid"`
	Ask            float64          `json:"ask"`
	Volume         float64          `json:"volume"`
	Greeks         TradierGreeksDTO `json:"greeks"`
}

type TradierOptionChainDTO struct {
	Options struct {
		Option []TradierOptionDTO `json:"option"`
	} `json:"options"`
}

// ToExpirationChain splits the flat contract list into call and put quotes
// for one expiration. Contracts without a usable IV are dropped.
func (dto *TradierOptionChainDTO) ToExpirationChain(underlying StockSymbol, expiration time.Time) *ExpirationChain {
	chain := &ExpirationChain{
		Underlying: underlying,
		Expiration: expiration,
	}

	for _, opt := range dto.Options.Option {
		if opt.Greeks.MidIV <= 0 {
			continue
		}

		quote := OptionQuote{
			Strike:            opt.Strike,
			Expiration:        expiration,
			OptionType:        OptionType(opt.OptionType),
			Bid:               opt.Bid,
			Ask:               opt.Ask,
			ImpliedVolatility: opt.Greeks.MidIV,
			Volume:            opt.Volume,
		}

		switch quote.OptionType {
		case Call:
			chain.Calls = append(chain.Calls, quote)
		case Put:
			chain.Puts = append(chain.Puts, quote)
		}
	}

	return chain
}
