package eventmodels

import (
	"fmt"
	"time"
)

// EarningsEvent is one upcoming earnings report pulled from the calendar
// feed, after DTO conversion.
type EarningsEvent struct {
	Symbol      StockSymbol
	CompanyName string
	ReportDate  time.Time
	ReportTime  string
	MarketCap   float64
	EPSForecast string
}

func (e EarningsEvent) Validate() error {
	if e.Symbol == "" {
		return fmt.Errorf("EarningsEvent: Validate: symbol not set")
	}

	if e.ReportDate.IsZero() {
		return fmt.Errorf("EarningsEvent: Validate: report date not set")
	}

	return nil
}
