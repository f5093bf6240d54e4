package eventmodels

import (
	"context"
	"time"
)

// PriceHistoryFetcher returns ordered daily bars for a symbol over a
// lookback window ending at `to`.
type PriceHistoryFetcher interface {
	FetchDailyCandles(ctx context.Context, symbol StockSymbol, from, to time.Time) ([]Candle, error)
}

// OptionChainFetcher exposes the option expiration dates available for a
// symbol and the full chain for any one of them.
type OptionChainFetcher interface {
	FetchExpirations(ctx context.Context, symbol StockSymbol) ([]time.Time, error)
	FetchExpirationChain(ctx context.Context, symbol StockSymbol, expiration time.Time) (*ExpirationChain, error)
}

// EarningsCalendarFetcher returns the earnings events scheduled for a given
// report date.
type EarningsCalendarFetcher interface {
	FetchEarningsCalendar(ctx context.Context, reportDate time.Time) ([]EarningsEvent, error)
}
