package eventservices

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
	"github.com/jeffscottward/trade-calculator/src/indicators"
)

const (
	// DefaultLookbackDays covers roughly three months of daily bars, enough
	// for a 30-session volatility window with margin.
	DefaultLookbackDays = 90

	DefaultVolumeWindow = 30
)

// MetricsService assembles the per-underlying QualificationMetrics snapshot
// from the external price-history and option-chain providers. Both the
// qualification gates and the priority scorer consume the snapshot it
// produces, never their own recomputation.
type MetricsService struct {
	priceFetcher eventmodels.PriceHistoryFetcher
	chainFetcher eventmodels.OptionChainFetcher
	lookbackDays int
	volWindow    int
}

func NewMetricsService(priceFetcher eventmodels.PriceHistoryFetcher, chainFetcher eventmodels.OptionChainFetcher) *MetricsService {
	return &MetricsService{
		priceFetcher: priceFetcher,
		chainFetcher: chainFetcher,
		lookbackDays: DefaultLookbackDays,
		volWindow:    indicators.DefaultVolatilityWindow,
	}
}

// Compute builds the metrics snapshot for one symbol as of now. It returns
// an error only when the inputs are unusable end to end; partial data
// (missing chains, thin history) degrades into the snapshot's zero values
// and the invalid term-structure flag instead.
func (s *MetricsService) Compute(ctx context.Context, symbol eventmodels.StockSymbol, now time.Time) (eventmodels.QualificationMetrics, float64, error) {
	from := now.AddDate(0, 0, -s.lookbackDays)

	candles, err := s.priceFetcher.FetchDailyCandles(ctx, symbol, from, now)
	if err != nil {
		return eventmodels.QualificationMetrics{}, 0, fmt.Errorf("MetricsService: Compute: %s: failed to fetch price history: %w", symbol, err)
	}

	if len(candles) == 0 {
		return eventmodels.QualificationMetrics{}, 0, fmt.Errorf("MetricsService: Compute: %s: %w", symbol, eventmodels.ErrNoHistoricalData)
	}

	underlyingPrice := candles[len(candles)-1].Close

	realizedVol, err := realizedVolatility(candles, s.volWindow)
	if err != nil {
		return eventmodels.QualificationMetrics{}, 0, fmt.Errorf("MetricsService: Compute: %s: %w", symbol, err)
	}

	expirations, err := s.chainFetcher.FetchExpirations(ctx, symbol)
	if err != nil {
		return eventmodels.QualificationMetrics{}, 0, fmt.Errorf("MetricsService: Compute: %s: failed to fetch expirations: %w", symbol, err)
	}

	term := FetchTermStructure(ctx, s.chainFetcher, symbol, underlyingPrice, expirations, now)

	ivRvRatio := 0.0
	if term.Valid && realizedVol > 0 {
		ivRvRatio = term.Points[0].ATMIV / realizedVol
	}

	return eventmodels.QualificationMetrics{
		AvgVolume30d:       eventmodels.AverageVolume(candles, DefaultVolumeWindow),
		YangZhangVol:       realizedVol,
		IVRVRatio:          ivRvRatio,
		TermStructureSlope: term.Slope,
		TermStructureValid: term.Valid,
		ExpirationCount:    len(expirations),
	}, underlyingPrice, nil
}

// realizedVolatility prefers the Yang-Zhang estimate and falls back to the
// simpler close-to-close estimate when full OHLC data is missing.
func realizedVolatility(candles []eventmodels.Candle, window int) (float64, error) {
	if hasFullOHLC(candles) {
		return indicators.YangZhang(candles, window, indicators.DefaultTradingPeriods)
	}

	closesOnly := make([]eventmodels.Candle, 0, len(candles))
	for _, c := range candles {
		if c.Close > 0 {
			closesOnly = append(closesOnly, c)
		}
	}

	return indicators.HistoricalVolatility(closesOnly, window, indicators.DefaultTradingPeriods)
}

func hasFullOHLC(candles []eventmodels.Candle) bool {
	for _, c := range candles {
		if c.Open <= 0 || c.High <= 0 || c.Low <= 0 || c.Close <= 0 {
			return false
		}
	}

	return len(candles) > 0
}
