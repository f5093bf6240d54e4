package eventservices

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
	"github.com/jeffscottward/trade-calculator/src/indicators"
)

type fakePriceFetcher struct {
	candles []eventmodels.Candle
	err     error
}

func (f *fakePriceFetcher) FetchDailyCandles(ctx context.Context, symbol eventmodels.StockSymbol, from, to time.Time) ([]eventmodels.Candle, error) {
	return f.candles, f.err
}

func tradingHistory(now time.Time, days int, price float64, volume float64) []eventmodels.Candle {
	candles := make([]eventmodels.Candle, 0, days)
	p := price

	for i := days; i > 0; i-- {
		drift := 1.0
		if i%2 == 0 {
			drift = 1.01
		} else {
			drift = 0.995
		}
		p *= drift

		candles = append(candles, eventmodels.Candle{
			Timestamp: now.AddDate(0, 0, -i),
			Open:      p * 0.995,
			High:      p * 1.01,
			Low:       p * 0.985,
			Close:     p,
			Volume:    volume,
		})
	}

	return candles
}

func TestMetricsServiceCompute(t *testing.T) {
	now := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("full snapshot", func(t *testing.T) {
		candles := tradingHistory(now, 60, 100, 5_000_000)
		price := candles[len(candles)-1].Close

		near := chainAt(now, 7, 0.80)
		far := chainAt(now, 50, 0.50)
		for _, chain := range []*eventmodels.ExpirationChain{near, far} {
			chain.Calls[0].Strike = price
			chain.Puts[0].Strike = price
		}

		fetcher := &fakeChainFetcher{
			expirations: []time.Time{near.Expiration, far.Expiration},
			chains: map[string]*eventmodels.ExpirationChain{
				near.Expiration.Format("2006-01-02"): near,
				far.Expiration.Format("2006-01-02"):  far,
			},
		}

		service := NewMetricsService(&fakePriceFetcher{candles: candles}, fetcher)

		metrics, underlyingPrice, err := service.Compute(context.Background(), "TEST", now)
		assert.NoError(t, err)
		assert.Equal(t, price, underlyingPrice)
		assert.Equal(t, 5_000_000.0, metrics.AvgVolume30d)
		assert.Equal(t, 2, metrics.ExpirationCount)
		assert.True(t, metrics.TermStructureValid)
		assert.InDelta(t, (0.50-0.80)/float64(50-7), metrics.TermStructureSlope, 1e-9)
		assert.Greater(t, metrics.YangZhangVol, 0.0)

		expectedVol, err := indicators.YangZhang(candles, indicators.DefaultVolatilityWindow, indicators.DefaultTradingPeriods)
		assert.NoError(t, err)
		assert.Equal(t, expectedVol, metrics.YangZhangVol)
		assert.InDelta(t, 0.80/expectedVol, metrics.IVRVRatio, 1e-9)
	})

	t.Run("expirations are fetched once per snapshot", func(t *testing.T) {
		candles := tradingHistory(now, 60, 100, 5_000_000)
		price := candles[len(candles)-1].Close

		near := chainAt(now, 7, 0.80)
		far := chainAt(now, 50, 0.50)
		for _, chain := range []*eventmodels.ExpirationChain{near, far} {
			chain.Calls[0].Strike = price
			chain.Puts[0].Strike = price
		}

		fetcher := &fakeChainFetcher{
			expirations: []time.Time{near.Expiration, far.Expiration},
			chains: map[string]*eventmodels.ExpirationChain{
				near.Expiration.Format("2006-01-02"): near,
				far.Expiration.Format("2006-01-02"):  far,
			},
		}

		service := NewMetricsService(&fakePriceFetcher{candles: candles}, fetcher)

		_, _, err := service.Compute(context.Background(), "TEST", now)
		assert.NoError(t, err)
		assert.Equal(t, 1, fetcher.expirationCalls)
	})

	t.Run("no historical data", func(t *testing.T) {
		service := NewMetricsService(&fakePriceFetcher{}, &fakeChainFetcher{})

		_, _, err := service.Compute(context.Background(), "TEST", now)
		assert.ErrorIs(t, err, eventmodels.ErrNoHistoricalData)
	})

	t.Run("missing chains degrade instead of failing", func(t *testing.T) {
		candles := tradingHistory(now, 60, 100, 5_000_000)
		service := NewMetricsService(&fakePriceFetcher{candles: candles}, &fakeChainFetcher{})

		metrics, _, err := service.Compute(context.Background(), "TEST", now)
		assert.NoError(t, err)
		assert.False(t, metrics.TermStructureValid)
		assert.Equal(t, 0.0, metrics.TermStructureSlope)
		assert.Equal(t, 0.0, metrics.IVRVRatio)
		assert.Equal(t, 0, metrics.ExpirationCount)
	})
}
