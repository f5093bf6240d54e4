package backtester

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

func simParams(symbol string, entry time.Time) SimulateParams {
	return SimulateParams{
		Symbol:          eventmodels.NewStockSymbol(symbol),
		EntryDate:       entry,
		ExitDate:        entry.AddDate(0, 0, 2),
		StockPrice:      100,
		ExpectedMovePct: 5,
		Capital:         10_000,
		PositionSizePct: 0.06,
	}
}

func TestSimulateCalendarSpread(t *testing.T) {
	config := eventmodels.NewDefaultStrategyConfig().Simulator
	entry := time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)

	t.Run("deterministic for the same entry date", func(t *testing.T) {
		first := SimulateCalendarSpread(simParams("AAPL", entry), config)
		second := SimulateCalendarSpread(simParams("AAPL", entry), config)

		// only the generated IDs differ between runs
		second.ID = first.ID
		assert.Equal(t, first, second)
	})

	t.Run("different entry dates draw different moves", func(t *testing.T) {
		moves := make(map[float64]bool)
		for day := 0; day < 10; day++ {
			trade := SimulateCalendarSpread(simParams("AAPL", entry.AddDate(0, 0, day)), config)
			moves[trade.ActualMove] = true
		}

		assert.Greater(t, len(moves), 1)
	})

	t.Run("strike snaps to the nearest increment", func(t *testing.T) {
		params := simParams("AAPL", entry)
		params.StockPrice = 103.2

		trade := SimulateCalendarSpread(params, config)
		assert.Equal(t, 105.0, trade.Strike)

		params.StockPrice = 101.9
		trade = SimulateCalendarSpread(params, config)
		assert.Equal(t, 100.0, trade.Strike)
	})

	t.Run("actual move is clamped to the expected move", func(t *testing.T) {
		for day := 0; day < 50; day++ {
			trade := SimulateCalendarSpread(simParams("AAPL", entry.AddDate(0, 0, day)), config)
			assert.LessOrEqual(t, math.Abs(trade.ActualMove), trade.ExpectedMove)
		}
	})

	t.Run("at least one contract even with tiny capital", func(t *testing.T) {
		params := simParams("AAPL", entry)
		params.Capital = 100
		params.PositionSizePct = 0.01

		trade := SimulateCalendarSpread(params, config)
		assert.Equal(t, 1, trade.NumContracts)
	})

	t.Run("zero expected move yields a flat trade", func(t *testing.T) {
		params := simParams("AAPL", entry)
		params.ExpectedMovePct = 0

		trade := SimulateCalendarSpread(params, config)

		assert.Equal(t, 0, trade.NumContracts)
		assert.Equal(t, 0.0, trade.FrontPremium)
		assert.Equal(t, 0.0, trade.TotalPnL)
		assert.False(t, math.IsNaN(trade.PnLPercent))
		assert.Equal(t, 100.0, trade.Strike)
		assert.Equal(t, trade.EntryStockPrice, trade.ExitStockPrice)
	})

	t.Run("premiums follow the config heuristics", func(t *testing.T) {
		trade := SimulateCalendarSpread(simParams("AAPL", entry), config)

		// 100 * 5% * 0.4 = 2.00 front, 0.7 ratio back
		assert.Equal(t, 2.0, trade.FrontPremium)
		assert.Equal(t, 1.4, trade.BackPremium)
		assert.Equal(t, -0.6, trade.NetDebit)
	})

	t.Run("total pnl is the sum of the legs", func(t *testing.T) {
		trade := SimulateCalendarSpread(simParams("AAPL", entry), config)
		assert.InDelta(t, trade.FrontPnL+trade.BackPnL, trade.TotalPnL, 0.02)
	})

	t.Run("expiries bracket the earnings event", func(t *testing.T) {
		trade := SimulateCalendarSpread(simParams("AAPL", entry), config)

		assert.Equal(t, entry.AddDate(0, 0, 3), trade.FrontExpiry)
		assert.Equal(t, entry.AddDate(0, 0, 33), trade.BackExpiry)
	})
}
