package backtester

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

func testCandidate(symbol string, reportDate time.Time) eventmodels.BacktestCandidate {
	return eventmodels.BacktestCandidate{
		Symbol:             eventmodels.NewStockSymbol(symbol),
		CompanyName:        symbol + " Inc",
		ReportDate:         reportDate,
		ReportTime:         "time-after-hours",
		MarketCap:          50e9,
		ExpectedMove:       5,
		AvgVolume30d:       2_000_000,
		IVRVRatio:          1.5,
		TermStructureSlope: -0.2,
		StockPrice:         100,
	}
}

func TestBacktestRun(t *testing.T) {
	config := eventmodels.NewDefaultStrategyConfig()
	reportDate := time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC)

	t.Run("skips candidates that fail the gates", func(t *testing.T) {
		passing := testCandidate("AAPL", reportDate)
		illiquid := testCandidate("TINY", reportDate)
		illiquid.AvgVolume30d = 200_000
		flat := testCandidate("FLAT", reportDate)
		flat.TermStructureSlope = 0.05

		backtest := NewBacktest(config)
		trades := backtest.Run([]eventmodels.BacktestCandidate{passing, illiquid, flat})

		assert.Len(t, trades, 1)
		assert.Equal(t, eventmodels.NewStockSymbol("AAPL"), trades[0].Symbol)
	})

	t.Run("enters the day before the report and exits the day after", func(t *testing.T) {
		backtest := NewBacktest(config)
		trades := backtest.Run([]eventmodels.BacktestCandidate{testCandidate("AAPL", reportDate)})

		assert.Len(t, trades, 1)
		assert.Equal(t, reportDate.AddDate(0, 0, -1), trades[0].EntryDate)
		assert.Equal(t, reportDate.AddDate(0, 0, 1), trades[0].ExitDate)
	})

	t.Run("capital compounds trade to trade", func(t *testing.T) {
		candidates := []eventmodels.BacktestCandidate{
			testCandidate("AAPL", reportDate),
			testCandidate("MSFT", reportDate.AddDate(0, 0, 7)),
			testCandidate("NVDA", reportDate.AddDate(0, 0, 14)),
		}

		backtest := NewBacktest(config)
		trades := backtest.Run(candidates)

		assert.Len(t, trades, 3)

		capital := config.StartingCapital
		for _, trade := range trades {
			capital += trade.TotalPnL
		}

		assert.InDelta(t, capital, backtest.CurrentCapital, 0.01)
	})

	t.Run("missing expected move falls back to the default", func(t *testing.T) {
		candidate := testCandidate("AAPL", reportDate)
		candidate.ExpectedMove = 0

		backtest := NewBacktest(config)
		trades := backtest.Run([]eventmodels.BacktestCandidate{candidate})

		assert.Len(t, trades, 1)
		assert.Equal(t, config.DefaultExpectedMove, trades[0].ExpectedMove)
	})
}

func TestComputePerformance(t *testing.T) {
	trade := func(pnl, pnlPct float64) eventmodels.SimulatedTrade {
		return eventmodels.SimulatedTrade{TotalPnL: pnl, PnLPercent: pnlPct}
	}

	t.Run("empty trades", func(t *testing.T) {
		metrics := ComputePerformance(nil, 10_000, 90)

		assert.Equal(t, 0, metrics.TotalTrades)
		assert.Equal(t, 10_000.0, metrics.EndingCapital)
		assert.Equal(t, 0.0, metrics.WinRate)
	})

	t.Run("mixed winners and losers", func(t *testing.T) {
		trades := []eventmodels.SimulatedTrade{
			trade(100, 10),
			trade(200, 20),
			trade(-50, -5),
		}

		metrics := ComputePerformance(trades, 10_000, 252)

		assert.Equal(t, 3, metrics.TotalTrades)
		assert.Equal(t, 2, metrics.WinningTrades)
		assert.Equal(t, 1, metrics.LosingTrades)
		assert.InDelta(t, 66.67, metrics.WinRate, 0.01)
		assert.Equal(t, 150.0, metrics.AvgWin)
		assert.Equal(t, -50.0, metrics.AvgLoss)
		assert.Equal(t, 6.0, metrics.ProfitFactor)
		assert.Equal(t, 250.0, metrics.TotalPnL)
		assert.Equal(t, 10_250.0, metrics.EndingCapital)
		assert.InDelta(t, 2.5, metrics.TotalReturnPct, 0.01)

		// capital peaks at 10300 then gives back 50
		assert.InDelta(t, 0.49, metrics.MaxDrawdownPct, 0.01)

		// per-trade sharpe over a 252-day lookback has no annualization scaling
		assert.InDelta(t, 0.81, metrics.SharpeRatio, 0.01)
	})

	t.Run("all winners gives an infinite profit factor", func(t *testing.T) {
		metrics := ComputePerformance([]eventmodels.SimulatedTrade{trade(100, 10), trade(50, 5)}, 10_000, 90)

		assert.True(t, math.IsInf(metrics.ProfitFactor, 1))
		assert.Equal(t, 100.0, metrics.WinRate)
		assert.Equal(t, 0.0, metrics.MaxDrawdownPct)
	})

	t.Run("shorter lookback scales the sharpe up", func(t *testing.T) {
		trades := []eventmodels.SimulatedTrade{trade(100, 10), trade(200, 20), trade(-50, -5)}

		quarterly := ComputePerformance(trades, 10_000, 63)
		annual := ComputePerformance(trades, 10_000, 252)

		assert.InDelta(t, annual.SharpeRatio*2, quarterly.SharpeRatio, 0.01)
	})
}

func TestTopTrades(t *testing.T) {
	trades := []eventmodels.SimulatedTrade{
		{Symbol: "A", TotalPnL: 10},
		{Symbol: "B", TotalPnL: 300},
		{Symbol: "C", TotalPnL: -40},
		{Symbol: "D", TotalPnL: 75},
	}

	best, worst := TopTrades(trades, 2)

	assert.Equal(t, eventmodels.StockSymbol("B"), best[0].Symbol)
	assert.Equal(t, eventmodels.StockSymbol("D"), best[1].Symbol)
	assert.Equal(t, eventmodels.StockSymbol("C"), worst[1].Symbol)
}
