package backtester

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

type PerformanceMetrics struct {
	TotalTrades     int
	StartingCapital float64
	EndingCapital   float64
	TotalPnL        float64
	TotalReturnPct  float64
	WinRate         float64
	WinningTrades   int
	LosingTrades    int
	AvgWin          float64
	AvgLoss         float64
	ProfitFactor    float64
	SharpeRatio     float64
	MaxDrawdownPct  float64
}

// ComputePerformance aggregates simulated trades into summary statistics.
// The Sharpe ratio is the simplified per-trade version, scaled by the
// lookback period rather than a true daily return series.
func ComputePerformance(trades []eventmodels.SimulatedTrade, startingCapital float64, lookbackDays int) PerformanceMetrics {
	metrics := PerformanceMetrics{
		TotalTrades:     len(trades),
		StartingCapital: round2(startingCapital),
		EndingCapital:   round2(startingCapital),
	}

	if len(trades) == 0 {
		return metrics
	}

	var winners, losers []float64
	var returns []float64
	totalPnL := 0.0

	for _, trade := range trades {
		totalPnL += trade.TotalPnL
		returns = append(returns, trade.PnLPercent)

		if trade.TotalPnL > 0 {
			winners = append(winners, trade.TotalPnL)
		} else {
			losers = append(losers, trade.TotalPnL)
		}
	}

	endingCapital := startingCapital + totalPnL

	metrics.EndingCapital = round2(endingCapital)
	metrics.TotalPnL = round2(totalPnL)
	metrics.TotalReturnPct = round2((endingCapital - startingCapital) / startingCapital * 100)
	metrics.WinningTrades = len(winners)
	metrics.LosingTrades = len(losers)
	metrics.WinRate = round2(float64(len(winners)) / float64(len(trades)) * 100)

	if len(winners) > 0 {
		avgWin, _ := stats.Mean(winners)
		metrics.AvgWin = round2(avgWin)
	}

	if len(losers) > 0 {
		avgLoss, _ := stats.Mean(losers)
		metrics.AvgLoss = round2(avgLoss)
	}

	totalWins, _ := stats.Sum(winners)
	totalLosses, _ := stats.Sum(losers)
	totalLosses = math.Abs(totalLosses)

	if totalLosses > 0 {
		metrics.ProfitFactor = round2(totalWins / totalLosses)
	} else if totalWins > 0 {
		metrics.ProfitFactor = math.Inf(1)
	}

	if len(returns) > 1 && lookbackDays > 0 {
		mean, _ := stats.Mean(returns)
		sd, _ := stats.StandardDeviation(returns)
		if sd > 0 {
			metrics.SharpeRatio = round2(mean / sd * math.Sqrt(252.0/float64(lookbackDays)))
		}
	}

	metrics.MaxDrawdownPct = round2(maxDrawdown(trades, startingCapital))

	return metrics
}

func maxDrawdown(trades []eventmodels.SimulatedTrade, startingCapital float64) float64 {
	peak := startingCapital
	capital := startingCapital
	drawdown := 0.0

	for _, trade := range trades {
		capital += trade.TotalPnL

		if capital > peak {
			peak = capital
		}

		dd := (peak - capital) / peak * 100
		if dd > drawdown {
			drawdown = dd
		}
	}

	return drawdown
}

// TopTrades returns the n best and n worst trades by total P&L.
func TopTrades(trades []eventmodels.SimulatedTrade, n int) (best, worst []eventmodels.SimulatedTrade) {
	sorted := make([]eventmodels.SimulatedTrade, len(trades))
	copy(sorted, trades)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalPnL > sorted[j].TotalPnL
	})

	if n > len(sorted) {
		n = len(sorted)
	}

	return sorted[:n], sorted[len(sorted)-n:]
}
