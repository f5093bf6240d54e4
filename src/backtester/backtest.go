package backtester

import (
	log "github.com/sirupsen/logrus"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
	"github.com/jeffscottward/trade-calculator/src/screener"
)

// Backtest replays historical earnings candidates through the qualification
// gates and the spread simulator, tracking capital sequentially from trade
// to trade. Not safe for concurrent use; run one backtest per goroutine.
type Backtest struct {
	StartingCapital float64
	CurrentCapital  float64

	config     eventmodels.StrategyConfigYAML
	thresholds screener.Thresholds
	trades     []eventmodels.SimulatedTrade
}

func NewBacktest(config eventmodels.StrategyConfigYAML) *Backtest {
	return &Backtest{
		StartingCapital: config.StartingCapital,
		CurrentCapital:  config.StartingCapital,
		config:          config,
		thresholds:      screener.NewThresholds(config),
	}
}

// Run evaluates each candidate in order and simulates a calendar spread for
// every one that passes the gates. Entry is the day before the earnings
// report, exit the day after.
func (b *Backtest) Run(candidates []eventmodels.BacktestCandidate) []eventmodels.SimulatedTrade {
	for _, candidate := range candidates {
		metrics := eventmodels.QualificationMetrics{
			AvgVolume30d:       candidate.AvgVolume30d,
			IVRVRatio:          candidate.IVRVRatio,
			TermStructureSlope: candidate.TermStructureSlope,
			TermStructureValid: true,
			ExpirationCount:    2,
		}

		result := screener.Qualify(metrics, b.thresholds, screener.RecommendPolicy(b.config.RecommendPolicy))
		if !result.Qualified {
			log.Infof("%s: does not meet criteria: %s", candidate.Symbol, result.Reason)
			continue
		}

		expectedMove := candidate.ExpectedMove
		if expectedMove <= 0 {
			expectedMove = b.config.DefaultExpectedMove
		}

		trade := SimulateCalendarSpread(SimulateParams{
			Symbol:          candidate.Symbol,
			EntryDate:       candidate.ReportDate.AddDate(0, 0, -1),
			ExitDate:        candidate.ReportDate.AddDate(0, 0, 1),
			StockPrice:      candidate.StockPrice,
			ExpectedMovePct: expectedMove,
			Capital:         b.CurrentCapital,
			PositionSizePct: b.config.PositionSizePct,
		}, b.config.Simulator)

		b.CurrentCapital += trade.TotalPnL
		b.trades = append(b.trades, trade)

		log.Infof("%s: %+.2f (%+.1f%%), capital now %.2f", trade.Symbol, trade.TotalPnL, trade.PnLPercent, b.CurrentCapital)
	}

	return b.trades
}

func (b *Backtest) Trades() []eventmodels.SimulatedTrade {
	return b.trades
}

func (b *Backtest) Performance(lookbackDays int) PerformanceMetrics {
	return ComputePerformance(b.trades, b.StartingCapital, lookbackDays)
}
