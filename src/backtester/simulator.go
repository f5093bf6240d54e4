package backtester

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

// SimulateParams describes one calendar spread to price synthetically.
type SimulateParams struct {
	Symbol          eventmodels.StockSymbol
	EntryDate       time.Time
	ExitDate        time.Time
	StockPrice      float64
	ExpectedMovePct float64
	Capital         float64
	PositionSizePct float64
}

// SimulateCalendarSpread prices a synthetic at-the-money calendar spread
// around an earnings event and simulates its outcome.
//
// The premium heuristics are deliberately crude: front month at a fixed
// fraction of the expected move, back month at a fixed ratio of the front,
// a flat post-earnings IV crush. They come from the simulator config, not
// from market data, and must not be mistaken for calibrated pricing.
//
// The price-move draw is seeded from the entry date, so re-running the same
// backtest reproduces the same trades.
func SimulateCalendarSpread(params SimulateParams, config eventmodels.SimulatorConfigYAML) eventmodels.SimulatedTrade {
	strike := math.Round(params.StockPrice/config.StrikeIncrement) * config.StrikeIncrement
	entry := params.EntryDate

	// a non-positive expected move prices both legs at zero, so there is
	// nothing to trade; return a flat record instead of dividing by zero
	if params.ExpectedMovePct <= 0 {
		return eventmodels.SimulatedTrade{
			ID:              uuid.New(),
			Symbol:          params.Symbol,
			EntryDate:       entry,
			ExitDate:        params.ExitDate,
			Strike:          strike,
			FrontExpiry:     entry.AddDate(0, 0, 3),
			BackExpiry:      entry.AddDate(0, 0, 33),
			EntryStockPrice: round2(params.StockPrice),
			ExitStockPrice:  round2(params.StockPrice),
		}
	}

	frontPremium := params.StockPrice * (params.ExpectedMovePct / 100) * config.FrontPremiumFactor
	backPremium := frontPremium * config.BackFrontRatio
	netDebit := backPremium - frontPremium

	positionValue := params.Capital * params.PositionSizePct
	numContracts := int(positionValue / (math.Abs(netDebit) * 100))
	if numContracts < 1 {
		numContracts = 1
	}

	actualPositionSize := math.Abs(netDebit) * float64(numContracts) * 100

	rng := rand.New(rand.NewSource(params.EntryDate.Unix()))
	actualMovePct := rng.NormFloat64() * (params.ExpectedMovePct / 2)
	if actualMovePct > params.ExpectedMovePct {
		actualMovePct = params.ExpectedMovePct
	} else if actualMovePct < -params.ExpectedMovePct {
		actualMovePct = -params.ExpectedMovePct
	}

	exitStockPrice := params.StockPrice * (1 + actualMovePct/100)

	// front month expires worthless when the move stays inside expectations
	frontExitValue := 0.0
	if math.Abs(actualMovePct) >= params.ExpectedMovePct {
		frontExitValue = frontPremium * config.FrontBreachRetention
	}

	backExitValue := backPremium * (1 - config.IVCrushFactor) * config.BackRetentionFactor

	frontPnL := (frontPremium - frontExitValue) * float64(numContracts) * 100
	backPnL := (backExitValue - backPremium) * float64(numContracts) * 100
	totalPnL := frontPnL + backPnL
	pnlPercent := totalPnL / actualPositionSize * 100

	return eventmodels.SimulatedTrade{
		ID:              uuid.New(),
		Symbol:          params.Symbol,
		EntryDate:       entry,
		ExitDate:        params.ExitDate,
		Strike:          strike,
		FrontExpiry:     entry.AddDate(0, 0, 3),
		BackExpiry:      entry.AddDate(0, 0, 33),
		FrontPremium:    round2(frontPremium),
		BackPremium:     round2(backPremium),
		NetDebit:        round2(netDebit),
		NumContracts:    numContracts,
		PositionSize:    round2(actualPositionSize),
		EntryStockPrice: round2(params.StockPrice),
		ExitStockPrice:  round2(exitStockPrice),
		ExpectedMove:    round2(params.ExpectedMovePct),
		ActualMove:      round2(actualMovePct),
		IVCrush:         round2(config.IVCrushFactor * 100),
		FrontPnL:        round2(frontPnL),
		BackPnL:         round2(backPnL),
		TotalPnL:        round2(totalPnL),
		PnLPercent:      round2(pnlPercent),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
