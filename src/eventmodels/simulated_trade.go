package eventmodels

import (
	"time"

	"github.com/google/uuid"
)

// SimulatedTrade is one synthetic calendar spread produced by the backtest
// pricing simulator. Immutable once computed; the performance aggregator
// consumes it as-is.
type SimulatedTrade struct {
	ID              uuid.UUID   `csv:"-"`
	Symbol          StockSymbol `csv:"symbol"`
	EntryDate       time.Time   `csv:"entry_date"`
	ExitDate        time.Time   `csv:"exit_date"`
	Strike          float64     `csv:"strike"`
	FrontExpiry     time.Time   `csv:"front_expiry"`
	BackExpiry      time.Time   `csv:"back_expiry"`
	FrontPremium    float64     `csv:"front_premium"`
	BackPremium     float64     `csv:"back_premium"`
	NetDebit        float64     `csv:"net_debit"`
	NumContracts    int         `csv:"num_contracts"`
	PositionSize    float64     `csv:"position_size"`
	EntryStockPrice float64     `csv:"entry_stock_price"`
	ExitStockPrice  float64     `csv:"exit_stock_price"`
	ExpectedMove    float64     `csv:"expected_move"`
	ActualMove      float64     `csv:"actual_move"`
	IVCrush         float64     `csv:"iv_crush"`
	FrontPnL        float64     `csv:"front_pnl"`
	BackPnL         float64     `csv:"back_pnl"`
	TotalPnL        float64     `csv:"total_pnl"`
	PnLPercent      float64     `csv:"pnl_percent"`
}
