package eventmodels

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BacktestTradeRecord struct {
	gorm.Model
	TradeID         uuid.UUID `gorm:"column:trade_id;type:uuid;not null;index:idx_backtest_trade_id"`
	Symbol          string    `gorm:"column:symbol;type:varchar(10);not null"`
	EntryDate       time.Time `gorm:"column:entry_date;type:timestamptz;not null"`
	ExitDate        time.Time `gorm:"column:exit_date;type:timestamptz;not null"`
	Strike          float64   `gorm:"column:strike;type:numeric"`
	FrontExpiry     time.Time `gorm:"column:front_expiry;type:timestamptz"`
	BackExpiry      time.Time `gorm:"column:back_expiry;type:timestamptz"`
	FrontPremium    float64   `gorm:"column:front_premium;type:numeric"`
	BackPremium     float64   `gorm:"column:back_premium;type:numeric"`
	NetDebit        float64   `gorm:"column:net_debit;type:numeric"`
	NumContracts    int       `gorm:"column:num_contracts"`
	PositionSize    float64   `gorm:"column:position_size;type:numeric"`
	EntryStockPrice float64   `gorm:"column:entry_stock_price;type:numeric"`
	ExitStockPrice  float64   `gorm:"column:exit_stock_price;type:numeric"`
	ExpectedMove    float64   `gorm:"column:expected_move;type:numeric"`
	ActualMove      float64   `gorm:"column:actual_move;type:numeric"`
	IVCrush         float64   `gorm:"column:iv_crush;type:numeric"`
	TotalPnL        float64   `gorm:"column:total_pnl;type:numeric"`
	PnLPercent      float64   `gorm:"column:pnl_percent;type:numeric"`
}

func (BacktestTradeRecord) TableName() string {
	return "backtest_trades"
}

func NewBacktestTradeRecord(trade SimulatedTrade) *BacktestTradeRecord {
	return &BacktestTradeRecord{
		TradeID:         trade.ID,
		Symbol:          trade.Symbol.String(),
		EntryDate:       trade.EntryDate,
		ExitDate:        trade.ExitDate,
		Strike:          trade.Strike,
		FrontExpiry:     trade.FrontExpiry,
		BackExpiry:      trade.BackExpiry,
		FrontPremium:    trade.FrontPremium,
		BackPremium:     trade.BackPremium,
		NetDebit:        trade.NetDebit,
		NumContracts:    trade.NumContracts,
		PositionSize:    trade.PositionSize,
		EntryStockPrice: trade.EntryStockPrice,
		ExitStockPrice:  trade.ExitStockPrice,
		ExpectedMove:    trade.ExpectedMove,
		ActualMove:      trade.ActualMove,
		IVCrush:         trade.IVCrush,
		TotalPnL:        trade.TotalPnL,
		PnLPercent:      trade.PnLPercent,
	}
}
