package eventservices

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

// TradeRepository persists scan results and backtest trades.
type TradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

func (r *TradeRepository) SaveEarningsEvent(record *eventmodels.EarningsEventRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("TradeRepository: SaveEarningsEvent: %s: %w", record.Symbol, err)
	}

	return nil
}

// FetchRecommendations returns the actionable events from a given scan day,
// best first.
func (r *TradeRepository) FetchRecommendations(scanDate time.Time) ([]eventmodels.EarningsEventRecord, error) {
	dayStart := time.Date(scanDate.Year(), scanDate.Month(), scanDate.Day(), 0, 0, 0, 0, scanDate.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var records []eventmodels.EarningsEventRecord
	err := r.db.
		Where("scan_date >= ? AND scan_date < ?", dayStart, dayEnd).
		Where("recommendation IN ?", []string{string(eventmodels.Recommended), string(eventmodels.Consider)}).
		Order("priority_score DESC, symbol ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("TradeRepository: FetchRecommendations: %w", err)
	}

	return records, nil
}

func (r *TradeRepository) SaveBacktestTrades(trades []eventmodels.SimulatedTrade) error {
	for _, trade := range trades {
		record := eventmodels.NewBacktestTradeRecord(trade)
		if err := r.db.Create(record).Error; err != nil {
			return fmt.Errorf("TradeRepository: SaveBacktestTrades: %s: %w", trade.Symbol, err)
		}
	}

	return nil
}

func (r *TradeRepository) FetchBacktestTrades(from, to time.Time) ([]eventmodels.BacktestTradeRecord, error) {
	var records []eventmodels.BacktestTradeRecord
	err := r.db.
		Where("entry_date >= ? AND entry_date < ?", from, to).
		Order("entry_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("TradeRepository: FetchBacktestTrades: %w", err)
	}

	return records, nil
}
