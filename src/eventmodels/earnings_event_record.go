package eventmodels

import (
	"time"

	"gorm.io/gorm"
)

// EarningsEventRecord is the persisted form of a qualified scan result.
type EarningsEventRecord struct {
	gorm.Model
	Symbol             string    `gorm:"column:symbol;type:varchar(10);not null;index:idx_earnings_symbol"`
	CompanyName        string    `gorm:"column:company_name;type:text"`
	EarningsDate       time.Time `gorm:"column:earnings_date;type:timestamptz;not null;index:idx_earnings_date"`
	ReportTime         string    `gorm:"column:report_time;type:varchar(32)"`
	ScanDate           time.Time `gorm:"column:scan_date;type:timestamptz;not null"`
	AvgVolume30d       float64   `gorm:"column:avg_volume_30d;type:numeric"`
	YangZhangVol       float64   `gorm:"column:yang_zhang_vol;type:numeric"`
	IVRVRatio          float64   `gorm:"column:iv_rv_ratio;type:numeric"`
	TermStructureSlope float64   `gorm:"column:term_structure_slope;type:numeric"`
	MarketCap          float64   `gorm:"column:market_cap;type:numeric"`
	Recommendation     string    `gorm:"column:recommendation;type:varchar(16);not null"`
	PriorityScore      float64   `gorm:"column:priority_score;type:numeric"`
	IVRVScore          float64   `gorm:"column:iv_rv_score;type:numeric"`
	TermSlopeScore     float64   `gorm:"column:term_slope_score;type:numeric"`
	LiquidityScore     float64   `gorm:"column:liquidity_score;type:numeric"`
	MarketCapScore     float64   `gorm:"column:market_cap_score;type:numeric"`
}

func (EarningsEventRecord) TableName() string {
	return "earnings_events"
}
