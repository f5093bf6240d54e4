package eventmodels

import (
	"fmt"
	"time"
)

// BacktestCandidateDTO is one row of a historical-candidates CSV consumed by
// the backtester.
type BacktestCandidateDTO struct {
	Symbol             string  `csv:"symbol"`
	CompanyName        string  `csv:"company_name"`
	ReportDate         string  `csv:"report_date"`
	ReportTime         string  `csv:"report_time"`
	MarketCap          string  `csv:"market_cap"`
	ExpectedMove       float64 `csv:"expected_move"`
	AvgVolume30d       float64 `csv:"avg_volume_30d"`
	IVRVRatio          float64 `csv:"iv_rv_ratio"`
	TermStructureSlope float64 `csv:"term_structure_slope"`
	StockPrice         float64 `csv:"stock_price"`
}

// BacktestCandidate is the typed form of one historical earnings candidate.
type BacktestCandidate struct {
	Symbol             StockSymbol
	CompanyName        string
	ReportDate         time.Time
	ReportTime         string
	MarketCap          float64
	ExpectedMove       float64
	AvgVolume30d       float64
	IVRVRatio          float64
	TermStructureSlope float64
	StockPrice         float64
}

func (dto *BacktestCandidateDTO) ToBacktestCandidate() (BacktestCandidate, error) {
	if dto.Symbol == "" {
		return BacktestCandidate{}, fmt.Errorf("BacktestCandidateDTO: ToBacktestCandidate: symbol is empty")
	}

	reportDate, err := time.Parse("2006-01-02", dto.ReportDate)
	if err != nil {
		return BacktestCandidate{}, fmt.Errorf("BacktestCandidateDTO: ToBacktestCandidate: failed to parse report date %q: %w", dto.ReportDate, err)
	}

	return BacktestCandidate{
		Symbol:             NewStockSymbol(dto.Symbol),
		CompanyName:        dto.CompanyName,
		ReportDate:         reportDate,
		ReportTime:         dto.ReportTime,
		MarketCap:          ParseMarketCap(dto.MarketCap),
		ExpectedMove:       dto.ExpectedMove,
		AvgVolume30d:       dto.AvgVolume30d,
		IVRVRatio:          dto.IVRVRatio,
		TermStructureSlope: dto.TermStructureSlope,
		StockPrice:         dto.StockPrice,
	}, nil
}
