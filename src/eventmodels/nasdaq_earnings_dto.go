package eventmodels

import (
	"fmt"
	"time"
)

// NasdaqEarningsResponseDTO mirrors the payload returned by
// https://api.nasdaq.com/api/calendar/earnings.
type NasdaqEarningsResponseDTO struct {
	Data struct {
		Rows []NasdaqEarningsRowDTO `json:"rows"`
	} `json:"data"`
	Status struct {
		RCode int `json:"rCode"`
	} `json:"status"`
}

type NasdaqEarningsRowDTO struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Time        string `json:"time"`
	MarketCap   string `json:"marketCap"`
	EPSForecast string `json:"epsForecast"`
}

func (dto *NasdaqEarningsRowDTO) ToEarningsEvent(reportDate time.Time) (EarningsEvent, error) {
	if dto.Symbol == "" {
		return EarningsEvent{}, fmt.Errorf("NasdaqEarningsRowDTO: ToEarningsEvent: symbol is empty")
	}

	reportTime := dto.Time
	if reportTime == "" {
		reportTime = "TBD"
	}

	return EarningsEvent{
		Symbol:      NewStockSymbol(dto.Symbol),
		CompanyName: dto.Name,
		ReportDate:  reportDate,
		ReportTime:  reportTime,
		MarketCap:   ParseMarketCap(dto.MarketCap),
		EPSForecast: dto.EPSForecast,
	}, nil
}
