package eventservices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

const nasdaqEarningsURL = "https://api.nasdaq.com/api/calendar/earnings"

// NasdaqCalendarClient fetches the earnings calendar from NASDAQ's public
// endpoint. No API key is required, but the endpoint rejects requests that
// don't look like a browser.
type NasdaqCalendarClient struct {
	BaseURL string
	Client  *http.Client
}

func NewNasdaqCalendarClient() *NasdaqCalendarClient {
	return &NasdaqCalendarClient{
		BaseURL: nasdaqEarningsURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchEarningsCalendar returns the earnings events scheduled for
// reportDate, with foreign ordinaries and OTC listings filtered out.
func (c *NasdaqCalendarClient) FetchEarningsCalendar(ctx context.Context, reportDate time.Time) ([]eventmodels.EarningsEvent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("FetchEarningsCalendar: failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("date", reportDate.Format("2006-01-02"))
	req.URL.RawQuery = q.Encode()

	req.Header.Add("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Add("Accept", "application/json, text/plain, */*")
	req.Header.Add("Accept-Language", "en-US,en;q=0.9")
	req.Header.Add("Origin", "https://www.nasdaq.com")
	req.Header.Add("Referer", "https://www.nasdaq.com/")

	res, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FetchEarningsCalendar: failed to fetch earnings calendar: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchEarningsCalendar: failed to fetch earnings calendar, http code %v", res.Status)
	}

	var dto eventmodels.NasdaqEarningsResponseDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchEarningsCalendar: failed to decode json: %w", err)
	}

	var events []eventmodels.EarningsEvent
	for _, row := range dto.Data.Rows {
		symbol := eventmodels.NewStockSymbol(row.Symbol)
		if symbol == "" || symbol.IsForeignOrOTC() {
			continue
		}

		event, err := row.ToEarningsEvent(reportDate)
		if err != nil {
			log.Warnf("FetchEarningsCalendar: skipping row: %v", err)
			continue
		}

		events = append(events, event)
	}

	log.Infof("Found %d earnings events for %s from NASDAQ", len(events), reportDate.Format("2006-01-02"))

	return events, nil
}
