package eventservices

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	log "github.com/sirupsen/logrus"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

// PolygonPriceFetcher implements eventmodels.PriceHistoryFetcher on top of
// the Polygon aggregates API.
type PolygonPriceFetcher struct {
	Client *polygon.Client
}

func NewPolygonPriceFetcher(apiKey string) *PolygonPriceFetcher {
	return &PolygonPriceFetcher{
		Client: polygon.New(apiKey),
	}
}

func (f *PolygonPriceFetcher) FetchDailyCandles(ctx context.Context, symbol eventmodels.StockSymbol, from, to time.Time) ([]eventmodels.Candle, error) {
	log.Debugf("fetching polygon daily bars for symbol %s", symbol)

	params := models.ListAggsParams{
		Ticker:     symbol.String(),
		Multiplier: 1,
		Timespan:   models.Day,
		From:       models.Millis(from),
		To:         models.Millis(to),
	}.WithOrder(models.Asc).WithAdjusted(true)

	iter := f.Client.ListAggs(ctx, params)

	var candles []eventmodels.Candle
	for iter.Next() {
		item := iter.Item()
		candles = append(candles, eventmodels.Candle{
			Timestamp: time.Time(item.Timestamp),
			Open:      item.Open,
			High:      item.High,
			Low:       item.Low,
			Close:     item.Close,
			Volume:    item.Volume,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("PolygonPriceFetcher: FetchDailyCandles: %s: %w", symbol, err)
	}

	return candles, nil
}
