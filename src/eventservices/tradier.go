package eventservices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

// TradierChainFetcher implements eventmodels.OptionChainFetcher against the
// Tradier market-data API.
type TradierChainFetcher struct {
	ExpirationsURL string
	ChainsURL      string
	BearerToken    string
	Client         *http.Client
}

func NewTradierChainFetcher(expirationsURL, chainsURL, bearerToken string) *TradierChainFetcher {
	return &TradierChainFetcher{
		ExpirationsURL: expirationsURL,
		ChainsURL:      chainsURL,
		BearerToken:    bearerToken,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (f *TradierChainFetcher) FetchExpirations(ctx context.Context, symbol eventmodels.StockSymbol) ([]time.Time, error) {
	var dto eventmodels.TradierExpirationsDTO

	query := map[string]string{
		"symbol":          symbol.String(),
		"includeAllRoots": "true",
	}

	if err := f.get(ctx, f.ExpirationsURL, query, &dto); err != nil {
		return nil, fmt.Errorf("FetchExpirations: %s: %w", symbol, err)
	}

	dates, err := dto.ToExpirationDates()
	if err != nil {
		return nil, fmt.Errorf("FetchExpirations: %s: %w", symbol, err)
	}

	return dates, nil
}

func (f *TradierChainFetcher) FetchExpirationChain(ctx context.Context, symbol eventmodels.StockSymbol, expiration time.Time) (*eventmodels.ExpirationChain, error) {
	var dto eventmodels.TradierOptionChainDTO

	query := map[string]string{
		"symbol":     symbol.String(),
		"expiration": expiration.Format("2006-01-02"),
		"greeks":     "true",
	}

	if err := f.get(ctx, f.ChainsURL, query, &dto); err != nil {
		return nil, fmt.Errorf("FetchExpirationChain: %s %s: %w", symbol, expiration.Format("2006-01-02"), err)
	}

	return dto.ToExpirationChain(symbol, expiration), nil
}

func (f *TradierChainFetcher) get(ctx context.Context, url string, query map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	for key, value := range query {
		q.Add(key, value)
	}

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", f.BearerToken))

	res, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch %s, http code %v", url, res.Status)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode json: %w", err)
	}

	return nil
}
