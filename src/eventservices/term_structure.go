package eventservices

import (
	"context"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
	"github.com/jeffscottward/trade-calculator/src/utils"
)

const (
	// MaxExpirationsAnalyzed caps how many expirations feed the term
	// structure fit.
	MaxExpirationsAnalyzed = 5

	// BackMonthTargetDays is the expiry the slope is fitted against: the
	// first expiration at or beyond this many days out.
	BackMonthTargetDays = 45
)

// ATMIV returns the at-the-money implied volatility for one expiration: the
// average of the nearest-strike call and put IVs. Returns 0 when either side
// of the chain is empty.
func ATMIV(chain *eventmodels.ExpirationChain, underlyingPrice float64) float64 {
	if chain == nil || chain.IsEmpty() {
		return 0
	}

	call, ok := eventmodels.NearestStrike(chain.Calls, underlyingPrice)
	if !ok {
		return 0
	}

	put, ok := eventmodels.NearestStrike(chain.Puts, underlyingPrice)
	if !ok {
		return 0
	}

	return (call.ImpliedVolatility + put.ImpliedVolatility) / 2.0
}

// AnalyzeTermStructure fits the IV term structure over already-fetched
// chains. Only the first MaxExpirationsAnalyzed expirations with positive
// days-to-expiry are considered; expirations with an unusable chain are
// skipped. Fewer than two usable points yields an invalid (slope 0) result
// rather than an error.
//
// The slope runs from the nearest valid expiry to the first expiry at least
// BackMonthTargetDays out, falling back to the farthest available one.
func AnalyzeTermStructure(underlyingPrice float64, chains []*eventmodels.ExpirationChain, now time.Time) eventmodels.TermStructure {
	sorted := make([]*eventmodels.ExpirationChain, len(chains))
	copy(sorted, chains)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i] == nil || sorted[j] == nil {
			return sorted[j] == nil
		}

		return sorted[i].Expiration.Before(sorted[j].Expiration)
	})

	var points []eventmodels.TermStructurePoint
	analyzed := 0

	for _, chain := range sorted {
		if chain == nil {
			continue
		}

		dte := utils.DaysBetween(now, chain.Expiration)
		if dte <= 0 {
			continue
		}

		if analyzed >= MaxExpirationsAnalyzed {
			break
		}
		analyzed++

		iv := ATMIV(chain, underlyingPrice)
		if iv <= 0 {
			continue
		}

		points = append(points, eventmodels.TermStructurePoint{
			DaysToExpiry: dte,
			ATMIV:        iv,
		})
	}

	if len(points) < 2 {
		return eventmodels.TermStructure{Slope: 0, Points: nil, Valid: false}
	}

	farIdx := len(points) - 1
	for i, p := range points {
		if p.DaysToExpiry >= BackMonthTargetDays {
			farIdx = i
			break
		}
	}

	// no near leg to anchor the slope when every expiration is already at
	// or beyond the back-month target
	if points[farIdx].DaysToExpiry == points[0].DaysToExpiry {
		return eventmodels.TermStructure{Slope: 0, Points: nil, Valid: false}
	}

	slope := (points[farIdx].ATMIV - points[0].ATMIV) / float64(points[farIdx].DaysToExpiry-points[0].DaysToExpiry)

	return eventmodels.TermStructure{
		Slope:  slope,
		Points: points,
		Valid:  true,
	}
}

// FetchTermStructure pulls the chains for the given expirations and analyzes
// them. The caller supplies the expiration list so that one upstream
// expirations call serves both the chain count and the term structure. A
// failed chain fetch skips that expiration and moves on: a single bad
// expiration must not abort the rest of the analysis.
func FetchTermStructure(ctx context.Context, fetcher eventmodels.OptionChainFetcher, symbol eventmodels.StockSymbol, underlyingPrice float64, expirations []time.Time, now time.Time) eventmodels.TermStructure {
	sorted := make([]time.Time, len(expirations))
	copy(sorted, expirations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	var chains []*eventmodels.ExpirationChain
	fetched := 0

	for _, expiration := range sorted {
		if utils.DaysBetween(now, expiration) <= 0 {
			continue
		}

		if fetched >= MaxExpirationsAnalyzed {
			break
		}
		fetched++

		chain, err := fetcher.FetchExpirationChain(ctx, symbol, expiration)
		if err != nil {
			log.Warnf("FetchTermStructure: %s: skipping expiration %s: %v", symbol, expiration.Format("2006-01-02"), err)
			continue
		}

		chains = append(chains, chain)
	}

	return AnalyzeTermStructure(underlyingPrice, chains, now)
}
