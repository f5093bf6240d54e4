package screener

import (
	"math"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

// Component weights, must sum to 1.0.
const (
	IVRVWeight      = 0.40
	TermSlopeWeight = 0.30
	LiquidityWeight = 0.20
	MarketCapWeight = 0.10
)

// IVRVScore maps the IV/RV ratio to 0-100. A ratio at or below 1.0 is
// fairly priced volatility and scores 0; 1.5 -> 25, 2.0 -> 50, 3.0+ -> 100.
func IVRVScore(ivRvRatio float64) float64 {
	if ivRvRatio <= 1.0 {
		return 0.0
	}

	return clamp((ivRvRatio - 1.0) * 50)
}

// TermSlopeScore maps the term-structure slope to 0-100. Only negative
// (backwardated) slopes score: -0.1 -> 20, -0.3 -> 60, -0.5 and beyond -> 100.
func TermSlopeScore(termSlope float64) float64 {
	if termSlope >= 0 {
		return 0.0
	}

	return clamp(math.Abs(termSlope) * 200)
}

// LiquidityScore maps 30-day average share volume to 0-100 on a log scale:
// below 1M -> 0, 10M -> 50, 100M+ -> 100. An options-volume bonus of up to
// 10 points applies above 10k contracts, before the outer clamp.
func LiquidityScore(avgVolume30d float64, optionsVolume float64) float64 {
	if avgVolume30d < 1_000_000 {
		return 0.0
	}

	score := (math.Log10(avgVolume30d) - 6) * 50

	if optionsVolume > 10_000 {
		bonus := math.Log10(optionsVolume / 1000)
		if bonus > 10 {
			bonus = 10
		}
		score += bonus
	}

	return clamp(score)
}

// MarketCapScore maps market capitalization to 0-100 on a log scale: below
// $1B -> 0, $10B -> 33.3, $100B -> 66.7, $1T+ -> 100.
func MarketCapScore(marketCap float64) float64 {
	if marketCap < 1_000_000_000 {
		return 0.0
	}

	return clamp((math.Log10(marketCap) - 9) * 33.33)
}

// CalculatePriorityScore combines the four component scores into the overall
// 0-100 priority score using the fixed weights. Pure and deterministic:
// identical inputs always produce an identical breakdown.
func CalculatePriorityScore(ivRvRatio, termSlope, avgVolume30d, marketCap, optionsVolume float64) eventmodels.PriorityScoreBreakdown {
	ivRvScore := IVRVScore(ivRvRatio)
	termSlopeScore := TermSlopeScore(termSlope)
	liquidityScore := LiquidityScore(avgVolume30d, optionsVolume)
	marketCapScore := MarketCapScore(marketCap)

	priorityScore := ivRvScore*IVRVWeight +
		termSlopeScore*TermSlopeWeight +
		liquidityScore*LiquidityWeight +
		marketCapScore*MarketCapWeight

	return eventmodels.PriorityScoreBreakdown{
		PriorityScore:  round2(priorityScore),
		IVRVScore:      round2(ivRvScore),
		TermSlopeScore: round2(termSlopeScore),
		LiquidityScore: round2(liquidityScore),
		MarketCapScore: round2(marketCapScore),
	}
}

// ScoreMetrics scores a metrics snapshot directly, so the scorer and the
// qualification gates always consume the same numbers.
func ScoreMetrics(metrics eventmodels.QualificationMetrics, marketCap float64, optionsVolume float64) eventmodels.PriorityScoreBreakdown {
	return CalculatePriorityScore(metrics.IVRVRatio, metrics.TermStructureSlope, metrics.AvgVolume30d, marketCap, optionsVolume)
}

func clamp(score float64) float64 {
	return math.Min(100.0, math.Max(0.0, score))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
