package screener

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

func defaultThresholds() Thresholds {
	return NewThresholds(eventmodels.NewDefaultStrategyConfig())
}

func goodMetrics() eventmodels.QualificationMetrics {
	return eventmodels.QualificationMetrics{
		AvgVolume30d:       25_000_000,
		YangZhangVol:       0.35,
		IVRVRatio:          1.8,
		TermStructureSlope: -0.35,
		TermStructureValid: true,
		ExpirationCount:    5,
	}
}

func TestQualify(t *testing.T) {
	t.Run("all gates pass", func(t *testing.T) {
		result := Qualify(goodMetrics(), defaultThresholds(), PolicyStrict)
		assert.True(t, result.Qualified)
		assert.True(t, result.Evaluated)
		assert.Empty(t, result.Reason)
		assert.Equal(t, eventmodels.Recommended, result.Recommendation)
	})

	t.Run("volume gate fails first", func(t *testing.T) {
		metrics := goodMetrics()
		metrics.AvgVolume30d = 500_000
		metrics.ExpirationCount = 0 // would also fail, but volume is checked first

		result := Qualify(metrics, defaultThresholds(), PolicyStrict)
		assert.False(t, result.Qualified)
		assert.True(t, result.Evaluated)
		assert.Contains(t, result.Reason, "volume too low")
	})

	t.Run("too few expirations is not an evaluation", func(t *testing.T) {
		metrics := goodMetrics()
		metrics.ExpirationCount = 1

		result := Qualify(metrics, defaultThresholds(), PolicyStrict)
		assert.False(t, result.Qualified)
		assert.False(t, result.Evaluated)
		assert.Contains(t, result.Reason, "expirations")
	})

	t.Run("invalid term structure is not an evaluation", func(t *testing.T) {
		metrics := goodMetrics()
		metrics.TermStructureValid = false
		metrics.TermStructureSlope = 0

		result := Qualify(metrics, defaultThresholds(), PolicyStrict)
		assert.False(t, result.Qualified)
		assert.False(t, result.Evaluated)
	})

	t.Run("flat term structure fails the slope gate", func(t *testing.T) {
		metrics := goodMetrics()
		metrics.TermStructureSlope = -0.05

		result := Qualify(metrics, defaultThresholds(), PolicyStrict)
		assert.False(t, result.Qualified)
		assert.True(t, result.Evaluated)
		assert.Contains(t, result.Reason, "term structure")
	})

	t.Run("low IV RV fails last", func(t *testing.T) {
		metrics := goodMetrics()
		metrics.IVRVRatio = 1.1

		result := Qualify(metrics, defaultThresholds(), PolicyStrict)
		assert.False(t, result.Qualified)
		assert.True(t, result.Evaluated)
		assert.Contains(t, result.Reason, "IV/RV")
	})
}

func TestRecommend(t *testing.T) {
	thresholds := defaultThresholds()

	t.Run("all three criteria give RECOMMENDED", func(t *testing.T) {
		assert.Equal(t, eventmodels.Recommended, recommend(goodMetrics(), thresholds, PolicyStrict))
		assert.Equal(t, eventmodels.Recommended, recommend(goodMetrics(), thresholds, PolicyLenient))
	})

	t.Run("strict policy needs slope plus exactly one other", func(t *testing.T) {
		metrics := goodMetrics()
		metrics.IVRVRatio = 1.0 // fails IV/RV criterion

		assert.Equal(t, eventmodels.Consider, recommend(metrics, thresholds, PolicyStrict))

		metrics.AvgVolume30d = 500_000 // now only slope passes
		assert.Equal(t, eventmodels.Avoid, recommend(metrics, thresholds, PolicyStrict))
	})

	t.Run("slope failure is always AVOID under strict", func(t *testing.T) {
		metrics := goodMetrics()
		metrics.TermStructureSlope = 0.2

		assert.Equal(t, eventmodels.Avoid, recommend(metrics, thresholds, PolicyStrict))
	})

	t.Run("lenient policy accepts slope plus either criterion", func(t *testing.T) {
		metrics := goodMetrics()
		metrics.IVRVRatio = 1.0
		metrics.AvgVolume30d = 500_000

		// slope alone is not enough even for lenient
		assert.Equal(t, eventmodels.Avoid, recommend(metrics, thresholds, PolicyLenient))

		metrics.IVRVRatio = 1.8
		assert.Equal(t, eventmodels.Consider, recommend(metrics, thresholds, PolicyLenient))
	})
}

func TestRank(t *testing.T) {
	build := func(symbol string, ratio, slope, volume, cap float64) Candidate {
		return Candidate{
			Event: eventmodels.EarningsEvent{Symbol: eventmodels.NewStockSymbol(symbol)},
			Score: CalculatePriorityScore(ratio, slope, volume, cap, 0),
		}
	}

	a := build("AAA", 2.5, -0.4, 50_000_000, 100_000_000_000)
	b := build("BBB", 1.3, -0.2, 5_000_000, 10_000_000_000)
	c := build("CCC", 1.8, -0.3, 20_000_000, 500_000_000_000)

	ranked := Rank([]Candidate{b, c, a})

	assert.Equal(t, eventmodels.StockSymbol("AAA"), ranked[0].Event.Symbol)
	assert.Equal(t, eventmodels.StockSymbol("CCC"), ranked[1].Event.Symbol)
	assert.Equal(t, eventmodels.StockSymbol("BBB"), ranked[2].Event.Symbol)
}
