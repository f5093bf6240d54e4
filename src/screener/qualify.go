package screener

import (
	"fmt"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

// Thresholds are the numeric qualification gates. TermStructure is an upper
// bound on the slope (the slope must be below it, i.e. sufficiently
// negative); Volume and IVRV are lower bounds.
type Thresholds struct {
	Volume        float64
	TermStructure float64
	IVRV          float64
}

func NewThresholds(config eventmodels.StrategyConfigYAML) Thresholds {
	return Thresholds{
		Volume:        config.VolumeThreshold,
		TermStructure: config.TermStructureThreshold,
		IVRV:          config.IVRVThreshold,
	}
}

// RecommendPolicy selects how the CONSIDER tier is granted when not all
// three criteria pass. The source system historically carried both rules;
// strict is the default.
type RecommendPolicy string

const (
	// PolicyStrict grants CONSIDER only when exactly two of the three
	// criteria pass and the term-structure criterion is one of them.
	PolicyStrict RecommendPolicy = "strict"

	// PolicyLenient grants CONSIDER when the term-structure criterion passes
	// together with either the volume or the IV/RV criterion.
	PolicyLenient RecommendPolicy = "lenient"
)

func (p RecommendPolicy) Validate() error {
	if p != PolicyStrict && p != PolicyLenient {
		return fmt.Errorf("RecommendPolicy: Validate: unknown policy: %s", p)
	}

	return nil
}

// Qualify runs one underlying's metrics snapshot through the gate sequence.
// Gates are evaluated in order and the first failure short-circuits with a
// human-readable reason. The returned result always has Evaluated set except
// when the inputs were too thin to analyze at all.
func Qualify(metrics eventmodels.QualificationMetrics, thresholds Thresholds, policy RecommendPolicy) eventmodels.QualificationResult {
	if metrics.AvgVolume30d < thresholds.Volume {
		return eventmodels.QualificationResult{
			Qualified: false,
			Evaluated: true,
			Reason:    fmt.Sprintf("volume too low: %.0f", metrics.AvgVolume30d),
		}
	}

	if metrics.ExpirationCount < 2 {
		return eventmodels.QualificationResult{
			Qualified: false,
			Evaluated: false,
			Reason:    "insufficient option expirations",
		}
	}

	if !metrics.TermStructureValid {
		return eventmodels.QualificationResult{
			Qualified: false,
			Evaluated: false,
			Reason:    "term structure could not be evaluated",
		}
	}

	if metrics.TermStructureSlope >= thresholds.TermStructure {
		return eventmodels.QualificationResult{
			Qualified: false,
			Evaluated: true,
			Reason:    fmt.Sprintf("term structure not negative enough: %.3f", metrics.TermStructureSlope),
		}
	}

	if metrics.IVRVRatio < thresholds.IVRV {
		return eventmodels.QualificationResult{
			Qualified: false,
			Evaluated: true,
			Reason:    fmt.Sprintf("IV/RV ratio too low: %.2f", metrics.IVRVRatio),
		}
	}

	return eventmodels.QualificationResult{
		Qualified:      true,
		Evaluated:      true,
		Recommendation: recommend(metrics, thresholds, policy),
	}
}

func recommend(metrics eventmodels.QualificationMetrics, thresholds Thresholds, policy RecommendPolicy) eventmodels.Recommendation {
	slopePass := metrics.TermStructureSlope < thresholds.TermStructure
	volumePass := metrics.AvgVolume30d > thresholds.Volume
	ivRvPass := metrics.IVRVRatio > thresholds.IVRV

	if slopePass && volumePass && ivRvPass {
		return eventmodels.Recommended
	}

	switch policy {
	case PolicyLenient:
		if slopePass && (volumePass || ivRvPass) {
			return eventmodels.Consider
		}
	default:
		criteriaMet := 0
		for _, pass := range []bool{slopePass, volumePass, ivRvPass} {
			if pass {
				criteriaMet++
			}
		}

		if criteriaMet == 2 && slopePass {
			return eventmodels.Consider
		}
	}

	return eventmodels.Avoid
}
