package eventmodels

type Recommendation string

const (
	Recommended Recommendation = "RECOMMENDED"
	Consider    Recommendation = "CONSIDER"
	Avoid       Recommendation = "AVOID"
)

// QualificationMetrics is the per-underlying metrics snapshot computed once
// per evaluation cycle. The qualification gates and the priority scorer must
// both consume the same snapshot so that rank and gate never disagree.
type QualificationMetrics struct {
	AvgVolume30d       float64
	YangZhangVol       float64
	IVRVRatio          float64
	TermStructureSlope float64
	TermStructureValid bool
	ExpirationCount    int
}

// QualificationResult is the outcome of running an underlying through the
// qualification gates.
//
// Evaluated distinguishes "analysis ran to completion" from "inputs were too
// thin to evaluate"; when it is false the Qualified=false value carries no
// information about the trade itself.
type QualificationResult struct {
	Qualified      bool
	Evaluated      bool
	Reason         string
	Recommendation Recommendation
}
