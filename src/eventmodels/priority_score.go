package eventmodels

// PriorityScoreBreakdown is the continuous 0-100 ranking score plus its four
// weighted components, each individually clamped to [0, 100] and rounded to
// two decimals. It is a pure function of QualificationMetrics and market cap.
type PriorityScoreBreakdown struct {
	PriorityScore  float64 `json:"priority_score" csv:"priority_score"`
	IVRVScore      float64 `json:"iv_rv_score" csv:"iv_rv_score"`
	TermSlopeScore float64 `json:"term_slope_score" csv:"term_slope_score"`
	LiquidityScore float64 `json:"liquidity_score" csv:"liquidity_score"`
	MarketCapScore float64 `json:"market_cap_score" csv:"market_cap_score"`
}
