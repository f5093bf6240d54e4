package eventmodels

// TermStructurePoint is one (days to expiry, ATM implied volatility) pair.
// Points are ordered by DaysToExpiry ascending.
type TermStructurePoint struct {
	DaysToExpiry int
	ATMIV        float64
}

// TermStructure is the fitted IV term structure for one underlying. A
// negative slope means backwardation: front-month IV richer than back-month,
// the favorable setup for calendar spreads.
//
// Valid is false when fewer than two usable points were found; callers must
// treat that as "could not evaluate", not as a flat term structure.
type TermStructure struct {
	Slope  float64
	Points []TermStructurePoint
	Valid  bool
}

func (ts TermStructure) IVs() []float64 {
	out := make([]float64, 0, len(ts.Points))
	for _, p := range ts.Points {
		out = append(out, p.ATMIV)
	}

	return out
}

func (ts TermStructure) Days() []int {
	out := make([]int, 0, len(ts.Points))
	for _, p := range ts.Points {
		out = append(out, p.DaysToExpiry)
	}

	return out
}
