package screener

import (
	"sort"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
)

// Candidate bundles everything known about one underlying after an
// evaluation cycle: the calendar event, the metrics snapshot, the gate
// outcome and the ranking score. Gate and score are always derived from the
// same snapshot.
type Candidate struct {
	Event         eventmodels.EarningsEvent
	Metrics       eventmodels.QualificationMetrics
	Qualification eventmodels.QualificationResult
	Score         eventmodels.PriorityScoreBreakdown
}

// Rank orders candidates by priority score descending. Ties break on symbol
// so the ordering is deterministic. The input slice is not modified.
func Rank(candidates []Candidate) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score.PriorityScore != ranked[j].Score.PriorityScore {
			return ranked[i].Score.PriorityScore > ranked[j].Score.PriorityScore
		}

		return ranked[i].Event.Symbol.String() < ranked[j].Event.Symbol.String()
	})

	return ranked
}

// Tradeable filters to candidates that passed every gate.
func Tradeable(candidates []Candidate) []Candidate {
	var out []Candidate
	for _, c := range candidates {
		if c.Qualification.Qualified {
			out = append(out, c)
		}
	}

	return out
}
