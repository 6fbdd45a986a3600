package calculator

import (
	"stockscout/internal/domain"

	"github.com/shopspring/decimal"
)

const DefaultTopN = 5

// Allocate splits budget across the top-N ranked candidates proportional
// to their unrounded scores. The input must already be sorted descending
// by score.
//
// Candidates with non-positive scores receive 0 and do not dilute the
// split. When no top-N score is positive the total is treated as 1.0 - a
// documented degenerate fallback so a pathological pass degrades instead
// of dividing by zero. Allocations round to cents, so their sum matches
// the budget only within rounding tolerance.
func Allocate(ranked []domain.Candidate, budget float64, topN int) []domain.Pick {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}
	top := ranked[:topN]

	// only positive scores count toward the total: a negative score gets
	// nothing, and letting it shrink the denominator would hand the
	// positive candidates more than the budget
	totalScore := 0.0
	for _, c := range top {
		if c.RawScore > 0 {
			totalScore += c.RawScore
		}
	}
	if totalScore <= 0 {
		totalScore = 1.0
	}

	budgetDec := decimal.NewFromFloat(budget)
	totalDec := decimal.NewFromFloat(totalScore)

	picks := []domain.Pick{}
	for _, c := range top {
		allocation := decimal.Zero
		if c.RawScore > 0 {
			allocation = budgetDec.
				Mul(decimal.NewFromFloat(c.RawScore)).
				Div(totalDec).
				Round(2)
		}
		picks = append(picks, domain.Pick{
			Candidate:  c,
			Allocation: allocation.InexactFloat64(),
		})
	}

	return picks
}
