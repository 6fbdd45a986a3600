package domain

// Candidate is one symbol under consideration in a scoring pass. It is
// rebuilt from the stores on every pass and never persisted directly -
// only its allocation decision may end up as ledger rows.
//
// Optional fields are pointers: nil means the store had no value, which
// is different from zero (a nil Return30D is "no price history", not a
// flat 30 days).
type Candidate struct {
	Symbol        string   `json:"symbol"`
	PeRatio       *float64 `json:"peRatio"`
	DividendYield *float64 `json:"dividendYield"` // fraction, not percent
	MarketCap     *float64 `json:"marketCap"`
	Sector        *string  `json:"sector"`
	Industry      *string  `json:"industry"`

	// AvgSentiment defaults to 0 (neutral) when the symbol has no news rows.
	AvgSentiment float64 `json:"avgSentiment"`

	// derived from price history, percent, rounded to 2dp
	Return30D     *float64 `json:"return30d"`
	Volatility30D *float64 `json:"volatility30d"`

	// Score is rounded to 4dp for display. RawScore is what ranking and
	// allocation actually use - sorting on the rounded value produces tie
	// artifacts.
	Score    float64 `json:"score"`
	RawScore float64 `json:"-"`

	// per-scorer outputs, keyed by scorer name, when more than one model
	// is configured
	ScoreDetails map[string]float64 `json:"scoreDetails,omitempty"`
}

// Pick is a candidate that made the top-N cut, with its slice of the budget.
type Pick struct {
	Candidate
	Allocation  float64 `json:"allocation"`
	Explanation string  `json:"explanation,omitempty"`
}
