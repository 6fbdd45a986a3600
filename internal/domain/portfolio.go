package domain

import (
	"time"
)

// SnapshotRow is one symbol's aggregated view of the simulated ledger:
// summed quantity, averaged cost basis, earliest buy date, joined to the
// latest known close. Derived fields are nil when no price data exists
// for the symbol.
type SnapshotRow struct {
	Symbol      string    `json:"symbol"`
	Quantity    int64     `json:"quantity"`
	AvgCost     float64   `json:"avgCost"`
	FirstBuy    time.Time `json:"firstBuy"`
	LatestPrice *float64  `json:"latestPrice"`
	MarketValue *float64  `json:"marketValue"`
	Gain        *float64  `json:"gain"`
	ReturnPct   *float64  `json:"returnPct"`
}

// PerformanceSummary is computed from a reconstructed daily value series.
// Sharpe is annualized by sqrt(252), which assumes the observation spacing
// approximates trading days - treat it as illustrative when it doesn't.
type PerformanceSummary struct {
	TotalReturnPct float64      `json:"totalReturnPct"`
	VolatilityPct  float64      `json:"volatilityPct"`
	SharpeRatio    float64      `json:"sharpeRatio"`
	StartValue     float64      `json:"startValue"`
	EndValue       float64      `json:"endValue"`
	NumDays        int          `json:"numDays"`
	Series         []ValuePoint `json:"series"`
}
