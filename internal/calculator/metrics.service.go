package calculator

import (
	"math"
	"sort"
	"stockscout/internal/domain"
	"time"

	"github.com/montanaflynn/stats"
)

// LedgerEntry is the slice of a ledger row the replay needs.
type LedgerEntry struct {
	Symbol   string
	Quantity int64
	BuyDate  time.Time
}

// ReplayLedger reconstructs the portfolio value on every distinct buy
// date: cumulative quantity per symbol times the latest close at or
// before that date. A symbol with no prior bar contributes zero for that
// day rather than failing the series.
func ReplayLedger(entries []LedgerEntry, histories map[string][]domain.AssetPrice) []domain.ValuePoint {
	dateSet := map[time.Time]bool{}
	for _, e := range entries {
		dateSet[e.BuyDate] = true
	}
	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	series := []domain.ValuePoint{}
	for _, d := range dates {
		qty := map[string]int64{}
		for _, e := range entries {
			if !e.BuyDate.After(d) {
				qty[e.Symbol] += e.Quantity
			}
		}

		total := 0.0
		for symbol, q := range qty {
			price, ok := closeAtOrBefore(histories[symbol], d)
			if !ok {
				continue
			}
			total += float64(q) * price
		}

		series = append(series, domain.ValuePoint{Date: d, Value: total})
	}

	return series
}

// closeAtOrBefore assumes prices are sorted ascending by date.
func closeAtOrBefore(prices []domain.AssetPrice, date time.Time) (float64, bool) {
	for i := len(prices) - 1; i >= 0; i-- {
		if !prices[i].Date.After(date) {
			return prices[i].Price, true
		}
	}
	return 0, false
}

// AlignAndSum builds a value series from live holdings: each symbol's
// trailing closes are aligned on the union of observed dates, gaps are
// forward-filled from the last known close, and per-day market values are
// summed. Forward-filling can carry a stale price for a halted symbol
// across many days - a known gap in this reconstruction, kept as-is.
func AlignAndSum(quantities map[string]float64, histories map[string][]domain.AssetPrice) []domain.ValuePoint {
	dateSet := map[time.Time]bool{}
	for symbol := range quantities {
		for _, p := range histories[symbol] {
			dateSet[p.Date] = true
		}
	}
	if len(dateSet) == 0 {
		return nil
	}
	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	series := []domain.ValuePoint{}
	last := map[string]float64{}
	for _, d := range dates {
		total := 0.0
		for symbol, q := range quantities {
			if price, ok := closeAtOrBefore(histories[symbol], d); ok {
				last[symbol] = price
			}
			total += q * last[symbol]
		}
		series = append(series, domain.ValuePoint{Date: d, Value: total})
	}

	return series
}

// CalculatePerformance summarizes a value series. Returns nil when fewer
// than 2 observations exist - "no data" is distinct from "flat".
//
// Sharpe annualizes by sqrt(252) assuming observation spacing roughly
// matches trading days; with sparser spacing treat it as illustrative.
func CalculatePerformance(series []domain.ValuePoint) (*domain.PerformanceSummary, error) {
	if len(series) < 2 {
		return nil, nil
	}

	first := series[0].Value
	last := series[len(series)-1].Value
	if first == 0 {
		return nil, nil
	}
	totalReturn := 100 * (last - first) / first

	// simple percent changes between consecutive observations
	returns := []float64{}
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Value
		if prev == 0 {
			continue
		}
		returns = append(returns, 100*(series[i].Value-prev)/prev)
	}

	volatility := 0.0
	sharpe := 0.0
	if len(returns) >= 2 {
		stdev, err := stats.StandardDeviationSample(returns)
		if err != nil {
			return nil, err
		}
		mean, err := stats.Mean(returns)
		if err != nil {
			return nil, err
		}
		volatility = stdev
		if stdev != 0 {
			sharpe = mean / stdev * math.Sqrt(252)
		}
	}

	return &domain.PerformanceSummary{
		TotalReturnPct: round2(totalReturn),
		VolatilityPct:  round2(volatility),
		SharpeRatio:    round2(sharpe),
		StartValue:     first,
		EndValue:       last,
		NumDays:        len(series),
		Series:         series,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
