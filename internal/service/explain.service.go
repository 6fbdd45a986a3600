package service

import (
	"fmt"
	"stockscout/internal/domain"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	sentimentThreshold     = 0.1
	lowVolatilityThreshold = 2.0 // percent
	attractivePeRatio      = 25.0
	solidDividendYield     = 0.01
)

// Explain renders a human-readable rationale for a pick from whatever
// fields it has. Pure function: missing fields come out as "N/A", never
// an error.
func Explain(c domain.Candidate) string {
	sentimentLabel, sentimentSummary := describeSentiment(c.AvgSentiment)

	volatilityLabel := "high"
	if c.Volatility30D == nil || *c.Volatility30D < lowVolatilityThreshold {
		volatilityLabel = "low"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<strong>Symbol:</strong> %s<br>", c.Symbol)
	fmt.Fprintf(&b, "<strong>Sector/Industry:</strong> %s / %s<br>", fmtStr(c.Sector), fmtStr(c.Industry))
	fmt.Fprintf(&b, "<strong>Market Cap:</strong> %s<br>", fmtCurrency(c.MarketCap))
	fmt.Fprintf(&b, "<strong>P/E Ratio:</strong> %s<br>", fmtNum(c.PeRatio))
	fmt.Fprintf(&b, "<strong>Dividend Yield:</strong> %s<br>", fmtPct(c.DividendYield))
	fmt.Fprintf(&b, "<strong>30d Return:</strong> %s<br>", fmtPct(c.Return30D))
	fmt.Fprintf(&b, "<strong>30d Volatility:</strong> %s<br>", fmtPct(c.Volatility30D))
	fmt.Fprintf(&b, "<strong>Sentiment Score:</strong> %.2f %s<br>", c.AvgSentiment, sentimentLabel)

	reasons := []string{}
	if c.PeRatio != nil && *c.PeRatio < attractivePeRatio {
		reasons = append(reasons, fmt.Sprintf("attractive P/E ratio (%s)", fmtNum(c.PeRatio)))
	}
	if c.DividendYield != nil && *c.DividendYield > solidDividendYield {
		reasons = append(reasons, fmt.Sprintf("solid dividend yield (%s)", fmtPct(c.DividendYield)))
	}
	reasons = append(reasons, sentimentSummary)
	if c.Return30D != nil && *c.Return30D > 0 {
		reasons = append(reasons, fmt.Sprintf("positive 30d return (%s)", fmtPct(c.Return30D)))
	}
	reasons = append(reasons, fmt.Sprintf("%s recent volatility (%s)", volatilityLabel, fmtPct(c.Volatility30D)))

	fmt.Fprintf(&b, "<strong>Summary:</strong> Selected due to %s.", strings.Join(reasons, ", "))

	return b.String()
}

func describeSentiment(v float64) (label, summary string) {
	switch {
	case v > sentimentThreshold:
		return "(positive)", "strong positive news sentiment"
	case v < -sentimentThreshold:
		return "(negative)", "negative news sentiment"
	default:
		return "(neutral)", "neutral news sentiment"
	}
}

func fmtStr(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return *v
}

func fmtNum(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

func fmtPct(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

func fmtCurrency(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return "$" + humanize.FormatFloat("#,###.##", *v)
}
