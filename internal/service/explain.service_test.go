package service

import (
	"stockscout/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Explain(t *testing.T) {
	t.Run("fully populated candidate", func(t *testing.T) {
		out := Explain(domain.Candidate{
			Symbol:        "AAPL",
			Sector:        strPtr("Information Technology"),
			Industry:      strPtr("Consumer Electronics"),
			MarketCap:     floatPtr(2500000000000),
			PeRatio:       floatPtr(22.5),
			DividendYield: floatPtr(0.015),
			Return30D:     floatPtr(4.2),
			Volatility30D: floatPtr(1.3),
			AvgSentiment:  0.35,
		})

		require.Contains(t, out, "<strong>Symbol:</strong> AAPL")
		require.Contains(t, out, "Information Technology / Consumer Electronics")
		require.Contains(t, out, "$2,500,000,000,000.00")
		require.Contains(t, out, "22.50")
		require.Contains(t, out, "0.35 (positive)")
		require.Contains(t, out, "attractive P/E ratio (22.50)")
		require.Contains(t, out, "solid dividend yield (0.01%)")
		require.Contains(t, out, "strong positive news sentiment")
		require.Contains(t, out, "positive 30d return (4.20%)")
		require.Contains(t, out, "low recent volatility (1.30%)")
	})

	t.Run("missing fields render as N/A, never an error", func(t *testing.T) {
		out := Explain(domain.Candidate{Symbol: "XYZ"})

		require.Contains(t, out, "<strong>Symbol:</strong> XYZ")
		require.Contains(t, out, "<strong>Market Cap:</strong> N/A")
		require.Contains(t, out, "<strong>P/E Ratio:</strong> N/A")
		require.Contains(t, out, "N/A / N/A")
		require.Contains(t, out, "neutral news sentiment")
		// absent volatility reads as low, not high
		require.Contains(t, out, "low recent volatility (N/A)")
	})

	t.Run("sentiment labels at the thresholds", func(t *testing.T) {
		require.Contains(t, Explain(domain.Candidate{AvgSentiment: 0.1}), "(neutral)")
		require.Contains(t, Explain(domain.Candidate{AvgSentiment: 0.11}), "(positive)")
		require.Contains(t, Explain(domain.Candidate{AvgSentiment: -0.1}), "(neutral)")
		require.Contains(t, Explain(domain.Candidate{AvgSentiment: -0.11}), "(negative)")
	})

	t.Run("high volatility above the threshold", func(t *testing.T) {
		out := Explain(domain.Candidate{Volatility30D: floatPtr(2.5)})
		require.Contains(t, out, "high recent volatility (2.50%)")
	})
}
