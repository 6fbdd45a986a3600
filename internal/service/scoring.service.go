package service

import (
	"context"
	"math"
	"sort"
	"stockscout/internal/domain"
	"stockscout/internal/logger"
	"stockscout/internal/repository"
	"stockscout/internal/scorer"

	"github.com/montanaflynn/stats"
)

const (
	maxPeRatio       = 40.0
	minDividendYield = 0.01
	trailingDays     = 30
)

// ScoringService turns raw candidates into a ranked, scored list.
type ScoringService interface {
	Score(ctx context.Context, candidates []domain.Candidate) ([]domain.Candidate, error)
}

func NewScoringService(
	priceBarRepository repository.PriceBarRepository,
	scorers scorer.Set,
) ScoringService {
	return scoringServiceHandler{
		PriceBarRepository: priceBarRepository,
		Scorers:            scorers,
	}
}

type scoringServiceHandler struct {
	PriceBarRepository repository.PriceBarRepository
	Scorers            scorer.Set
}

func (h scoringServiceHandler) Score(ctx context.Context, candidates []domain.Candidate) ([]domain.Candidate, error) {
	log := logger.FromContext(ctx)

	scored := []domain.Candidate{}
	for _, c := range candidates {
		if !passesFilter(c) {
			continue
		}

		ret, vol := h.trailingMetrics(ctx, c.Symbol)
		c.Return30D = ret
		c.Volatility30D = vol

		features := scorer.Features{
			PeRatio:   *c.PeRatio,
			Sentiment: c.AvgSentiment,
		}
		if c.DividendYield != nil {
			features.DividendYield = *c.DividendYield
		}
		if c.MarketCap != nil {
			features.MarketCap = *c.MarketCap
		}

		c.ScoreDetails = map[string]float64{}
		for _, s := range h.Scorers.All() {
			value, err := s.Predict(features)
			if err != nil {
				log.Warnf("scorer %s failed on %s: %v", s.Name(), c.Symbol, err)
				continue
			}
			c.ScoreDetails[s.Name()] = value
		}

		authoritative := h.Scorers.Authoritative()
		raw, ok := c.ScoreDetails[authoritative.Name()]
		if !ok {
			// candidates the authoritative scorer cannot price are
			// dropped before ranking
			continue
		}
		c.RawScore = raw
		c.Score = math.Round(raw*10000) / 10000

		scored = append(scored, c)
	}

	// rank on the unrounded value - sorting the 4dp display score
	// manufactures ties
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RawScore > scored[j].RawScore
	})

	return scored, nil
}

// Filter policy, applied in order: P/E must be present, positive and at
// most 40; an explicit dividend yield below 1% rejects, but a missing
// yield passes. The asymmetry is deliberate - absence of a dividend is
// not the same signal as a token one.
func passesFilter(c domain.Candidate) bool {
	if c.PeRatio == nil || *c.PeRatio <= 0 || *c.PeRatio > maxPeRatio {
		return false
	}
	if c.DividendYield != nil && *c.DividendYield < minDividendYield {
		return false
	}
	return true
}

// trailingMetrics derives 30d return and volatility from the most recent
// closes. Fewer than 2 closes - or any fetch failure - yields nils: "no
// data" must stay distinguishable from "flat".
func (h scoringServiceHandler) trailingMetrics(ctx context.Context, symbol string) (*float64, *float64) {
	log := logger.FromContext(ctx)

	closes, err := h.PriceBarRepository.RecentCloses(symbol, trailingDays)
	if err != nil {
		log.Warnf("failed to fetch price history for %s: %v", symbol, err)
		return nil, nil
	}
	if len(closes) < 2 {
		return nil, nil
	}

	first := closes[0].Price
	last := closes[len(closes)-1].Price
	if first == 0 {
		return nil, nil
	}
	ret := round2(100 * (last - first) / first)

	changes := []float64{}
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1].Price
		if prev == 0 {
			continue
		}
		changes = append(changes, (closes[i].Price-prev)/prev)
	}
	stdev, err := stats.StandardDeviationSample(changes)
	if err != nil || math.IsNaN(stdev) {
		return &ret, nil
	}
	vol := round2(100 * stdev)

	return &ret, &vol
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
