package service

import (
	"context"
	"stockscout/internal/domain"
	"stockscout/internal/logger"
	"stockscout/internal/repository"
)

// CandidateService builds the raw candidate list for a scoring pass:
// fundamentals joined with aggregated news sentiment. Score and derived
// metrics are not populated here.
type CandidateService interface {
	Load(ctx context.Context, symbols []string) ([]domain.Candidate, error)
}

func NewCandidateService(
	fundamentalsRepository repository.FundamentalsRepository,
	newsRepository repository.NewsRepository,
) CandidateService {
	return candidateServiceHandler{
		FundamentalsRepository: fundamentalsRepository,
		NewsRepository:         newsRepository,
	}
}

type candidateServiceHandler struct {
	FundamentalsRepository repository.FundamentalsRepository
	NewsRepository         repository.NewsRepository
}

// Load returns all known symbols when the allow-list is empty. Symbols
// without news get neutral sentiment (0) - a nil never reaches scoring.
func (h candidateServiceHandler) Load(ctx context.Context, symbols []string) ([]domain.Candidate, error) {
	log := logger.FromContext(ctx)

	fundamentals, err := h.FundamentalsRepository.List(symbols)
	if err != nil {
		return nil, err
	}

	sentimentBySymbol, err := h.NewsRepository.AverageSentiment()
	if err != nil {
		// missing sentiment degrades to neutral, not a failed pass
		log.Warnf("failed to load news sentiment, defaulting to neutral: %v", err)
		sentimentBySymbol = map[string]float64{}
	}

	candidates := []domain.Candidate{}
	for _, f := range fundamentals {
		candidates = append(candidates, domain.Candidate{
			Symbol:        f.Symbol,
			PeRatio:       f.PeRatio,
			DividendYield: f.DividendYield,
			MarketCap:     f.MarketCap,
			Sector:        f.Sector,
			Industry:      f.Industry,
			AvgSentiment:  sentimentBySymbol[f.Symbol],
		})
	}

	return candidates, nil
}
