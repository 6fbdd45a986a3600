package service

import (
	"context"
	"stockscout/internal/calculator"
	"stockscout/internal/domain"
	"stockscout/internal/repository"
)

// PicksService runs the full selection pass: load candidates, score and
// rank them, split the budget across the top names, and attach a
// rationale to each pick.
type PicksService interface {
	GeneratePicks(ctx context.Context, symbols []string) ([]domain.Pick, error)
	// GeneratePicksWithOverrides runs the same pass with a one-off budget
	// or topN instead of the persisted settings. Nil means use settings.
	GeneratePicksWithOverrides(ctx context.Context, symbols []string, budget *float64, topN *int) ([]domain.Pick, error)
}

type picksServiceHandler struct {
	CandidateService   CandidateService
	ScoringService     ScoringService
	SettingsRepository repository.SettingsRepository
}

func NewPicksService(
	candidateService CandidateService,
	scoringService ScoringService,
	settingsRepository repository.SettingsRepository,
) PicksService {
	return picksServiceHandler{
		CandidateService:   candidateService,
		ScoringService:     scoringService,
		SettingsRepository: settingsRepository,
	}
}

func (h picksServiceHandler) GeneratePicks(ctx context.Context, symbols []string) ([]domain.Pick, error) {
	return h.GeneratePicksWithOverrides(ctx, symbols, nil, nil)
}

func (h picksServiceHandler) GeneratePicksWithOverrides(ctx context.Context, symbols []string, budget *float64, topN *int) ([]domain.Pick, error) {
	settings, err := h.SettingsRepository.Get()
	if err != nil {
		return nil, err
	}
	if budget != nil {
		settings.Budget = *budget
	}
	if topN != nil {
		settings.TopN = *topN
	}

	candidates, err := h.CandidateService.Load(ctx, symbols)
	if err != nil {
		return nil, err
	}

	ranked, err := h.ScoringService.Score(ctx, candidates)
	if err != nil {
		return nil, err
	}

	picks := calculator.Allocate(ranked, settings.Budget, settings.TopN)
	for i := range picks {
		picks[i].Explanation = Explain(picks[i].Candidate)
	}

	return picks, nil
}
