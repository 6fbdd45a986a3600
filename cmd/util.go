package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"stockscout/api"
	"stockscout/internal"
	"stockscout/internal/logger"
	"stockscout/internal/repository"
	"stockscout/internal/scorer"
	"stockscout/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	fundamentalsRepository := repository.NewFundamentalsRepository(dbConn)
	priceBarRepository := repository.NewPriceBarRepository(dbConn)
	newsRepository := repository.NewNewsRepository(dbConn)
	positionRepository := repository.NewPositionRepository(dbConn)
	apiRequestRepository := repository.ApiRequestRepositoryHandler{}
	settingsRepository := repository.NewSettingsRepository(secrets.SettingsPath, repository.Settings{
		Budget: secrets.DefaultBudget,
		TopN:   secrets.TopN,
	})
	alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)

	scorers := loadScorers(secrets)

	candidateService := service.NewCandidateService(fundamentalsRepository, newsRepository)
	scoringService := service.NewScoringService(priceBarRepository, scorers)
	picksService := service.NewPicksService(candidateService, scoringService, settingsRepository)
	portfolioService := service.NewPortfolioService(dbConn, positionRepository, priceBarRepository, alpacaRepository)
	tradingService := service.NewTradingService(alpacaRepository)

	var emailService service.EmailService
	if secrets.SES.Region != "" {
		emailRepository, err := repository.NewEmailRepository(secrets.SES.Region, secrets.SES.FromEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize email client: %w", err)
		}
		emailService = service.NewEmailService(emailRepository)
	}

	apiHandler := &api.ApiHandler{
		Db:                     dbConn,
		PicksService:           picksService,
		PortfolioService:       portfolioService,
		TradingService:         tradingService,
		EmailService:           emailService,
		FundamentalsRepository: fundamentalsRepository,
		PriceBarRepository:     priceBarRepository,
		NewsRepository:         newsRepository,
		SettingsRepository:     settingsRepository,
		ApiRequestRepository:   apiRequestRepository,
		ReportRecipient:        secrets.ReportRecipient,
		PriceHistoryDays:       90,
	}

	return apiHandler, nil
}

// loadScorers builds the scorer set. A model file that is missing or
// unreadable is logged and skipped; the heuristic always loads.
func loadScorers(secrets *internal.Secrets) scorer.Set {
	log := logger.FromContext(context.Background())

	set := scorer.Set{}

	if secrets.PrimaryModelPath != "" {
		primary, err := scorer.LoadModel(secrets.PrimaryModelPath)
		if err != nil {
			log.Warnf("failed to load primary model: %v", err)
		} else {
			set.Primary = primary
		}
	}

	if secrets.RefinedModelPath != "" {
		refined, err := scorer.LoadModel(secrets.RefinedModelPath)
		if err != nil {
			log.Warnf("failed to load refined model: %v", err)
		} else {
			set.Refined = refined
		}
	}

	return set
}
