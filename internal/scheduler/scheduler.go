package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"stockscout/internal"
	"stockscout/internal/logger"
	"stockscout/internal/repository"
	"stockscout/internal/service"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the unattended daily pipeline: refresh market data,
// generate picks, record the simulated buys, mirror them to the paper
// broker, and mail the report.
type Scheduler struct {
	Cron *cron.Cron

	Db                     *sql.DB
	FundamentalsRepository repository.FundamentalsRepository
	PriceBarRepository     repository.PriceBarRepository
	NewsRepository         repository.NewsRepository
	PicksService           service.PicksService
	PortfolioService       service.PortfolioService
	TradingService         service.TradingService
	EmailService           service.EmailService

	ReportRecipient  string
	PriceHistoryDays int
	MirrorToBroker   bool

	Ctx context.Context
}

func New(
	ctx context.Context,
	db *sql.DB,
	fundamentalsRepository repository.FundamentalsRepository,
	priceBarRepository repository.PriceBarRepository,
	newsRepository repository.NewsRepository,
	picksService service.PicksService,
	portfolioService service.PortfolioService,
	tradingService service.TradingService,
	emailService service.EmailService,
	reportRecipient string,
	mirrorToBroker bool,
) *Scheduler {
	return &Scheduler{
		Cron:                   cron.New(),
		Db:                     db,
		FundamentalsRepository: fundamentalsRepository,
		PriceBarRepository:     priceBarRepository,
		NewsRepository:         newsRepository,
		PicksService:           picksService,
		PortfolioService:       portfolioService,
		TradingService:         tradingService,
		EmailService:           emailService,
		ReportRecipient:        reportRecipient,
		PriceHistoryDays:       90,
		MirrorToBroker:         mirrorToBroker,
		Ctx:                    ctx,
	}
}

// Register wires the daily pipeline onto the given cron expression,
// standard five-field syntax.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.DailyRun); err != nil {
		return fmt.Errorf("failed to register daily pipeline: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.Cron.Start()
	logger.FromContext(s.Ctx).Info("scheduler started")
}

func (s *Scheduler) Stop() {
	s.Cron.Stop()
	logger.FromContext(s.Ctx).Info("scheduler stopped")
}

// DailyRun executes one full pass. Each stage logs and moves on where it
// can; a partial data refresh still produces picks from what is stored.
func (s *Scheduler) DailyRun() {
	log := logger.FromContext(s.Ctx)
	log.Info("starting daily pipeline")

	if err := s.refreshData(); err != nil {
		log.Errorf("data refresh incomplete: %v", err)
	}

	picks, err := s.PicksService.GeneratePicks(s.Ctx, nil)
	if err != nil {
		log.Errorf("failed to generate picks: %v", err)
		return
	}
	if len(picks) == 0 {
		log.Warn("no picks generated, skipping buys and report")
		return
	}

	bought, err := s.PortfolioService.Buy(s.Ctx, picks, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		log.Errorf("failed to record simulated buys: %v", err)
	} else {
		log.Infof("recorded %d simulated buys", len(bought))
	}

	if s.MirrorToBroker {
		orders, err := s.TradingService.MirrorPicks(s.Ctx, picks)
		if err != nil {
			log.Errorf("failed to mirror picks to broker: %v", err)
		} else {
			log.Infof("placed %d broker orders", len(orders))
		}
	}

	if s.ReportRecipient != "" && s.EmailService != nil {
		err = s.EmailService.SendPicksReport(s.Ctx, s.ReportRecipient, picks, time.Now().UTC())
		if err != nil {
			log.Errorf("failed to send report: %v", err)
		}
	}

	log.Info("daily pipeline complete")
}

func (s *Scheduler) refreshData() error {
	tx, err := s.Db.BeginTx(s.Ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	errs := []error{}
	if err := internal.UpdateUniverseFundamentals(s.Ctx, tx, s.FundamentalsRepository); err != nil {
		errs = append(errs, err)
	}
	if err := internal.UpdateUniversePrices(s.Ctx, tx, s.PriceHistoryDays, s.FundamentalsRepository, s.PriceBarRepository); err != nil {
		errs = append(errs, err)
	}
	if err := internal.UpdateUniverseNews(s.Ctx, tx, s.FundamentalsRepository, s.NewsRepository); err != nil {
		errs = append(errs, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit data refresh: %w", err)
	}

	if len(errs) > 0 {
		return errs[0]
	}

	return nil
}
