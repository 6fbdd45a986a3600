package internal

import (
	"context"
	"database/sql"
	"fmt"
	"stockscout/internal/db/models/postgres/public/model"
	"stockscout/internal/logger"
	"stockscout/internal/repository"
	"time"

	"github.com/piquette/finance-go/equity"
)

// IngestFundamentals refreshes valuation metrics for one universe row
// from the Yahoo Finance equity quote endpoint. Sector and industry come
// from universe seeding, not the quote, so they are carried through.
func IngestFundamentals(
	tx *sql.Tx,
	existing model.Fundamental,
	fundamentalsRepository repository.FundamentalsRepository,
) error {
	q, err := equity.Get(existing.Symbol)
	if err != nil {
		return fmt.Errorf("failed to get quote for %s: %w", existing.Symbol, err)
	}
	if q == nil {
		return fmt.Errorf("no quote returned for %s", existing.Symbol)
	}

	updated := model.Fundamental{
		Symbol:    existing.Symbol,
		Sector:    existing.Sector,
		Industry:  existing.Industry,
		UpdatedAt: time.Now().UTC(),
	}

	// zero from the feed means the field is absent, not free money
	if q.TrailingPE != 0 {
		pe := q.TrailingPE
		updated.PeRatio = &pe
	}
	if q.TrailingAnnualDividendYield != 0 {
		yield := q.TrailingAnnualDividendYield
		updated.DividendYield = &yield
	}
	if q.MarketCap != 0 {
		marketCap := float64(q.MarketCap)
		updated.MarketCap = &marketCap
	}

	return fundamentalsRepository.Upsert(tx, updated)
}

func UpdateUniverseFundamentals(
	ctx context.Context,
	tx *sql.Tx,
	fundamentalsRepository repository.FundamentalsRepository,
) error {
	log := logger.FromContext(ctx)

	universe, err := fundamentalsRepository.List(nil)
	if err != nil {
		return err
	}
	if len(universe) == 0 {
		return fmt.Errorf("no symbols found in universe")
	}

	errors := []error{}

	for _, f := range universe {
		err = IngestFundamentals(tx, f, fundamentalsRepository)
		if err != nil {
			log.Warn(err)
			errors = append(errors, err)
		} else {
			log.Infof("updated fundamentals for %s", f.Symbol)
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to update %d/%d universe fundamentals. first err: %w", len(errors), len(universe), errors[0])
	}

	return nil
}
