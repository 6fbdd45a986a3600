package repository

import (
	"database/sql"
	"fmt"
	"stockscout/internal/db/models/postgres/public/model"
	. "stockscout/internal/db/models/postgres/public/table"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
)

type FundamentalsRepository interface {
	// List returns fundamentals for the given symbols, or every known
	// symbol when the list is empty. Unknown symbols just yield no rows.
	List(symbols []string) ([]model.Fundamental, error)
	Upsert(tx *sql.Tx, f model.Fundamental) error
	// AddAssets seeds universe rows. Existing rows keep their metrics;
	// only sector and industry are refreshed.
	AddAssets(tx *sql.Tx, assets []model.Fundamental) error
}

func NewFundamentalsRepository(db *sql.DB) FundamentalsRepository {
	return fundamentalsRepositoryHandler{Db: db}
}

type fundamentalsRepositoryHandler struct {
	Db *sql.DB
}

func (h fundamentalsRepositoryHandler) List(symbols []string) ([]model.Fundamental, error) {
	query := Fundamental.SELECT(Fundamental.AllColumns).
		ORDER_BY(Fundamental.Symbol.ASC())

	if len(symbols) > 0 {
		exprs := []Expression{}
		for _, s := range symbols {
			exprs = append(exprs, String(s))
		}
		query = Fundamental.SELECT(Fundamental.AllColumns).
			WHERE(Fundamental.Symbol.IN(exprs...)).
			ORDER_BY(Fundamental.Symbol.ASC())
	}

	result := []model.Fundamental{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list fundamentals: %w", err)
	}

	return result, nil
}

func (h fundamentalsRepositoryHandler) Upsert(tx *sql.Tx, f model.Fundamental) error {
	query := Fundamental.
		INSERT(Fundamental.AllColumns).
		MODEL(f).
		ON_CONFLICT(Fundamental.Symbol).
		DO_UPDATE(
			SET(
				Fundamental.PeRatio.SET(Fundamental.EXCLUDED.PeRatio),
				Fundamental.DividendYield.SET(Fundamental.EXCLUDED.DividendYield),
				Fundamental.MarketCap.SET(Fundamental.EXCLUDED.MarketCap),
				Fundamental.Sector.SET(Fundamental.EXCLUDED.Sector),
				Fundamental.Industry.SET(Fundamental.EXCLUDED.Industry),
				Fundamental.UpdatedAt.SET(Fundamental.EXCLUDED.UpdatedAt),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to upsert fundamentals for %s: %w", f.Symbol, err)
	}

	return nil
}

func (h fundamentalsRepositoryHandler) AddAssets(tx *sql.Tx, assets []model.Fundamental) error {
	if len(assets) == 0 {
		return nil
	}

	for i := range assets {
		if assets[i].UpdatedAt.IsZero() {
			assets[i].UpdatedAt = time.Now().UTC()
		}
	}

	query := Fundamental.
		INSERT(Fundamental.AllColumns).
		MODELS(assets).
		ON_CONFLICT(Fundamental.Symbol).
		DO_UPDATE(
			SET(
				Fundamental.Sector.SET(Fundamental.EXCLUDED.Sector),
				Fundamental.Industry.SET(Fundamental.EXCLUDED.Industry),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to seed universe: %w", err)
	}

	return nil
}
