package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"stockscout/internal/db/models/postgres/public/model"
	. "stockscout/internal/db/models/postgres/public/table"
	"stockscout/internal/domain"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type PriceBarRepository interface {
	Add(tx *sql.Tx, bars []model.PriceBar) error
	// RecentCloses returns up to limit of the most recent closes for the
	// symbol, in ascending date order.
	RecentCloses(symbol string, limit int) ([]domain.AssetPrice, error)
	// LatestClose returns nil (not an error) when the symbol has no bars.
	LatestClose(symbol string) (*domain.AssetPrice, error)
	List(symbol string, start, end time.Time) ([]domain.AssetPrice, error)
}

func NewPriceBarRepository(db *sql.DB) PriceBarRepository {
	return priceBarRepositoryHandler{Db: db}
}

type priceBarRepositoryHandler struct {
	Db *sql.DB
}

// Add inserts bars if absent. Bars are immutable once written, so a
// re-fetch of the same (symbol, date) range is a no-op.
func (h priceBarRepositoryHandler) Add(tx *sql.Tx, bars []model.PriceBar) error {
	if len(bars) == 0 {
		return nil
	}
	query := PriceBar.
		INSERT(PriceBar.AllColumns).
		MODELS(bars).
		ON_CONFLICT(PriceBar.Symbol, PriceBar.Date).
		DO_NOTHING()

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add price bars: %w", err)
	}

	return nil
}

func (h priceBarRepositoryHandler) RecentCloses(symbol string, limit int) ([]domain.AssetPrice, error) {
	query := PriceBar.
		SELECT(PriceBar.AllColumns).
		WHERE(PriceBar.Symbol.EQ(String(symbol))).
		ORDER_BY(PriceBar.Date.DESC()).
		LIMIT(int64(limit))

	result := []model.PriceBar{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent closes for %s: %w", symbol, err)
	}

	// query returns newest-first; flip to ascending
	out := make([]domain.AssetPrice, 0, len(result))
	for i := len(result) - 1; i >= 0; i-- {
		out = append(out, domain.AssetPrice{
			Symbol: result[i].Symbol,
			Date:   result[i].Date,
			Price:  result[i].Close,
		})
	}

	return out, nil
}

func (h priceBarRepositoryHandler) LatestClose(symbol string) (*domain.AssetPrice, error) {
	query := PriceBar.
		SELECT(PriceBar.AllColumns).
		WHERE(PriceBar.Symbol.EQ(String(symbol))).
		ORDER_BY(PriceBar.Date.DESC()).
		LIMIT(1)

	result := model.PriceBar{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest close for %s: %w", symbol, err)
	}

	return &domain.AssetPrice{
		Symbol: result.Symbol,
		Date:   result.Date,
		Price:  result.Close,
	}, nil
}

func (h priceBarRepositoryHandler) List(symbol string, start, end time.Time) ([]domain.AssetPrice, error) {
	query := PriceBar.
		SELECT(PriceBar.AllColumns).
		WHERE(
			AND(
				PriceBar.Symbol.EQ(String(symbol)),
				PriceBar.Date.BETWEEN(DateT(start), DateT(end)),
			),
		).
		ORDER_BY(PriceBar.Date.ASC())

	result := []model.PriceBar{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	out := []domain.AssetPrice{}
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			Symbol: p.Symbol,
			Date:   p.Date,
			Price:  p.Close,
		})
	}

	return out, nil
}
