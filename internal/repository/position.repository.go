package repository

import (
	"database/sql"
	"fmt"
	"stockscout/internal/db/models/postgres/public/model"
	. "stockscout/internal/db/models/postgres/public/table"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// AggregatedPosition is the per-symbol GROUP BY view of the ledger:
// summed quantity, averaged cost basis, earliest buy date.
type AggregatedPosition struct {
	Symbol   string
	Quantity int64
	AvgCost  float64
	FirstBuy time.Time
}

type PositionRepository interface {
	Add(tx *sql.Tx, p model.Position) (*model.Position, error)
	// List returns every ledger entry ordered by buy date ascending.
	List() ([]model.Position, error)
	Aggregate() ([]AggregatedPosition, error)
	// DeleteAll wipes the ledger. No soft delete, no undo.
	DeleteAll(tx *sql.Tx) error
}

func NewPositionRepository(db *sql.DB) PositionRepository {
	return positionRepositoryHandler{Db: db}
}

type positionRepositoryHandler struct {
	Db *sql.DB
}

func (h positionRepositoryHandler) Add(tx *sql.Tx, p model.Position) (*model.Position, error) {
	if p.PositionID == uuid.Nil {
		p.PositionID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	query := Position.
		INSERT(Position.AllColumns).
		MODEL(p).
		RETURNING(Position.AllColumns)

	out := model.Position{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to add position for %s: %w", p.Symbol, err)
	}

	return &out, nil
}

func (h positionRepositoryHandler) List() ([]model.Position, error) {
	query := Position.
		SELECT(Position.AllColumns).
		ORDER_BY(Position.BuyDate.ASC(), Position.CreatedAt.ASC())

	result := []model.Position{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	return result, nil
}

func (h positionRepositoryHandler) Aggregate() ([]AggregatedPosition, error) {
	query := Position.
		SELECT(
			Position.Symbol,
			SUMi(Position.Quantity),
			AVG(Position.CostBasis),
			Raw("MIN(position.buy_date)"),
		).
		GROUP_BY(Position.Symbol).
		ORDER_BY(Position.Symbol.ASC())

	q, args := query.Sql()

	rows, err := h.Db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate positions: %w", err)
	}
	defer rows.Close()

	out := []AggregatedPosition{}
	for rows.Next() {
		var row AggregatedPosition
		err := rows.Scan(&row.Symbol, &row.Quantity, &row.AvgCost, &row.FirstBuy)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, row)
	}

	return out, nil
}

func (h positionRepositoryHandler) DeleteAll(tx *sql.Tx) error {
	query := Position.DELETE().WHERE(Bool(true))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to reset portfolio: %w", err)
	}

	return nil
}
