package repository

import (
	"database/sql"
	"fmt"
	"stockscout/internal/db/models/postgres/public/model"
	. "stockscout/internal/db/models/postgres/public/table"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type NewsRepository interface {
	Add(tx *sql.Tx, items []model.NewsItem) error
	// AverageSentiment returns mean sentiment per symbol over all stored
	// news rows. Symbols with no news are simply absent from the map.
	AverageSentiment() (map[string]float64, error)
	// LatestPublished returns the newest stored publish time for a
	// symbol, or nil if no news has been stored yet.
	LatestPublished(symbol string) (*time.Time, error)
}

func NewNewsRepository(db *sql.DB) NewsRepository {
	return newsRepositoryHandler{Db: db}
}

type newsRepositoryHandler struct {
	Db *sql.DB
}

func (h newsRepositoryHandler) Add(tx *sql.Tx, items []model.NewsItem) error {
	if len(items) == 0 {
		return nil
	}
	query := NewsItem.
		INSERT(NewsItem.AllColumns).
		MODELS(items)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add news items: %w", err)
	}

	return nil
}

func (h newsRepositoryHandler) LatestPublished(symbol string) (*time.Time, error) {
	query := NewsItem.
		SELECT(NewsItem.Published).
		WHERE(
			NewsItem.Symbol.EQ(String(symbol)).
				AND(NewsItem.Published.IS_NOT_NULL()),
		).
		ORDER_BY(NewsItem.Published.DESC()).
		LIMIT(1)

	result := model.NewsItem{}
	err := query.Query(h.Db, &result)
	if err != nil && err != qrm.ErrNoRows {
		return nil, fmt.Errorf("failed to get latest news for %s: %w", symbol, err)
	} else if err == qrm.ErrNoRows {
		return nil, nil
	}

	return result.Published, nil
}

func (h newsRepositoryHandler) AverageSentiment() (map[string]float64, error) {
	query := NewsItem.
		SELECT(
			NewsItem.Symbol,
			AVG(NewsItem.Sentiment),
		).
		GROUP_BY(NewsItem.Symbol)

	q, args := query.Sql()

	rows, err := h.Db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query average sentiment: %w", err)
	}
	defer rows.Close()

	out := map[string]float64{}
	for rows.Next() {
		var symbol string
		var sentiment float64
		err := rows.Scan(&symbol, &sentiment)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out[symbol] = sentiment
	}

	return out, nil
}
