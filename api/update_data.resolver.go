package api

import (
	"database/sql"
	"stockscout/internal"

	"github.com/gin-gonic/gin"
)

// POST /updatePrices
func (m ApiHandler) updatePrices(c *gin.Context) {
	m.runRefresh(c, func(tx *sql.Tx) error {
		return internal.UpdateUniversePrices(
			c.Request.Context(),
			tx,
			m.PriceHistoryDays,
			m.FundamentalsRepository,
			m.PriceBarRepository,
		)
	})
}

// POST /updateNews
func (m ApiHandler) updateNews(c *gin.Context) {
	m.runRefresh(c, func(tx *sql.Tx) error {
		return internal.UpdateUniverseNews(
			c.Request.Context(),
			tx,
			m.FundamentalsRepository,
			m.NewsRepository,
		)
	})
}

// POST /updateFundamentals
func (m ApiHandler) updateFundamentals(c *gin.Context) {
	m.runRefresh(c, func(tx *sql.Tx) error {
		return internal.UpdateUniverseFundamentals(
			c.Request.Context(),
			tx,
			m.FundamentalsRepository,
		)
	})
}

func (m ApiHandler) runRefresh(c *gin.Context, fn func(tx *sql.Tx) error) {
	tx, err := m.Db.BeginTx(c.Request.Context(), nil)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		returnErrorJson(err, c)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"message": "ok",
	})
}
