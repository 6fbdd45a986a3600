package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type buyRequest struct {
	// Mirror also sends the picks to the paper broker as real orders.
	Mirror bool `json:"mirror"`
	// Date defaults to today (UTC). Format 2006-01-02.
	Date *string `json:"date"`
}

// POST /buy
// Runs a fresh selection pass and appends the resulting buys to the
// ledger. Calling it twice buys twice.
func (m ApiHandler) buy(c *gin.Context) {
	var requestBody buyRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, 400)
		return
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if requestBody.Date != nil {
		parsed, err := time.Parse(time.DateOnly, *requestBody.Date)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid date %q: %w", *requestBody.Date, err), c, 400)
			return
		}
		date = parsed.UTC()
	}

	picks, err := m.PicksService.GeneratePicks(c.Request.Context(), nil)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	bought, err := m.PortfolioService.Buy(c.Request.Context(), picks, date)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := gin.H{
		"picks":  picks,
		"bought": bought,
	}

	if requestBody.Mirror {
		orders, err := m.TradingService.MirrorPicks(c.Request.Context(), picks)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		out["orders"] = orders
	}

	c.JSON(200, out)
}
