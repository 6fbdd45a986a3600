package api

import (
	"github.com/gin-gonic/gin"
)

// GET /performance
// Reconstructed value series of the simulated ledger. An empty or
// single-day ledger is not an error, just an empty summary.
func (m ApiHandler) performance(c *gin.Context) {
	summary, err := m.PortfolioService.Performance(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"performance": summary,
	})
}

// GET /livePerformance
// Same shape, built from the real broker account instead of the ledger.
func (m ApiHandler) livePerformance(c *gin.Context) {
	summary, err := m.PortfolioService.LivePerformance(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"performance": summary,
	})
}

// GET /account
func (m ApiHandler) account(c *gin.Context) {
	summary, err := m.TradingService.AccountSummary(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"account": summary,
	})
}
