package api

import (
	"github.com/gin-gonic/gin"
)

// POST /reset
// Wipes the simulated ledger unconditionally. Broker positions are not
// touched.
func (m ApiHandler) reset(c *gin.Context) {
	err := m.PortfolioService.Reset(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"message": "ok",
	})
}
