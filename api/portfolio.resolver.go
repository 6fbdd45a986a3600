package api

import (
	"github.com/gin-gonic/gin"
)

// GET /portfolio
func (m ApiHandler) portfolio(c *gin.Context) {
	rows, err := m.PortfolioService.Snapshot(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"positions": rows,
	})
}
