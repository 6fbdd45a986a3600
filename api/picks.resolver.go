package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// GET /picks?symbols=AAPL,MSFT
// symbols narrows the pass to an allow-list; omitted means the whole
// stored universe.
func (m ApiHandler) picks(c *gin.Context) {
	symbols := parseSymbols(c.Query("symbols"))

	picks, err := m.PicksService.GeneratePicks(c.Request.Context(), symbols)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"picks": picks,
	})
}

type runPicksRequest struct {
	Symbols []string `json:"symbols"`
	Budget  *float64 `json:"budget"`
	TopN    *int     `json:"topN"`
}

// POST /picks re-runs the pass with a one-off budget or topN. Bad
// overrides are rejected before anything is loaded or scored.
func (m ApiHandler) runPicks(c *gin.Context) {
	var req runPicksRequest
	if err := c.BindJSON(&req); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if req.Budget != nil && *req.Budget <= 0 {
		returnErrorJsonCode(fmt.Errorf("budget must be positive, got %f", *req.Budget), c, 400)
		return
	}
	if req.TopN != nil && *req.TopN <= 0 {
		returnErrorJsonCode(fmt.Errorf("topN must be positive, got %d", *req.TopN), c, 400)
		return
	}

	symbols := []string{}
	for _, s := range req.Symbols {
		s = strings.TrimSpace(strings.ToUpper(s))
		if s != "" {
			symbols = append(symbols, s)
		}
	}

	picks, err := m.PicksService.GeneratePicksWithOverrides(c.Request.Context(), symbols, req.Budget, req.TopN)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"picks": picks,
	})
}

func parseSymbols(raw string) []string {
	symbols := []string{}
	if raw == "" {
		return symbols
	}
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(strings.ToUpper(s))
		if s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}
