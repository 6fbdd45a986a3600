package api

import (
	"fmt"
	"stockscout/internal/repository"

	"github.com/gin-gonic/gin"
)

// GET /budget
func (m ApiHandler) getBudget(c *gin.Context) {
	settings, err := m.SettingsRepository.Get()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, settings)
}

type setBudgetRequest struct {
	Budget float64 `json:"budget"`
	TopN   int     `json:"topN"`
}

// POST /budget
func (m ApiHandler) setBudget(c *gin.Context) {
	var requestBody setBudgetRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, 400)
		return
	}

	if requestBody.Budget <= 0 {
		returnErrorJsonCode(fmt.Errorf("budget must be positive, got %.2f", requestBody.Budget), c, 400)
		return
	}
	if requestBody.TopN <= 0 {
		returnErrorJsonCode(fmt.Errorf("topN must be positive, got %d", requestBody.TopN), c, 400)
		return
	}

	settings := repository.Settings{
		Budget: requestBody.Budget,
		TopN:   requestBody.TopN,
	}
	if err := m.SettingsRepository.Save(settings); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, settings)
}
