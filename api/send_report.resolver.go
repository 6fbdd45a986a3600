package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type sendReportRequest struct {
	// Recipient overrides the configured report address.
	Recipient *string `json:"recipient"`
}

// POST /sendReport
func (m ApiHandler) sendReport(c *gin.Context) {
	var requestBody sendReportRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, 400)
		return
	}

	recipient := m.ReportRecipient
	if requestBody.Recipient != nil {
		recipient = *requestBody.Recipient
	}
	if recipient == "" {
		returnErrorJsonCode(fmt.Errorf("no recipient provided or configured"), c, 400)
		return
	}
	if m.EmailService == nil {
		returnErrorJsonCode(fmt.Errorf("email is not configured"), c, 400)
		return
	}

	picks, err := m.PicksService.GeneratePicks(c.Request.Context(), nil)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	err = m.EmailService.SendPicksReport(c.Request.Context(), recipient, picks, time.Now().UTC())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"message": fmt.Sprintf("report sent to %s", recipient),
	})
}
