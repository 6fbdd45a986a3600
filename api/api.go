package api

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"stockscout/internal/db/models/postgres/public/model"
	"stockscout/internal/logger"
	"stockscout/internal/repository"
	"stockscout/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                     *sql.DB
	PicksService           service.PicksService
	PortfolioService       service.PortfolioService
	TradingService         service.TradingService
	EmailService           service.EmailService
	FundamentalsRepository repository.FundamentalsRepository
	PriceBarRepository     repository.PriceBarRepository
	NewsRepository         repository.NewsRepository
	SettingsRepository     repository.SettingsRepository
	ApiRequestRepository   repository.ApiRequestRepository

	ReportRecipient  string
	PriceHistoryDays int
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	m.registerRoutes(router)

	return router
}

func (m ApiHandler) registerRoutes(router *gin.Engine) {
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to stockscout"})
	})
	router.GET("/picks", m.picks)
	router.POST("/picks", m.runPicks)
	router.POST("/buy", m.buy)
	router.GET("/portfolio", m.portfolio)
	router.GET("/performance", m.performance)
	router.GET("/livePerformance", m.livePerformance)
	router.GET("/account", m.account)
	router.POST("/reset", m.reset)
	router.POST("/updatePrices", m.updatePrices)
	router.POST("/updateNews", m.updateNews)
	router.POST("/updateFundamentals", m.updateFundamentals)
	router.GET("/budget", m.getBudget)
	router.POST("/budget", m.setBudget)
	router.POST("/sendReport", m.sendReport)
}

func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	log := logger.FromContext(ctx.Request.Context())

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Warnf("failed to get raw data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Warn(err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Warn(err)
		}
	}
}
