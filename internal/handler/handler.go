package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/akshayraj18/mealfix-analytics/docs"
	"github.com/akshayraj18/mealfix-analytics/internal/assignment"
	"github.com/akshayraj18/mealfix-analytics/internal/repository"
	"github.com/akshayraj18/mealfix-analytics/internal/service"
)

type Handler struct {
	recorder service.EventRecorder
	metrics  service.MetricsProvider
	engine   *assignment.Engine
	flags    repository.FlagRepository
	tests    repository.TestRepository
	counters repository.CounterRepository
	router   *gin.Engine
	log      *zap.Logger
}

// Deps bundles the collaborators the HTTP surface exposes.
type Deps struct {
	Recorder service.EventRecorder
	Metrics  service.MetricsProvider
	Engine   *assignment.Engine
	Flags    repository.FlagRepository
	Tests    repository.TestRepository
	Counters repository.CounterRepository
}

func NewHandler(deps Deps, log *zap.Logger) *Handler {
	h := &Handler{
		recorder: deps.Recorder,
		metrics:  deps.Metrics,
		engine:   deps.Engine,
		flags:    deps.Flags,
		tests:    deps.Tests,
		counters: deps.Counters,
		router:   gin.Default(),
		log:      log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)

	h.router.POST("/events", h.recordEvent)
	h.router.POST("/events/bulk", h.recordEventsBulk)

	gate := h.router.Group("/gate")
	{
		gate.GET("/flags/:name", h.evaluateFlag)
		gate.GET("/tests/:name", h.evaluateVariant)
		gate.POST("/conversions", h.trackConversion)
	}

	dashboard := h.router.Group("/dashboard")
	{
		dashboard.GET("/popular-recipes", h.popularRecipes)
		dashboard.GET("/dietary-trends", h.dietaryTrends)
		dashboard.GET("/engagement", h.engagement)
		dashboard.GET("/performance", h.performance)
		dashboard.GET("/counters/:name", h.getCounter)
	}

	config := h.router.Group("/config")
	{
		config.GET("/flags", h.listFlags)
		config.GET("/flags/:name", h.getFlag)
		config.PUT("/flags/:name", h.upsertFlag)
		config.DELETE("/flags/:name", h.deleteFlag)

		config.GET("/tests", h.listTests)
		config.GET("/tests/:name", h.getTest)
		config.PUT("/tests/:name", h.upsertTest)
		config.DELETE("/tests/:name", h.deleteTest)
	}

	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
