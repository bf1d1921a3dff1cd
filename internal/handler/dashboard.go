package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akshayraj18/mealfix-analytics/internal/dto"
)

// popularRecipes handles GET /dashboard/popular-recipes
// @Summary Popular recipes ranking
// @Description Rank recipes from the recent view and save windows. Always returns a renderable result; check the source field for fallback data.
// @Tags dashboard
// @Produce json
// @Param limit query int false "Maximum entries to return" default(10)
// @Success 200 {object} domain.PopularRecipesResult
// @Router /dashboard/popular-recipes [get]
func (h *Handler) popularRecipes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result := h.metrics.PopularRecipes(c.Request.Context(), limit)
	c.JSON(http.StatusOK, result)
}

// dietaryTrends handles GET /dashboard/dietary-trends
// @Summary Dietary preference trends
// @Description Percentage share of recently added dietary preferences
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DietaryTrendsResult
// @Router /dashboard/dietary-trends [get]
func (h *Handler) dietaryTrends(c *gin.Context) {
	result := h.metrics.DietaryTrends(c.Request.Context())
	c.JSON(http.StatusOK, result)
}

// engagement handles GET /dashboard/engagement
// @Summary User engagement summary
// @Description Total and 30-day-active user counts plus mean screen time
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.EngagementResult
// @Router /dashboard/engagement [get]
func (h *Handler) engagement(c *gin.Context) {
	result := h.metrics.Engagement(c.Request.Context())
	c.JSON(http.StatusOK, result)
}

// performance handles GET /dashboard/performance
// @Summary App performance metrics
// @Description Mean duration per performance metric name
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.PerformanceResult
// @Router /dashboard/performance [get]
func (h *Handler) performance(c *gin.Context) {
	result := h.metrics.Performance(c.Request.Context())
	c.JSON(http.StatusOK, result)
}

// getCounter handles GET /dashboard/counters/:name
// @Summary Read a real-time counter
// @Description Read a named counter (e.g. total_signups). Missing counters read as zero.
// @Tags dashboard
// @Produce json
// @Param name path string true "Counter name" example:"total_signups"
// @Success 200 {object} dto.CounterResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/counters/{name} [get]
func (h *Handler) getCounter(c *gin.Context) {
	name := c.Param("name")

	value, err := h.counters.Get(c.Request.Context(), name)
	if err != nil {
		h.log.Error("Failed to read counter",
			zap.String("counter", name),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.CounterResponse{Name: name, Value: value})
}
