package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akshayraj18/mealfix-analytics/internal/domain"
	"github.com/akshayraj18/mealfix-analytics/internal/dto"
	"github.com/akshayraj18/mealfix-analytics/internal/repository"
)

// Dashboard-facing CRUD for feature flags and A/B tests. Unlike the gating
// and dashboard endpoints, these surface store errors to the operator.

// listFlags handles GET /config/flags
// @Summary List feature flags
// @Tags config
// @Produce json
// @Success 200 {array} domain.FeatureFlag
// @Failure 500 {object} dto.ErrorResponse
// @Router /config/flags [get]
func (h *Handler) listFlags(c *gin.Context) {
	flags, err := h.flags.List(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list flags", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	if flags == nil {
		flags = []*domain.FeatureFlag{}
	}
	c.JSON(http.StatusOK, flags)
}

// getFlag handles GET /config/flags/:name
// @Summary Get a feature flag
// @Tags config
// @Produce json
// @Param name path string true "Flag name"
// @Success 200 {object} domain.FeatureFlag
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /config/flags/{name} [get]
func (h *Handler) getFlag(c *gin.Context) {
	flag, err := h.flags.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		var notFound *repository.ErrNotFound
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
			return
		}
		h.log.Error("Failed to get flag", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, flag)
}

// upsertFlag handles PUT /config/flags/:name
// @Summary Create or replace a feature flag
// @Tags config
// @Accept json
// @Produce json
// @Param name path string true "Flag name"
// @Param flag body dto.UpsertFlagRequest true "Flag definition"
// @Success 200 {object} domain.FeatureFlag
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /config/flags/{name} [put]
func (h *Handler) upsertFlag(c *gin.Context) {
	var req dto.UpsertFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid flag request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	platforms := req.Platforms
	if len(platforms) == 0 {
		platforms = []string{domain.PlatformAll}
	}

	flag := &domain.FeatureFlag{
		Name:              c.Param("name"),
		Status:            req.Status,
		RolloutPercentage: req.RolloutPercentage,
		Platforms:         platforms,
	}

	if err := h.flags.Upsert(c.Request.Context(), flag); err != nil {
		h.log.Error("Failed to upsert flag",
			zap.String("flag", flag.Name),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.engine.InvalidateFlag(flag.Name)

	h.log.Info("Feature flag updated",
		zap.String("flag", flag.Name),
		zap.String("status", flag.Status),
		zap.Int("rollout_percentage", flag.RolloutPercentage))

	c.JSON(http.StatusOK, flag)
}

// deleteFlag handles DELETE /config/flags/:name
// @Summary Delete a feature flag
// @Tags config
// @Produce json
// @Param name path string true "Flag name"
// @Success 204
// @Failure 500 {object} dto.ErrorResponse
// @Router /config/flags/{name} [delete]
func (h *Handler) deleteFlag(c *gin.Context) {
	name := c.Param("name")
	if err := h.flags.Delete(c.Request.Context(), name); err != nil {
		h.log.Error("Failed to delete flag", zap.String("flag", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.engine.InvalidateFlag(name)
	c.Status(http.StatusNoContent)
}

// listTests handles GET /config/tests
// @Summary List A/B tests
// @Tags config
// @Produce json
// @Success 200 {array} domain.ABTest
// @Failure 500 {object} dto.ErrorResponse
// @Router /config/tests [get]
func (h *Handler) listTests(c *gin.Context) {
	tests, err := h.tests.List(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list tests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	if tests == nil {
		tests = []*domain.ABTest{}
	}
	c.JSON(http.StatusOK, tests)
}

// getTest handles GET /config/tests/:name
// @Summary Get an A/B test
// @Tags config
// @Produce json
// @Param name path string true "Test name"
// @Success 200 {object} domain.ABTest
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /config/tests/{name} [get]
func (h *Handler) getTest(c *gin.Context) {
	test, err := h.tests.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		var notFound *repository.ErrNotFound
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:   "not_found",
				Message: err.Error(),
			})
			return
		}
		h.log.Error("Failed to get test", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, test)
}

// upsertTest handles PUT /config/tests/:name
// @Summary Create or replace an A/B test
// @Tags config
// @Accept json
// @Produce json
// @Param name path string true "Test name"
// @Param test body dto.UpsertTestRequest true "Test definition"
// @Success 200 {object} domain.ABTest
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /config/tests/{name} [put]
func (h *Handler) upsertTest(c *gin.Context) {
	var req dto.UpsertTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid test request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	test := &domain.ABTest{
		Name:    c.Param("name"),
		Status:  req.Status,
		Control: domain.TestGroup{Name: req.Control.Name, Allocation: req.Control.Allocation},
		Variant: domain.TestGroup{Name: req.Variant.Name, Allocation: req.Variant.Allocation},
		Metrics: req.Metrics,
	}

	if err := test.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	if err := h.tests.Upsert(c.Request.Context(), test); err != nil {
		h.log.Error("Failed to upsert test",
			zap.String("test", test.Name),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.engine.InvalidateTest(test.Name)

	h.log.Info("A/B test updated",
		zap.String("test", test.Name),
		zap.String("status", test.Status))

	c.JSON(http.StatusOK, test)
}

// deleteTest handles DELETE /config/tests/:name
// @Summary Delete an A/B test
// @Tags config
// @Produce json
// @Param name path string true "Test name"
// @Success 204
// @Failure 500 {object} dto.ErrorResponse
// @Router /config/tests/{name} [delete]
func (h *Handler) deleteTest(c *gin.Context) {
	name := c.Param("name")
	if err := h.tests.Delete(c.Request.Context(), name); err != nil {
		h.log.Error("Failed to delete test", zap.String("test", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.engine.InvalidateTest(name)
	c.Status(http.StatusNoContent)
}
