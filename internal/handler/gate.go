package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akshayraj18/mealfix-analytics/internal/dto"
)

// evaluateFlag handles GET /gate/flags/:name
// @Summary Evaluate a feature flag
// @Description Deterministically evaluate a feature flag for a subject and platform. Unknown flags and config store outages evaluate to disabled.
// @Tags gate
// @Produce json
// @Param name path string true "Flag name" example:"pantry_scanner"
// @Param subject_id query string false "Stable subject identifier"
// @Param platform query string false "Client platform (ios, android, web)"
// @Success 200 {object} dto.FlagDecisionResponse
// @Router /gate/flags/{name} [get]
func (h *Handler) evaluateFlag(c *gin.Context) {
	name := c.Param("name")
	subjectID := c.Query("subject_id")
	platform := c.Query("platform")

	enabled := h.engine.Enabled(c.Request.Context(), name, subjectID, platform)

	c.JSON(http.StatusOK, dto.FlagDecisionResponse{
		Flag:      name,
		SubjectID: subjectID,
		Platform:  platform,
		Enabled:   enabled,
	})
}

// evaluateVariant handles GET /gate/tests/:name
// @Summary Evaluate an A/B test assignment
// @Description Deterministically assign a subject to a test arm. Unknown or non-active tests yield a null arm.
// @Tags gate
// @Produce json
// @Param name path string true "Test name" example:"new_suggestion_prompt"
// @Param subject_id query string false "Stable subject identifier"
// @Success 200 {object} dto.VariantResponse
// @Router /gate/tests/{name} [get]
func (h *Handler) evaluateVariant(c *gin.Context) {
	name := c.Param("name")
	subjectID := c.Query("subject_id")

	response := dto.VariantResponse{
		Test:      name,
		SubjectID: subjectID,
	}

	if arm, ok := h.engine.Variant(c.Request.Context(), name, subjectID); ok {
		armStr := string(arm)
		response.Arm = &armStr
	}

	c.JSON(http.StatusOK, response)
}

// trackConversion handles POST /gate/conversions
// @Summary Track an A/B test conversion
// @Description Record a conversion metric for a test under the reserved conversion event name
// @Tags gate
// @Accept json
// @Produce json
// @Param conversion body dto.TrackConversionRequest true "Conversion data"
// @Success 202 {object} dto.RecordEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /gate/conversions [post]
func (h *Handler) trackConversion(c *gin.Context) {
	var req dto.TrackConversionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid conversion request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.recorder.TrackConversion(c.Request.Context(), req.SubjectID, req.TestName, req.MetricName, req.Value)

	c.JSON(http.StatusAccepted, dto.RecordEventResponse{Status: "accepted"})
}
