package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akshayraj18/mealfix-analytics/internal/dto"
	"github.com/akshayraj18/mealfix-analytics/internal/service"
)

func clientEventFromRequest(req *dto.RecordEventRequest) service.ClientEvent {
	return service.ClientEvent{
		EventName:       req.EventName,
		SubjectID:       req.SubjectID,
		SessionID:       req.SessionID,
		Platform:        req.Platform,
		AppVersion:      req.AppVersion,
		ClientTimestamp: req.ClientTimestamp,
		Attributes:      req.Attributes,
	}
}

// recordEvent handles POST /events
// @Summary Record a single analytics event
// @Description Record a client analytics event. Storage failures are absorbed server-side; a parseable event is always accepted.
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.RecordEventRequest true "Event data"
// @Success 202 {object} dto.RecordEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /events [post]
func (h *Handler) recordEvent(c *gin.Context) {
	var req dto.RecordEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid event request",
			zap.Error(err),
			zap.String("event_name", req.EventName))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.recorder.RecordClientEvent(c.Request.Context(), clientEventFromRequest(&req))

	c.JSON(http.StatusAccepted, dto.RecordEventResponse{Status: "accepted"})
}

// recordEventsBulk handles POST /events/bulk
// @Summary Record multiple analytics events
// @Description Record a batch of queued client events in one request
// @Tags events
// @Accept json
// @Produce json
// @Param events body dto.RecordEventsBulkRequest true "Bulk events data"
// @Success 202 {object} dto.RecordEventsBulkResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /events/bulk [post]
func (h *Handler) recordEventsBulk(c *gin.Context) {
	var req dto.RecordEventsBulkRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid bulk event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	events := make([]service.ClientEvent, 0, len(req.Events))
	for i := range req.Events {
		events = append(events, clientEventFromRequest(&req.Events[i]))
	}
	h.recorder.RecordBatch(c.Request.Context(), events)

	h.log.Info("Bulk events recorded", zap.Int("count", len(req.Events)))

	c.JSON(http.StatusAccepted, dto.RecordEventsBulkResponse{
		Status:   "accepted",
		Accepted: len(req.Events),
	})
}
