package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hsrmotors/leadpulse/pkg/ai"
	"github.com/hsrmotors/leadpulse/pkg/analytics"
	apierrors "github.com/hsrmotors/leadpulse/pkg/api/errors"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

// DashboardHandler serves the dashboard aggregates and the analytics
// assistant.
type DashboardHandler struct {
	analytics *analytics.Service
	assistant *ai.Assistant
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(an *analytics.Service, assistant *ai.Assistant) *DashboardHandler {
	return &DashboardHandler{
		analytics: an,
		assistant: assistant,
	}
}

// GetStats returns the full dashboard aggregate.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	stats, err := h.analytics.ComputeStats(ctx)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Ask answers a free-form question about the dashboard. The answer always
// comes back with 200; generation failures surface as fallback copy.
func (h *DashboardHandler) Ask(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	var req models.AskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	stats, err := h.analytics.ComputeStats(ctx)
	if err != nil {
		return apierrors.Respond(c, err)
	}

	answer := h.assistant.AnswerDashboardQuery(ctx, req.Question, stats)
	return c.JSON(http.StatusOK, map[string]string{
		"answer": answer,
	})
}
