package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/hsrmotors/leadpulse/pkg/api/errors"
	"github.com/hsrmotors/leadpulse/pkg/assignment"
	"github.com/hsrmotors/leadpulse/pkg/audit"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

// TeamHandler serves the executive roster, assignment rules and the
// deletion audit trail.
type TeamHandler struct {
	assigner *assignment.Service
	auditor  *audit.Service
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(assigner *assignment.Service, auditor *audit.Service) *TeamHandler {
	return &TeamHandler{
		assigner: assigner,
		auditor:  auditor,
	}
}

// ListExecutives returns the full roster.
func (h *TeamHandler) ListExecutives(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	execs, err := h.assigner.ListExecutives(ctx)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, execs)
}

// ListRules returns all assignment rules in match order.
func (h *TeamHandler) ListRules(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rules, err := h.assigner.ListRules(ctx)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, rules)
}

// CreateRule stores a new assignment rule.
func (h *TeamHandler) CreateRule(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.RuleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	rule, err := h.assigner.CreateRule(ctx, req)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, rule)
}

// DeleteRule removes an assignment rule.
func (h *TeamHandler) DeleteRule(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid rule ID",
		})
	}

	if err := h.assigner.DeleteRule(ctx, id); err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Rule deleted successfully",
	})
}

// RecentDeletions returns the latest entries of the deletion audit trail.
func (h *TeamHandler) RecentDeletions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.auditor.RecentDeletions(ctx, limit)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}
