package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/hsrmotors/leadpulse/pkg/ai"
	apierrors "github.com/hsrmotors/leadpulse/pkg/api/errors"
	"github.com/hsrmotors/leadpulse/pkg/lifecycle"
	"github.com/hsrmotors/leadpulse/pkg/logger"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

var validate = validator.New()

// LeadHandler handles lead-related HTTP requests.
type LeadHandler struct {
	lifecycle *lifecycle.Service
	assistant *ai.Assistant
	log       logger.Logger
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(lc *lifecycle.Service, assistant *ai.Assistant, log logger.Logger) *LeadHandler {
	return &LeadHandler{
		lifecycle: lc,
		assistant: assistant,
		log:       log,
	}
}

func leadID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListLeads returns every lead, newest first.
func (h *LeadHandler) ListLeads(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	leads, err := h.lifecycle.List(ctx)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, leads)
}

// GetLead returns one lead by id.
func (h *LeadHandler) GetLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, ok := leadID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	lead, err := h.lifecycle.Get(ctx, id)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// CreateLead registers a new lead.
func (h *LeadHandler) CreateLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req models.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	lead, err := h.lifecycle.Create(ctx, req)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, lead)
}

// UpdateStatus moves a lead to a new status.
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, ok := leadID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	lead, err := h.lifecycle.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// Reassign hands a lead to another executive.
func (h *LeadHandler) Reassign(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, ok := leadID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	var req models.AssignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	lead, err := h.lifecycle.Reassign(ctx, id, req.ExecutiveID)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, lead)
}

// LogCall records a call against a lead. The AI summary is generated in the
// background and attached to the call log once ready.
func (h *LeadHandler) LogCall(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, ok := leadID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	var req models.LogCallRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	lead, err := h.lifecycle.LogCall(ctx, id, req)
	if err != nil {
		return apierrors.Respond(c, err)
	}

	if h.assistant != nil && len(lead.CallLogs) > 0 {
		callID := lead.CallLogs[0].ID
		cc := ai.CallContext{
			Note:        req.Note,
			LeadName:    lead.Name,
			CarInterest: lead.CarInterest,
		}
		go func() {
			bg, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			summary, next := h.assistant.GenerateCallSummary(bg, cc)
			if err := h.lifecycle.AttachCallSummary(bg, id, callID, summary, next); err != nil {
				h.log.Warn("failed to attach call summary", "lead_id", id, "error", err)
			}
		}()
	}

	return c.JSON(http.StatusCreated, lead)
}

// AddNote appends a free-form note to a lead.
func (h *LeadHandler) AddNote(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, ok := leadID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	var req models.AddNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	lead, err := h.lifecycle.AddNote(ctx, id, req.Note)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, lead)
}

// ScheduleCallback records a callback intent on a lead.
func (h *LeadHandler) ScheduleCallback(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, ok := leadID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	var req models.CallbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	lead, err := h.lifecycle.ScheduleCallback(ctx, id, req.Date, req.Time)
	if err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, lead)
}

// DeleteLead removes a lead. A reason is mandatory and only leads in a
// terminal negative status can go.
func (h *LeadHandler) DeleteLead(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, ok := leadID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}

	var req models.DeleteLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	if err := h.lifecycle.Delete(ctx, id, req.Reason); err != nil {
		return apierrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Lead deleted successfully",
	})
}

// BulkUpdateStatus applies a status change to several leads.
func (h *LeadHandler) BulkUpdateStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	var req models.BulkStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	results := h.lifecycle.BulkUpdateStatus(ctx, req.LeadIDs, req.Status)
	return c.JSON(http.StatusOK, results)
}

// BulkReassign reassigns several leads.
func (h *LeadHandler) BulkReassign(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	var req models.BulkAssignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	results := h.lifecycle.BulkReassign(ctx, req.LeadIDs, req.ExecutiveID)
	return c.JSON(http.StatusOK, results)
}

// SummarizeCall generates an AI summary for an existing call log entry and
// stores it on the lead.
func (h *LeadHandler) SummarizeCall(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	id, ok := leadID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid lead ID",
		})
	}
	callID := c.Param("call_id")
	if callID == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid call log ID",
		})
	}

	lead, err := h.lifecycle.Get(ctx, id)
	if err != nil {
		return apierrors.Respond(c, err)
	}

	var note string
	found := false
	for _, cl := range lead.CallLogs {
		if cl.ID == callID {
			note = cl.Note
			found = true
			break
		}
	}
	if !found {
		return apierrors.NotFoundError(c, "call log")
	}
	if h.assistant == nil {
		return c.JSON(http.StatusOK, map[string]string{
			"summary":     ai.FallbackSummary,
			"next_action": ai.FallbackNextAction,
		})
	}

	summary, next := h.assistant.GenerateCallSummary(ctx, ai.CallContext{
		Note:        note,
		LeadName:    lead.Name,
		CarInterest: lead.CarInterest,
	})
	if err := h.lifecycle.AttachCallSummary(ctx, id, callID, summary, next); err != nil {
		return apierrors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"summary":     summary,
		"next_action": next,
	})
}
