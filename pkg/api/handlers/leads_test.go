package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsrmotors/leadpulse/ent"
	"github.com/hsrmotors/leadpulse/ent/enttest"
	"github.com/hsrmotors/leadpulse/pkg/assignment"
	"github.com/hsrmotors/leadpulse/pkg/audit"
	"github.com/hsrmotors/leadpulse/pkg/lifecycle"
	"github.com/hsrmotors/leadpulse/pkg/logger"
	"github.com/hsrmotors/leadpulse/pkg/models"
	"github.com/hsrmotors/leadpulse/pkg/sla"

	_ "github.com/mattn/go-sqlite3"
)

func setupLeadHandler(t *testing.T) (*LeadHandler, *lifecycle.Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	assigner := assignment.NewService(client)
	require.NoError(t, assigner.SeedRoster(context.Background()))
	lc := lifecycle.NewService(client, assigner, audit.NewService(client), sla.New(2), nil, nil, logger.Default())
	// No assistant wired; call summaries stay empty in these tests.
	return NewLeadHandler(lc, nil, logger.Default()), lc, client
}

func newJSONContext(e *echo.Echo, method, path, body string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	return c, rec
}

func TestCreateLeadEndpoint(t *testing.T) {
	h, _, _ := setupLeadHandler(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads",
		`{"name": "Arjun Mehta", "phone": "9876543210", "source": "Facebook"}`, nil)
	require.NoError(t, h.CreateLead(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var lead models.LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, "Arjun Mehta", lead.Name)
	assert.Equal(t, "Facebook", lead.Source)
	assert.Equal(t, "New", lead.Status)
}

func TestCreateLeadMissingName(t *testing.T) {
	h, _, _ := setupLeadHandler(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads", `{"phone": "9876543210"}`, nil)
	require.NoError(t, h.CreateLead(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLeadNotFound(t *testing.T) {
	h, _, _ := setupLeadHandler(t)
	e := echo.New()

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/leads/:id", "", map[string]string{"id": "9999"})
	require.NoError(t, h.GetLead(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	h, lc, _ := setupLeadHandler(t)
	e := echo.New()

	lead, err := lc.Create(context.Background(), models.CreateLeadRequest{Name: "Kavya", Phone: "9812345678"})
	require.NoError(t, err)

	c, rec := newJSONContext(e, http.MethodPatch, "/api/v1/leads/:id/status",
		`{"status": "Qualified"}`, map[string]string{"id": strconv.Itoa(lead.ID)})
	require.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Qualified", updated.Status)
}

func TestDeleteLeadRejectsActiveStatus(t *testing.T) {
	h, lc, _ := setupLeadHandler(t)
	e := echo.New()

	lead, err := lc.Create(context.Background(), models.CreateLeadRequest{Name: "Rahul", Phone: "9812345679"})
	require.NoError(t, err)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/leads/:id",
		`{"reason": "spam"}`, map[string]string{"id": strconv.Itoa(lead.ID)})
	require.NoError(t, h.DeleteLead(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteLeadTerminalStatus(t *testing.T) {
	h, lc, _ := setupLeadHandler(t)
	e := echo.New()
	ctx := context.Background()

	lead, err := lc.Create(ctx, models.CreateLeadRequest{Name: "Meera", Phone: "9812345670"})
	require.NoError(t, err)
	_, err = lc.UpdateStatus(ctx, lead.ID, "Closed Lost")
	require.NoError(t, err)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/leads/:id",
		`{"reason": "bought elsewhere"}`, map[string]string{"id": strconv.Itoa(lead.ID)})
	require.NoError(t, h.DeleteLead(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogCallEndpoint(t *testing.T) {
	h, lc, _ := setupLeadHandler(t)
	e := echo.New()

	lead, err := lc.Create(context.Background(), models.CreateLeadRequest{Name: "Divya", Phone: "9812345671"})
	require.NoError(t, err)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads/:id/calls",
		`{"note": "asked for a quote", "outcome": "Answered"}`, map[string]string{"id": strconv.Itoa(lead.ID)})
	require.NoError(t, h.LogCall(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var updated models.LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Len(t, updated.CallLogs, 1)
	assert.Equal(t, "asked for a quote", updated.CallLogs[0].Note)
}

func TestBulkStatusEndpoint(t *testing.T) {
	h, lc, _ := setupLeadHandler(t)
	e := echo.New()

	lead, err := lc.Create(context.Background(), models.CreateLeadRequest{Name: "Suresh", Phone: "9812345672"})
	require.NoError(t, err)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/leads/bulk/status",
		`{"lead_ids": [`+strconv.Itoa(lead.ID)+`, 9999], "status": "Contacted"}`, nil)
	require.NoError(t, h.BulkUpdateStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var results []models.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.True(t, results[0].OK)
	assert.False(t, results[1].OK)
}
