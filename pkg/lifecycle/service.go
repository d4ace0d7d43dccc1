// Package lifecycle owns every lead mutation. Each operation applies its
// change, appends exactly one activity entry and refreshes last_activity in
// a single UPDATE, so the record and its trail never drift apart.
package lifecycle

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/hsrmotors/leadpulse/ent"
	entlead "github.com/hsrmotors/leadpulse/ent/lead"
	"github.com/hsrmotors/leadpulse/pkg/assignment"
	"github.com/hsrmotors/leadpulse/pkg/audit"
	"github.com/hsrmotors/leadpulse/pkg/cache"
	"github.com/hsrmotors/leadpulse/pkg/catalog"
	"github.com/hsrmotors/leadpulse/pkg/domain"
	"github.com/hsrmotors/leadpulse/pkg/logger"
	"github.com/hsrmotors/leadpulse/pkg/metrics"
	"github.com/hsrmotors/leadpulse/pkg/models"
	"github.com/hsrmotors/leadpulse/pkg/phone"
	"github.com/hsrmotors/leadpulse/pkg/sla"
)

const statsCachePattern = "dashboard:*"

// Service is the lead lifecycle manager.
type Service struct {
	db       *ent.Client
	assigner *assignment.Service
	auditor  *audit.Service
	sla      *sla.Evaluator
	cache    *cache.Client
	metrics  *metrics.Metrics
	log      logger.Logger
	locks    *keyedMutex
	now      func() time.Time
}

// NewService creates a new lifecycle service. cache and m may be nil.
func NewService(db *ent.Client, assigner *assignment.Service, auditor *audit.Service, slaEval *sla.Evaluator, cacheClient *cache.Client, m *metrics.Metrics, log logger.Logger) *Service {
	return &Service{
		db:       db,
		assigner: assigner,
		auditor:  auditor,
		sla:      slaEval,
		cache:    cacheClient,
		metrics:  m,
		log:      log,
		locks:    newKeyedMutex(),
		now:      time.Now,
	}
}

// Create registers a new lead. Missing fields fall back to walk-in defaults
// and the status is always New regardless of input. Assignment happens here
// via the assignment engine.
func (s *Service) Create(ctx context.Context, req models.CreateLeadRequest) (*models.LeadResponse, error) {
	if req.Name == "" {
		return nil, domain.NewValidation("name is required")
	}
	if req.Phone == "" {
		return nil, domain.NewValidation("phone is required")
	}

	source := catalog.SourceOffline
	if req.Source != "" {
		v, ok := catalog.SourceValue(req.Source)
		if !ok {
			return nil, domain.NewValidation(fmt.Sprintf("unknown source %q", req.Source))
		}
		source = v
	}

	interest := catalog.InterestSUV
	if req.CarInterest != "" {
		v, ok := catalog.InterestValue(req.CarInterest)
		if !ok {
			return nil, domain.NewValidation(fmt.Sprintf("unknown car interest %q", req.CarInterest))
		}
		interest = v
	}

	carModel := req.CarModel
	if carModel == "" {
		m := catalog.CarModels[interest]
		carModel = m[rand.Intn(len(m))]
	}

	budget := req.Budget
	if budget == "" {
		budget = catalog.Budgets[rand.Intn(len(catalog.Budgets))]
	}

	exec, err := s.assigner.AssignExecutive(ctx, source, interest)
	if err != nil {
		return nil, fmt.Errorf("failed to assign executive: %w", err)
	}

	now := s.now()
	created := models.ActivityLog{
		ID:          newUID(),
		Type:        models.ActivityCreated,
		Description: fmt.Sprintf("Lead created from %s", catalog.SourceLabel(source)),
		Timestamp:   now,
		ActorID:     "system",
		ActorName:   "System",
	}

	builder := s.db.Lead.Create().
		SetName(req.Name).
		SetPhone(phone.Normalize(req.Phone)).
		SetEmail(req.Email).
		SetSource(entlead.Source(source)).
		SetCarInterest(entlead.CarInterest(interest)).
		SetCarModel(carModel).
		SetBudget(budget).
		SetStatus(entlead.StatusNew).
		SetAssignedTo(exec.ID).
		SetAssignedToName(exec.Name).
		SetActivities([]models.ActivityLog{created}).
		SetCallLogs([]models.CallLog{}).
		SetNotes([]string{}).
		SetCreatedAt(now).
		SetLastActivity(now)
	if req.CampaignName != "" {
		builder.SetCampaignName(req.CampaignName)
	}
	if req.TestDriveDate != "" {
		builder.SetTestDriveDate(req.TestDriveDate)
	}

	l, err := builder.Save(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("create lead", err)
	}

	s.metrics.RecordLeadCreated(source)
	s.invalidateStats(ctx)

	resp := s.toResponse(l)
	return &resp, nil
}

// Get returns one lead with staleness derived at read time.
func (s *Service) Get(ctx context.Context, id int) (*models.LeadResponse, error) {
	l, err := s.db.Lead.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFound("lead", id)
		}
		return nil, domain.NewStoreFailure("get lead", err)
	}
	resp := s.toResponse(l)
	return &resp, nil
}

// List returns all leads, newest first.
func (s *Service) List(ctx context.Context) ([]models.LeadResponse, error) {
	leads, err := s.db.Lead.Query().
		Order(ent.Desc(entlead.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("list leads", err)
	}

	out := make([]models.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, s.toResponse(l))
	}
	return out, nil
}

// UpdateStatus moves a lead to a new status and records the transition.
// Any valid status is reachable from any other; the pipeline order is a
// suggestion, not a constraint.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string) (*models.LeadResponse, error) {
	newStatus, ok := catalog.StatusValue(status)
	if !ok {
		return nil, domain.NewValidation(fmt.Sprintf("unknown status %q", status))
	}

	unlock := s.locks.lock(id)
	defer unlock()

	l, err := s.db.Lead.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFound("lead", id)
		}
		return nil, domain.NewStoreFailure("get lead", err)
	}

	oldStatus := string(l.Status)
	now := s.now()
	activity := models.ActivityLog{
		ID:          newUID(),
		Type:        models.ActivityStatusChange,
		Description: fmt.Sprintf("Status changed: %s → %s", catalog.StatusLabel(oldStatus), catalog.StatusLabel(newStatus)),
		Timestamp:   now,
		ActorID:     fmt.Sprintf("%d", l.AssignedTo),
		ActorName:   l.AssignedToName,
	}

	updated, err := s.db.Lead.UpdateOneID(id).
		SetStatus(entlead.Status(newStatus)).
		SetActivities(prepend(l.Activities, activity)).
		SetLastActivity(now).
		Save(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("update lead status", err)
	}

	s.metrics.RecordLeadMutation("status_change")
	s.invalidateStats(ctx)

	resp := s.toResponse(updated)
	return &resp, nil
}

// Reassign hands a lead to another executive. An unknown executive leaves
// the lead untouched.
func (s *Service) Reassign(ctx context.Context, id, executiveID int) (*models.LeadResponse, error) {
	exec, err := s.assigner.GetExecutive(ctx, executiveID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(id)
	defer unlock()

	l, err := s.db.Lead.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFound("lead", id)
		}
		return nil, domain.NewStoreFailure("get lead", err)
	}

	now := s.now()
	activity := models.ActivityLog{
		ID:          newUID(),
		Type:        models.ActivityAssigned,
		Description: fmt.Sprintf("Reassigned to %s", exec.Name),
		Timestamp:   now,
		ActorID:     fmt.Sprintf("%d", exec.ID),
		ActorName:   exec.Name,
	}

	updated, err := s.db.Lead.UpdateOneID(id).
		SetAssignedTo(exec.ID).
		SetAssignedToName(exec.Name).
		SetActivities(prepend(l.Activities, activity)).
		SetLastActivity(now).
		Save(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("reassign lead", err)
	}

	s.metrics.RecordLeadMutation("assign")
	s.invalidateStats(ctx)

	resp := s.toResponse(updated)
	return &resp, nil
}

// LogCall records a call against a lead. The AI summary fields start empty
// and are attached later, off the write path.
func (s *Service) LogCall(ctx context.Context, id int, req models.LogCallRequest) (*models.LeadResponse, error) {
	if req.Note == "" {
		return nil, domain.NewValidation("call note is required")
	}
	if !models.ValidOutcome(req.Outcome) {
		return nil, domain.NewValidation(fmt.Sprintf("unknown call outcome %q", req.Outcome))
	}

	unlock := s.locks.lock(id)
	defer unlock()

	l, err := s.db.Lead.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFound("lead", id)
		}
		return nil, domain.NewStoreFailure("get lead", err)
	}

	now := s.now()
	call := models.CallLog{
		ID:        newUID(),
		Note:      req.Note,
		Outcome:   models.CallOutcome(req.Outcome),
		Timestamp: now,
		ActorID:   fmt.Sprintf("%d", l.AssignedTo),
		ActorName: l.AssignedToName,
	}
	activity := models.ActivityLog{
		ID:          newUID(),
		Type:        models.ActivityCallLogged,
		Description: fmt.Sprintf("Called — %s: %s", req.Outcome, truncate(req.Note)),
		Timestamp:   now,
		ActorID:     fmt.Sprintf("%d", l.AssignedTo),
		ActorName:   l.AssignedToName,
	}

	updated, err := s.db.Lead.UpdateOneID(id).
		SetCallLogs(prependCall(l.CallLogs, call)).
		SetActivities(prepend(l.Activities, activity)).
		SetLastActivity(now).
		Save(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("log call", err)
	}

	s.metrics.RecordLeadMutation("call")
	s.invalidateStats(ctx)

	resp := s.toResponse(updated)
	return &resp, nil
}

// AddNote appends a free-form note to a lead.
func (s *Service) AddNote(ctx context.Context, id int, note string) (*models.LeadResponse, error) {
	if note == "" {
		return nil, domain.NewValidation("note is required")
	}

	unlock := s.locks.lock(id)
	defer unlock()

	l, err := s.db.Lead.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFound("lead", id)
		}
		return nil, domain.NewStoreFailure("get lead", err)
	}

	now := s.now()
	activity := models.ActivityLog{
		ID:          newUID(),
		Type:        models.ActivityNoteAdded,
		Description: fmt.Sprintf("Note added: %s", truncate(note)),
		Timestamp:   now,
		ActorID:     fmt.Sprintf("%d", l.AssignedTo),
		ActorName:   l.AssignedToName,
	}

	notes := append([]string{note}, l.Notes...)

	updated, err := s.db.Lead.UpdateOneID(id).
		SetNotes(notes).
		SetActivities(prepend(l.Activities, activity)).
		SetLastActivity(now).
		Save(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("add note", err)
	}

	s.metrics.RecordLeadMutation("note")
	s.invalidateStats(ctx)

	resp := s.toResponse(updated)
	return &resp, nil
}

// ScheduleCallback records the intent to call back. There is no reminder
// entity; the activity entry is the whole feature.
func (s *Service) ScheduleCallback(ctx context.Context, id int, date, at string) (*models.LeadResponse, error) {
	if date == "" || at == "" {
		return nil, domain.NewValidation("callback date and time are required")
	}

	unlock := s.locks.lock(id)
	defer unlock()

	l, err := s.db.Lead.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFound("lead", id)
		}
		return nil, domain.NewStoreFailure("get lead", err)
	}

	now := s.now()
	activity := models.ActivityLog{
		ID:          newUID(),
		Type:        models.ActivityCallbackScheduled,
		Description: fmt.Sprintf("Callback scheduled for %s at %s", date, at),
		Timestamp:   now,
		ActorID:     fmt.Sprintf("%d", l.AssignedTo),
		ActorName:   l.AssignedToName,
	}

	updated, err := s.db.Lead.UpdateOneID(id).
		SetActivities(prepend(l.Activities, activity)).
		SetLastActivity(now).
		Save(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("schedule callback", err)
	}

	s.metrics.RecordLeadMutation("callback")
	s.invalidateStats(ctx)

	resp := s.toResponse(updated)
	return &resp, nil
}

// Delete removes a lead. Only leads in a terminal negative status can go,
// and the audit record is written before the row is removed.
func (s *Service) Delete(ctx context.Context, id int, reason string) error {
	if reason == "" {
		return domain.NewValidation("deletion reason is required")
	}

	unlock := s.locks.lock(id)
	defer unlock()

	l, err := s.db.Lead.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFound("lead", id)
		}
		return domain.NewStoreFailure("get lead", err)
	}

	if !catalog.TerminalNegative(string(l.Status)) {
		return domain.NewValidation("only leads marked Not Interested or Closed Lost can be deleted")
	}

	if err := s.auditor.LogLeadDeletion(ctx, audit.DeletionRecord{
		LeadID: l.ID,
		Name:   l.Name,
		Source: catalog.SourceLabel(string(l.Source)),
		Status: catalog.StatusLabel(string(l.Status)),
		Reason: reason,
	}); err != nil {
		return err
	}

	if err := s.db.Lead.DeleteOneID(id).Exec(ctx); err != nil {
		return domain.NewStoreFailure("delete lead", err)
	}

	s.metrics.RecordLeadDeleted()
	s.invalidateStats(ctx)
	s.log.Info("lead deleted", "lead_id", id, "reason", reason)
	return nil
}

// BulkUpdateStatus applies a status change to each lead independently.
// There is no batch atomicity; each failure is reported per lead.
func (s *Service) BulkUpdateStatus(ctx context.Context, ids []int, status string) []models.BulkResult {
	results := make([]models.BulkResult, 0, len(ids))
	for _, id := range ids {
		_, err := s.UpdateStatus(ctx, id, status)
		results = append(results, toBulkResult(id, err))
	}
	return results
}

// BulkReassign reassigns each lead independently.
func (s *Service) BulkReassign(ctx context.Context, ids []int, executiveID int) []models.BulkResult {
	results := make([]models.BulkResult, 0, len(ids))
	for _, id := range ids {
		_, err := s.Reassign(ctx, id, executiveID)
		results = append(results, toBulkResult(id, err))
	}
	return results
}

// AttachCallSummary stores AI output on an existing call log entry. It does
// not append an activity and does not bump last_activity; the summary is
// decoration, not a touch.
func (s *Service) AttachCallSummary(ctx context.Context, leadID int, callLogID, summary, nextAction string) error {
	unlock := s.locks.lock(leadID)
	defer unlock()

	l, err := s.db.Lead.Get(ctx, leadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFound("lead", leadID)
		}
		return domain.NewStoreFailure("get lead", err)
	}

	found := false
	calls := make([]models.CallLog, len(l.CallLogs))
	copy(calls, l.CallLogs)
	for i := range calls {
		if calls[i].ID == callLogID {
			calls[i].AISummary = summary
			calls[i].AINextAction = nextAction
			found = true
			break
		}
	}
	if !found {
		return domain.NewNotFound("call log", callLogID)
	}

	if _, err := s.db.Lead.UpdateOneID(leadID).
		SetCallLogs(calls).
		Save(ctx); err != nil {
		return domain.NewStoreFailure("attach call summary", err)
	}
	return nil
}

func (s *Service) toResponse(l *ent.Lead) models.LeadResponse {
	return models.LeadResponse{
		ID:             l.ID,
		Name:           l.Name,
		Phone:          l.Phone,
		Email:          l.Email,
		Source:         catalog.SourceLabel(string(l.Source)),
		CarInterest:    catalog.InterestLabel(string(l.CarInterest)),
		CarModel:       l.CarModel,
		Budget:         l.Budget,
		CampaignName:   l.CampaignName,
		TestDriveDate:  l.TestDriveDate,
		Status:         catalog.StatusLabel(string(l.Status)),
		AssignedTo:     l.AssignedTo,
		AssignedToName: l.AssignedToName,
		CreatedAt:      l.CreatedAt,
		LastActivity:   l.LastActivity,
		Activities:     l.Activities,
		CallLogs:       l.CallLogs,
		Notes:          l.Notes,
		IsStale:        s.sla.IsStale(string(l.Status), l.CreatedAt, s.now()),
	}
}

// invalidateStats drops cached dashboard aggregates. Best effort: a cold
// cache only costs a recompute.
func (s *Service) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, statsCachePattern); err != nil {
		s.log.Warn("failed to invalidate dashboard cache", "error", err)
	}
}

func toBulkResult(id int, err error) models.BulkResult {
	if err != nil {
		return models.BulkResult{LeadID: id, Error: err.Error()}
	}
	return models.BulkResult{LeadID: id, OK: true}
}

func prepend(activities []models.ActivityLog, a models.ActivityLog) []models.ActivityLog {
	return append([]models.ActivityLog{a}, activities...)
}

func prependCall(calls []models.CallLog, c models.CallLog) []models.CallLog {
	return append([]models.CallLog{c}, calls...)
}

// truncate shortens long free text for activity descriptions.
func truncate(s string) string {
	r := []rune(s)
	if len(r) <= 60 {
		return s
	}
	return string(r[:60]) + "..."
}

func newUID() string {
	return uuid.New().String()
}
