package models

import "time"

// ActivityType enumerates the kinds of entries in a lead's activity trail.
type ActivityType string

const (
	ActivityCreated           ActivityType = "created"
	ActivityStatusChange      ActivityType = "status_change"
	ActivityCallLogged        ActivityType = "call_logged"
	ActivityNoteAdded         ActivityType = "note_added"
	ActivityAssigned          ActivityType = "assigned"
	ActivityCallbackScheduled ActivityType = "callback_scheduled"
)

// CallOutcome enumerates the result of a logged call.
type CallOutcome string

const (
	OutcomeAnswered      CallOutcome = "Answered"
	OutcomeNoResponse    CallOutcome = "No Response"
	OutcomeCallBackLater CallOutcome = "Call Back Later"
)

// ValidOutcome reports whether s is a known call outcome.
func ValidOutcome(s string) bool {
	switch CallOutcome(s) {
	case OutcomeAnswered, OutcomeNoResponse, OutcomeCallBackLater:
		return true
	}
	return false
}

// ActivityLog is one immutable entry in a lead's append-only activity trail.
// Entries are stored newest-first as a JSON column on the lead row.
type ActivityLog struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	ActorID     string       `json:"actor_id"`
	ActorName   string       `json:"actor_name"`
}

// CallLog is one entry in a lead's append-only call history. The AI fields
// are filled in lazily after the write and may stay empty.
type CallLog struct {
	ID           string      `json:"id"`
	Note         string      `json:"note"`
	Outcome      CallOutcome `json:"outcome"`
	Timestamp    time.Time   `json:"timestamp"`
	ActorID      string      `json:"actor_id"`
	ActorName    string      `json:"actor_name"`
	AISummary    string      `json:"ai_summary,omitempty"`
	AINextAction string      `json:"ai_next_action,omitempty"`
}

// LeadResponse is the API shape of a lead. IsStale is derived at read time
// and never persisted.
type LeadResponse struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Phone          string        `json:"phone"`
	Email          string        `json:"email"`
	Source         string        `json:"source"`
	CarInterest    string        `json:"car_interest"`
	CarModel       string        `json:"car_model"`
	Budget         string        `json:"budget"`
	CampaignName   string        `json:"campaign_name,omitempty"`
	TestDriveDate  string        `json:"test_drive_date,omitempty"`
	Status         string        `json:"status"`
	AssignedTo     int           `json:"assigned_to"`
	AssignedToName string        `json:"assigned_to_name"`
	CreatedAt      time.Time     `json:"created_at"`
	LastActivity   time.Time     `json:"last_activity"`
	Activities     []ActivityLog `json:"activities"`
	CallLogs       []CallLog     `json:"call_logs"`
	Notes          []string      `json:"notes"`
	IsStale        bool          `json:"is_stale"`
}

// ErrorResponse is the standard error body for API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
