package models

// CreateLeadRequest is the payload for creating a lead. Omitted fields fall
// back to walk-in defaults.
type CreateLeadRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"omitempty,email"`
	Source        string `json:"source"`
	CarInterest   string `json:"car_interest"`
	CarModel      string `json:"car_model"`
	Budget        string `json:"budget"`
	CampaignName  string `json:"campaign_name"`
	TestDriveDate string `json:"test_drive_date"`
}

// UpdateStatusRequest moves a lead to a new pipeline status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignRequest reassigns a lead to another executive.
type AssignRequest struct {
	ExecutiveID int `json:"executive_id" validate:"required,gt=0"`
}

// LogCallRequest records a call against a lead.
type LogCallRequest struct {
	Note    string `json:"note" validate:"required"`
	Outcome string `json:"outcome" validate:"required"`
}

// AddNoteRequest appends a free-form note to a lead.
type AddNoteRequest struct {
	Note string `json:"note" validate:"required"`
}

// CallbackRequest schedules a callback on a lead.
type CallbackRequest struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

// DeleteLeadRequest carries the mandatory deletion reason.
type DeleteLeadRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// BulkStatusRequest updates the status of several leads at once.
type BulkStatusRequest struct {
	LeadIDs []int  `json:"lead_ids" validate:"required,min=1"`
	Status  string `json:"status" validate:"required"`
}

// BulkAssignRequest reassigns several leads at once.
type BulkAssignRequest struct {
	LeadIDs     []int `json:"lead_ids" validate:"required,min=1"`
	ExecutiveID int   `json:"executive_id" validate:"required,gt=0"`
}

// SummarizeCallRequest asks for an AI summary of a call log entry.
type SummarizeCallRequest struct {
	CallLogID string `json:"call_log_id" validate:"required"`
}

// AskRequest is a natural-language question about the dashboard.
type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

// RuleRequest creates an assignment rule. Source and CarInterest are
// optional match criteria; at least one must be present.
type RuleRequest struct {
	Source       string `json:"source"`
	CarInterest  string `json:"car_interest"`
	AssignToTeam string `json:"assign_to_team" validate:"required"`
	RoundRobin   *bool  `json:"round_robin"`
}

// BulkResult reports the outcome of one lead in a bulk operation.
type BulkResult struct {
	LeadID int    `json:"lead_id"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}
