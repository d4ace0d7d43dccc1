// Package audit keeps the insert-only record of lead deletions.
package audit

import (
	"context"

	"github.com/hsrmotors/leadpulse/ent"
	"github.com/hsrmotors/leadpulse/ent/deletedlead"
	"github.com/hsrmotors/leadpulse/pkg/domain"
)

// Service writes and reads the deletion audit trail.
type Service struct {
	db *ent.Client
}

// NewService creates a new audit service.
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// DeletionRecord is what gets written before a lead row is removed.
type DeletionRecord struct {
	LeadID int
	Name   string
	Source string
	Status string
	Reason string
}

// LogLeadDeletion persists the audit record. Callers must write this BEFORE
// deleting the lead row so a crash can at worst leave an extra audit entry,
// never an unexplained missing lead.
func (s *Service) LogLeadDeletion(ctx context.Context, rec DeletionRecord) error {
	if rec.Reason == "" {
		return domain.NewValidation("deletion reason is required")
	}

	_, err := s.db.DeletedLead.Create().
		SetLeadID(rec.LeadID).
		SetLeadName(rec.Name).
		SetLeadSource(rec.Source).
		SetLeadStatus(rec.Status).
		SetReason(rec.Reason).
		Save(ctx)
	if err != nil {
		return domain.NewStoreFailure("write deletion audit record", err)
	}
	return nil
}

// RecentDeletions returns the latest audit entries, newest first.
func (s *Service) RecentDeletions(ctx context.Context, limit int) ([]*ent.DeletedLead, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := s.db.DeletedLead.Query().
		Order(ent.Desc(deletedlead.FieldDeletedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("list deletion audit records", err)
	}
	return entries, nil
}
