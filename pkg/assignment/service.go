// Package assignment routes inbound leads to sales executives.
package assignment

import (
	"context"
	"fmt"
	"sync"

	"github.com/hsrmotors/leadpulse/ent"
	"github.com/hsrmotors/leadpulse/ent/assignmentrule"
	"github.com/hsrmotors/leadpulse/ent/salesexecutive"
	"github.com/hsrmotors/leadpulse/pkg/catalog"
	"github.com/hsrmotors/leadpulse/pkg/domain"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

// Service picks an executive for each new lead. A matching assignment rule
// routes the lead into the rule's team; otherwise the whole roster is used.
// Round-robin cursors live in memory and reset on restart.
type Service struct {
	db *ent.Client

	mu          sync.Mutex
	cursor      int
	teamCursors map[string]int
}

// NewService creates a new assignment service.
func NewService(db *ent.Client) *Service {
	return &Service{
		db:          db,
		teamCursors: make(map[string]int),
	}
}

type rosterMember struct {
	Name   string
	Avatar string
	Email  string
	Phone  string
	Team   string
}

var defaultRoster = []rosterMember{
	{Name: "Rohan Sharma", Avatar: "RS", Email: "rohan.sharma@hsrmotors.com", Phone: "+91 98100 11001", Team: "showroom"},
	{Name: "Priya Nair", Avatar: "PN", Email: "priya.nair@hsrmotors.com", Phone: "+91 98100 11002", Team: "digital"},
	{Name: "Amit Patel", Avatar: "AP", Email: "amit.patel@hsrmotors.com", Phone: "+91 98100 11003", Team: "showroom"},
	{Name: "Sneha Reddy", Avatar: "SR", Email: "sneha.reddy@hsrmotors.com", Phone: "+91 98100 11004", Team: "digital"},
	{Name: "Vikram Singh", Avatar: "VS", Email: "vikram.singh@hsrmotors.com", Phone: "+91 98100 11005", Team: "premium"},
}

// SeedRoster inserts the default executive roster if none exists yet.
func (s *Service) SeedRoster(ctx context.Context) error {
	count, err := s.db.SalesExecutive.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count executives: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, m := range defaultRoster {
		if _, err := s.db.SalesExecutive.Create().
			SetName(m.Name).
			SetAvatar(m.Avatar).
			SetEmail(m.Email).
			SetPhone(m.Phone).
			SetTeam(m.Team).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to seed executive %s: %w", m.Name, err)
		}
	}
	return nil
}

// AssignExecutive picks the executive for a new lead with the given source
// and car interest, and bumps their cumulative assignment counter.
func (s *Service) AssignExecutive(ctx context.Context, source, carInterest string) (*ent.SalesExecutive, error) {
	rules, err := s.db.AssignmentRule.Query().
		Order(ent.Asc(assignmentrule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("load assignment rules", err)
	}

	var pool []*ent.SalesExecutive
	var team string
	var roundRobin = true

	for _, r := range rules {
		if r.Source != "" && r.Source != source {
			continue
		}
		if r.CarInterest != "" && r.CarInterest != carInterest {
			continue
		}
		members, err := s.db.SalesExecutive.Query().
			Where(salesexecutive.TeamEQ(r.AssignToTeam)).
			Order(ent.Asc(salesexecutive.FieldID)).
			All(ctx)
		if err != nil {
			return nil, domain.NewStoreFailure("load team roster", err)
		}
		if len(members) == 0 {
			continue
		}
		pool, team, roundRobin = members, r.AssignToTeam, r.RoundRobin
		break
	}

	if len(pool) == 0 {
		all, err := s.db.SalesExecutive.Query().
			Order(ent.Asc(salesexecutive.FieldID)).
			All(ctx)
		if err != nil {
			return nil, domain.NewStoreFailure("load roster", err)
		}
		if len(all) == 0 {
			return nil, domain.NewNotFound("sales executive", "any")
		}
		pool, team = all, ""
	}

	winner := s.pick(pool, team, roundRobin)

	updated, err := s.db.SalesExecutive.UpdateOneID(winner.ID).
		AddLeadsAssigned(1).
		Save(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("update assignment counter", err)
	}
	return updated, nil
}

// pick chooses from pool: round-robin by cursor, or least-loaded when the
// matched rule disables rotation.
func (s *Service) pick(pool []*ent.SalesExecutive, team string, roundRobin bool) *ent.SalesExecutive {
	if !roundRobin {
		winner := pool[0]
		for _, e := range pool[1:] {
			if e.LeadsAssigned < winner.LeadsAssigned {
				winner = e
			}
		}
		return winner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var idx int
	if team == "" {
		idx = s.cursor % len(pool)
		s.cursor++
	} else {
		idx = s.teamCursors[team] % len(pool)
		s.teamCursors[team]++
	}
	return pool[idx]
}

// GetExecutive returns one roster member by id.
func (s *Service) GetExecutive(ctx context.Context, id int) (*ent.SalesExecutive, error) {
	exec, err := s.db.SalesExecutive.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFound("sales executive", id)
		}
		return nil, domain.NewStoreFailure("get executive", err)
	}
	return exec, nil
}

// ListExecutives returns the full roster ordered by id.
func (s *Service) ListExecutives(ctx context.Context) ([]models.ExecutiveResponse, error) {
	execs, err := s.db.SalesExecutive.Query().
		Order(ent.Asc(salesexecutive.FieldID)).
		All(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("list executives", err)
	}

	out := make([]models.ExecutiveResponse, 0, len(execs))
	for _, e := range execs {
		out = append(out, models.ExecutiveResponse{
			ID:            e.ID,
			Name:          e.Name,
			Avatar:        e.Avatar,
			Email:         e.Email,
			Phone:         e.Phone,
			Team:          e.Team,
			LeadsAssigned: e.LeadsAssigned,
		})
	}
	return out, nil
}

// CreateRule stores a new assignment rule. At least one match criterion is
// required.
func (s *Service) CreateRule(ctx context.Context, req models.RuleRequest) (*ent.AssignmentRule, error) {
	if req.Source == "" && req.CarInterest == "" {
		return nil, domain.NewValidation("rule needs a source or car interest to match on")
	}
	if req.AssignToTeam == "" {
		return nil, domain.NewValidation("rule needs a target team")
	}

	create := s.db.AssignmentRule.Create().
		SetAssignToTeam(req.AssignToTeam)
	if req.Source != "" {
		v, ok := catalog.SourceValue(req.Source)
		if !ok {
			return nil, domain.NewValidation(fmt.Sprintf("unknown source %q", req.Source))
		}
		create.SetSource(v)
	}
	if req.CarInterest != "" {
		v, ok := catalog.InterestValue(req.CarInterest)
		if !ok {
			return nil, domain.NewValidation(fmt.Sprintf("unknown car interest %q", req.CarInterest))
		}
		create.SetCarInterest(v)
	}
	if req.RoundRobin != nil {
		create.SetRoundRobin(*req.RoundRobin)
	}

	rule, err := create.Save(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("create assignment rule", err)
	}
	return rule, nil
}

// ListRules returns all assignment rules in match order.
func (s *Service) ListRules(ctx context.Context) ([]*ent.AssignmentRule, error) {
	rules, err := s.db.AssignmentRule.Query().
		Order(ent.Asc(assignmentrule.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewStoreFailure("list assignment rules", err)
	}
	return rules, nil
}

// DeleteRule removes an assignment rule.
func (s *Service) DeleteRule(ctx context.Context, id int) error {
	err := s.db.AssignmentRule.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return domain.NewNotFound("assignment rule", id)
		}
		return domain.NewStoreFailure("delete assignment rule", err)
	}
	return nil
}
