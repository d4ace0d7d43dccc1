// Package testdata synthesizes realistic dealership leads for demo and
// development environments.
package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/hsrmotors/leadpulse/ent"
	entlead "github.com/hsrmotors/leadpulse/ent/lead"
	"github.com/hsrmotors/leadpulse/ent/salesexecutive"
	"github.com/hsrmotors/leadpulse/pkg/catalog"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

// Arrival traffic skews towards paid social; walk-ins are the rarest.
var sourceWeights = map[string]int{
	catalog.SourceFacebook: 28,
	catalog.SourceGoogle:   21,
	catalog.SourceTwitter:  9,
	catalog.SourceWebsite:  14,
	catalog.SourceOffline:  8,
}

var statusWeights = map[string]int{
	catalog.StatusNew:           18,
	catalog.StatusContacted:     25,
	catalog.StatusQualified:     17,
	catalog.StatusNotInterested: 12,
	catalog.StatusClosedWon:     8,
}

var firstNames = []string{
	"Aarav", "Vivaan", "Aditya", "Arjun", "Sai", "Reyansh", "Krishna", "Ishaan",
	"Ananya", "Diya", "Saanvi", "Aadhya", "Kiara", "Myra", "Anika", "Navya",
	"Rahul", "Karan", "Nikhil", "Pooja", "Meera", "Divya", "Suresh", "Ramesh",
}

var lastNames = []string{
	"Sharma", "Verma", "Gupta", "Patel", "Reddy", "Nair", "Iyer", "Menon",
	"Singh", "Kumar", "Joshi", "Desai", "Kulkarni", "Chopra", "Malhotra", "Rao",
}

// Generator seeds the lead table with synthetic records.
type Generator struct {
	db    *ent.Client
	faker *gofakeit.Faker
	rng   *rand.Rand
	now   func() time.Time
}

// NewGenerator creates a generator. A fixed seed gives reproducible data.
func NewGenerator(db *ent.Client, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		db:    db,
		faker: gofakeit.New(seed),
		rng:   rand.New(rand.NewSource(seed)),
		now:   time.Now,
	}
}

// SeedIfEmpty inserts count synthetic leads when the table has none.
// Returns how many were created.
func (g *Generator) SeedIfEmpty(ctx context.Context, count int) (int, error) {
	existing, err := g.db.Lead.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	execs, err := g.db.SalesExecutive.Query().
		Order(ent.Asc(salesexecutive.FieldID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load roster: %w", err)
	}
	if len(execs) == 0 {
		return 0, fmt.Errorf("cannot seed leads without a roster")
	}

	assigned := make(map[int]int, len(execs))
	for i := 0; i < count; i++ {
		exec := execs[i%len(execs)]
		if err := g.insertLead(ctx, exec); err != nil {
			return i, err
		}
		assigned[exec.ID]++
	}

	for id, n := range assigned {
		if _, err := g.db.SalesExecutive.UpdateOneID(id).
			AddLeadsAssigned(n).
			Save(ctx); err != nil {
			return count, fmt.Errorf("failed to update assignment counters: %w", err)
		}
	}

	return count, nil
}

func (g *Generator) insertLead(ctx context.Context, exec *ent.SalesExecutive) error {
	source := g.pickWeighted(sourceWeights)
	status := g.pickWeighted(statusWeights)
	interest := catalog.CarInterests[g.rng.Intn(len(catalog.CarInterests))]
	modelPool := catalog.CarModels[interest]
	name := g.personName()

	// Spread creation over the trailing 30 days plus the prior month so the
	// month-over-month comparisons have something to compare.
	ageHours := g.rng.Intn(60 * 24)
	createdAt := g.now().Add(-time.Duration(ageHours) * time.Hour)

	trail, lastActivity := g.trail(source, status, createdAt, exec)

	builder := g.db.Lead.Create().
		SetName(name).
		SetPhone(g.phone()).
		SetEmail(g.email(name)).
		SetSource(entlead.Source(source)).
		SetCarInterest(entlead.CarInterest(interest)).
		SetCarModel(modelPool[g.rng.Intn(len(modelPool))]).
		SetBudget(catalog.Budgets[g.rng.Intn(len(catalog.Budgets))]).
		SetStatus(entlead.Status(status)).
		SetAssignedTo(exec.ID).
		SetAssignedToName(exec.Name).
		SetActivities(trail.activities).
		SetCallLogs(trail.calls).
		SetNotes([]string{}).
		SetCreatedAt(createdAt).
		SetLastActivity(lastActivity)

	if source == catalog.SourceFacebook || source == catalog.SourceGoogle {
		builder.SetCampaignName(catalog.Campaigns[g.rng.Intn(len(catalog.Campaigns))])
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to insert synthetic lead: %w", err)
	}
	return nil
}

type syntheticTrail struct {
	activities []models.ActivityLog
	calls      []models.CallLog
}

// trail builds a backdated activity history consistent with the final
// status: each pipeline step happens some hours after the previous one.
func (g *Generator) trail(source, status string, createdAt time.Time, exec *ent.SalesExecutive) (syntheticTrail, time.Time) {
	actorID := fmt.Sprintf("%d", exec.ID)

	activities := []models.ActivityLog{{
		ID:          uuid.New().String(),
		Type:        models.ActivityCreated,
		Description: "Lead created from " + catalog.SourceLabel(source),
		Timestamp:   createdAt,
		ActorID:     "system",
		ActorName:   "System",
	}}
	var calls []models.CallLog

	path := statusPath(status)
	at := createdAt
	prev := catalog.StatusNew
	for _, next := range path {
		at = at.Add(time.Duration(2+g.rng.Intn(28)) * time.Hour)
		activities = append([]models.ActivityLog{{
			ID:          uuid.New().String(),
			Type:        models.ActivityStatusChange,
			Description: fmt.Sprintf("Status changed: %s → %s", catalog.StatusLabel(prev), catalog.StatusLabel(next)),
			Timestamp:   at,
			ActorID:     actorID,
			ActorName:   exec.Name,
		}}, activities...)
		prev = next
	}

	if len(path) > 0 {
		callAt := createdAt.Add(time.Duration(1+g.rng.Intn(12)) * time.Hour)
		note := g.callNote()
		calls = append(calls, models.CallLog{
			ID:        uuid.New().String(),
			Note:      note,
			Outcome:   models.OutcomeAnswered,
			Timestamp: callAt,
			ActorID:   actorID,
			ActorName: exec.Name,
		})
		activities = append([]models.ActivityLog{{
			ID:          uuid.New().String(),
			Type:        models.ActivityCallLogged,
			Description: fmt.Sprintf("Called — Answered: %s", note),
			Timestamp:   callAt,
			ActorID:     actorID,
			ActorName:   exec.Name,
		}}, activities...)
	}

	// Keep newest-first ordering after the interleaved inserts.
	sortActivitiesDesc(activities)
	return syntheticTrail{activities: activities, calls: calls}, activities[0].Timestamp
}

// statusPath lists the transitions that lead to the final status.
func statusPath(status string) []string {
	switch status {
	case catalog.StatusContacted:
		return []string{catalog.StatusContacted}
	case catalog.StatusQualified:
		return []string{catalog.StatusContacted, catalog.StatusQualified}
	case catalog.StatusNotInterested:
		return []string{catalog.StatusContacted, catalog.StatusNotInterested}
	case catalog.StatusClosedWon:
		return []string{catalog.StatusContacted, catalog.StatusQualified, catalog.StatusClosedWon}
	case catalog.StatusClosedLost:
		return []string{catalog.StatusContacted, catalog.StatusClosedLost}
	default:
		return nil
	}
}

func sortActivitiesDesc(activities []models.ActivityLog) {
	for i := 1; i < len(activities); i++ {
		for j := i; j > 0 && activities[j].Timestamp.After(activities[j-1].Timestamp); j-- {
			activities[j], activities[j-1] = activities[j-1], activities[j]
		}
	}
}

// NewArrival synthesizes the payload for a simulated inbound lead.
func (g *Generator) NewArrival() models.CreateLeadRequest {
	source := g.pickWeighted(sourceWeights)
	interest := catalog.CarInterests[g.rng.Intn(len(catalog.CarInterests))]
	name := g.personName()

	req := models.CreateLeadRequest{
		Name:        name,
		Phone:       g.phone(),
		Email:       g.email(name),
		Source:      source,
		CarInterest: interest,
	}
	if source == catalog.SourceFacebook || source == catalog.SourceGoogle {
		req.CampaignName = catalog.Campaigns[g.rng.Intn(len(catalog.Campaigns))]
	}
	return req
}

func (g *Generator) pickWeighted(weights map[string]int) string {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := g.rng.Intn(total)
	// Walk in catalog order so the draw is deterministic for a fixed seed.
	for _, key := range append(append([]string{}, catalog.Sources...), catalog.Statuses...) {
		w, ok := weights[key]
		if !ok {
			continue
		}
		if n < w {
			return key
		}
		n -= w
	}
	// Unreachable with non-empty weights.
	for key := range weights {
		return key
	}
	return ""
}

func (g *Generator) personName() string {
	return firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))]
}

func (g *Generator) phone() string {
	return fmt.Sprintf("+919%09d", g.rng.Intn(1_000_000_000))
}

func (g *Generator) email(name string) string {
	user := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s%d@%s", user, g.rng.Intn(99), g.faker.RandomString([]string{"gmail.com", "yahoo.in", "outlook.com"}))
}

func (g *Generator) callNote() string {
	return g.faker.RandomString([]string{
		"Discussed on-road price and exchange value",
		"Asked for EMI options and down payment details",
		"Wants a weekend test drive with family",
		"Comparing with a competing model, needs brochure",
		"Interested in festive season discount",
		"Requested callback after salary credit next week",
	})
}
