package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/hsrmotors/leadpulse/pkg/models"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.String("phone").
			NotEmpty(),
		field.String("email").
			Default(""),
		field.Enum("source").
			Values("facebook", "google", "twitter", "website", "offline").
			Default("offline"),
		field.Enum("car_interest").
			Values("suv", "sedan", "hatchback", "ev", "luxury", "muv").
			Default("suv"),
		field.String("car_model").
			Default(""),
		field.String("budget").
			Default(""),
		field.String("campaign_name").
			Optional(),
		field.String("test_drive_date").
			Optional(),
		field.Enum("status").
			Values("new", "contacted", "qualified", "not_interested", "closed_won", "closed_lost").
			Default("new"),
		field.Int("assigned_to").
			Default(0),
		field.String("assigned_to_name").
			Default(""),
		field.JSON("activities", []models.ActivityLog{}).
			Default([]models.ActivityLog{}),
		field.JSON("call_logs", []models.CallLog{}).
			Default([]models.CallLog{}),
		field.JSON("notes", []string{}).
			Default([]string{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity").
			Default(time.Now),
	}
}

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return nil
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("source"),
		index.Fields("created_at"),
		index.Fields("assigned_to"),
	}
}
