package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AssignmentRule holds the schema definition for the AssignmentRule entity.
// A rule routes matching inbound leads to a team; empty criteria are
// wildcards.
type AssignmentRule struct {
	ent.Schema
}

// Fields of the AssignmentRule.
func (AssignmentRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("source").
			Optional(),
		field.String("car_interest").
			Optional(),
		field.String("assign_to_team").
			NotEmpty(),
		field.Bool("round_robin").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AssignmentRule.
func (AssignmentRule) Edges() []ent.Edge {
	return nil
}
