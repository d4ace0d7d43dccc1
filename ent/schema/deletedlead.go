package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeletedLead holds the schema definition for the DeletedLead entity.
// Insert-only audit trail of lead deletions.
type DeletedLead struct {
	ent.Schema
}

// Fields of the DeletedLead.
func (DeletedLead) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id"),
		field.String("lead_name"),
		field.String("lead_source"),
		field.String("lead_status"),
		field.String("reason").
			NotEmpty(),
		field.Time("deleted_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DeletedLead.
func (DeletedLead) Edges() []ent.Edge {
	return nil
}

// Indexes of the DeletedLead.
func (DeletedLead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deleted_at"),
	}
}
