package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SalesExecutive holds the schema definition for the SalesExecutive entity.
type SalesExecutive struct {
	ent.Schema
}

// Fields of the SalesExecutive.
func (SalesExecutive) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.String("avatar").
			Default(""),
		field.String("email").
			Unique(),
		field.String("phone").
			Default(""),
		field.String("team").
			Optional(),
		field.Int("leads_assigned").
			Default(0).
			NonNegative(),
	}
}

// Edges of the SalesExecutive.
func (SalesExecutive) Edges() []ent.Edge {
	return nil
}
