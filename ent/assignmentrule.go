// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hsrmotors/leadpulse/ent/assignmentrule"
)

// AssignmentRule is the model entity for the AssignmentRule schema.
type AssignmentRule struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// CarInterest holds the value of the "car_interest" field.
	CarInterest string `json:"car_interest,omitempty"`
	// AssignToTeam holds the value of the "assign_to_team" field.
	AssignToTeam string `json:"assign_to_team,omitempty"`
	// RoundRobin holds the value of the "round_robin" field.
	RoundRobin bool `json:"round_robin,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssignmentRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assignmentrule.FieldRoundRobin:
			values[i] = new(sql.NullBool)
		case assignmentrule.FieldID:
			values[i] = new(sql.NullInt64)
		case assignmentrule.FieldSource, assignmentrule.FieldCarInterest, assignmentrule.FieldAssignToTeam:
			values[i] = new(sql.NullString)
		case assignmentrule.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssignmentRule fields.
func (_m *AssignmentRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assignmentrule.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assignmentrule.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case assignmentrule.FieldCarInterest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field car_interest", values[i])
			} else if value.Valid {
				_m.CarInterest = value.String
			}
		case assignmentrule.FieldAssignToTeam:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assign_to_team", values[i])
			} else if value.Valid {
				_m.AssignToTeam = value.String
			}
		case assignmentrule.FieldRoundRobin:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field round_robin", values[i])
			} else if value.Valid {
				_m.RoundRobin = value.Bool
			}
		case assignmentrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssignmentRule.
// This includes values selected through modifiers, order, etc.
func (_m *AssignmentRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssignmentRule.
// Note that you need to call AssignmentRule.Unwrap() before calling this method if this AssignmentRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssignmentRule) Update() *AssignmentRuleUpdateOne {
	return NewAssignmentRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssignmentRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssignmentRule) Unwrap() *AssignmentRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssignmentRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssignmentRule) String() string {
	var builder strings.Builder
	builder.WriteString("AssignmentRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("car_interest=")
	builder.WriteString(_m.CarInterest)
	builder.WriteString(", ")
	builder.WriteString("assign_to_team=")
	builder.WriteString(_m.AssignToTeam)
	builder.WriteString(", ")
	builder.WriteString("round_robin=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundRobin))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AssignmentRules is a parsable slice of AssignmentRule.
type AssignmentRules []*AssignmentRule
