// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hsrmotors/leadpulse/ent/salesexecutive"
)

// SalesExecutive is the model entity for the SalesExecutive schema.
type SalesExecutive struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Avatar holds the value of the "avatar" field.
	Avatar string `json:"avatar,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// Team holds the value of the "team" field.
	Team string `json:"team,omitempty"`
	// LeadsAssigned holds the value of the "leads_assigned" field.
	LeadsAssigned int `json:"leads_assigned,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SalesExecutive) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case salesexecutive.FieldID, salesexecutive.FieldLeadsAssigned:
			values[i] = new(sql.NullInt64)
		case salesexecutive.FieldName, salesexecutive.FieldAvatar, salesexecutive.FieldEmail, salesexecutive.FieldPhone, salesexecutive.FieldTeam:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SalesExecutive fields.
func (_m *SalesExecutive) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case salesexecutive.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case salesexecutive.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case salesexecutive.FieldAvatar:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar", values[i])
			} else if value.Valid {
				_m.Avatar = value.String
			}
		case salesexecutive.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case salesexecutive.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case salesexecutive.FieldTeam:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field team", values[i])
			} else if value.Valid {
				_m.Team = value.String
			}
		case salesexecutive.FieldLeadsAssigned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field leads_assigned", values[i])
			} else if value.Valid {
				_m.LeadsAssigned = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SalesExecutive.
// This includes values selected through modifiers, order, etc.
func (_m *SalesExecutive) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SalesExecutive.
// Note that you need to call SalesExecutive.Unwrap() before calling this method if this SalesExecutive
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SalesExecutive) Update() *SalesExecutiveUpdateOne {
	return NewSalesExecutiveClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SalesExecutive entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SalesExecutive) Unwrap() *SalesExecutive {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SalesExecutive is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SalesExecutive) String() string {
	var builder strings.Builder
	builder.WriteString("SalesExecutive(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("avatar=")
	builder.WriteString(_m.Avatar)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("team=")
	builder.WriteString(_m.Team)
	builder.WriteString(", ")
	builder.WriteString("leads_assigned=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadsAssigned))
	builder.WriteByte(')')
	return builder.String()
}

// SalesExecutives is a parsable slice of SalesExecutive.
type SalesExecutives []*SalesExecutive
