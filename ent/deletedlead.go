// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hsrmotors/leadpulse/ent/deletedlead"
)

// DeletedLead is the model entity for the DeletedLead schema.
type DeletedLead struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LeadID holds the value of the "lead_id" field.
	LeadID int `json:"lead_id,omitempty"`
	// LeadName holds the value of the "lead_name" field.
	LeadName string `json:"lead_name,omitempty"`
	// LeadSource holds the value of the "lead_source" field.
	LeadSource string `json:"lead_source,omitempty"`
	// LeadStatus holds the value of the "lead_status" field.
	LeadStatus string `json:"lead_status,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt    time.Time `json:"deleted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeletedLead) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deletedlead.FieldID, deletedlead.FieldLeadID:
			values[i] = new(sql.NullInt64)
		case deletedlead.FieldLeadName, deletedlead.FieldLeadSource, deletedlead.FieldLeadStatus, deletedlead.FieldReason:
			values[i] = new(sql.NullString)
		case deletedlead.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeletedLead fields.
func (_m *DeletedLead) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deletedlead.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case deletedlead.FieldLeadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = int(value.Int64)
			}
		case deletedlead.FieldLeadName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lead_name", values[i])
			} else if value.Valid {
				_m.LeadName = value.String
			}
		case deletedlead.FieldLeadSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lead_source", values[i])
			} else if value.Valid {
				_m.LeadSource = value.String
			}
		case deletedlead.FieldLeadStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lead_status", values[i])
			} else if value.Valid {
				_m.LeadStatus = value.String
			}
		case deletedlead.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case deletedlead.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeletedLead.
// This includes values selected through modifiers, order, etc.
func (_m *DeletedLead) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeletedLead.
// Note that you need to call DeletedLead.Unwrap() before calling this method if this DeletedLead
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeletedLead) Update() *DeletedLeadUpdateOne {
	return NewDeletedLeadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeletedLead entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeletedLead) Unwrap() *DeletedLead {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeletedLead is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeletedLead) String() string {
	var builder strings.Builder
	builder.WriteString("DeletedLead(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lead_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadID))
	builder.WriteString(", ")
	builder.WriteString("lead_name=")
	builder.WriteString(_m.LeadName)
	builder.WriteString(", ")
	builder.WriteString("lead_source=")
	builder.WriteString(_m.LeadSource)
	builder.WriteString(", ")
	builder.WriteString("lead_status=")
	builder.WriteString(_m.LeadStatus)
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("deleted_at=")
	builder.WriteString(_m.DeletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DeletedLeads is a parsable slice of DeletedLead.
type DeletedLeads []*DeletedLead
