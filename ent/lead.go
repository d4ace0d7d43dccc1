// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hsrmotors/leadpulse/ent/lead"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

// Lead is the model entity for the Lead schema.
type Lead struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Phone holds the value of the "phone" field.
	Phone string `json:"phone,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Source holds the value of the "source" field.
	Source lead.Source `json:"source,omitempty"`
	// CarInterest holds the value of the "car_interest" field.
	CarInterest lead.CarInterest `json:"car_interest,omitempty"`
	// CarModel holds the value of the "car_model" field.
	CarModel string `json:"car_model,omitempty"`
	// Budget holds the value of the "budget" field.
	Budget string `json:"budget,omitempty"`
	// CampaignName holds the value of the "campaign_name" field.
	CampaignName string `json:"campaign_name,omitempty"`
	// TestDriveDate holds the value of the "test_drive_date" field.
	TestDriveDate string `json:"test_drive_date,omitempty"`
	// Status holds the value of the "status" field.
	Status lead.Status `json:"status,omitempty"`
	// AssignedTo holds the value of the "assigned_to" field.
	AssignedTo int `json:"assigned_to,omitempty"`
	// AssignedToName holds the value of the "assigned_to_name" field.
	AssignedToName string `json:"assigned_to_name,omitempty"`
	// Activities holds the value of the "activities" field.
	Activities []models.ActivityLog `json:"activities,omitempty"`
	// CallLogs holds the value of the "call_logs" field.
	CallLogs []models.CallLog `json:"call_logs,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes []string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastActivity holds the value of the "last_activity" field.
	LastActivity time.Time `json:"last_activity,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lead) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lead.FieldActivities, lead.FieldCallLogs, lead.FieldNotes:
			values[i] = new([]byte)
		case lead.FieldID, lead.FieldAssignedTo:
			values[i] = new(sql.NullInt64)
		case lead.FieldName, lead.FieldPhone, lead.FieldEmail, lead.FieldSource, lead.FieldCarInterest, lead.FieldCarModel, lead.FieldBudget, lead.FieldCampaignName, lead.FieldTestDriveDate, lead.FieldStatus, lead.FieldAssignedToName:
			values[i] = new(sql.NullString)
		case lead.FieldCreatedAt, lead.FieldLastActivity:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lead fields.
func (_m *Lead) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lead.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lead.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case lead.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case lead.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case lead.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = lead.Source(value.String)
			}
		case lead.FieldCarInterest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field car_interest", values[i])
			} else if value.Valid {
				_m.CarInterest = lead.CarInterest(value.String)
			}
		case lead.FieldCarModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field car_model", values[i])
			} else if value.Valid {
				_m.CarModel = value.String
			}
		case lead.FieldBudget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field budget", values[i])
			} else if value.Valid {
				_m.Budget = value.String
			}
		case lead.FieldCampaignName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_name", values[i])
			} else if value.Valid {
				_m.CampaignName = value.String
			}
		case lead.FieldTestDriveDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_drive_date", values[i])
			} else if value.Valid {
				_m.TestDriveDate = value.String
			}
		case lead.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = lead.Status(value.String)
			}
		case lead.FieldAssignedTo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to", values[i])
			} else if value.Valid {
				_m.AssignedTo = int(value.Int64)
			}
		case lead.FieldAssignedToName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to_name", values[i])
			} else if value.Valid {
				_m.AssignedToName = value.String
			}
		case lead.FieldActivities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field activities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Activities); err != nil {
					return fmt.Errorf("unmarshal field activities: %w", err)
				}
			}
		case lead.FieldCallLogs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field call_logs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CallLogs); err != nil {
					return fmt.Errorf("unmarshal field call_logs: %w", err)
				}
			}
		case lead.FieldNotes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Notes); err != nil {
					return fmt.Errorf("unmarshal field notes: %w", err)
				}
			}
		case lead.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lead.FieldLastActivity:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity", values[i])
			} else if value.Valid {
				_m.LastActivity = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lead.
// This includes values selected through modifiers, order, etc.
func (_m *Lead) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Lead.
// Note that you need to call Lead.Unwrap() before calling this method if this Lead
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lead) Update() *LeadUpdateOne {
	return NewLeadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lead entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lead) Unwrap() *Lead {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lead is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lead) String() string {
	var builder strings.Builder
	builder.WriteString("Lead(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(fmt.Sprintf("%v", _m.Source))
	builder.WriteString(", ")
	builder.WriteString("car_interest=")
	builder.WriteString(fmt.Sprintf("%v", _m.CarInterest))
	builder.WriteString(", ")
	builder.WriteString("car_model=")
	builder.WriteString(_m.CarModel)
	builder.WriteString(", ")
	builder.WriteString("budget=")
	builder.WriteString(_m.Budget)
	builder.WriteString(", ")
	builder.WriteString("campaign_name=")
	builder.WriteString(_m.CampaignName)
	builder.WriteString(", ")
	builder.WriteString("test_drive_date=")
	builder.WriteString(_m.TestDriveDate)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("assigned_to=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignedTo))
	builder.WriteString(", ")
	builder.WriteString("assigned_to_name=")
	builder.WriteString(_m.AssignedToName)
	builder.WriteString(", ")
	builder.WriteString("activities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Activities))
	builder.WriteString(", ")
	builder.WriteString("call_logs=")
	builder.WriteString(fmt.Sprintf("%v", _m.CallLogs))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Notes))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_activity=")
	builder.WriteString(_m.LastActivity.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Leads is a parsable slice of Lead.
type Leads []*Lead
