// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hsrmotors/leadpulse/ent/lead"
	"github.com/hsrmotors/leadpulse/ent/predicate"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks    []Hook
	mutation *LeadMutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LeadUpdate) SetName(v string) *LeadUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdate) SetPhone(v string) *LeadUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePhone(v *string) *LeadUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdate) SetEmail(v string) *LeadUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmail(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdate) SetSource(v lead.Source) *LeadUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableSource(v *lead.Source) *LeadUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCarInterest sets the "car_interest" field.
func (_u *LeadUpdate) SetCarInterest(v lead.CarInterest) *LeadUpdate {
	_u.mutation.SetCarInterest(v)
	return _u
}

// SetNillableCarInterest sets the "car_interest" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCarInterest(v *lead.CarInterest) *LeadUpdate {
	if v != nil {
		_u.SetCarInterest(*v)
	}
	return _u
}

// SetCarModel sets the "car_model" field.
func (_u *LeadUpdate) SetCarModel(v string) *LeadUpdate {
	_u.mutation.SetCarModel(v)
	return _u
}

// SetNillableCarModel sets the "car_model" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCarModel(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCarModel(*v)
	}
	return _u
}

// SetBudget sets the "budget" field.
func (_u *LeadUpdate) SetBudget(v string) *LeadUpdate {
	_u.mutation.SetBudget(v)
	return _u
}

// SetNillableBudget sets the "budget" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableBudget(v *string) *LeadUpdate {
	if v != nil {
		_u.SetBudget(*v)
	}
	return _u
}

// SetCampaignName sets the "campaign_name" field.
func (_u *LeadUpdate) SetCampaignName(v string) *LeadUpdate {
	_u.mutation.SetCampaignName(v)
	return _u
}

// SetNillableCampaignName sets the "campaign_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCampaignName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCampaignName(*v)
	}
	return _u
}

// ClearCampaignName clears the value of the "campaign_name" field.
func (_u *LeadUpdate) ClearCampaignName() *LeadUpdate {
	_u.mutation.ClearCampaignName()
	return _u
}

// SetTestDriveDate sets the "test_drive_date" field.
func (_u *LeadUpdate) SetTestDriveDate(v string) *LeadUpdate {
	_u.mutation.SetTestDriveDate(v)
	return _u
}

// SetNillableTestDriveDate sets the "test_drive_date" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableTestDriveDate(v *string) *LeadUpdate {
	if v != nil {
		_u.SetTestDriveDate(*v)
	}
	return _u
}

// ClearTestDriveDate clears the value of the "test_drive_date" field.
func (_u *LeadUpdate) ClearTestDriveDate() *LeadUpdate {
	_u.mutation.ClearTestDriveDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadUpdate) SetStatus(v lead.Status) *LeadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableStatus(v *lead.Status) *LeadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *LeadUpdate) SetAssignedTo(v int) *LeadUpdate {
	_u.mutation.ResetAssignedTo()
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableAssignedTo(v *int) *LeadUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// AddAssignedTo adds value to the "assigned_to" field.
func (_u *LeadUpdate) AddAssignedTo(v int) *LeadUpdate {
	_u.mutation.AddAssignedTo(v)
	return _u
}

// SetAssignedToName sets the "assigned_to_name" field.
func (_u *LeadUpdate) SetAssignedToName(v string) *LeadUpdate {
	_u.mutation.SetAssignedToName(v)
	return _u
}

// SetNillableAssignedToName sets the "assigned_to_name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableAssignedToName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetAssignedToName(*v)
	}
	return _u
}

// SetActivities sets the "activities" field.
func (_u *LeadUpdate) SetActivities(v []models.ActivityLog) *LeadUpdate {
	_u.mutation.SetActivities(v)
	return _u
}

// AppendActivities appends value to the "activities" field.
func (_u *LeadUpdate) AppendActivities(v []models.ActivityLog) *LeadUpdate {
	_u.mutation.AppendActivities(v)
	return _u
}

// SetCallLogs sets the "call_logs" field.
func (_u *LeadUpdate) SetCallLogs(v []models.CallLog) *LeadUpdate {
	_u.mutation.SetCallLogs(v)
	return _u
}

// AppendCallLogs appends value to the "call_logs" field.
func (_u *LeadUpdate) AppendCallLogs(v []models.CallLog) *LeadUpdate {
	_u.mutation.AppendCallLogs(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LeadUpdate) SetNotes(v []string) *LeadUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// AppendNotes appends value to the "notes" field.
func (_u *LeadUpdate) AppendNotes(v []string) *LeadUpdate {
	_u.mutation.AppendNotes(v)
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *LeadUpdate) SetLastActivity(v time.Time) *LeadUpdate {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableLastActivity(v *time.Time) *LeadUpdate {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := lead.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lead.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := lead.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Lead.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CarInterest(); ok {
		if err := lead.CarInterestValidator(v); err != nil {
			return &ValidationError{Name: "car_interest", err: fmt.Errorf(`ent: validator failed for field "Lead.car_interest": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CarInterest(); ok {
		_spec.SetField(lead.FieldCarInterest, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CarModel(); ok {
		_spec.SetField(lead.FieldCarModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Budget(); ok {
		_spec.SetField(lead.FieldBudget, field.TypeString, value)
	}
	if value, ok := _u.mutation.CampaignName(); ok {
		_spec.SetField(lead.FieldCampaignName, field.TypeString, value)
	}
	if _u.mutation.CampaignNameCleared() {
		_spec.ClearField(lead.FieldCampaignName, field.TypeString)
	}
	if value, ok := _u.mutation.TestDriveDate(); ok {
		_spec.SetField(lead.FieldTestDriveDate, field.TypeString, value)
	}
	if _u.mutation.TestDriveDateCleared() {
		_spec.ClearField(lead.FieldTestDriveDate, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(lead.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedTo(); ok {
		_spec.AddField(lead.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedToName(); ok {
		_spec.SetField(lead.FieldAssignedToName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Activities(); ok {
		_spec.SetField(lead.FieldActivities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActivities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldActivities, value)
		})
	}
	if value, ok := _u.mutation.CallLogs(); ok {
		_spec.SetField(lead.FieldCallLogs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCallLogs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldCallLogs, value)
		})
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldNotes, value)
		})
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(lead.FieldLastActivity, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadMutation
}

// SetName sets the "name" field.
func (_u *LeadUpdateOne) SetName(v string) *LeadUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdateOne) SetPhone(v string) *LeadUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePhone(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdateOne) SetEmail(v string) *LeadUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmail(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadUpdateOne) SetSource(v lead.Source) *LeadUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableSource(v *lead.Source) *LeadUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCarInterest sets the "car_interest" field.
func (_u *LeadUpdateOne) SetCarInterest(v lead.CarInterest) *LeadUpdateOne {
	_u.mutation.SetCarInterest(v)
	return _u
}

// SetNillableCarInterest sets the "car_interest" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCarInterest(v *lead.CarInterest) *LeadUpdateOne {
	if v != nil {
		_u.SetCarInterest(*v)
	}
	return _u
}

// SetCarModel sets the "car_model" field.
func (_u *LeadUpdateOne) SetCarModel(v string) *LeadUpdateOne {
	_u.mutation.SetCarModel(v)
	return _u
}

// SetNillableCarModel sets the "car_model" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCarModel(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCarModel(*v)
	}
	return _u
}

// SetBudget sets the "budget" field.
func (_u *LeadUpdateOne) SetBudget(v string) *LeadUpdateOne {
	_u.mutation.SetBudget(v)
	return _u
}

// SetNillableBudget sets the "budget" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableBudget(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetBudget(*v)
	}
	return _u
}

// SetCampaignName sets the "campaign_name" field.
func (_u *LeadUpdateOne) SetCampaignName(v string) *LeadUpdateOne {
	_u.mutation.SetCampaignName(v)
	return _u
}

// SetNillableCampaignName sets the "campaign_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCampaignName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCampaignName(*v)
	}
	return _u
}

// ClearCampaignName clears the value of the "campaign_name" field.
func (_u *LeadUpdateOne) ClearCampaignName() *LeadUpdateOne {
	_u.mutation.ClearCampaignName()
	return _u
}

// SetTestDriveDate sets the "test_drive_date" field.
func (_u *LeadUpdateOne) SetTestDriveDate(v string) *LeadUpdateOne {
	_u.mutation.SetTestDriveDate(v)
	return _u
}

// SetNillableTestDriveDate sets the "test_drive_date" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableTestDriveDate(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetTestDriveDate(*v)
	}
	return _u
}

// ClearTestDriveDate clears the value of the "test_drive_date" field.
func (_u *LeadUpdateOne) ClearTestDriveDate() *LeadUpdateOne {
	_u.mutation.ClearTestDriveDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *LeadUpdateOne) SetStatus(v lead.Status) *LeadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableStatus(v *lead.Status) *LeadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *LeadUpdateOne) SetAssignedTo(v int) *LeadUpdateOne {
	_u.mutation.ResetAssignedTo()
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableAssignedTo(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// AddAssignedTo adds value to the "assigned_to" field.
func (_u *LeadUpdateOne) AddAssignedTo(v int) *LeadUpdateOne {
	_u.mutation.AddAssignedTo(v)
	return _u
}

// SetAssignedToName sets the "assigned_to_name" field.
func (_u *LeadUpdateOne) SetAssignedToName(v string) *LeadUpdateOne {
	_u.mutation.SetAssignedToName(v)
	return _u
}

// SetNillableAssignedToName sets the "assigned_to_name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableAssignedToName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetAssignedToName(*v)
	}
	return _u
}

// SetActivities sets the "activities" field.
func (_u *LeadUpdateOne) SetActivities(v []models.ActivityLog) *LeadUpdateOne {
	_u.mutation.SetActivities(v)
	return _u
}

// AppendActivities appends value to the "activities" field.
func (_u *LeadUpdateOne) AppendActivities(v []models.ActivityLog) *LeadUpdateOne {
	_u.mutation.AppendActivities(v)
	return _u
}

// SetCallLogs sets the "call_logs" field.
func (_u *LeadUpdateOne) SetCallLogs(v []models.CallLog) *LeadUpdateOne {
	_u.mutation.SetCallLogs(v)
	return _u
}

// AppendCallLogs appends value to the "call_logs" field.
func (_u *LeadUpdateOne) AppendCallLogs(v []models.CallLog) *LeadUpdateOne {
	_u.mutation.AppendCallLogs(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LeadUpdateOne) SetNotes(v []string) *LeadUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// AppendNotes appends value to the "notes" field.
func (_u *LeadUpdateOne) AppendNotes(v []string) *LeadUpdateOne {
	_u.mutation.AppendNotes(v)
	return _u
}

// SetLastActivity sets the "last_activity" field.
func (_u *LeadUpdateOne) SetLastActivity(v time.Time) *LeadUpdateOne {
	_u.mutation.SetLastActivity(v)
	return _u
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableLastActivity(v *time.Time) *LeadUpdateOne {
	if v != nil {
		_u.SetLastActivity(*v)
	}
	return _u
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := lead.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lead.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := lead.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Lead.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CarInterest(); ok {
		if err := lead.CarInterestValidator(v); err != nil {
			return &ValidationError{Name: "car_interest", err: fmt.Errorf(`ent: validator failed for field "Lead.car_interest": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CarInterest(); ok {
		_spec.SetField(lead.FieldCarInterest, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CarModel(); ok {
		_spec.SetField(lead.FieldCarModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Budget(); ok {
		_spec.SetField(lead.FieldBudget, field.TypeString, value)
	}
	if value, ok := _u.mutation.CampaignName(); ok {
		_spec.SetField(lead.FieldCampaignName, field.TypeString, value)
	}
	if _u.mutation.CampaignNameCleared() {
		_spec.ClearField(lead.FieldCampaignName, field.TypeString)
	}
	if value, ok := _u.mutation.TestDriveDate(); ok {
		_spec.SetField(lead.FieldTestDriveDate, field.TypeString, value)
	}
	if _u.mutation.TestDriveDateCleared() {
		_spec.ClearField(lead.FieldTestDriveDate, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(lead.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedTo(); ok {
		_spec.AddField(lead.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedToName(); ok {
		_spec.SetField(lead.FieldAssignedToName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Activities(); ok {
		_spec.SetField(lead.FieldActivities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActivities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldActivities, value)
		})
	}
	if value, ok := _u.mutation.CallLogs(); ok {
		_spec.SetField(lead.FieldCallLogs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCallLogs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldCallLogs, value)
		})
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldNotes, value)
		})
	}
	if value, ok := _u.mutation.LastActivity(); ok {
		_spec.SetField(lead.FieldLastActivity, field.TypeTime, value)
	}
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
