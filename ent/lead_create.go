// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hsrmotors/leadpulse/ent/lead"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *LeadCreate) SetName(v string) *LeadCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *LeadCreate) SetPhone(v string) *LeadCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *LeadCreate) SetEmail(v string) *LeadCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *LeadCreate) SetNillableEmail(v *string) *LeadCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *LeadCreate) SetSource(v lead.Source) *LeadCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *LeadCreate) SetNillableSource(v *lead.Source) *LeadCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCarInterest sets the "car_interest" field.
func (_c *LeadCreate) SetCarInterest(v lead.CarInterest) *LeadCreate {
	_c.mutation.SetCarInterest(v)
	return _c
}

// SetNillableCarInterest sets the "car_interest" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCarInterest(v *lead.CarInterest) *LeadCreate {
	if v != nil {
		_c.SetCarInterest(*v)
	}
	return _c
}

// SetCarModel sets the "car_model" field.
func (_c *LeadCreate) SetCarModel(v string) *LeadCreate {
	_c.mutation.SetCarModel(v)
	return _c
}

// SetNillableCarModel sets the "car_model" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCarModel(v *string) *LeadCreate {
	if v != nil {
		_c.SetCarModel(*v)
	}
	return _c
}

// SetBudget sets the "budget" field.
func (_c *LeadCreate) SetBudget(v string) *LeadCreate {
	_c.mutation.SetBudget(v)
	return _c
}

// SetNillableBudget sets the "budget" field if the given value is not nil.
func (_c *LeadCreate) SetNillableBudget(v *string) *LeadCreate {
	if v != nil {
		_c.SetBudget(*v)
	}
	return _c
}

// SetCampaignName sets the "campaign_name" field.
func (_c *LeadCreate) SetCampaignName(v string) *LeadCreate {
	_c.mutation.SetCampaignName(v)
	return _c
}

// SetNillableCampaignName sets the "campaign_name" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCampaignName(v *string) *LeadCreate {
	if v != nil {
		_c.SetCampaignName(*v)
	}
	return _c
}

// SetTestDriveDate sets the "test_drive_date" field.
func (_c *LeadCreate) SetTestDriveDate(v string) *LeadCreate {
	_c.mutation.SetTestDriveDate(v)
	return _c
}

// SetNillableTestDriveDate sets the "test_drive_date" field if the given value is not nil.
func (_c *LeadCreate) SetNillableTestDriveDate(v *string) *LeadCreate {
	if v != nil {
		_c.SetTestDriveDate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LeadCreate) SetStatus(v lead.Status) *LeadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LeadCreate) SetNillableStatus(v *lead.Status) *LeadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *LeadCreate) SetAssignedTo(v int) *LeadCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_c *LeadCreate) SetNillableAssignedTo(v *int) *LeadCreate {
	if v != nil {
		_c.SetAssignedTo(*v)
	}
	return _c
}

// SetAssignedToName sets the "assigned_to_name" field.
func (_c *LeadCreate) SetAssignedToName(v string) *LeadCreate {
	_c.mutation.SetAssignedToName(v)
	return _c
}

// SetNillableAssignedToName sets the "assigned_to_name" field if the given value is not nil.
func (_c *LeadCreate) SetNillableAssignedToName(v *string) *LeadCreate {
	if v != nil {
		_c.SetAssignedToName(*v)
	}
	return _c
}

// SetActivities sets the "activities" field.
func (_c *LeadCreate) SetActivities(v []models.ActivityLog) *LeadCreate {
	_c.mutation.SetActivities(v)
	return _c
}

// SetCallLogs sets the "call_logs" field.
func (_c *LeadCreate) SetCallLogs(v []models.CallLog) *LeadCreate {
	_c.mutation.SetCallLogs(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *LeadCreate) SetNotes(v []string) *LeadCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadCreate) SetCreatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastActivity sets the "last_activity" field.
func (_c *LeadCreate) SetLastActivity(v time.Time) *LeadCreate {
	_c.mutation.SetLastActivity(v)
	return _c
}

// SetNillableLastActivity sets the "last_activity" field if the given value is not nil.
func (_c *LeadCreate) SetNillableLastActivity(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetLastActivity(*v)
	}
	return _c
}

// Mutation returns the LeadMutation object of the builder.
func (_c *LeadCreate) Mutation() *LeadMutation {
	return _c.mutation
}

// Save creates the Lead in the database.
func (_c *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadCreate) defaults() {
	if _, ok := _c.mutation.Email(); !ok {
		v := lead.DefaultEmail
		_c.mutation.SetEmail(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := lead.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CarInterest(); !ok {
		v := lead.DefaultCarInterest
		_c.mutation.SetCarInterest(v)
	}
	if _, ok := _c.mutation.CarModel(); !ok {
		v := lead.DefaultCarModel
		_c.mutation.SetCarModel(v)
	}
	if _, ok := _c.mutation.Budget(); !ok {
		v := lead.DefaultBudget
		_c.mutation.SetBudget(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := lead.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AssignedTo(); !ok {
		v := lead.DefaultAssignedTo
		_c.mutation.SetAssignedTo(v)
	}
	if _, ok := _c.mutation.AssignedToName(); !ok {
		v := lead.DefaultAssignedToName
		_c.mutation.SetAssignedToName(v)
	}
	if _, ok := _c.mutation.Activities(); !ok {
		v := lead.DefaultActivities
		_c.mutation.SetActivities(v)
	}
	if _, ok := _c.mutation.CallLogs(); !ok {
		v := lead.DefaultCallLogs
		_c.mutation.SetCallLogs(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := lead.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		v := lead.DefaultLastActivity()
		_c.mutation.SetLastActivity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Lead.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := lead.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Lead.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "Lead.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := lead.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Lead.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Lead.email"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Lead.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := lead.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Lead.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CarInterest(); !ok {
		return &ValidationError{Name: "car_interest", err: errors.New(`ent: missing required field "Lead.car_interest"`)}
	}
	if v, ok := _c.mutation.CarInterest(); ok {
		if err := lead.CarInterestValidator(v); err != nil {
			return &ValidationError{Name: "car_interest", err: fmt.Errorf(`ent: validator failed for field "Lead.car_interest": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CarModel(); !ok {
		return &ValidationError{Name: "car_model", err: errors.New(`ent: missing required field "Lead.car_model"`)}
	}
	if _, ok := _c.mutation.Budget(); !ok {
		return &ValidationError{Name: "budget", err: errors.New(`ent: missing required field "Lead.budget"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Lead.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := lead.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Lead.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssignedTo(); !ok {
		return &ValidationError{Name: "assigned_to", err: errors.New(`ent: missing required field "Lead.assigned_to"`)}
	}
	if _, ok := _c.mutation.AssignedToName(); !ok {
		return &ValidationError{Name: "assigned_to_name", err: errors.New(`ent: missing required field "Lead.assigned_to_name"`)}
	}
	if _, ok := _c.mutation.Activities(); !ok {
		return &ValidationError{Name: "activities", err: errors.New(`ent: missing required field "Lead.activities"`)}
	}
	if _, ok := _c.mutation.CallLogs(); !ok {
		return &ValidationError{Name: "call_logs", err: errors.New(`ent: missing required field "Lead.call_logs"`)}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "Lead.notes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	if _, ok := _c.mutation.LastActivity(); !ok {
		return &ValidationError{Name: "last_activity", err: errors.New(`ent: missing required field "Lead.last_activity"`)}
	}
	return nil
}

func (_c *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(lead.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CarInterest(); ok {
		_spec.SetField(lead.FieldCarInterest, field.TypeEnum, value)
		_node.CarInterest = value
	}
	if value, ok := _c.mutation.CarModel(); ok {
		_spec.SetField(lead.FieldCarModel, field.TypeString, value)
		_node.CarModel = value
	}
	if value, ok := _c.mutation.Budget(); ok {
		_spec.SetField(lead.FieldBudget, field.TypeString, value)
		_node.Budget = value
	}
	if value, ok := _c.mutation.CampaignName(); ok {
		_spec.SetField(lead.FieldCampaignName, field.TypeString, value)
		_node.CampaignName = value
	}
	if value, ok := _c.mutation.TestDriveDate(); ok {
		_spec.SetField(lead.FieldTestDriveDate, field.TypeString, value)
		_node.TestDriveDate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(lead.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AssignedTo(); ok {
		_spec.SetField(lead.FieldAssignedTo, field.TypeInt, value)
		_node.AssignedTo = value
	}
	if value, ok := _c.mutation.AssignedToName(); ok {
		_spec.SetField(lead.FieldAssignedToName, field.TypeString, value)
		_node.AssignedToName = value
	}
	if value, ok := _c.mutation.Activities(); ok {
		_spec.SetField(lead.FieldActivities, field.TypeJSON, value)
		_node.Activities = value
	}
	if value, ok := _c.mutation.CallLogs(); ok {
		_spec.SetField(lead.FieldCallLogs, field.TypeJSON, value)
		_node.CallLogs = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(lead.FieldNotes, field.TypeJSON, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastActivity(); ok {
		_spec.SetField(lead.FieldLastActivity, field.TypeTime, value)
		_node.LastActivity = value
	}
	return _node, _spec
}

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
}

// Save creates the Lead entities in the database.
func (_c *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
