// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hsrmotors/leadpulse/ent/assignmentrule"
	"github.com/hsrmotors/leadpulse/ent/deletedlead"
	"github.com/hsrmotors/leadpulse/ent/lead"
	"github.com/hsrmotors/leadpulse/ent/predicate"
	"github.com/hsrmotors/leadpulse/ent/salesexecutive"
	"github.com/hsrmotors/leadpulse/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssignmentRule = "AssignmentRule"
	TypeDeletedLead    = "DeletedLead"
	TypeLead           = "Lead"
	TypeSalesExecutive = "SalesExecutive"
)

// AssignmentRuleMutation represents an operation that mutates the AssignmentRule nodes in the graph.
type AssignmentRuleMutation struct {
	config
	op             Op
	typ            string
	id             *int
	source         *string
	car_interest   *string
	assign_to_team *string
	round_robin    *bool
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AssignmentRule, error)
	predicates     []predicate.AssignmentRule
}

var _ ent.Mutation = (*AssignmentRuleMutation)(nil)

// assignmentruleOption allows management of the mutation configuration using functional options.
type assignmentruleOption func(*AssignmentRuleMutation)

// newAssignmentRuleMutation creates new mutation for the AssignmentRule entity.
func newAssignmentRuleMutation(c config, op Op, opts ...assignmentruleOption) *AssignmentRuleMutation {
	m := &AssignmentRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeAssignmentRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssignmentRuleID sets the ID field of the mutation.
func withAssignmentRuleID(id int) assignmentruleOption {
	return func(m *AssignmentRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *AssignmentRule
		)
		m.oldValue = func(ctx context.Context) (*AssignmentRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssignmentRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssignmentRule sets the old AssignmentRule of the mutation.
func withAssignmentRule(node *AssignmentRule) assignmentruleOption {
	return func(m *AssignmentRuleMutation) {
		m.oldValue = func(context.Context) (*AssignmentRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssignmentRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssignmentRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssignmentRuleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssignmentRuleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssignmentRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *AssignmentRuleMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *AssignmentRuleMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *AssignmentRuleMutation) ClearSource() {
	m.source = nil
	m.clearedFields[assignmentrule.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *AssignmentRuleMutation) SourceCleared() bool {
	_, ok := m.clearedFields[assignmentrule.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *AssignmentRuleMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, assignmentrule.FieldSource)
}

// SetCarInterest sets the "car_interest" field.
func (m *AssignmentRuleMutation) SetCarInterest(s string) {
	m.car_interest = &s
}

// CarInterest returns the value of the "car_interest" field in the mutation.
func (m *AssignmentRuleMutation) CarInterest() (r string, exists bool) {
	v := m.car_interest
	if v == nil {
		return
	}
	return *v, true
}

// OldCarInterest returns the old "car_interest" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldCarInterest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarInterest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarInterest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarInterest: %w", err)
	}
	return oldValue.CarInterest, nil
}

// ClearCarInterest clears the value of the "car_interest" field.
func (m *AssignmentRuleMutation) ClearCarInterest() {
	m.car_interest = nil
	m.clearedFields[assignmentrule.FieldCarInterest] = struct{}{}
}

// CarInterestCleared returns if the "car_interest" field was cleared in this mutation.
func (m *AssignmentRuleMutation) CarInterestCleared() bool {
	_, ok := m.clearedFields[assignmentrule.FieldCarInterest]
	return ok
}

// ResetCarInterest resets all changes to the "car_interest" field.
func (m *AssignmentRuleMutation) ResetCarInterest() {
	m.car_interest = nil
	delete(m.clearedFields, assignmentrule.FieldCarInterest)
}

// SetAssignToTeam sets the "assign_to_team" field.
func (m *AssignmentRuleMutation) SetAssignToTeam(s string) {
	m.assign_to_team = &s
}

// AssignToTeam returns the value of the "assign_to_team" field in the mutation.
func (m *AssignmentRuleMutation) AssignToTeam() (r string, exists bool) {
	v := m.assign_to_team
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignToTeam returns the old "assign_to_team" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldAssignToTeam(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignToTeam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignToTeam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignToTeam: %w", err)
	}
	return oldValue.AssignToTeam, nil
}

// ResetAssignToTeam resets all changes to the "assign_to_team" field.
func (m *AssignmentRuleMutation) ResetAssignToTeam() {
	m.assign_to_team = nil
}

// SetRoundRobin sets the "round_robin" field.
func (m *AssignmentRuleMutation) SetRoundRobin(b bool) {
	m.round_robin = &b
}

// RoundRobin returns the value of the "round_robin" field in the mutation.
func (m *AssignmentRuleMutation) RoundRobin() (r bool, exists bool) {
	v := m.round_robin
	if v == nil {
		return
	}
	return *v, true
}

// OldRoundRobin returns the old "round_robin" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldRoundRobin(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoundRobin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoundRobin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoundRobin: %w", err)
	}
	return oldValue.RoundRobin, nil
}

// ResetRoundRobin resets all changes to the "round_robin" field.
func (m *AssignmentRuleMutation) ResetRoundRobin() {
	m.round_robin = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AssignmentRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssignmentRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AssignmentRule entity.
// If the AssignmentRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssignmentRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AssignmentRuleMutation builder.
func (m *AssignmentRuleMutation) Where(ps ...predicate.AssignmentRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssignmentRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssignmentRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssignmentRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssignmentRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssignmentRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssignmentRule).
func (m *AssignmentRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssignmentRuleMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.source != nil {
		fields = append(fields, assignmentrule.FieldSource)
	}
	if m.car_interest != nil {
		fields = append(fields, assignmentrule.FieldCarInterest)
	}
	if m.assign_to_team != nil {
		fields = append(fields, assignmentrule.FieldAssignToTeam)
	}
	if m.round_robin != nil {
		fields = append(fields, assignmentrule.FieldRoundRobin)
	}
	if m.created_at != nil {
		fields = append(fields, assignmentrule.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssignmentRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assignmentrule.FieldSource:
		return m.Source()
	case assignmentrule.FieldCarInterest:
		return m.CarInterest()
	case assignmentrule.FieldAssignToTeam:
		return m.AssignToTeam()
	case assignmentrule.FieldRoundRobin:
		return m.RoundRobin()
	case assignmentrule.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssignmentRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assignmentrule.FieldSource:
		return m.OldSource(ctx)
	case assignmentrule.FieldCarInterest:
		return m.OldCarInterest(ctx)
	case assignmentrule.FieldAssignToTeam:
		return m.OldAssignToTeam(ctx)
	case assignmentrule.FieldRoundRobin:
		return m.OldRoundRobin(ctx)
	case assignmentrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AssignmentRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assignmentrule.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case assignmentrule.FieldCarInterest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarInterest(v)
		return nil
	case assignmentrule.FieldAssignToTeam:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignToTeam(v)
		return nil
	case assignmentrule.FieldRoundRobin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoundRobin(v)
		return nil
	case assignmentrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AssignmentRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssignmentRuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssignmentRuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AssignmentRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssignmentRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assignmentrule.FieldSource) {
		fields = append(fields, assignmentrule.FieldSource)
	}
	if m.FieldCleared(assignmentrule.FieldCarInterest) {
		fields = append(fields, assignmentrule.FieldCarInterest)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssignmentRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssignmentRuleMutation) ClearField(name string) error {
	switch name {
	case assignmentrule.FieldSource:
		m.ClearSource()
		return nil
	case assignmentrule.FieldCarInterest:
		m.ClearCarInterest()
		return nil
	}
	return fmt.Errorf("unknown AssignmentRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssignmentRuleMutation) ResetField(name string) error {
	switch name {
	case assignmentrule.FieldSource:
		m.ResetSource()
		return nil
	case assignmentrule.FieldCarInterest:
		m.ResetCarInterest()
		return nil
	case assignmentrule.FieldAssignToTeam:
		m.ResetAssignToTeam()
		return nil
	case assignmentrule.FieldRoundRobin:
		m.ResetRoundRobin()
		return nil
	case assignmentrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AssignmentRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssignmentRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssignmentRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssignmentRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssignmentRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssignmentRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssignmentRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssignmentRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssignmentRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssignmentRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssignmentRule edge %s", name)
}

// DeletedLeadMutation represents an operation that mutates the DeletedLead nodes in the graph.
type DeletedLeadMutation struct {
	config
	op            Op
	typ           string
	id            *int
	lead_id       *int
	addlead_id    *int
	lead_name     *string
	lead_source   *string
	lead_status   *string
	reason        *string
	deleted_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DeletedLead, error)
	predicates    []predicate.DeletedLead
}

var _ ent.Mutation = (*DeletedLeadMutation)(nil)

// deletedleadOption allows management of the mutation configuration using functional options.
type deletedleadOption func(*DeletedLeadMutation)

// newDeletedLeadMutation creates new mutation for the DeletedLead entity.
func newDeletedLeadMutation(c config, op Op, opts ...deletedleadOption) *DeletedLeadMutation {
	m := &DeletedLeadMutation{
		config:        c,
		op:            op,
		typ:           TypeDeletedLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeletedLeadID sets the ID field of the mutation.
func withDeletedLeadID(id int) deletedleadOption {
	return func(m *DeletedLeadMutation) {
		var (
			err   error
			once  sync.Once
			value *DeletedLead
		)
		m.oldValue = func(ctx context.Context) (*DeletedLead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeletedLead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeletedLead sets the old DeletedLead of the mutation.
func withDeletedLead(node *DeletedLead) deletedleadOption {
	return func(m *DeletedLeadMutation) {
		m.oldValue = func(context.Context) (*DeletedLead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeletedLeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeletedLeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeletedLeadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeletedLeadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeletedLead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *DeletedLeadMutation) SetLeadID(i int) {
	m.lead_id = &i
	m.addlead_id = nil
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *DeletedLeadMutation) LeadID() (r int, exists bool) {
	v := m.lead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the DeletedLead entity.
// If the DeletedLead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletedLeadMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// AddLeadID adds i to the "lead_id" field.
func (m *DeletedLeadMutation) AddLeadID(i int) {
	if m.addlead_id != nil {
		*m.addlead_id += i
	} else {
		m.addlead_id = &i
	}
}

// AddedLeadID returns the value that was added to the "lead_id" field in this mutation.
func (m *DeletedLeadMutation) AddedLeadID() (r int, exists bool) {
	v := m.addlead_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *DeletedLeadMutation) ResetLeadID() {
	m.lead_id = nil
	m.addlead_id = nil
}

// SetLeadName sets the "lead_name" field.
func (m *DeletedLeadMutation) SetLeadName(s string) {
	m.lead_name = &s
}

// LeadName returns the value of the "lead_name" field in the mutation.
func (m *DeletedLeadMutation) LeadName() (r string, exists bool) {
	v := m.lead_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadName returns the old "lead_name" field's value of the DeletedLead entity.
// If the DeletedLead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletedLeadMutation) OldLeadName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadName: %w", err)
	}
	return oldValue.LeadName, nil
}

// ResetLeadName resets all changes to the "lead_name" field.
func (m *DeletedLeadMutation) ResetLeadName() {
	m.lead_name = nil
}

// SetLeadSource sets the "lead_source" field.
func (m *DeletedLeadMutation) SetLeadSource(s string) {
	m.lead_source = &s
}

// LeadSource returns the value of the "lead_source" field in the mutation.
func (m *DeletedLeadMutation) LeadSource() (r string, exists bool) {
	v := m.lead_source
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadSource returns the old "lead_source" field's value of the DeletedLead entity.
// If the DeletedLead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletedLeadMutation) OldLeadSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadSource: %w", err)
	}
	return oldValue.LeadSource, nil
}

// ResetLeadSource resets all changes to the "lead_source" field.
func (m *DeletedLeadMutation) ResetLeadSource() {
	m.lead_source = nil
}

// SetLeadStatus sets the "lead_status" field.
func (m *DeletedLeadMutation) SetLeadStatus(s string) {
	m.lead_status = &s
}

// LeadStatus returns the value of the "lead_status" field in the mutation.
func (m *DeletedLeadMutation) LeadStatus() (r string, exists bool) {
	v := m.lead_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadStatus returns the old "lead_status" field's value of the DeletedLead entity.
// If the DeletedLead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletedLeadMutation) OldLeadStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadStatus: %w", err)
	}
	return oldValue.LeadStatus, nil
}

// ResetLeadStatus resets all changes to the "lead_status" field.
func (m *DeletedLeadMutation) ResetLeadStatus() {
	m.lead_status = nil
}

// SetReason sets the "reason" field.
func (m *DeletedLeadMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *DeletedLeadMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the DeletedLead entity.
// If the DeletedLead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletedLeadMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *DeletedLeadMutation) ResetReason() {
	m.reason = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DeletedLeadMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DeletedLeadMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the DeletedLead entity.
// If the DeletedLead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeletedLeadMutation) OldDeletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DeletedLeadMutation) ResetDeletedAt() {
	m.deleted_at = nil
}

// Where appends a list predicates to the DeletedLeadMutation builder.
func (m *DeletedLeadMutation) Where(ps ...predicate.DeletedLead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeletedLeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeletedLeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeletedLead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeletedLeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeletedLeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeletedLead).
func (m *DeletedLeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeletedLeadMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.lead_id != nil {
		fields = append(fields, deletedlead.FieldLeadID)
	}
	if m.lead_name != nil {
		fields = append(fields, deletedlead.FieldLeadName)
	}
	if m.lead_source != nil {
		fields = append(fields, deletedlead.FieldLeadSource)
	}
	if m.lead_status != nil {
		fields = append(fields, deletedlead.FieldLeadStatus)
	}
	if m.reason != nil {
		fields = append(fields, deletedlead.FieldReason)
	}
	if m.deleted_at != nil {
		fields = append(fields, deletedlead.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeletedLeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deletedlead.FieldLeadID:
		return m.LeadID()
	case deletedlead.FieldLeadName:
		return m.LeadName()
	case deletedlead.FieldLeadSource:
		return m.LeadSource()
	case deletedlead.FieldLeadStatus:
		return m.LeadStatus()
	case deletedlead.FieldReason:
		return m.Reason()
	case deletedlead.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeletedLeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deletedlead.FieldLeadID:
		return m.OldLeadID(ctx)
	case deletedlead.FieldLeadName:
		return m.OldLeadName(ctx)
	case deletedlead.FieldLeadSource:
		return m.OldLeadSource(ctx)
	case deletedlead.FieldLeadStatus:
		return m.OldLeadStatus(ctx)
	case deletedlead.FieldReason:
		return m.OldReason(ctx)
	case deletedlead.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeletedLead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeletedLeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deletedlead.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case deletedlead.FieldLeadName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadName(v)
		return nil
	case deletedlead.FieldLeadSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadSource(v)
		return nil
	case deletedlead.FieldLeadStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadStatus(v)
		return nil
	case deletedlead.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case deletedlead.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeletedLead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeletedLeadMutation) AddedFields() []string {
	var fields []string
	if m.addlead_id != nil {
		fields = append(fields, deletedlead.FieldLeadID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeletedLeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deletedlead.FieldLeadID:
		return m.AddedLeadID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeletedLeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deletedlead.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeadID(v)
		return nil
	}
	return fmt.Errorf("unknown DeletedLead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeletedLeadMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeletedLeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeletedLeadMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DeletedLead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeletedLeadMutation) ResetField(name string) error {
	switch name {
	case deletedlead.FieldLeadID:
		m.ResetLeadID()
		return nil
	case deletedlead.FieldLeadName:
		m.ResetLeadName()
		return nil
	case deletedlead.FieldLeadSource:
		m.ResetLeadSource()
		return nil
	case deletedlead.FieldLeadStatus:
		m.ResetLeadStatus()
		return nil
	case deletedlead.FieldReason:
		m.ResetReason()
		return nil
	case deletedlead.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown DeletedLead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeletedLeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeletedLeadMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeletedLeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeletedLeadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeletedLeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeletedLeadMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeletedLeadMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeletedLead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeletedLeadMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeletedLead edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op               Op
	typ              string
	id               *int
	name             *string
	phone            *string
	email            *string
	source           *lead.Source
	car_interest     *lead.CarInterest
	car_model        *string
	budget           *string
	campaign_name    *string
	test_drive_date  *string
	status           *lead.Status
	assigned_to      *int
	addassigned_to   *int
	assigned_to_name *string
	activities       *[]models.ActivityLog
	appendactivities []models.ActivityLog
	call_logs        *[]models.CallLog
	appendcall_logs  []models.CallLog
	notes            *[]string
	appendnotes      []string
	created_at       *time.Time
	last_activity    *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Lead, error)
	predicates       []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id int) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *LeadMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LeadMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LeadMutation) ResetName() {
	m.name = nil
}

// SetPhone sets the "phone" field.
func (m *LeadMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadMutation) ResetPhone() {
	m.phone = nil
}

// SetEmail sets the "email" field.
func (m *LeadMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LeadMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *LeadMutation) ResetEmail() {
	m.email = nil
}

// SetSource sets the "source" field.
func (m *LeadMutation) SetSource(l lead.Source) {
	m.source = &l
}

// Source returns the value of the "source" field in the mutation.
func (m *LeadMutation) Source() (r lead.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldSource(ctx context.Context) (v lead.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *LeadMutation) ResetSource() {
	m.source = nil
}

// SetCarInterest sets the "car_interest" field.
func (m *LeadMutation) SetCarInterest(li lead.CarInterest) {
	m.car_interest = &li
}

// CarInterest returns the value of the "car_interest" field in the mutation.
func (m *LeadMutation) CarInterest() (r lead.CarInterest, exists bool) {
	v := m.car_interest
	if v == nil {
		return
	}
	return *v, true
}

// OldCarInterest returns the old "car_interest" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCarInterest(ctx context.Context) (v lead.CarInterest, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarInterest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarInterest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarInterest: %w", err)
	}
	return oldValue.CarInterest, nil
}

// ResetCarInterest resets all changes to the "car_interest" field.
func (m *LeadMutation) ResetCarInterest() {
	m.car_interest = nil
}

// SetCarModel sets the "car_model" field.
func (m *LeadMutation) SetCarModel(s string) {
	m.car_model = &s
}

// CarModel returns the value of the "car_model" field in the mutation.
func (m *LeadMutation) CarModel() (r string, exists bool) {
	v := m.car_model
	if v == nil {
		return
	}
	return *v, true
}

// OldCarModel returns the old "car_model" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCarModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarModel: %w", err)
	}
	return oldValue.CarModel, nil
}

// ResetCarModel resets all changes to the "car_model" field.
func (m *LeadMutation) ResetCarModel() {
	m.car_model = nil
}

// SetBudget sets the "budget" field.
func (m *LeadMutation) SetBudget(s string) {
	m.budget = &s
}

// Budget returns the value of the "budget" field in the mutation.
func (m *LeadMutation) Budget() (r string, exists bool) {
	v := m.budget
	if v == nil {
		return
	}
	return *v, true
}

// OldBudget returns the old "budget" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldBudget(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudget: %w", err)
	}
	return oldValue.Budget, nil
}

// ResetBudget resets all changes to the "budget" field.
func (m *LeadMutation) ResetBudget() {
	m.budget = nil
}

// SetCampaignName sets the "campaign_name" field.
func (m *LeadMutation) SetCampaignName(s string) {
	m.campaign_name = &s
}

// CampaignName returns the value of the "campaign_name" field in the mutation.
func (m *LeadMutation) CampaignName() (r string, exists bool) {
	v := m.campaign_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignName returns the old "campaign_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCampaignName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignName: %w", err)
	}
	return oldValue.CampaignName, nil
}

// ClearCampaignName clears the value of the "campaign_name" field.
func (m *LeadMutation) ClearCampaignName() {
	m.campaign_name = nil
	m.clearedFields[lead.FieldCampaignName] = struct{}{}
}

// CampaignNameCleared returns if the "campaign_name" field was cleared in this mutation.
func (m *LeadMutation) CampaignNameCleared() bool {
	_, ok := m.clearedFields[lead.FieldCampaignName]
	return ok
}

// ResetCampaignName resets all changes to the "campaign_name" field.
func (m *LeadMutation) ResetCampaignName() {
	m.campaign_name = nil
	delete(m.clearedFields, lead.FieldCampaignName)
}

// SetTestDriveDate sets the "test_drive_date" field.
func (m *LeadMutation) SetTestDriveDate(s string) {
	m.test_drive_date = &s
}

// TestDriveDate returns the value of the "test_drive_date" field in the mutation.
func (m *LeadMutation) TestDriveDate() (r string, exists bool) {
	v := m.test_drive_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTestDriveDate returns the old "test_drive_date" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldTestDriveDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestDriveDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestDriveDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestDriveDate: %w", err)
	}
	return oldValue.TestDriveDate, nil
}

// ClearTestDriveDate clears the value of the "test_drive_date" field.
func (m *LeadMutation) ClearTestDriveDate() {
	m.test_drive_date = nil
	m.clearedFields[lead.FieldTestDriveDate] = struct{}{}
}

// TestDriveDateCleared returns if the "test_drive_date" field was cleared in this mutation.
func (m *LeadMutation) TestDriveDateCleared() bool {
	_, ok := m.clearedFields[lead.FieldTestDriveDate]
	return ok
}

// ResetTestDriveDate resets all changes to the "test_drive_date" field.
func (m *LeadMutation) ResetTestDriveDate() {
	m.test_drive_date = nil
	delete(m.clearedFields, lead.FieldTestDriveDate)
}

// SetStatus sets the "status" field.
func (m *LeadMutation) SetStatus(l lead.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LeadMutation) Status() (r lead.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatus(ctx context.Context) (v lead.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeadMutation) ResetStatus() {
	m.status = nil
}

// SetAssignedTo sets the "assigned_to" field.
func (m *LeadMutation) SetAssignedTo(i int) {
	m.assigned_to = &i
	m.addassigned_to = nil
}

// AssignedTo returns the value of the "assigned_to" field in the mutation.
func (m *LeadMutation) AssignedTo() (r int, exists bool) {
	v := m.assigned_to
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedTo returns the old "assigned_to" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAssignedTo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedTo: %w", err)
	}
	return oldValue.AssignedTo, nil
}

// AddAssignedTo adds i to the "assigned_to" field.
func (m *LeadMutation) AddAssignedTo(i int) {
	if m.addassigned_to != nil {
		*m.addassigned_to += i
	} else {
		m.addassigned_to = &i
	}
}

// AddedAssignedTo returns the value that was added to the "assigned_to" field in this mutation.
func (m *LeadMutation) AddedAssignedTo() (r int, exists bool) {
	v := m.addassigned_to
	if v == nil {
		return
	}
	return *v, true
}

// ResetAssignedTo resets all changes to the "assigned_to" field.
func (m *LeadMutation) ResetAssignedTo() {
	m.assigned_to = nil
	m.addassigned_to = nil
}

// SetAssignedToName sets the "assigned_to_name" field.
func (m *LeadMutation) SetAssignedToName(s string) {
	m.assigned_to_name = &s
}

// AssignedToName returns the value of the "assigned_to_name" field in the mutation.
func (m *LeadMutation) AssignedToName() (r string, exists bool) {
	v := m.assigned_to_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedToName returns the old "assigned_to_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAssignedToName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedToName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedToName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedToName: %w", err)
	}
	return oldValue.AssignedToName, nil
}

// ResetAssignedToName resets all changes to the "assigned_to_name" field.
func (m *LeadMutation) ResetAssignedToName() {
	m.assigned_to_name = nil
}

// SetActivities sets the "activities" field.
func (m *LeadMutation) SetActivities(ml []models.ActivityLog) {
	m.activities = &ml
	m.appendactivities = nil
}

// Activities returns the value of the "activities" field in the mutation.
func (m *LeadMutation) Activities() (r []models.ActivityLog, exists bool) {
	v := m.activities
	if v == nil {
		return
	}
	return *v, true
}

// OldActivities returns the old "activities" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldActivities(ctx context.Context) (v []models.ActivityLog, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivities: %w", err)
	}
	return oldValue.Activities, nil
}

// AppendActivities adds ml to the "activities" field.
func (m *LeadMutation) AppendActivities(ml []models.ActivityLog) {
	m.appendactivities = append(m.appendactivities, ml...)
}

// AppendedActivities returns the list of values that were appended to the "activities" field in this mutation.
func (m *LeadMutation) AppendedActivities() ([]models.ActivityLog, bool) {
	if len(m.appendactivities) == 0 {
		return nil, false
	}
	return m.appendactivities, true
}

// ResetActivities resets all changes to the "activities" field.
func (m *LeadMutation) ResetActivities() {
	m.activities = nil
	m.appendactivities = nil
}

// SetCallLogs sets the "call_logs" field.
func (m *LeadMutation) SetCallLogs(ml []models.CallLog) {
	m.call_logs = &ml
	m.appendcall_logs = nil
}

// CallLogs returns the value of the "call_logs" field in the mutation.
func (m *LeadMutation) CallLogs() (r []models.CallLog, exists bool) {
	v := m.call_logs
	if v == nil {
		return
	}
	return *v, true
}

// OldCallLogs returns the old "call_logs" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCallLogs(ctx context.Context) (v []models.CallLog, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallLogs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallLogs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallLogs: %w", err)
	}
	return oldValue.CallLogs, nil
}

// AppendCallLogs adds ml to the "call_logs" field.
func (m *LeadMutation) AppendCallLogs(ml []models.CallLog) {
	m.appendcall_logs = append(m.appendcall_logs, ml...)
}

// AppendedCallLogs returns the list of values that were appended to the "call_logs" field in this mutation.
func (m *LeadMutation) AppendedCallLogs() ([]models.CallLog, bool) {
	if len(m.appendcall_logs) == 0 {
		return nil, false
	}
	return m.appendcall_logs, true
}

// ResetCallLogs resets all changes to the "call_logs" field.
func (m *LeadMutation) ResetCallLogs() {
	m.call_logs = nil
	m.appendcall_logs = nil
}

// SetNotes sets the "notes" field.
func (m *LeadMutation) SetNotes(s []string) {
	m.notes = &s
	m.appendnotes = nil
}

// Notes returns the value of the "notes" field in the mutation.
func (m *LeadMutation) Notes() (r []string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldNotes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// AppendNotes adds s to the "notes" field.
func (m *LeadMutation) AppendNotes(s []string) {
	m.appendnotes = append(m.appendnotes, s...)
}

// AppendedNotes returns the list of values that were appended to the "notes" field in this mutation.
func (m *LeadMutation) AppendedNotes() ([]string, bool) {
	if len(m.appendnotes) == 0 {
		return nil, false
	}
	return m.appendnotes, true
}

// ResetNotes resets all changes to the "notes" field.
func (m *LeadMutation) ResetNotes() {
	m.notes = nil
	m.appendnotes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastActivity sets the "last_activity" field.
func (m *LeadMutation) SetLastActivity(t time.Time) {
	m.last_activity = &t
}

// LastActivity returns the value of the "last_activity" field in the mutation.
func (m *LeadMutation) LastActivity() (r time.Time, exists bool) {
	v := m.last_activity
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivity returns the old "last_activity" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldLastActivity(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivity: %w", err)
	}
	return oldValue.LastActivity, nil
}

// ResetLastActivity resets all changes to the "last_activity" field.
func (m *LeadMutation) ResetLastActivity() {
	m.last_activity = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.name != nil {
		fields = append(fields, lead.FieldName)
	}
	if m.phone != nil {
		fields = append(fields, lead.FieldPhone)
	}
	if m.email != nil {
		fields = append(fields, lead.FieldEmail)
	}
	if m.source != nil {
		fields = append(fields, lead.FieldSource)
	}
	if m.car_interest != nil {
		fields = append(fields, lead.FieldCarInterest)
	}
	if m.car_model != nil {
		fields = append(fields, lead.FieldCarModel)
	}
	if m.budget != nil {
		fields = append(fields, lead.FieldBudget)
	}
	if m.campaign_name != nil {
		fields = append(fields, lead.FieldCampaignName)
	}
	if m.test_drive_date != nil {
		fields = append(fields, lead.FieldTestDriveDate)
	}
	if m.status != nil {
		fields = append(fields, lead.FieldStatus)
	}
	if m.assigned_to != nil {
		fields = append(fields, lead.FieldAssignedTo)
	}
	if m.assigned_to_name != nil {
		fields = append(fields, lead.FieldAssignedToName)
	}
	if m.activities != nil {
		fields = append(fields, lead.FieldActivities)
	}
	if m.call_logs != nil {
		fields = append(fields, lead.FieldCallLogs)
	}
	if m.notes != nil {
		fields = append(fields, lead.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.last_activity != nil {
		fields = append(fields, lead.FieldLastActivity)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldName:
		return m.Name()
	case lead.FieldPhone:
		return m.Phone()
	case lead.FieldEmail:
		return m.Email()
	case lead.FieldSource:
		return m.Source()
	case lead.FieldCarInterest:
		return m.CarInterest()
	case lead.FieldCarModel:
		return m.CarModel()
	case lead.FieldBudget:
		return m.Budget()
	case lead.FieldCampaignName:
		return m.CampaignName()
	case lead.FieldTestDriveDate:
		return m.TestDriveDate()
	case lead.FieldStatus:
		return m.Status()
	case lead.FieldAssignedTo:
		return m.AssignedTo()
	case lead.FieldAssignedToName:
		return m.AssignedToName()
	case lead.FieldActivities:
		return m.Activities()
	case lead.FieldCallLogs:
		return m.CallLogs()
	case lead.FieldNotes:
		return m.Notes()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldLastActivity:
		return m.LastActivity()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldName:
		return m.OldName(ctx)
	case lead.FieldPhone:
		return m.OldPhone(ctx)
	case lead.FieldEmail:
		return m.OldEmail(ctx)
	case lead.FieldSource:
		return m.OldSource(ctx)
	case lead.FieldCarInterest:
		return m.OldCarInterest(ctx)
	case lead.FieldCarModel:
		return m.OldCarModel(ctx)
	case lead.FieldBudget:
		return m.OldBudget(ctx)
	case lead.FieldCampaignName:
		return m.OldCampaignName(ctx)
	case lead.FieldTestDriveDate:
		return m.OldTestDriveDate(ctx)
	case lead.FieldStatus:
		return m.OldStatus(ctx)
	case lead.FieldAssignedTo:
		return m.OldAssignedTo(ctx)
	case lead.FieldAssignedToName:
		return m.OldAssignedToName(ctx)
	case lead.FieldActivities:
		return m.OldActivities(ctx)
	case lead.FieldCallLogs:
		return m.OldCallLogs(ctx)
	case lead.FieldNotes:
		return m.OldNotes(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldLastActivity:
		return m.OldLastActivity(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case lead.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case lead.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case lead.FieldSource:
		v, ok := value.(lead.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case lead.FieldCarInterest:
		v, ok := value.(lead.CarInterest)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarInterest(v)
		return nil
	case lead.FieldCarModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarModel(v)
		return nil
	case lead.FieldBudget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudget(v)
		return nil
	case lead.FieldCampaignName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignName(v)
		return nil
	case lead.FieldTestDriveDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestDriveDate(v)
		return nil
	case lead.FieldStatus:
		v, ok := value.(lead.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lead.FieldAssignedTo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedTo(v)
		return nil
	case lead.FieldAssignedToName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedToName(v)
		return nil
	case lead.FieldActivities:
		v, ok := value.([]models.ActivityLog)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivities(v)
		return nil
	case lead.FieldCallLogs:
		v, ok := value.([]models.CallLog)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallLogs(v)
		return nil
	case lead.FieldNotes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldLastActivity:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivity(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	var fields []string
	if m.addassigned_to != nil {
		fields = append(fields, lead.FieldAssignedTo)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldAssignedTo:
		return m.AddedAssignedTo()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lead.FieldAssignedTo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAssignedTo(v)
		return nil
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldCampaignName) {
		fields = append(fields, lead.FieldCampaignName)
	}
	if m.FieldCleared(lead.FieldTestDriveDate) {
		fields = append(fields, lead.FieldTestDriveDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldCampaignName:
		m.ClearCampaignName()
		return nil
	case lead.FieldTestDriveDate:
		m.ClearTestDriveDate()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldName:
		m.ResetName()
		return nil
	case lead.FieldPhone:
		m.ResetPhone()
		return nil
	case lead.FieldEmail:
		m.ResetEmail()
		return nil
	case lead.FieldSource:
		m.ResetSource()
		return nil
	case lead.FieldCarInterest:
		m.ResetCarInterest()
		return nil
	case lead.FieldCarModel:
		m.ResetCarModel()
		return nil
	case lead.FieldBudget:
		m.ResetBudget()
		return nil
	case lead.FieldCampaignName:
		m.ResetCampaignName()
		return nil
	case lead.FieldTestDriveDate:
		m.ResetTestDriveDate()
		return nil
	case lead.FieldStatus:
		m.ResetStatus()
		return nil
	case lead.FieldAssignedTo:
		m.ResetAssignedTo()
		return nil
	case lead.FieldAssignedToName:
		m.ResetAssignedToName()
		return nil
	case lead.FieldActivities:
		m.ResetActivities()
		return nil
	case lead.FieldCallLogs:
		m.ResetCallLogs()
		return nil
	case lead.FieldNotes:
		m.ResetNotes()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldLastActivity:
		m.ResetLastActivity()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Lead edge %s", name)
}

// SalesExecutiveMutation represents an operation that mutates the SalesExecutive nodes in the graph.
type SalesExecutiveMutation struct {
	config
	op                Op
	typ               string
	id                *int
	name              *string
	avatar            *string
	email             *string
	phone             *string
	team              *string
	leads_assigned    *int
	addleads_assigned *int
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SalesExecutive, error)
	predicates        []predicate.SalesExecutive
}

var _ ent.Mutation = (*SalesExecutiveMutation)(nil)

// salesexecutiveOption allows management of the mutation configuration using functional options.
type salesexecutiveOption func(*SalesExecutiveMutation)

// newSalesExecutiveMutation creates new mutation for the SalesExecutive entity.
func newSalesExecutiveMutation(c config, op Op, opts ...salesexecutiveOption) *SalesExecutiveMutation {
	m := &SalesExecutiveMutation{
		config:        c,
		op:            op,
		typ:           TypeSalesExecutive,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSalesExecutiveID sets the ID field of the mutation.
func withSalesExecutiveID(id int) salesexecutiveOption {
	return func(m *SalesExecutiveMutation) {
		var (
			err   error
			once  sync.Once
			value *SalesExecutive
		)
		m.oldValue = func(ctx context.Context) (*SalesExecutive, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SalesExecutive.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSalesExecutive sets the old SalesExecutive of the mutation.
func withSalesExecutive(node *SalesExecutive) salesexecutiveOption {
	return func(m *SalesExecutiveMutation) {
		m.oldValue = func(context.Context) (*SalesExecutive, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SalesExecutiveMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SalesExecutiveMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SalesExecutiveMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SalesExecutiveMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SalesExecutive.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SalesExecutiveMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SalesExecutiveMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SalesExecutive entity.
// If the SalesExecutive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesExecutiveMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SalesExecutiveMutation) ResetName() {
	m.name = nil
}

// SetAvatar sets the "avatar" field.
func (m *SalesExecutiveMutation) SetAvatar(s string) {
	m.avatar = &s
}

// Avatar returns the value of the "avatar" field in the mutation.
func (m *SalesExecutiveMutation) Avatar() (r string, exists bool) {
	v := m.avatar
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatar returns the old "avatar" field's value of the SalesExecutive entity.
// If the SalesExecutive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesExecutiveMutation) OldAvatar(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatar is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatar requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatar: %w", err)
	}
	return oldValue.Avatar, nil
}

// ResetAvatar resets all changes to the "avatar" field.
func (m *SalesExecutiveMutation) ResetAvatar() {
	m.avatar = nil
}

// SetEmail sets the "email" field.
func (m *SalesExecutiveMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *SalesExecutiveMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the SalesExecutive entity.
// If the SalesExecutive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesExecutiveMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *SalesExecutiveMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *SalesExecutiveMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *SalesExecutiveMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the SalesExecutive entity.
// If the SalesExecutive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesExecutiveMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *SalesExecutiveMutation) ResetPhone() {
	m.phone = nil
}

// SetTeam sets the "team" field.
func (m *SalesExecutiveMutation) SetTeam(s string) {
	m.team = &s
}

// Team returns the value of the "team" field in the mutation.
func (m *SalesExecutiveMutation) Team() (r string, exists bool) {
	v := m.team
	if v == nil {
		return
	}
	return *v, true
}

// OldTeam returns the old "team" field's value of the SalesExecutive entity.
// If the SalesExecutive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesExecutiveMutation) OldTeam(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTeam is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTeam requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTeam: %w", err)
	}
	return oldValue.Team, nil
}

// ClearTeam clears the value of the "team" field.
func (m *SalesExecutiveMutation) ClearTeam() {
	m.team = nil
	m.clearedFields[salesexecutive.FieldTeam] = struct{}{}
}

// TeamCleared returns if the "team" field was cleared in this mutation.
func (m *SalesExecutiveMutation) TeamCleared() bool {
	_, ok := m.clearedFields[salesexecutive.FieldTeam]
	return ok
}

// ResetTeam resets all changes to the "team" field.
func (m *SalesExecutiveMutation) ResetTeam() {
	m.team = nil
	delete(m.clearedFields, salesexecutive.FieldTeam)
}

// SetLeadsAssigned sets the "leads_assigned" field.
func (m *SalesExecutiveMutation) SetLeadsAssigned(i int) {
	m.leads_assigned = &i
	m.addleads_assigned = nil
}

// LeadsAssigned returns the value of the "leads_assigned" field in the mutation.
func (m *SalesExecutiveMutation) LeadsAssigned() (r int, exists bool) {
	v := m.leads_assigned
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadsAssigned returns the old "leads_assigned" field's value of the SalesExecutive entity.
// If the SalesExecutive object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesExecutiveMutation) OldLeadsAssigned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadsAssigned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadsAssigned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadsAssigned: %w", err)
	}
	return oldValue.LeadsAssigned, nil
}

// AddLeadsAssigned adds i to the "leads_assigned" field.
func (m *SalesExecutiveMutation) AddLeadsAssigned(i int) {
	if m.addleads_assigned != nil {
		*m.addleads_assigned += i
	} else {
		m.addleads_assigned = &i
	}
}

// AddedLeadsAssigned returns the value that was added to the "leads_assigned" field in this mutation.
func (m *SalesExecutiveMutation) AddedLeadsAssigned() (r int, exists bool) {
	v := m.addleads_assigned
	if v == nil {
		return
	}
	return *v, true
}

// ResetLeadsAssigned resets all changes to the "leads_assigned" field.
func (m *SalesExecutiveMutation) ResetLeadsAssigned() {
	m.leads_assigned = nil
	m.addleads_assigned = nil
}

// Where appends a list predicates to the SalesExecutiveMutation builder.
func (m *SalesExecutiveMutation) Where(ps ...predicate.SalesExecutive) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SalesExecutiveMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SalesExecutiveMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SalesExecutive, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SalesExecutiveMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SalesExecutiveMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SalesExecutive).
func (m *SalesExecutiveMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SalesExecutiveMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, salesexecutive.FieldName)
	}
	if m.avatar != nil {
		fields = append(fields, salesexecutive.FieldAvatar)
	}
	if m.email != nil {
		fields = append(fields, salesexecutive.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, salesexecutive.FieldPhone)
	}
	if m.team != nil {
		fields = append(fields, salesexecutive.FieldTeam)
	}
	if m.leads_assigned != nil {
		fields = append(fields, salesexecutive.FieldLeadsAssigned)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SalesExecutiveMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case salesexecutive.FieldName:
		return m.Name()
	case salesexecutive.FieldAvatar:
		return m.Avatar()
	case salesexecutive.FieldEmail:
		return m.Email()
	case salesexecutive.FieldPhone:
		return m.Phone()
	case salesexecutive.FieldTeam:
		return m.Team()
	case salesexecutive.FieldLeadsAssigned:
		return m.LeadsAssigned()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SalesExecutiveMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case salesexecutive.FieldName:
		return m.OldName(ctx)
	case salesexecutive.FieldAvatar:
		return m.OldAvatar(ctx)
	case salesexecutive.FieldEmail:
		return m.OldEmail(ctx)
	case salesexecutive.FieldPhone:
		return m.OldPhone(ctx)
	case salesexecutive.FieldTeam:
		return m.OldTeam(ctx)
	case salesexecutive.FieldLeadsAssigned:
		return m.OldLeadsAssigned(ctx)
	}
	return nil, fmt.Errorf("unknown SalesExecutive field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SalesExecutiveMutation) SetField(name string, value ent.Value) error {
	switch name {
	case salesexecutive.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case salesexecutive.FieldAvatar:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatar(v)
		return nil
	case salesexecutive.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case salesexecutive.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case salesexecutive.FieldTeam:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTeam(v)
		return nil
	case salesexecutive.FieldLeadsAssigned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadsAssigned(v)
		return nil
	}
	return fmt.Errorf("unknown SalesExecutive field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SalesExecutiveMutation) AddedFields() []string {
	var fields []string
	if m.addleads_assigned != nil {
		fields = append(fields, salesexecutive.FieldLeadsAssigned)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SalesExecutiveMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case salesexecutive.FieldLeadsAssigned:
		return m.AddedLeadsAssigned()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SalesExecutiveMutation) AddField(name string, value ent.Value) error {
	switch name {
	case salesexecutive.FieldLeadsAssigned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeadsAssigned(v)
		return nil
	}
	return fmt.Errorf("unknown SalesExecutive numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SalesExecutiveMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(salesexecutive.FieldTeam) {
		fields = append(fields, salesexecutive.FieldTeam)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SalesExecutiveMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SalesExecutiveMutation) ClearField(name string) error {
	switch name {
	case salesexecutive.FieldTeam:
		m.ClearTeam()
		return nil
	}
	return fmt.Errorf("unknown SalesExecutive nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SalesExecutiveMutation) ResetField(name string) error {
	switch name {
	case salesexecutive.FieldName:
		m.ResetName()
		return nil
	case salesexecutive.FieldAvatar:
		m.ResetAvatar()
		return nil
	case salesexecutive.FieldEmail:
		m.ResetEmail()
		return nil
	case salesexecutive.FieldPhone:
		m.ResetPhone()
		return nil
	case salesexecutive.FieldTeam:
		m.ResetTeam()
		return nil
	case salesexecutive.FieldLeadsAssigned:
		m.ResetLeadsAssigned()
		return nil
	}
	return fmt.Errorf("unknown SalesExecutive field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SalesExecutiveMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SalesExecutiveMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SalesExecutiveMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SalesExecutiveMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SalesExecutiveMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SalesExecutiveMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SalesExecutiveMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SalesExecutive unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SalesExecutiveMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SalesExecutive edge %s", name)
}
