// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/hsrmotors/leadpulse/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/hsrmotors/leadpulse/ent/assignmentrule"
	"github.com/hsrmotors/leadpulse/ent/deletedlead"
	"github.com/hsrmotors/leadpulse/ent/lead"
	"github.com/hsrmotors/leadpulse/ent/salesexecutive"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AssignmentRule is the client for interacting with the AssignmentRule builders.
	AssignmentRule *AssignmentRuleClient
	// DeletedLead is the client for interacting with the DeletedLead builders.
	DeletedLead *DeletedLeadClient
	// Lead is the client for interacting with the Lead builders.
	Lead *LeadClient
	// SalesExecutive is the client for interacting with the SalesExecutive builders.
	SalesExecutive *SalesExecutiveClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AssignmentRule = NewAssignmentRuleClient(c.config)
	c.DeletedLead = NewDeletedLeadClient(c.config)
	c.Lead = NewLeadClient(c.config)
	c.SalesExecutive = NewSalesExecutiveClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AssignmentRule: NewAssignmentRuleClient(cfg),
		DeletedLead:    NewDeletedLeadClient(cfg),
		Lead:           NewLeadClient(cfg),
		SalesExecutive: NewSalesExecutiveClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		AssignmentRule: NewAssignmentRuleClient(cfg),
		DeletedLead:    NewDeletedLeadClient(cfg),
		Lead:           NewLeadClient(cfg),
		SalesExecutive: NewSalesExecutiveClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AssignmentRule.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AssignmentRule.Use(hooks...)
	c.DeletedLead.Use(hooks...)
	c.Lead.Use(hooks...)
	c.SalesExecutive.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AssignmentRule.Intercept(interceptors...)
	c.DeletedLead.Intercept(interceptors...)
	c.Lead.Intercept(interceptors...)
	c.SalesExecutive.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AssignmentRuleMutation:
		return c.AssignmentRule.mutate(ctx, m)
	case *DeletedLeadMutation:
		return c.DeletedLead.mutate(ctx, m)
	case *LeadMutation:
		return c.Lead.mutate(ctx, m)
	case *SalesExecutiveMutation:
		return c.SalesExecutive.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AssignmentRuleClient is a client for the AssignmentRule schema.
type AssignmentRuleClient struct {
	config
}

// NewAssignmentRuleClient returns a client for the AssignmentRule from the given config.
func NewAssignmentRuleClient(c config) *AssignmentRuleClient {
	return &AssignmentRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assignmentrule.Hooks(f(g(h())))`.
func (c *AssignmentRuleClient) Use(hooks ...Hook) {
	c.hooks.AssignmentRule = append(c.hooks.AssignmentRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assignmentrule.Intercept(f(g(h())))`.
func (c *AssignmentRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.AssignmentRule = append(c.inters.AssignmentRule, interceptors...)
}

// Create returns a builder for creating a AssignmentRule entity.
func (c *AssignmentRuleClient) Create() *AssignmentRuleCreate {
	mutation := newAssignmentRuleMutation(c.config, OpCreate)
	return &AssignmentRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AssignmentRule entities.
func (c *AssignmentRuleClient) CreateBulk(builders ...*AssignmentRuleCreate) *AssignmentRuleCreateBulk {
	return &AssignmentRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssignmentRuleClient) MapCreateBulk(slice any, setFunc func(*AssignmentRuleCreate, int)) *AssignmentRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssignmentRuleCreateBulk{err: fmt.Errorf("calling to AssignmentRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssignmentRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssignmentRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AssignmentRule.
func (c *AssignmentRuleClient) Update() *AssignmentRuleUpdate {
	mutation := newAssignmentRuleMutation(c.config, OpUpdate)
	return &AssignmentRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssignmentRuleClient) UpdateOne(_m *AssignmentRule) *AssignmentRuleUpdateOne {
	mutation := newAssignmentRuleMutation(c.config, OpUpdateOne, withAssignmentRule(_m))
	return &AssignmentRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssignmentRuleClient) UpdateOneID(id int) *AssignmentRuleUpdateOne {
	mutation := newAssignmentRuleMutation(c.config, OpUpdateOne, withAssignmentRuleID(id))
	return &AssignmentRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AssignmentRule.
func (c *AssignmentRuleClient) Delete() *AssignmentRuleDelete {
	mutation := newAssignmentRuleMutation(c.config, OpDelete)
	return &AssignmentRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssignmentRuleClient) DeleteOne(_m *AssignmentRule) *AssignmentRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssignmentRuleClient) DeleteOneID(id int) *AssignmentRuleDeleteOne {
	builder := c.Delete().Where(assignmentrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssignmentRuleDeleteOne{builder}
}

// Query returns a query builder for AssignmentRule.
func (c *AssignmentRuleClient) Query() *AssignmentRuleQuery {
	return &AssignmentRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssignmentRule},
		inters: c.Interceptors(),
	}
}

// Get returns a AssignmentRule entity by its id.
func (c *AssignmentRuleClient) Get(ctx context.Context, id int) (*AssignmentRule, error) {
	return c.Query().Where(assignmentrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssignmentRuleClient) GetX(ctx context.Context, id int) *AssignmentRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssignmentRuleClient) Hooks() []Hook {
	return c.hooks.AssignmentRule
}

// Interceptors returns the client interceptors.
func (c *AssignmentRuleClient) Interceptors() []Interceptor {
	return c.inters.AssignmentRule
}

func (c *AssignmentRuleClient) mutate(ctx context.Context, m *AssignmentRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssignmentRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssignmentRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssignmentRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssignmentRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AssignmentRule mutation op: %q", m.Op())
	}
}

// DeletedLeadClient is a client for the DeletedLead schema.
type DeletedLeadClient struct {
	config
}

// NewDeletedLeadClient returns a client for the DeletedLead from the given config.
func NewDeletedLeadClient(c config) *DeletedLeadClient {
	return &DeletedLeadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deletedlead.Hooks(f(g(h())))`.
func (c *DeletedLeadClient) Use(hooks ...Hook) {
	c.hooks.DeletedLead = append(c.hooks.DeletedLead, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deletedlead.Intercept(f(g(h())))`.
func (c *DeletedLeadClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeletedLead = append(c.inters.DeletedLead, interceptors...)
}

// Create returns a builder for creating a DeletedLead entity.
func (c *DeletedLeadClient) Create() *DeletedLeadCreate {
	mutation := newDeletedLeadMutation(c.config, OpCreate)
	return &DeletedLeadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeletedLead entities.
func (c *DeletedLeadClient) CreateBulk(builders ...*DeletedLeadCreate) *DeletedLeadCreateBulk {
	return &DeletedLeadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeletedLeadClient) MapCreateBulk(slice any, setFunc func(*DeletedLeadCreate, int)) *DeletedLeadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeletedLeadCreateBulk{err: fmt.Errorf("calling to DeletedLeadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeletedLeadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeletedLeadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeletedLead.
func (c *DeletedLeadClient) Update() *DeletedLeadUpdate {
	mutation := newDeletedLeadMutation(c.config, OpUpdate)
	return &DeletedLeadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeletedLeadClient) UpdateOne(_m *DeletedLead) *DeletedLeadUpdateOne {
	mutation := newDeletedLeadMutation(c.config, OpUpdateOne, withDeletedLead(_m))
	return &DeletedLeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeletedLeadClient) UpdateOneID(id int) *DeletedLeadUpdateOne {
	mutation := newDeletedLeadMutation(c.config, OpUpdateOne, withDeletedLeadID(id))
	return &DeletedLeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeletedLead.
func (c *DeletedLeadClient) Delete() *DeletedLeadDelete {
	mutation := newDeletedLeadMutation(c.config, OpDelete)
	return &DeletedLeadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeletedLeadClient) DeleteOne(_m *DeletedLead) *DeletedLeadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeletedLeadClient) DeleteOneID(id int) *DeletedLeadDeleteOne {
	builder := c.Delete().Where(deletedlead.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeletedLeadDeleteOne{builder}
}

// Query returns a query builder for DeletedLead.
func (c *DeletedLeadClient) Query() *DeletedLeadQuery {
	return &DeletedLeadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeletedLead},
		inters: c.Interceptors(),
	}
}

// Get returns a DeletedLead entity by its id.
func (c *DeletedLeadClient) Get(ctx context.Context, id int) (*DeletedLead, error) {
	return c.Query().Where(deletedlead.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeletedLeadClient) GetX(ctx context.Context, id int) *DeletedLead {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeletedLeadClient) Hooks() []Hook {
	return c.hooks.DeletedLead
}

// Interceptors returns the client interceptors.
func (c *DeletedLeadClient) Interceptors() []Interceptor {
	return c.inters.DeletedLead
}

func (c *DeletedLeadClient) mutate(ctx context.Context, m *DeletedLeadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeletedLeadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeletedLeadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeletedLeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeletedLeadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeletedLead mutation op: %q", m.Op())
	}
}

// LeadClient is a client for the Lead schema.
type LeadClient struct {
	config
}

// NewLeadClient returns a client for the Lead from the given config.
func NewLeadClient(c config) *LeadClient {
	return &LeadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lead.Hooks(f(g(h())))`.
func (c *LeadClient) Use(hooks ...Hook) {
	c.hooks.Lead = append(c.hooks.Lead, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lead.Intercept(f(g(h())))`.
func (c *LeadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lead = append(c.inters.Lead, interceptors...)
}

// Create returns a builder for creating a Lead entity.
func (c *LeadClient) Create() *LeadCreate {
	mutation := newLeadMutation(c.config, OpCreate)
	return &LeadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lead entities.
func (c *LeadClient) CreateBulk(builders ...*LeadCreate) *LeadCreateBulk {
	return &LeadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LeadClient) MapCreateBulk(slice any, setFunc func(*LeadCreate, int)) *LeadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LeadCreateBulk{err: fmt.Errorf("calling to LeadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LeadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LeadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lead.
func (c *LeadClient) Update() *LeadUpdate {
	mutation := newLeadMutation(c.config, OpUpdate)
	return &LeadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LeadClient) UpdateOne(_m *Lead) *LeadUpdateOne {
	mutation := newLeadMutation(c.config, OpUpdateOne, withLead(_m))
	return &LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LeadClient) UpdateOneID(id int) *LeadUpdateOne {
	mutation := newLeadMutation(c.config, OpUpdateOne, withLeadID(id))
	return &LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lead.
func (c *LeadClient) Delete() *LeadDelete {
	mutation := newLeadMutation(c.config, OpDelete)
	return &LeadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LeadClient) DeleteOne(_m *Lead) *LeadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LeadClient) DeleteOneID(id int) *LeadDeleteOne {
	builder := c.Delete().Where(lead.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LeadDeleteOne{builder}
}

// Query returns a query builder for Lead.
func (c *LeadClient) Query() *LeadQuery {
	return &LeadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLead},
		inters: c.Interceptors(),
	}
}

// Get returns a Lead entity by its id.
func (c *LeadClient) Get(ctx context.Context, id int) (*Lead, error) {
	return c.Query().Where(lead.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LeadClient) GetX(ctx context.Context, id int) *Lead {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LeadClient) Hooks() []Hook {
	return c.hooks.Lead
}

// Interceptors returns the client interceptors.
func (c *LeadClient) Interceptors() []Interceptor {
	return c.inters.Lead
}

func (c *LeadClient) mutate(ctx context.Context, m *LeadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LeadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LeadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LeadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LeadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lead mutation op: %q", m.Op())
	}
}

// SalesExecutiveClient is a client for the SalesExecutive schema.
type SalesExecutiveClient struct {
	config
}

// NewSalesExecutiveClient returns a client for the SalesExecutive from the given config.
func NewSalesExecutiveClient(c config) *SalesExecutiveClient {
	return &SalesExecutiveClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `salesexecutive.Hooks(f(g(h())))`.
func (c *SalesExecutiveClient) Use(hooks ...Hook) {
	c.hooks.SalesExecutive = append(c.hooks.SalesExecutive, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `salesexecutive.Intercept(f(g(h())))`.
func (c *SalesExecutiveClient) Intercept(interceptors ...Interceptor) {
	c.inters.SalesExecutive = append(c.inters.SalesExecutive, interceptors...)
}

// Create returns a builder for creating a SalesExecutive entity.
func (c *SalesExecutiveClient) Create() *SalesExecutiveCreate {
	mutation := newSalesExecutiveMutation(c.config, OpCreate)
	return &SalesExecutiveCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SalesExecutive entities.
func (c *SalesExecutiveClient) CreateBulk(builders ...*SalesExecutiveCreate) *SalesExecutiveCreateBulk {
	return &SalesExecutiveCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SalesExecutiveClient) MapCreateBulk(slice any, setFunc func(*SalesExecutiveCreate, int)) *SalesExecutiveCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SalesExecutiveCreateBulk{err: fmt.Errorf("calling to SalesExecutiveClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SalesExecutiveCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SalesExecutiveCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SalesExecutive.
func (c *SalesExecutiveClient) Update() *SalesExecutiveUpdate {
	mutation := newSalesExecutiveMutation(c.config, OpUpdate)
	return &SalesExecutiveUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SalesExecutiveClient) UpdateOne(_m *SalesExecutive) *SalesExecutiveUpdateOne {
	mutation := newSalesExecutiveMutation(c.config, OpUpdateOne, withSalesExecutive(_m))
	return &SalesExecutiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SalesExecutiveClient) UpdateOneID(id int) *SalesExecutiveUpdateOne {
	mutation := newSalesExecutiveMutation(c.config, OpUpdateOne, withSalesExecutiveID(id))
	return &SalesExecutiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SalesExecutive.
func (c *SalesExecutiveClient) Delete() *SalesExecutiveDelete {
	mutation := newSalesExecutiveMutation(c.config, OpDelete)
	return &SalesExecutiveDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SalesExecutiveClient) DeleteOne(_m *SalesExecutive) *SalesExecutiveDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SalesExecutiveClient) DeleteOneID(id int) *SalesExecutiveDeleteOne {
	builder := c.Delete().Where(salesexecutive.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SalesExecutiveDeleteOne{builder}
}

// Query returns a query builder for SalesExecutive.
func (c *SalesExecutiveClient) Query() *SalesExecutiveQuery {
	return &SalesExecutiveQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSalesExecutive},
		inters: c.Interceptors(),
	}
}

// Get returns a SalesExecutive entity by its id.
func (c *SalesExecutiveClient) Get(ctx context.Context, id int) (*SalesExecutive, error) {
	return c.Query().Where(salesexecutive.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SalesExecutiveClient) GetX(ctx context.Context, id int) *SalesExecutive {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SalesExecutiveClient) Hooks() []Hook {
	return c.hooks.SalesExecutive
}

// Interceptors returns the client interceptors.
func (c *SalesExecutiveClient) Interceptors() []Interceptor {
	return c.inters.SalesExecutive
}

func (c *SalesExecutiveClient) mutate(ctx context.Context, m *SalesExecutiveMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SalesExecutiveCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SalesExecutiveUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SalesExecutiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SalesExecutiveDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SalesExecutive mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AssignmentRule, DeletedLead, Lead, SalesExecutive []ent.Hook
	}
	inters struct {
		AssignmentRule, DeletedLead, Lead, SalesExecutive []ent.Interceptor
	}
)
