// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/danuarta/schedules-tracker/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danuarta/schedules-tracker/gen/ent/vessel"
	"github.com/danuarta/schedules-tracker/gen/ent/vesselalias"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Vessel is the client for interacting with the Vessel builders.
	Vessel *VesselClient
	// VesselAlias is the client for interacting with the VesselAlias builders.
	VesselAlias *VesselAliasClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Vessel = NewVesselClient(c.config)
	c.VesselAlias = NewVesselAliasClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		Vessel:      NewVesselClient(cfg),
		VesselAlias: NewVesselAliasClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		Vessel:      NewVesselClient(cfg),
		VesselAlias: NewVesselAliasClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Vessel.
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
	c.Vessel.Use(hooks...)
	c.VesselAlias.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Vessel.Intercept(interceptors...)
	c.VesselAlias.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *VesselMutation:
		return c.Vessel.mutate(ctx, m)
	case *VesselAliasMutation:
		return c.VesselAlias.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// VesselClient is a client for the Vessel schema.
type VesselClient struct {
	config
}

// NewVesselClient returns a client for the Vessel from the given config.
func NewVesselClient(c config) *VesselClient {
	return &VesselClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vessel.Hooks(f(g(h())))`.
func (c *VesselClient) Use(hooks ...Hook) {
	c.hooks.Vessel = append(c.hooks.Vessel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vessel.Intercept(f(g(h())))`.
func (c *VesselClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vessel = append(c.inters.Vessel, interceptors...)
}

// Create returns a builder for creating a Vessel entity.
func (c *VesselClient) Create() *VesselCreate {
	mutation := newVesselMutation(c.config, OpCreate)
	return &VesselCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vessel entities.
func (c *VesselClient) CreateBulk(builders ...*VesselCreate) *VesselCreateBulk {
	return &VesselCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VesselClient) MapCreateBulk(slice any, setFunc func(*VesselCreate, int)) *VesselCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VesselCreateBulk{err: fmt.Errorf("calling to VesselClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VesselCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VesselCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vessel.
func (c *VesselClient) Update() *VesselUpdate {
	mutation := newVesselMutation(c.config, OpUpdate)
	return &VesselUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VesselClient) UpdateOne(_m *Vessel) *VesselUpdateOne {
	mutation := newVesselMutation(c.config, OpUpdateOne, withVessel(_m))
	return &VesselUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VesselClient) UpdateOneID(id uuid.UUID) *VesselUpdateOne {
	mutation := newVesselMutation(c.config, OpUpdateOne, withVesselID(id))
	return &VesselUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vessel.
func (c *VesselClient) Delete() *VesselDelete {
	mutation := newVesselMutation(c.config, OpDelete)
	return &VesselDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VesselClient) DeleteOne(_m *Vessel) *VesselDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VesselClient) DeleteOneID(id uuid.UUID) *VesselDeleteOne {
	builder := c.Delete().Where(vessel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VesselDeleteOne{builder}
}

// Query returns a query builder for Vessel.
func (c *VesselClient) Query() *VesselQuery {
	return &VesselQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVessel},
		inters: c.Interceptors(),
	}
}

// Get returns a Vessel entity by its id.
func (c *VesselClient) Get(ctx context.Context, id uuid.UUID) (*Vessel, error) {
	return c.Query().Where(vessel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VesselClient) GetX(ctx context.Context, id uuid.UUID) *Vessel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAliases queries the aliases edge of a Vessel.
func (c *VesselClient) QueryAliases(_m *Vessel) *VesselAliasQuery {
	query := (&VesselAliasClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vessel.Table, vessel.FieldID, id),
			sqlgraph.To(vesselalias.Table, vesselalias.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, vessel.AliasesTable, vessel.AliasesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VesselClient) Hooks() []Hook {
	return c.hooks.Vessel
}

// Interceptors returns the client interceptors.
func (c *VesselClient) Interceptors() []Interceptor {
	return c.inters.Vessel
}

func (c *VesselClient) mutate(ctx context.Context, m *VesselMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VesselCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VesselUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VesselUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VesselDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Vessel mutation op: %q", m.Op())
	}
}

// VesselAliasClient is a client for the VesselAlias schema.
type VesselAliasClient struct {
	config
}

// NewVesselAliasClient returns a client for the VesselAlias from the given config.
func NewVesselAliasClient(c config) *VesselAliasClient {
	return &VesselAliasClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vesselalias.Hooks(f(g(h())))`.
func (c *VesselAliasClient) Use(hooks ...Hook) {
	c.hooks.VesselAlias = append(c.hooks.VesselAlias, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vesselalias.Intercept(f(g(h())))`.
func (c *VesselAliasClient) Intercept(interceptors ...Interceptor) {
	c.inters.VesselAlias = append(c.inters.VesselAlias, interceptors...)
}

// Create returns a builder for creating a VesselAlias entity.
func (c *VesselAliasClient) Create() *VesselAliasCreate {
	mutation := newVesselAliasMutation(c.config, OpCreate)
	return &VesselAliasCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VesselAlias entities.
func (c *VesselAliasClient) CreateBulk(builders ...*VesselAliasCreate) *VesselAliasCreateBulk {
	return &VesselAliasCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VesselAliasClient) MapCreateBulk(slice any, setFunc func(*VesselAliasCreate, int)) *VesselAliasCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VesselAliasCreateBulk{err: fmt.Errorf("calling to VesselAliasClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VesselAliasCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VesselAliasCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VesselAlias.
func (c *VesselAliasClient) Update() *VesselAliasUpdate {
	mutation := newVesselAliasMutation(c.config, OpUpdate)
	return &VesselAliasUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VesselAliasClient) UpdateOne(_m *VesselAlias) *VesselAliasUpdateOne {
	mutation := newVesselAliasMutation(c.config, OpUpdateOne, withVesselAlias(_m))
	return &VesselAliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VesselAliasClient) UpdateOneID(id uuid.UUID) *VesselAliasUpdateOne {
	mutation := newVesselAliasMutation(c.config, OpUpdateOne, withVesselAliasID(id))
	return &VesselAliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VesselAlias.
func (c *VesselAliasClient) Delete() *VesselAliasDelete {
	mutation := newVesselAliasMutation(c.config, OpDelete)
	return &VesselAliasDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VesselAliasClient) DeleteOne(_m *VesselAlias) *VesselAliasDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VesselAliasClient) DeleteOneID(id uuid.UUID) *VesselAliasDeleteOne {
	builder := c.Delete().Where(vesselalias.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VesselAliasDeleteOne{builder}
}

// Query returns a query builder for VesselAlias.
func (c *VesselAliasClient) Query() *VesselAliasQuery {
	return &VesselAliasQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVesselAlias},
		inters: c.Interceptors(),
	}
}

// Get returns a VesselAlias entity by its id.
func (c *VesselAliasClient) Get(ctx context.Context, id uuid.UUID) (*VesselAlias, error) {
	return c.Query().Where(vesselalias.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VesselAliasClient) GetX(ctx context.Context, id uuid.UUID) *VesselAlias {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVessel queries the vessel edge of a VesselAlias.
func (c *VesselAliasClient) QueryVessel(_m *VesselAlias) *VesselQuery {
	query := (&VesselClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(vesselalias.Table, vesselalias.FieldID, id),
			sqlgraph.To(vessel.Table, vessel.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, vesselalias.VesselTable, vesselalias.VesselColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VesselAliasClient) Hooks() []Hook {
	return c.hooks.VesselAlias
}

// Interceptors returns the client interceptors.
func (c *VesselAliasClient) Interceptors() []Interceptor {
	return c.inters.VesselAlias
}

func (c *VesselAliasClient) mutate(ctx context.Context, m *VesselAliasMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VesselAliasCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VesselAliasUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VesselAliasUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VesselAliasDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VesselAlias mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Vessel, VesselAlias []ent.Hook
	}
	inters struct {
		Vessel, VesselAlias []ent.Interceptor
	}
)
