// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danuarta/schedules-tracker/gen/ent/predicate"
	"github.com/danuarta/schedules-tracker/gen/ent/vessel"
	"github.com/danuarta/schedules-tracker/gen/ent/vesselalias"
	"github.com/google/uuid"
)

// VesselQuery is the builder for querying Vessel entities.
type VesselQuery struct {
	config
	ctx         *QueryContext
	order       []vessel.OrderOption
	inters      []Interceptor
	predicates  []predicate.Vessel
	withAliases *VesselAliasQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VesselQuery builder.
func (_q *VesselQuery) Where(ps ...predicate.Vessel) *VesselQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *VesselQuery) Limit(limit int) *VesselQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *VesselQuery) Offset(offset int) *VesselQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *VesselQuery) Unique(unique bool) *VesselQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *VesselQuery) Order(o ...vessel.OrderOption) *VesselQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAliases chains the current query on the "aliases" edge.
func (_q *VesselQuery) QueryAliases() *VesselAliasQuery {
	query := (&VesselAliasClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(vessel.Table, vessel.FieldID, selector),
			sqlgraph.To(vesselalias.Table, vesselalias.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, vessel.AliasesTable, vessel.AliasesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Vessel entity from the query.
// Returns a *NotFoundError when no Vessel was found.
func (_q *VesselQuery) First(ctx context.Context) (*Vessel, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{vessel.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *VesselQuery) FirstX(ctx context.Context) *Vessel {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Vessel ID from the query.
// Returns a *NotFoundError when no Vessel ID was found.
func (_q *VesselQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{vessel.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *VesselQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Vessel entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Vessel entity is found.
// Returns a *NotFoundError when no Vessel entities are found.
func (_q *VesselQuery) Only(ctx context.Context) (*Vessel, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{vessel.Label}
	default:
		return nil, &NotSingularError{vessel.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *VesselQuery) OnlyX(ctx context.Context) *Vessel {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Vessel ID in the query.
// Returns a *NotSingularError when more than one Vessel ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *VesselQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{vessel.Label}
	default:
		err = &NotSingularError{vessel.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *VesselQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Vessels.
func (_q *VesselQuery) All(ctx context.Context) ([]*Vessel, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Vessel, *VesselQuery]()
	return withInterceptors[[]*Vessel](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *VesselQuery) AllX(ctx context.Context) []*Vessel {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Vessel IDs.
func (_q *VesselQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(vessel.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *VesselQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *VesselQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*VesselQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *VesselQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *VesselQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *VesselQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VesselQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *VesselQuery) Clone() *VesselQuery {
	if _q == nil {
		return nil
	}
	return &VesselQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]vessel.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.Vessel{}, _q.predicates...),
		withAliases: _q.withAliases.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAliases tells the query-builder to eager-load the nodes that are connected to
// the "aliases" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *VesselQuery) WithAliases(opts ...func(*VesselAliasQuery)) *VesselQuery {
	query := (&VesselAliasClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAliases = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Vessel.Query().
//		GroupBy(vessel.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *VesselQuery) GroupBy(field string, fields ...string) *VesselGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VesselGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = vessel.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Vessel.Query().
//		Select(vessel.FieldName).
//		Scan(ctx, &v)
func (_q *VesselQuery) Select(fields ...string) *VesselSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &VesselSelect{VesselQuery: _q}
	sbuild.label = vessel.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VesselSelect configured with the given aggregations.
func (_q *VesselQuery) Aggregate(fns ...AggregateFunc) *VesselSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *VesselQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !vessel.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *VesselQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Vessel, error) {
	var (
		nodes       = []*Vessel{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withAliases != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Vessel).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Vessel{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withAliases; query != nil {
		if err := _q.loadAliases(ctx, query, nodes,
			func(n *Vessel) { n.Edges.Aliases = []*VesselAlias{} },
			func(n *Vessel, e *VesselAlias) { n.Edges.Aliases = append(n.Edges.Aliases, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *VesselQuery) loadAliases(ctx context.Context, query *VesselAliasQuery, nodes []*Vessel, init func(*Vessel), assign func(*Vessel, *VesselAlias)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Vessel)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(vesselalias.FieldVesselID)
	}
	query.Where(predicate.VesselAlias(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(vessel.AliasesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.VesselID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "vessel_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *VesselQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *VesselQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(vessel.Table, vessel.Columns, sqlgraph.NewFieldSpec(vessel.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vessel.FieldID)
		for i := range fields {
			if fields[i] != vessel.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *VesselQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(vessel.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = vessel.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// VesselGroupBy is the group-by builder for Vessel entities.
type VesselGroupBy struct {
	selector
	build *VesselQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *VesselGroupBy) Aggregate(fns ...AggregateFunc) *VesselGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *VesselGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VesselQuery, *VesselGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *VesselGroupBy) sqlScan(ctx context.Context, root *VesselQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// VesselSelect is the builder for selecting fields of Vessel entities.
type VesselSelect struct {
	*VesselQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *VesselSelect) Aggregate(fns ...AggregateFunc) *VesselSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *VesselSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VesselQuery, *VesselSelect](ctx, _s.VesselQuery, _s, _s.inters, v)
}

func (_s *VesselSelect) sqlScan(ctx context.Context, root *VesselQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
