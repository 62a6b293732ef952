// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danuarta/schedules-tracker/gen/ent/predicate"
	"github.com/danuarta/schedules-tracker/gen/ent/vessel"
	"github.com/danuarta/schedules-tracker/gen/ent/vesselalias"
	"github.com/google/uuid"
)

// VesselUpdate is the builder for updating Vessel entities.
type VesselUpdate struct {
	config
	hooks    []Hook
	mutation *VesselMutation
}

// Where appends a list predicates to the VesselUpdate builder.
func (_u *VesselUpdate) Where(ps ...predicate.Vessel) *VesselUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *VesselUpdate) SetName(v string) *VesselUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VesselUpdate) SetNillableName(v *string) *VesselUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCarrier sets the "carrier" field.
func (_u *VesselUpdate) SetCarrier(v string) *VesselUpdate {
	_u.mutation.SetCarrier(v)
	return _u
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_u *VesselUpdate) SetNillableCarrier(v *string) *VesselUpdate {
	if v != nil {
		_u.SetCarrier(*v)
	}
	return _u
}

// ClearCarrier clears the value of the "carrier" field.
func (_u *VesselUpdate) ClearCarrier() *VesselUpdate {
	_u.mutation.ClearCarrier()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *VesselUpdate) SetIsActive(v bool) *VesselUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *VesselUpdate) SetNillableIsActive(v *bool) *VesselUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VesselUpdate) SetCreatedAt(v time.Time) *VesselUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VesselUpdate) SetNillableCreatedAt(v *time.Time) *VesselUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VesselUpdate) SetUpdatedAt(v time.Time) *VesselUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAliasIDs adds the "aliases" edge to the VesselAlias entity by IDs.
func (_u *VesselUpdate) AddAliasIDs(ids ...uuid.UUID) *VesselUpdate {
	_u.mutation.AddAliasIDs(ids...)
	return _u
}

// AddAliases adds the "aliases" edges to the VesselAlias entity.
func (_u *VesselUpdate) AddAliases(v ...*VesselAlias) *VesselUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAliasIDs(ids...)
}

// Mutation returns the VesselMutation object of the builder.
func (_u *VesselUpdate) Mutation() *VesselMutation {
	return _u.mutation
}

// ClearAliases clears all "aliases" edges to the VesselAlias entity.
func (_u *VesselUpdate) ClearAliases() *VesselUpdate {
	_u.mutation.ClearAliases()
	return _u
}

// RemoveAliasIDs removes the "aliases" edge to VesselAlias entities by IDs.
func (_u *VesselUpdate) RemoveAliasIDs(ids ...uuid.UUID) *VesselUpdate {
	_u.mutation.RemoveAliasIDs(ids...)
	return _u
}

// RemoveAliases removes "aliases" edges to VesselAlias entities.
func (_u *VesselUpdate) RemoveAliases(v ...*VesselAlias) *VesselUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAliasIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VesselUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VesselUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VesselUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VesselUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VesselUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vessel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VesselUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := vessel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vessel.name": %w`, err)}
		}
	}
	return nil
}

func (_u *VesselUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vessel.Table, vessel.Columns, sqlgraph.NewFieldSpec(vessel.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(vessel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Carrier(); ok {
		_spec.SetField(vessel.FieldCarrier, field.TypeString, value)
	}
	if _u.mutation.CarrierCleared() {
		_spec.ClearField(vessel.FieldCarrier, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(vessel.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vessel.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vessel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AliasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vessel.AliasesTable,
			Columns: []string{vessel.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vesselalias.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAliasesIDs(); len(nodes) > 0 && !_u.mutation.AliasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vessel.AliasesTable,
			Columns: []string{vessel.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vesselalias.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AliasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vessel.AliasesTable,
			Columns: []string{vessel.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vesselalias.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vessel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VesselUpdateOne is the builder for updating a single Vessel entity.
type VesselUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VesselMutation
}

// SetName sets the "name" field.
func (_u *VesselUpdateOne) SetName(v string) *VesselUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *VesselUpdateOne) SetNillableName(v *string) *VesselUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCarrier sets the "carrier" field.
func (_u *VesselUpdateOne) SetCarrier(v string) *VesselUpdateOne {
	_u.mutation.SetCarrier(v)
	return _u
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_u *VesselUpdateOne) SetNillableCarrier(v *string) *VesselUpdateOne {
	if v != nil {
		_u.SetCarrier(*v)
	}
	return _u
}

// ClearCarrier clears the value of the "carrier" field.
func (_u *VesselUpdateOne) ClearCarrier() *VesselUpdateOne {
	_u.mutation.ClearCarrier()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *VesselUpdateOne) SetIsActive(v bool) *VesselUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *VesselUpdateOne) SetNillableIsActive(v *bool) *VesselUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VesselUpdateOne) SetCreatedAt(v time.Time) *VesselUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VesselUpdateOne) SetNillableCreatedAt(v *time.Time) *VesselUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VesselUpdateOne) SetUpdatedAt(v time.Time) *VesselUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddAliasIDs adds the "aliases" edge to the VesselAlias entity by IDs.
func (_u *VesselUpdateOne) AddAliasIDs(ids ...uuid.UUID) *VesselUpdateOne {
	_u.mutation.AddAliasIDs(ids...)
	return _u
}

// AddAliases adds the "aliases" edges to the VesselAlias entity.
func (_u *VesselUpdateOne) AddAliases(v ...*VesselAlias) *VesselUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAliasIDs(ids...)
}

// Mutation returns the VesselMutation object of the builder.
func (_u *VesselUpdateOne) Mutation() *VesselMutation {
	return _u.mutation
}

// ClearAliases clears all "aliases" edges to the VesselAlias entity.
func (_u *VesselUpdateOne) ClearAliases() *VesselUpdateOne {
	_u.mutation.ClearAliases()
	return _u
}

// RemoveAliasIDs removes the "aliases" edge to VesselAlias entities by IDs.
func (_u *VesselUpdateOne) RemoveAliasIDs(ids ...uuid.UUID) *VesselUpdateOne {
	_u.mutation.RemoveAliasIDs(ids...)
	return _u
}

// RemoveAliases removes "aliases" edges to VesselAlias entities.
func (_u *VesselUpdateOne) RemoveAliases(v ...*VesselAlias) *VesselUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAliasIDs(ids...)
}

// Where appends a list predicates to the VesselUpdate builder.
func (_u *VesselUpdateOne) Where(ps ...predicate.Vessel) *VesselUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VesselUpdateOne) Select(field string, fields ...string) *VesselUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vessel entity.
func (_u *VesselUpdateOne) Save(ctx context.Context) (*Vessel, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VesselUpdateOne) SaveX(ctx context.Context) *Vessel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VesselUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VesselUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VesselUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vessel.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VesselUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := vessel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vessel.name": %w`, err)}
		}
	}
	return nil
}

func (_u *VesselUpdateOne) sqlSave(ctx context.Context) (_node *Vessel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vessel.Table, vessel.Columns, sqlgraph.NewFieldSpec(vessel.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vessel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vessel.FieldID)
		for _, f := range fields {
			if !vessel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vessel.FieldID {
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
		_spec.SetField(vessel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Carrier(); ok {
		_spec.SetField(vessel.FieldCarrier, field.TypeString, value)
	}
	if _u.mutation.CarrierCleared() {
		_spec.ClearField(vessel.FieldCarrier, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(vessel.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vessel.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vessel.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AliasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vessel.AliasesTable,
			Columns: []string{vessel.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vesselalias.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAliasesIDs(); len(nodes) > 0 && !_u.mutation.AliasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vessel.AliasesTable,
			Columns: []string{vessel.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vesselalias.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AliasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   vessel.AliasesTable,
			Columns: []string{vessel.AliasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vesselalias.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Vessel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vessel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
