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

// VesselAliasUpdate is the builder for updating VesselAlias entities.
type VesselAliasUpdate struct {
	config
	hooks    []Hook
	mutation *VesselAliasMutation
}

// Where appends a list predicates to the VesselAliasUpdate builder.
func (_u *VesselAliasUpdate) Where(ps ...predicate.VesselAlias) *VesselAliasUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVesselID sets the "vessel_id" field.
func (_u *VesselAliasUpdate) SetVesselID(v uuid.UUID) *VesselAliasUpdate {
	_u.mutation.SetVesselID(v)
	return _u
}

// SetNillableVesselID sets the "vessel_id" field if the given value is not nil.
func (_u *VesselAliasUpdate) SetNillableVesselID(v *uuid.UUID) *VesselAliasUpdate {
	if v != nil {
		_u.SetVesselID(*v)
	}
	return _u
}

// SetAlias sets the "alias" field.
func (_u *VesselAliasUpdate) SetAlias(v string) *VesselAliasUpdate {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *VesselAliasUpdate) SetNillableAlias(v *string) *VesselAliasUpdate {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *VesselAliasUpdate) SetSource(v string) *VesselAliasUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *VesselAliasUpdate) SetNillableSource(v *string) *VesselAliasUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VesselAliasUpdate) SetConfidence(v float64) *VesselAliasUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VesselAliasUpdate) SetNillableConfidence(v *float64) *VesselAliasUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VesselAliasUpdate) AddConfidence(v float64) *VesselAliasUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *VesselAliasUpdate) SetUsageCount(v int) *VesselAliasUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *VesselAliasUpdate) SetNillableUsageCount(v *int) *VesselAliasUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *VesselAliasUpdate) AddUsageCount(v int) *VesselAliasUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *VesselAliasUpdate) SetLastUsedAt(v time.Time) *VesselAliasUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *VesselAliasUpdate) SetNillableLastUsedAt(v *time.Time) *VesselAliasUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *VesselAliasUpdate) ClearLastUsedAt() *VesselAliasUpdate {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VesselAliasUpdate) SetCreatedAt(v time.Time) *VesselAliasUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VesselAliasUpdate) SetNillableCreatedAt(v *time.Time) *VesselAliasUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VesselAliasUpdate) SetUpdatedAt(v time.Time) *VesselAliasUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVessel sets the "vessel" edge to the Vessel entity.
func (_u *VesselAliasUpdate) SetVessel(v *Vessel) *VesselAliasUpdate {
	return _u.SetVesselID(v.ID)
}

// Mutation returns the VesselAliasMutation object of the builder.
func (_u *VesselAliasUpdate) Mutation() *VesselAliasMutation {
	return _u.mutation
}

// ClearVessel clears the "vessel" edge to the Vessel entity.
func (_u *VesselAliasUpdate) ClearVessel() *VesselAliasUpdate {
	_u.mutation.ClearVessel()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VesselAliasUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VesselAliasUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VesselAliasUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VesselAliasUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VesselAliasUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vesselalias.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VesselAliasUpdate) check() error {
	if v, ok := _u.mutation.Alias(); ok {
		if err := vesselalias.AliasValidator(v); err != nil {
			return &ValidationError{Name: "alias", err: fmt.Errorf(`ent: validator failed for field "VesselAlias.alias": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := vesselalias.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "VesselAlias.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsageCount(); ok {
		if err := vesselalias.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "VesselAlias.usage_count": %w`, err)}
		}
	}
	if _u.mutation.VesselCleared() && len(_u.mutation.VesselIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VesselAlias.vessel"`)
	}
	return nil
}

func (_u *VesselAliasUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vesselalias.Table, vesselalias.Columns, sqlgraph.NewFieldSpec(vesselalias.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(vesselalias.FieldAlias, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(vesselalias.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(vesselalias.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(vesselalias.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(vesselalias.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(vesselalias.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(vesselalias.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(vesselalias.FieldLastUsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vesselalias.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vesselalias.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VesselCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vesselalias.VesselTable,
			Columns: []string{vesselalias.VesselColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vessel.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VesselIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vesselalias.VesselTable,
			Columns: []string{vesselalias.VesselColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vessel.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vesselalias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VesselAliasUpdateOne is the builder for updating a single VesselAlias entity.
type VesselAliasUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VesselAliasMutation
}

// SetVesselID sets the "vessel_id" field.
func (_u *VesselAliasUpdateOne) SetVesselID(v uuid.UUID) *VesselAliasUpdateOne {
	_u.mutation.SetVesselID(v)
	return _u
}

// SetNillableVesselID sets the "vessel_id" field if the given value is not nil.
func (_u *VesselAliasUpdateOne) SetNillableVesselID(v *uuid.UUID) *VesselAliasUpdateOne {
	if v != nil {
		_u.SetVesselID(*v)
	}
	return _u
}

// SetAlias sets the "alias" field.
func (_u *VesselAliasUpdateOne) SetAlias(v string) *VesselAliasUpdateOne {
	_u.mutation.SetAlias(v)
	return _u
}

// SetNillableAlias sets the "alias" field if the given value is not nil.
func (_u *VesselAliasUpdateOne) SetNillableAlias(v *string) *VesselAliasUpdateOne {
	if v != nil {
		_u.SetAlias(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *VesselAliasUpdateOne) SetSource(v string) *VesselAliasUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *VesselAliasUpdateOne) SetNillableSource(v *string) *VesselAliasUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VesselAliasUpdateOne) SetConfidence(v float64) *VesselAliasUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VesselAliasUpdateOne) SetNillableConfidence(v *float64) *VesselAliasUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VesselAliasUpdateOne) AddConfidence(v float64) *VesselAliasUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *VesselAliasUpdateOne) SetUsageCount(v int) *VesselAliasUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *VesselAliasUpdateOne) SetNillableUsageCount(v *int) *VesselAliasUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *VesselAliasUpdateOne) AddUsageCount(v int) *VesselAliasUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *VesselAliasUpdateOne) SetLastUsedAt(v time.Time) *VesselAliasUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *VesselAliasUpdateOne) SetNillableLastUsedAt(v *time.Time) *VesselAliasUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (_u *VesselAliasUpdateOne) ClearLastUsedAt() *VesselAliasUpdateOne {
	_u.mutation.ClearLastUsedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VesselAliasUpdateOne) SetCreatedAt(v time.Time) *VesselAliasUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VesselAliasUpdateOne) SetNillableCreatedAt(v *time.Time) *VesselAliasUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VesselAliasUpdateOne) SetUpdatedAt(v time.Time) *VesselAliasUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetVessel sets the "vessel" edge to the Vessel entity.
func (_u *VesselAliasUpdateOne) SetVessel(v *Vessel) *VesselAliasUpdateOne {
	return _u.SetVesselID(v.ID)
}

// Mutation returns the VesselAliasMutation object of the builder.
func (_u *VesselAliasUpdateOne) Mutation() *VesselAliasMutation {
	return _u.mutation
}

// ClearVessel clears the "vessel" edge to the Vessel entity.
func (_u *VesselAliasUpdateOne) ClearVessel() *VesselAliasUpdateOne {
	_u.mutation.ClearVessel()
	return _u
}

// Where appends a list predicates to the VesselAliasUpdate builder.
func (_u *VesselAliasUpdateOne) Where(ps ...predicate.VesselAlias) *VesselAliasUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VesselAliasUpdateOne) Select(field string, fields ...string) *VesselAliasUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VesselAlias entity.
func (_u *VesselAliasUpdateOne) Save(ctx context.Context) (*VesselAlias, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VesselAliasUpdateOne) SaveX(ctx context.Context) *VesselAlias {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VesselAliasUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VesselAliasUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VesselAliasUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vesselalias.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VesselAliasUpdateOne) check() error {
	if v, ok := _u.mutation.Alias(); ok {
		if err := vesselalias.AliasValidator(v); err != nil {
			return &ValidationError{Name: "alias", err: fmt.Errorf(`ent: validator failed for field "VesselAlias.alias": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := vesselalias.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "VesselAlias.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsageCount(); ok {
		if err := vesselalias.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "VesselAlias.usage_count": %w`, err)}
		}
	}
	if _u.mutation.VesselCleared() && len(_u.mutation.VesselIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VesselAlias.vessel"`)
	}
	return nil
}

func (_u *VesselAliasUpdateOne) sqlSave(ctx context.Context) (_node *VesselAlias, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vesselalias.Table, vesselalias.Columns, sqlgraph.NewFieldSpec(vesselalias.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VesselAlias.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vesselalias.FieldID)
		for _, f := range fields {
			if !vesselalias.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vesselalias.FieldID {
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
	if value, ok := _u.mutation.Alias(); ok {
		_spec.SetField(vesselalias.FieldAlias, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(vesselalias.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(vesselalias.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(vesselalias.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(vesselalias.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(vesselalias.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(vesselalias.FieldLastUsedAt, field.TypeTime, value)
	}
	if _u.mutation.LastUsedAtCleared() {
		_spec.ClearField(vesselalias.FieldLastUsedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vesselalias.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vesselalias.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VesselCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vesselalias.VesselTable,
			Columns: []string{vesselalias.VesselColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vessel.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VesselIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vesselalias.VesselTable,
			Columns: []string{vesselalias.VesselColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vessel.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VesselAlias{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vesselalias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
