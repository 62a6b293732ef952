// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danuarta/schedules-tracker/gen/ent/vessel"
	"github.com/danuarta/schedules-tracker/gen/ent/vesselalias"
	"github.com/google/uuid"
)

// VesselAliasCreate is the builder for creating a VesselAlias entity.
type VesselAliasCreate struct {
	config
	mutation *VesselAliasMutation
	hooks    []Hook
}

// SetVesselID sets the "vessel_id" field.
func (_c *VesselAliasCreate) SetVesselID(v uuid.UUID) *VesselAliasCreate {
	_c.mutation.SetVesselID(v)
	return _c
}

// SetAlias sets the "alias" field.
func (_c *VesselAliasCreate) SetAlias(v string) *VesselAliasCreate {
	_c.mutation.SetAlias(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *VesselAliasCreate) SetSource(v string) *VesselAliasCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *VesselAliasCreate) SetNillableSource(v *string) *VesselAliasCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *VesselAliasCreate) SetConfidence(v float64) *VesselAliasCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *VesselAliasCreate) SetNillableConfidence(v *float64) *VesselAliasCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *VesselAliasCreate) SetUsageCount(v int) *VesselAliasCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *VesselAliasCreate) SetNillableUsageCount(v *int) *VesselAliasCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *VesselAliasCreate) SetLastUsedAt(v time.Time) *VesselAliasCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *VesselAliasCreate) SetNillableLastUsedAt(v *time.Time) *VesselAliasCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VesselAliasCreate) SetCreatedAt(v time.Time) *VesselAliasCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VesselAliasCreate) SetNillableCreatedAt(v *time.Time) *VesselAliasCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VesselAliasCreate) SetUpdatedAt(v time.Time) *VesselAliasCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VesselAliasCreate) SetNillableUpdatedAt(v *time.Time) *VesselAliasCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VesselAliasCreate) SetID(v uuid.UUID) *VesselAliasCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VesselAliasCreate) SetNillableID(v *uuid.UUID) *VesselAliasCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetVessel sets the "vessel" edge to the Vessel entity.
func (_c *VesselAliasCreate) SetVessel(v *Vessel) *VesselAliasCreate {
	return _c.SetVesselID(v.ID)
}

// Mutation returns the VesselAliasMutation object of the builder.
func (_c *VesselAliasCreate) Mutation() *VesselAliasMutation {
	return _c.mutation
}

// Save creates the VesselAlias in the database.
func (_c *VesselAliasCreate) Save(ctx context.Context) (*VesselAlias, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VesselAliasCreate) SaveX(ctx context.Context) *VesselAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VesselAliasCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VesselAliasCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VesselAliasCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := vesselalias.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := vesselalias.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := vesselalias.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vesselalias.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := vesselalias.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vesselalias.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VesselAliasCreate) check() error {
	if _, ok := _c.mutation.VesselID(); !ok {
		return &ValidationError{Name: "vessel_id", err: errors.New(`ent: missing required field "VesselAlias.vessel_id"`)}
	}
	if _, ok := _c.mutation.Alias(); !ok {
		return &ValidationError{Name: "alias", err: errors.New(`ent: missing required field "VesselAlias.alias"`)}
	}
	if v, ok := _c.mutation.Alias(); ok {
		if err := vesselalias.AliasValidator(v); err != nil {
			return &ValidationError{Name: "alias", err: fmt.Errorf(`ent: validator failed for field "VesselAlias.alias": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "VesselAlias.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := vesselalias.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "VesselAlias.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "VesselAlias.confidence"`)}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "VesselAlias.usage_count"`)}
	}
	if v, ok := _c.mutation.UsageCount(); ok {
		if err := vesselalias.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "VesselAlias.usage_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VesselAlias.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VesselAlias.updated_at"`)}
	}
	if len(_c.mutation.VesselIDs()) == 0 {
		return &ValidationError{Name: "vessel", err: errors.New(`ent: missing required edge "VesselAlias.vessel"`)}
	}
	return nil
}

func (_c *VesselAliasCreate) sqlSave(ctx context.Context) (*VesselAlias, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VesselAliasCreate) createSpec() (*VesselAlias, *sqlgraph.CreateSpec) {
	var (
		_node = &VesselAlias{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vesselalias.Table, sqlgraph.NewFieldSpec(vesselalias.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Alias(); ok {
		_spec.SetField(vesselalias.FieldAlias, field.TypeString, value)
		_node.Alias = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(vesselalias.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(vesselalias.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(vesselalias.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(vesselalias.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vesselalias.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(vesselalias.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.VesselIDs(); len(nodes) > 0 {
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
		_node.VesselID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VesselAliasCreateBulk is the builder for creating many VesselAlias entities in bulk.
type VesselAliasCreateBulk struct {
	config
	err      error
	builders []*VesselAliasCreate
}

// Save creates the VesselAlias entities in the database.
func (_c *VesselAliasCreateBulk) Save(ctx context.Context) ([]*VesselAlias, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VesselAlias, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VesselAliasMutation)
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
func (_c *VesselAliasCreateBulk) SaveX(ctx context.Context) []*VesselAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VesselAliasCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VesselAliasCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
