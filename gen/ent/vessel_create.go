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

// VesselCreate is the builder for creating a Vessel entity.
type VesselCreate struct {
	config
	mutation *VesselMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *VesselCreate) SetName(v string) *VesselCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCarrier sets the "carrier" field.
func (_c *VesselCreate) SetCarrier(v string) *VesselCreate {
	_c.mutation.SetCarrier(v)
	return _c
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_c *VesselCreate) SetNillableCarrier(v *string) *VesselCreate {
	if v != nil {
		_c.SetCarrier(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *VesselCreate) SetIsActive(v bool) *VesselCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *VesselCreate) SetNillableIsActive(v *bool) *VesselCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VesselCreate) SetCreatedAt(v time.Time) *VesselCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VesselCreate) SetNillableCreatedAt(v *time.Time) *VesselCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VesselCreate) SetUpdatedAt(v time.Time) *VesselCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VesselCreate) SetNillableUpdatedAt(v *time.Time) *VesselCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VesselCreate) SetID(v uuid.UUID) *VesselCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VesselCreate) SetNillableID(v *uuid.UUID) *VesselCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddAliasIDs adds the "aliases" edge to the VesselAlias entity by IDs.
func (_c *VesselCreate) AddAliasIDs(ids ...uuid.UUID) *VesselCreate {
	_c.mutation.AddAliasIDs(ids...)
	return _c
}

// AddAliases adds the "aliases" edges to the VesselAlias entity.
func (_c *VesselCreate) AddAliases(v ...*VesselAlias) *VesselCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAliasIDs(ids...)
}

// Mutation returns the VesselMutation object of the builder.
func (_c *VesselCreate) Mutation() *VesselMutation {
	return _c.mutation
}

// Save creates the Vessel in the database.
func (_c *VesselCreate) Save(ctx context.Context) (*Vessel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VesselCreate) SaveX(ctx context.Context) *Vessel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VesselCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VesselCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VesselCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := vessel.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vessel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := vessel.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vessel.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VesselCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Vessel.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := vessel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Vessel.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Vessel.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Vessel.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Vessel.updated_at"`)}
	}
	return nil
}

func (_c *VesselCreate) sqlSave(ctx context.Context) (*Vessel, error) {
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

func (_c *VesselCreate) createSpec() (*Vessel, *sqlgraph.CreateSpec) {
	var (
		_node = &Vessel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vessel.Table, sqlgraph.NewFieldSpec(vessel.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(vessel.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Carrier(); ok {
		_spec.SetField(vessel.FieldCarrier, field.TypeString, value)
		_node.Carrier = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(vessel.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vessel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(vessel.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AliasesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VesselCreateBulk is the builder for creating many Vessel entities in bulk.
type VesselCreateBulk struct {
	config
	err      error
	builders []*VesselCreate
}

// Save creates the Vessel entities in the database.
func (_c *VesselCreateBulk) Save(ctx context.Context) ([]*Vessel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vessel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VesselMutation)
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
func (_c *VesselCreateBulk) SaveX(ctx context.Context) []*Vessel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VesselCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VesselCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
