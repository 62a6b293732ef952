// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/danuarta/schedules-tracker/gen/ent/predicate"
	"github.com/danuarta/schedules-tracker/gen/ent/vesselalias"
)

// VesselAliasDelete is the builder for deleting a VesselAlias entity.
type VesselAliasDelete struct {
	config
	hooks    []Hook
	mutation *VesselAliasMutation
}

// Where appends a list predicates to the VesselAliasDelete builder.
func (_d *VesselAliasDelete) Where(ps ...predicate.VesselAlias) *VesselAliasDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *VesselAliasDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *VesselAliasDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *VesselAliasDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(vesselalias.Table, sqlgraph.NewFieldSpec(vesselalias.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// VesselAliasDeleteOne is the builder for deleting a single VesselAlias entity.
type VesselAliasDeleteOne struct {
	_d *VesselAliasDelete
}

// Where appends a list predicates to the VesselAliasDelete builder.
func (_d *VesselAliasDeleteOne) Where(ps ...predicate.VesselAlias) *VesselAliasDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *VesselAliasDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{vesselalias.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *VesselAliasDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
