// Code generated by ent, DO NOT EDIT.

package vessel

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/danuarta/schedules-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldName, v))
}

// Carrier applies equality check predicate on the "carrier" field. It's identical to CarrierEQ.
func Carrier(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldCarrier, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContainsFold(FieldName, v))
}

// CarrierEQ applies the EQ predicate on the "carrier" field.
func CarrierEQ(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldCarrier, v))
}

// CarrierNEQ applies the NEQ predicate on the "carrier" field.
func CarrierNEQ(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldCarrier, v))
}

// CarrierIn applies the In predicate on the "carrier" field.
func CarrierIn(vs ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldCarrier, vs...))
}

// CarrierNotIn applies the NotIn predicate on the "carrier" field.
func CarrierNotIn(vs ...string) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldCarrier, vs...))
}

// CarrierGT applies the GT predicate on the "carrier" field.
func CarrierGT(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldCarrier, v))
}

// CarrierGTE applies the GTE predicate on the "carrier" field.
func CarrierGTE(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldCarrier, v))
}

// CarrierLT applies the LT predicate on the "carrier" field.
func CarrierLT(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldCarrier, v))
}

// CarrierLTE applies the LTE predicate on the "carrier" field.
func CarrierLTE(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldCarrier, v))
}

// CarrierContains applies the Contains predicate on the "carrier" field.
func CarrierContains(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContains(FieldCarrier, v))
}

// CarrierHasPrefix applies the HasPrefix predicate on the "carrier" field.
func CarrierHasPrefix(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldHasPrefix(FieldCarrier, v))
}

// CarrierHasSuffix applies the HasSuffix predicate on the "carrier" field.
func CarrierHasSuffix(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldHasSuffix(FieldCarrier, v))
}

// CarrierIsNil applies the IsNil predicate on the "carrier" field.
func CarrierIsNil() predicate.Vessel {
	return predicate.Vessel(sql.FieldIsNull(FieldCarrier))
}

// CarrierNotNil applies the NotNil predicate on the "carrier" field.
func CarrierNotNil() predicate.Vessel {
	return predicate.Vessel(sql.FieldNotNull(FieldCarrier))
}

// CarrierEqualFold applies the EqualFold predicate on the "carrier" field.
func CarrierEqualFold(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldEqualFold(FieldCarrier, v))
}

// CarrierContainsFold applies the ContainsFold predicate on the "carrier" field.
func CarrierContainsFold(v string) predicate.Vessel {
	return predicate.Vessel(sql.FieldContainsFold(FieldCarrier, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Vessel {
	return predicate.Vessel(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAliases applies the HasEdge predicate on the "aliases" edge.
func HasAliases() predicate.Vessel {
	return predicate.Vessel(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AliasesTable, AliasesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAliasesWith applies the HasEdge predicate on the "aliases" edge with a given conditions (other predicates).
func HasAliasesWith(preds ...predicate.VesselAlias) predicate.Vessel {
	return predicate.Vessel(func(s *sql.Selector) {
		step := newAliasesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vessel) predicate.Vessel {
	return predicate.Vessel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vessel) predicate.Vessel {
	return predicate.Vessel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vessel) predicate.Vessel {
	return predicate.Vessel(sql.NotPredicates(p))
}
