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
	"github.com/danuarta/schedules-tracker/gen/ent/predicate"
	"github.com/danuarta/schedules-tracker/gen/ent/vessel"
	"github.com/danuarta/schedules-tracker/gen/ent/vesselalias"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeVessel      = "Vessel"
	TypeVesselAlias = "VesselAlias"
)

// VesselMutation represents an operation that mutates the Vessel nodes in the graph.
type VesselMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	carrier        *string
	is_active      *bool
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	aliases        map[uuid.UUID]struct{}
	removedaliases map[uuid.UUID]struct{}
	clearedaliases bool
	done           bool
	oldValue       func(context.Context) (*Vessel, error)
	predicates     []predicate.Vessel
}

var _ ent.Mutation = (*VesselMutation)(nil)

// vesselOption allows management of the mutation configuration using functional options.
type vesselOption func(*VesselMutation)

// newVesselMutation creates new mutation for the Vessel entity.
func newVesselMutation(c config, op Op, opts ...vesselOption) *VesselMutation {
	m := &VesselMutation{
		config:        c,
		op:            op,
		typ:           TypeVessel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVesselID sets the ID field of the mutation.
func withVesselID(id uuid.UUID) vesselOption {
	return func(m *VesselMutation) {
		var (
			err   error
			once  sync.Once
			value *Vessel
		)
		m.oldValue = func(ctx context.Context) (*Vessel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vessel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVessel sets the old Vessel of the mutation.
func withVessel(node *Vessel) vesselOption {
	return func(m *VesselMutation) {
		m.oldValue = func(context.Context) (*Vessel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VesselMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VesselMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vessel entities.
func (m *VesselMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VesselMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VesselMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vessel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *VesselMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *VesselMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldName(ctx context.Context) (v string, err error) {
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
func (m *VesselMutation) ResetName() {
	m.name = nil
}

// SetCarrier sets the "carrier" field.
func (m *VesselMutation) SetCarrier(s string) {
	m.carrier = &s
}

// Carrier returns the value of the "carrier" field in the mutation.
func (m *VesselMutation) Carrier() (r string, exists bool) {
	v := m.carrier
	if v == nil {
		return
	}
	return *v, true
}

// OldCarrier returns the old "carrier" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldCarrier(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCarrier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCarrier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCarrier: %w", err)
	}
	return oldValue.Carrier, nil
}

// ClearCarrier clears the value of the "carrier" field.
func (m *VesselMutation) ClearCarrier() {
	m.carrier = nil
	m.clearedFields[vessel.FieldCarrier] = struct{}{}
}

// CarrierCleared returns if the "carrier" field was cleared in this mutation.
func (m *VesselMutation) CarrierCleared() bool {
	_, ok := m.clearedFields[vessel.FieldCarrier]
	return ok
}

// ResetCarrier resets all changes to the "carrier" field.
func (m *VesselMutation) ResetCarrier() {
	m.carrier = nil
	delete(m.clearedFields, vessel.FieldCarrier)
}

// SetIsActive sets the "is_active" field.
func (m *VesselMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *VesselMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *VesselMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VesselMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VesselMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *VesselMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VesselMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VesselMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Vessel entity.
// If the Vessel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VesselMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAliasIDs adds the "aliases" edge to the VesselAlias entity by ids.
func (m *VesselMutation) AddAliasIDs(ids ...uuid.UUID) {
	if m.aliases == nil {
		m.aliases = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.aliases[ids[i]] = struct{}{}
	}
}

// ClearAliases clears the "aliases" edge to the VesselAlias entity.
func (m *VesselMutation) ClearAliases() {
	m.clearedaliases = true
}

// AliasesCleared reports if the "aliases" edge to the VesselAlias entity was cleared.
func (m *VesselMutation) AliasesCleared() bool {
	return m.clearedaliases
}

// RemoveAliasIDs removes the "aliases" edge to the VesselAlias entity by IDs.
func (m *VesselMutation) RemoveAliasIDs(ids ...uuid.UUID) {
	if m.removedaliases == nil {
		m.removedaliases = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.aliases, ids[i])
		m.removedaliases[ids[i]] = struct{}{}
	}
}

// RemovedAliases returns the removed IDs of the "aliases" edge to the VesselAlias entity.
func (m *VesselMutation) RemovedAliasesIDs() (ids []uuid.UUID) {
	for id := range m.removedaliases {
		ids = append(ids, id)
	}
	return
}

// AliasesIDs returns the "aliases" edge IDs in the mutation.
func (m *VesselMutation) AliasesIDs() (ids []uuid.UUID) {
	for id := range m.aliases {
		ids = append(ids, id)
	}
	return
}

// ResetAliases resets all changes to the "aliases" edge.
func (m *VesselMutation) ResetAliases() {
	m.aliases = nil
	m.clearedaliases = false
	m.removedaliases = nil
}

// Where appends a list predicates to the VesselMutation builder.
func (m *VesselMutation) Where(ps ...predicate.Vessel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VesselMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VesselMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vessel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VesselMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VesselMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vessel).
func (m *VesselMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VesselMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, vessel.FieldName)
	}
	if m.carrier != nil {
		fields = append(fields, vessel.FieldCarrier)
	}
	if m.is_active != nil {
		fields = append(fields, vessel.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, vessel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vessel.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VesselMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vessel.FieldName:
		return m.Name()
	case vessel.FieldCarrier:
		return m.Carrier()
	case vessel.FieldIsActive:
		return m.IsActive()
	case vessel.FieldCreatedAt:
		return m.CreatedAt()
	case vessel.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VesselMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vessel.FieldName:
		return m.OldName(ctx)
	case vessel.FieldCarrier:
		return m.OldCarrier(ctx)
	case vessel.FieldIsActive:
		return m.OldIsActive(ctx)
	case vessel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vessel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Vessel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VesselMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vessel.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case vessel.FieldCarrier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCarrier(v)
		return nil
	case vessel.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case vessel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vessel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Vessel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VesselMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VesselMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VesselMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Vessel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VesselMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vessel.FieldCarrier) {
		fields = append(fields, vessel.FieldCarrier)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VesselMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VesselMutation) ClearField(name string) error {
	switch name {
	case vessel.FieldCarrier:
		m.ClearCarrier()
		return nil
	}
	return fmt.Errorf("unknown Vessel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VesselMutation) ResetField(name string) error {
	switch name {
	case vessel.FieldName:
		m.ResetName()
		return nil
	case vessel.FieldCarrier:
		m.ResetCarrier()
		return nil
	case vessel.FieldIsActive:
		m.ResetIsActive()
		return nil
	case vessel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vessel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Vessel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VesselMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.aliases != nil {
		edges = append(edges, vessel.EdgeAliases)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VesselMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vessel.EdgeAliases:
		ids := make([]ent.Value, 0, len(m.aliases))
		for id := range m.aliases {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VesselMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedaliases != nil {
		edges = append(edges, vessel.EdgeAliases)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VesselMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case vessel.EdgeAliases:
		ids := make([]ent.Value, 0, len(m.removedaliases))
		for id := range m.removedaliases {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VesselMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaliases {
		edges = append(edges, vessel.EdgeAliases)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VesselMutation) EdgeCleared(name string) bool {
	switch name {
	case vessel.EdgeAliases:
		return m.clearedaliases
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VesselMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Vessel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VesselMutation) ResetEdge(name string) error {
	switch name {
	case vessel.EdgeAliases:
		m.ResetAliases()
		return nil
	}
	return fmt.Errorf("unknown Vessel edge %s", name)
}

// VesselAliasMutation represents an operation that mutates the VesselAlias nodes in the graph.
type VesselAliasMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	alias          *string
	source         *string
	confidence     *float64
	addconfidence  *float64
	usage_count    *int
	addusage_count *int
	last_used_at   *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	vessel         *uuid.UUID
	clearedvessel  bool
	done           bool
	oldValue       func(context.Context) (*VesselAlias, error)
	predicates     []predicate.VesselAlias
}

var _ ent.Mutation = (*VesselAliasMutation)(nil)

// vesselaliasOption allows management of the mutation configuration using functional options.
type vesselaliasOption func(*VesselAliasMutation)

// newVesselAliasMutation creates new mutation for the VesselAlias entity.
func newVesselAliasMutation(c config, op Op, opts ...vesselaliasOption) *VesselAliasMutation {
	m := &VesselAliasMutation{
		config:        c,
		op:            op,
		typ:           TypeVesselAlias,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVesselAliasID sets the ID field of the mutation.
func withVesselAliasID(id uuid.UUID) vesselaliasOption {
	return func(m *VesselAliasMutation) {
		var (
			err   error
			once  sync.Once
			value *VesselAlias
		)
		m.oldValue = func(ctx context.Context) (*VesselAlias, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VesselAlias.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVesselAlias sets the old VesselAlias of the mutation.
func withVesselAlias(node *VesselAlias) vesselaliasOption {
	return func(m *VesselAliasMutation) {
		m.oldValue = func(context.Context) (*VesselAlias, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VesselAliasMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VesselAliasMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VesselAlias entities.
func (m *VesselAliasMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VesselAliasMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VesselAliasMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VesselAlias.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVesselID sets the "vessel_id" field.
func (m *VesselAliasMutation) SetVesselID(u uuid.UUID) {
	m.vessel = &u
}

// VesselID returns the value of the "vessel_id" field in the mutation.
func (m *VesselAliasMutation) VesselID() (r uuid.UUID, exists bool) {
	v := m.vessel
	if v == nil {
		return
	}
	return *v, true
}

// OldVesselID returns the old "vessel_id" field's value of the VesselAlias entity.
// If the VesselAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselAliasMutation) OldVesselID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVesselID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVesselID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVesselID: %w", err)
	}
	return oldValue.VesselID, nil
}

// ResetVesselID resets all changes to the "vessel_id" field.
func (m *VesselAliasMutation) ResetVesselID() {
	m.vessel = nil
}

// SetAlias sets the "alias" field.
func (m *VesselAliasMutation) SetAlias(s string) {
	m.alias = &s
}

// Alias returns the value of the "alias" field in the mutation.
func (m *VesselAliasMutation) Alias() (r string, exists bool) {
	v := m.alias
	if v == nil {
		return
	}
	return *v, true
}

// OldAlias returns the old "alias" field's value of the VesselAlias entity.
// If the VesselAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselAliasMutation) OldAlias(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlias is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlias requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlias: %w", err)
	}
	return oldValue.Alias, nil
}

// ResetAlias resets all changes to the "alias" field.
func (m *VesselAliasMutation) ResetAlias() {
	m.alias = nil
}

// SetSource sets the "source" field.
func (m *VesselAliasMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *VesselAliasMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the VesselAlias entity.
// If the VesselAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselAliasMutation) OldSource(ctx context.Context) (v string, err error) {
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
func (m *VesselAliasMutation) ResetSource() {
	m.source = nil
}

// SetConfidence sets the "confidence" field.
func (m *VesselAliasMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *VesselAliasMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the VesselAlias entity.
// If the VesselAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselAliasMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *VesselAliasMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *VesselAliasMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *VesselAliasMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetUsageCount sets the "usage_count" field.
func (m *VesselAliasMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *VesselAliasMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the VesselAlias entity.
// If the VesselAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselAliasMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *VesselAliasMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *VesselAliasMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *VesselAliasMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *VesselAliasMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *VesselAliasMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the VesselAlias entity.
// If the VesselAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselAliasMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *VesselAliasMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[vesselalias.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *VesselAliasMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[vesselalias.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *VesselAliasMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, vesselalias.FieldLastUsedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *VesselAliasMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VesselAliasMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VesselAlias entity.
// If the VesselAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselAliasMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *VesselAliasMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VesselAliasMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VesselAliasMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VesselAlias entity.
// If the VesselAlias object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VesselAliasMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VesselAliasMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearVessel clears the "vessel" edge to the Vessel entity.
func (m *VesselAliasMutation) ClearVessel() {
	m.clearedvessel = true
	m.clearedFields[vesselalias.FieldVesselID] = struct{}{}
}

// VesselCleared reports if the "vessel" edge to the Vessel entity was cleared.
func (m *VesselAliasMutation) VesselCleared() bool {
	return m.clearedvessel
}

// VesselIDs returns the "vessel" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VesselID instead. It exists only for internal usage by the builders.
func (m *VesselAliasMutation) VesselIDs() (ids []uuid.UUID) {
	if id := m.vessel; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVessel resets all changes to the "vessel" edge.
func (m *VesselAliasMutation) ResetVessel() {
	m.vessel = nil
	m.clearedvessel = false
}

// Where appends a list predicates to the VesselAliasMutation builder.
func (m *VesselAliasMutation) Where(ps ...predicate.VesselAlias) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VesselAliasMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VesselAliasMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VesselAlias, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VesselAliasMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VesselAliasMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VesselAlias).
func (m *VesselAliasMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VesselAliasMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.vessel != nil {
		fields = append(fields, vesselalias.FieldVesselID)
	}
	if m.alias != nil {
		fields = append(fields, vesselalias.FieldAlias)
	}
	if m.source != nil {
		fields = append(fields, vesselalias.FieldSource)
	}
	if m.confidence != nil {
		fields = append(fields, vesselalias.FieldConfidence)
	}
	if m.usage_count != nil {
		fields = append(fields, vesselalias.FieldUsageCount)
	}
	if m.last_used_at != nil {
		fields = append(fields, vesselalias.FieldLastUsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, vesselalias.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vesselalias.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VesselAliasMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vesselalias.FieldVesselID:
		return m.VesselID()
	case vesselalias.FieldAlias:
		return m.Alias()
	case vesselalias.FieldSource:
		return m.Source()
	case vesselalias.FieldConfidence:
		return m.Confidence()
	case vesselalias.FieldUsageCount:
		return m.UsageCount()
	case vesselalias.FieldLastUsedAt:
		return m.LastUsedAt()
	case vesselalias.FieldCreatedAt:
		return m.CreatedAt()
	case vesselalias.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VesselAliasMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vesselalias.FieldVesselID:
		return m.OldVesselID(ctx)
	case vesselalias.FieldAlias:
		return m.OldAlias(ctx)
	case vesselalias.FieldSource:
		return m.OldSource(ctx)
	case vesselalias.FieldConfidence:
		return m.OldConfidence(ctx)
	case vesselalias.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case vesselalias.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case vesselalias.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vesselalias.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VesselAlias field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VesselAliasMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vesselalias.FieldVesselID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVesselID(v)
		return nil
	case vesselalias.FieldAlias:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlias(v)
		return nil
	case vesselalias.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case vesselalias.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case vesselalias.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case vesselalias.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case vesselalias.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vesselalias.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VesselAlias field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VesselAliasMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, vesselalias.FieldConfidence)
	}
	if m.addusage_count != nil {
		fields = append(fields, vesselalias.FieldUsageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VesselAliasMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vesselalias.FieldConfidence:
		return m.AddedConfidence()
	case vesselalias.FieldUsageCount:
		return m.AddedUsageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VesselAliasMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vesselalias.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case vesselalias.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	}
	return fmt.Errorf("unknown VesselAlias numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VesselAliasMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vesselalias.FieldLastUsedAt) {
		fields = append(fields, vesselalias.FieldLastUsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VesselAliasMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VesselAliasMutation) ClearField(name string) error {
	switch name {
	case vesselalias.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	}
	return fmt.Errorf("unknown VesselAlias nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VesselAliasMutation) ResetField(name string) error {
	switch name {
	case vesselalias.FieldVesselID:
		m.ResetVesselID()
		return nil
	case vesselalias.FieldAlias:
		m.ResetAlias()
		return nil
	case vesselalias.FieldSource:
		m.ResetSource()
		return nil
	case vesselalias.FieldConfidence:
		m.ResetConfidence()
		return nil
	case vesselalias.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case vesselalias.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case vesselalias.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vesselalias.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown VesselAlias field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VesselAliasMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.vessel != nil {
		edges = append(edges, vesselalias.EdgeVessel)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VesselAliasMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case vesselalias.EdgeVessel:
		if id := m.vessel; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VesselAliasMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VesselAliasMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VesselAliasMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvessel {
		edges = append(edges, vesselalias.EdgeVessel)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VesselAliasMutation) EdgeCleared(name string) bool {
	switch name {
	case vesselalias.EdgeVessel:
		return m.clearedvessel
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VesselAliasMutation) ClearEdge(name string) error {
	switch name {
	case vesselalias.EdgeVessel:
		m.ClearVessel()
		return nil
	}
	return fmt.Errorf("unknown VesselAlias unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VesselAliasMutation) ResetEdge(name string) error {
	switch name {
	case vesselalias.EdgeVessel:
		m.ResetVessel()
		return nil
	}
	return fmt.Errorf("unknown VesselAlias edge %s", name)
}
