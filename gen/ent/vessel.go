// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danuarta/schedules-tracker/gen/ent/vessel"
	"github.com/google/uuid"
)

// Vessel is the model entity for the Vessel schema.
type Vessel struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Carrier holds the value of the "carrier" field.
	Carrier *string `json:"carrier,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VesselQuery when eager-loading is set.
	Edges        VesselEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VesselEdges holds the relations/edges for other nodes in the graph.
type VesselEdges struct {
	// Aliases holds the value of the aliases edge.
	Aliases []*VesselAlias `json:"aliases,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AliasesOrErr returns the Aliases value or an error if the edge
// was not loaded in eager-loading.
func (e VesselEdges) AliasesOrErr() ([]*VesselAlias, error) {
	if e.loadedTypes[0] {
		return e.Aliases, nil
	}
	return nil, &NotLoadedError{edge: "aliases"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Vessel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vessel.FieldIsActive:
			values[i] = new(sql.NullBool)
		case vessel.FieldName, vessel.FieldCarrier:
			values[i] = new(sql.NullString)
		case vessel.FieldCreatedAt, vessel.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case vessel.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Vessel fields.
func (_m *Vessel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vessel.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case vessel.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case vessel.FieldCarrier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field carrier", values[i])
			} else if value.Valid {
				_m.Carrier = new(string)
				*_m.Carrier = value.String
			}
		case vessel.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case vessel.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case vessel.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Vessel.
// This includes values selected through modifiers, order, etc.
func (_m *Vessel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAliases queries the "aliases" edge of the Vessel entity.
func (_m *Vessel) QueryAliases() *VesselAliasQuery {
	return NewVesselClient(_m.config).QueryAliases(_m)
}

// Update returns a builder for updating this Vessel.
// Note that you need to call Vessel.Unwrap() before calling this method if this Vessel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Vessel) Update() *VesselUpdateOne {
	return NewVesselClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Vessel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Vessel) Unwrap() *Vessel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Vessel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Vessel) String() string {
	var builder strings.Builder
	builder.WriteString("Vessel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Carrier; v != nil {
		builder.WriteString("carrier=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Vessels is a parsable slice of Vessel.
type Vessels []*Vessel
