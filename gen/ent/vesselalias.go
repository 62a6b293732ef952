// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/danuarta/schedules-tracker/gen/ent/vessel"
	"github.com/danuarta/schedules-tracker/gen/ent/vesselalias"
	"github.com/google/uuid"
)

// VesselAlias is the model entity for the VesselAlias schema.
type VesselAlias struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// VesselID holds the value of the "vessel_id" field.
	VesselID uuid.UUID `json:"vessel_id,omitempty"`
	// Alias holds the value of the "alias" field.
	Alias string `json:"alias,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// UsageCount holds the value of the "usage_count" field.
	UsageCount int `json:"usage_count,omitempty"`
	// LastUsedAt holds the value of the "last_used_at" field.
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VesselAliasQuery when eager-loading is set.
	Edges        VesselAliasEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VesselAliasEdges holds the relations/edges for other nodes in the graph.
type VesselAliasEdges struct {
	// Vessel holds the value of the vessel edge.
	Vessel *Vessel `json:"vessel,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VesselOrErr returns the Vessel value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VesselAliasEdges) VesselOrErr() (*Vessel, error) {
	if e.Vessel != nil {
		return e.Vessel, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: vessel.Label}
	}
	return nil, &NotLoadedError{edge: "vessel"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VesselAlias) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vesselalias.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case vesselalias.FieldUsageCount:
			values[i] = new(sql.NullInt64)
		case vesselalias.FieldAlias, vesselalias.FieldSource:
			values[i] = new(sql.NullString)
		case vesselalias.FieldLastUsedAt, vesselalias.FieldCreatedAt, vesselalias.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case vesselalias.FieldID, vesselalias.FieldVesselID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VesselAlias fields.
func (_m *VesselAlias) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vesselalias.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case vesselalias.FieldVesselID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field vessel_id", values[i])
			} else if value != nil {
				_m.VesselID = *value
			}
		case vesselalias.FieldAlias:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alias", values[i])
			} else if value.Valid {
				_m.Alias = value.String
			}
		case vesselalias.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case vesselalias.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case vesselalias.FieldUsageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field usage_count", values[i])
			} else if value.Valid {
				_m.UsageCount = int(value.Int64)
			}
		case vesselalias.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = new(time.Time)
				*_m.LastUsedAt = value.Time
			}
		case vesselalias.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case vesselalias.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the VesselAlias.
// This includes values selected through modifiers, order, etc.
func (_m *VesselAlias) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVessel queries the "vessel" edge of the VesselAlias entity.
func (_m *VesselAlias) QueryVessel() *VesselQuery {
	return NewVesselAliasClient(_m.config).QueryVessel(_m)
}

// Update returns a builder for updating this VesselAlias.
// Note that you need to call VesselAlias.Unwrap() before calling this method if this VesselAlias
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VesselAlias) Update() *VesselAliasUpdateOne {
	return NewVesselAliasClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VesselAlias entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VesselAlias) Unwrap() *VesselAlias {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VesselAlias is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VesselAlias) String() string {
	var builder strings.Builder
	builder.WriteString("VesselAlias(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("vessel_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VesselID))
	builder.WriteString(", ")
	builder.WriteString("alias=")
	builder.WriteString(_m.Alias)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("usage_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageCount))
	builder.WriteString(", ")
	if v := _m.LastUsedAt; v != nil {
		builder.WriteString("last_used_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VesselAliasSlice is a parsable slice of VesselAlias.
type VesselAliasSlice []*VesselAlias
