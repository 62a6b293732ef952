package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/danuarta/schedules-tracker/constants"
	"github.com/danuarta/schedules-tracker/db/ent/schema/utils"
)

type VesselAlias struct{ ent.Schema }

func (VesselAlias) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vessel_aliases"},
	}
}

func (VesselAlias) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("vessel_id", uuid.UUID{}),
		// Alias text is unique across the whole catalog: one spelling can
		// never point at two vessels.
		field.String("alias").
			NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("source").
			Default(string(constants.AliasSourceManual)).
			Validate(utils.EnumValidator(constants.AliasSources...)),
		field.Float("confidence").
			Default(1.0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(4,3)"}),
		field.Int("usage_count").Default(0).NonNegative(),
		field.Time("last_used_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (VesselAlias) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY aliases -> ONE vessel (FK: vessel_aliases.vessel_id)
		edge.From("vessel", Vessel.Type).
			Ref("aliases").
			Field("vessel_id").
			Required().
			Unique(),
	}
}
