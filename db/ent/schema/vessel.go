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
)

type Vessel struct{ ent.Schema }

func (Vessel) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vessels"},
	}
}

func (Vessel) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").
			NotEmpty().
			Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("carrier").Optional().Nillable(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Vessel) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE vessel -> MANY aliases; deleting the vessel removes its aliases.
		edge.To("aliases", VesselAlias.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
