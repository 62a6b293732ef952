// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// VesselsColumns holds the columns for the "vessels" table.
	VesselsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "carrier", Type: field.TypeString, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VesselsTable holds the schema information for the "vessels" table.
	VesselsTable = &schema.Table{
		Name:       "vessels",
		Columns:    VesselsColumns,
		PrimaryKey: []*schema.Column{VesselsColumns[0]},
	}
	// VesselAliasesColumns holds the columns for the "vessel_aliases" table.
	VesselAliasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "alias", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "source", Type: field.TypeString, Default: "manual"},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1, SchemaType: map[string]string{"postgres": "numeric(4,3)"}},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "vessel_id", Type: field.TypeUUID},
	}
	// VesselAliasesTable holds the schema information for the "vessel_aliases" table.
	VesselAliasesTable = &schema.Table{
		Name:       "vessel_aliases",
		Columns:    VesselAliasesColumns,
		PrimaryKey: []*schema.Column{VesselAliasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "vessel_aliases_vessels_aliases",
				Columns:    []*schema.Column{VesselAliasesColumns[8]},
				RefColumns: []*schema.Column{VesselsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		VesselsTable,
		VesselAliasesTable,
	}
)

func init() {
	VesselsTable.Annotation = &entsql.Annotation{
		Table: "vessels",
	}
	VesselAliasesTable.ForeignKeys[0].RefTable = VesselsTable
	VesselAliasesTable.Annotation = &entsql.Annotation{
		Table: "vessel_aliases",
	}
}
