// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/danuarta/schedules-tracker/db/ent/schema"
	"github.com/danuarta/schedules-tracker/gen/ent/vessel"
	"github.com/danuarta/schedules-tracker/gen/ent/vesselalias"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	vesselFields := schema.Vessel{}.Fields()
	_ = vesselFields
	// vesselDescName is the schema descriptor for name field.
	vesselDescName := vesselFields[1].Descriptor()
	// vessel.NameValidator is a validator for the "name" field. It is called by the builders before save.
	vessel.NameValidator = vesselDescName.Validators[0].(func(string) error)
	// vesselDescIsActive is the schema descriptor for is_active field.
	vesselDescIsActive := vesselFields[3].Descriptor()
	// vessel.DefaultIsActive holds the default value on creation for the is_active field.
	vessel.DefaultIsActive = vesselDescIsActive.Default.(bool)
	// vesselDescCreatedAt is the schema descriptor for created_at field.
	vesselDescCreatedAt := vesselFields[4].Descriptor()
	// vessel.DefaultCreatedAt holds the default value on creation for the created_at field.
	vessel.DefaultCreatedAt = vesselDescCreatedAt.Default.(func() time.Time)
	// vesselDescUpdatedAt is the schema descriptor for updated_at field.
	vesselDescUpdatedAt := vesselFields[5].Descriptor()
	// vessel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vessel.DefaultUpdatedAt = vesselDescUpdatedAt.Default.(func() time.Time)
	// vessel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vessel.UpdateDefaultUpdatedAt = vesselDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vesselDescID is the schema descriptor for id field.
	vesselDescID := vesselFields[0].Descriptor()
	// vessel.DefaultID holds the default value on creation for the id field.
	vessel.DefaultID = vesselDescID.Default.(func() uuid.UUID)
	vesselaliasFields := schema.VesselAlias{}.Fields()
	_ = vesselaliasFields
	// vesselaliasDescAlias is the schema descriptor for alias field.
	vesselaliasDescAlias := vesselaliasFields[2].Descriptor()
	// vesselalias.AliasValidator is a validator for the "alias" field. It is called by the builders before save.
	vesselalias.AliasValidator = vesselaliasDescAlias.Validators[0].(func(string) error)
	// vesselaliasDescSource is the schema descriptor for source field.
	vesselaliasDescSource := vesselaliasFields[3].Descriptor()
	// vesselalias.DefaultSource holds the default value on creation for the source field.
	vesselalias.DefaultSource = vesselaliasDescSource.Default.(string)
	// vesselalias.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	vesselalias.SourceValidator = vesselaliasDescSource.Validators[0].(func(string) error)
	// vesselaliasDescConfidence is the schema descriptor for confidence field.
	vesselaliasDescConfidence := vesselaliasFields[4].Descriptor()
	// vesselalias.DefaultConfidence holds the default value on creation for the confidence field.
	vesselalias.DefaultConfidence = vesselaliasDescConfidence.Default.(float64)
	// vesselaliasDescUsageCount is the schema descriptor for usage_count field.
	vesselaliasDescUsageCount := vesselaliasFields[5].Descriptor()
	// vesselalias.DefaultUsageCount holds the default value on creation for the usage_count field.
	vesselalias.DefaultUsageCount = vesselaliasDescUsageCount.Default.(int)
	// vesselalias.UsageCountValidator is a validator for the "usage_count" field. It is called by the builders before save.
	vesselalias.UsageCountValidator = vesselaliasDescUsageCount.Validators[0].(func(int) error)
	// vesselaliasDescCreatedAt is the schema descriptor for created_at field.
	vesselaliasDescCreatedAt := vesselaliasFields[7].Descriptor()
	// vesselalias.DefaultCreatedAt holds the default value on creation for the created_at field.
	vesselalias.DefaultCreatedAt = vesselaliasDescCreatedAt.Default.(func() time.Time)
	// vesselaliasDescUpdatedAt is the schema descriptor for updated_at field.
	vesselaliasDescUpdatedAt := vesselaliasFields[8].Descriptor()
	// vesselalias.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vesselalias.DefaultUpdatedAt = vesselaliasDescUpdatedAt.Default.(func() time.Time)
	// vesselalias.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vesselalias.UpdateDefaultUpdatedAt = vesselaliasDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vesselaliasDescID is the schema descriptor for id field.
	vesselaliasDescID := vesselaliasFields[0].Descriptor()
	// vesselalias.DefaultID holds the default value on creation for the id field.
	vesselalias.DefaultID = vesselaliasDescID.Default.(func() uuid.UUID)
}
