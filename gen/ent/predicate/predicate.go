// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Vessel is the predicate function for vessel builders.
type Vessel func(*sql.Selector)

// VesselAlias is the predicate function for vesselalias builders.
type VesselAlias func(*sql.Selector)
