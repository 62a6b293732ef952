package constants

// AliasSource is the canonical origin tag for rows in vessel_aliases.
type AliasSource string

// Stable values (store these exact strings in DB).
const (
	AliasSourceManual      AliasSource = "manual"       // entered by an operator
	AliasSourceAutoLearned AliasSource = "auto-learned" // persisted fuzzy match
	AliasSourceImported    AliasSource = "imported"     // seed/bulk import
)

// AliasSources holds the allowed values for the source field.
var AliasSources = []string{
	string(AliasSourceManual),
	string(AliasSourceAutoLearned),
	string(AliasSourceImported),
}
