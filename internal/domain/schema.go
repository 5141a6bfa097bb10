package domain

import "strings"

// AssociationPattern matches every file the language consumer watches;
// resolution is per-workspace, not per-file.
const AssociationPattern = "*"

// SchemaLocation is the outcome of a resolution: where the governing schema
// lives, and which organization it came from when one was detected.
type SchemaLocation struct {
	URI          string
	Organization OrganizationName
}

// Detected reports whether the location is organization-specific rather
// than a fallback.
func (l SchemaLocation) Detected() bool {
	return l.Organization != ""
}

// SchemaFileName is the deterministic on-disk name for an organization's
// schema document.
func SchemaFileName(org OrganizationName) string {
	return strings.ToLower(string(org)) + "-schema.json"
}

// SchemaAssociations maps file patterns to the schema URIs that validate
// them, in the shape the language consumer expects: one entry keyed by the
// universal pattern, holding one location.
type SchemaAssociations map[string][]string

func NewSchemaAssociations(location SchemaLocation) SchemaAssociations {
	return SchemaAssociations{AssociationPattern: {location.URI}}
}
