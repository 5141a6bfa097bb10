package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchemaAssociationsKeyedByUniversalPattern(t *testing.T) {
	associations := NewSchemaAssociations(SchemaLocation{
		URI:          "/store/contoso-schema.json",
		Organization: "contoso",
	})

	require.Len(t, associations, 1)
	assert.Equal(t, []string{"/store/contoso-schema.json"}, associations[AssociationPattern])
}

func TestSchemaFileNameIsLowercase(t *testing.T) {
	assert.Equal(t, "contoso-schema.json", SchemaFileName("Contoso"))
}
