package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToAssociationsMapsFields(t *testing.T) {
	section := Section{Schemas: []SchemaAssociation{
		{FileMatch: []string{"*.jsonc", "package.json"}, URL: "https://example.com/schema.json"},
	}}

	got := section.ToAssociations()

	assert.Len(t, got, 1)
	assert.Equal(t, []string{"*.jsonc", "package.json"}, got[0].FileMatch)
	assert.Equal(t, "https://example.com/schema.json", got[0].SchemaURL)
}

func TestToAssociationsEmptySection(t *testing.T) {
	var section Section
	assert.Empty(t, section.ToAssociations())
}
