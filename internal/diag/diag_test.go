package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultSeverity(t *testing.T) {
	assert.Equal(t, SeverityError, New(SyntaxError, nil, "bad").Severity)
	assert.Equal(t, SeverityError, New(SchemaViolation, []string{"a"}, "bad").Severity)
	assert.Equal(t, SeverityWarning, New(DuplicateKey, nil, "dup").Severity)
	assert.Equal(t, SeverityWarning, New(SchemaFetchFailure, nil, "fetch").Severity)
}

func TestNewKeywordSetsKeyword(t *testing.T) {
	d := NewKeyword(SchemaViolation, []string{"x", "y"}, "pattern", "no match")
	assert.Equal(t, "pattern", d.Keyword)
	assert.Equal(t, []string{"x", "y"}, d.InstancePath)
	assert.Equal(t, SeverityError, d.Severity)
}
