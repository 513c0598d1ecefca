package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferModelName(t *testing.T) {
	tests := []struct {
		name       string
		deployment string
		expected   string
	}{
		{"exact model name", "gpt-4o", "gpt-4o"},
		{"prefixed deployment", "prod-gpt-4o-east", "gpt-4o"},
		{"mini before base", "my-gpt-4o-mini-deploy", "gpt-4o-mini"},
		{"turbo before base", "gpt-4-turbo-dev", "gpt-4-turbo"},
		{"uppercase input", "PROD-GPT-4O", "gpt-4o"},
		{"embedding", "team-text-embedding-3-large", "text-embedding-3-large"},
		{"no match returns unchanged", "my-custom-deployment", "my-custom-deployment"},
		{"empty returns unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InferModelName(tt.deployment))
		})
	}
}

func TestRegistryResolved(t *testing.T) {
	resolved := RegistryResolved("gpt-4o", "2024-05-13")

	assert.Equal(t, "gpt-4o", resolved.Name)
	assert.Equal(t, "2024-05-13", resolved.Version)
	assert.Equal(t, ResolutionSourceRegistry, resolved.Source)
}

func TestPatternResolved(t *testing.T) {
	resolved := PatternResolved("prod-gpt-35-turbo")

	assert.Equal(t, "gpt-35-turbo", resolved.Name)
	assert.Empty(t, resolved.Version)
	assert.Equal(t, ResolutionSourcePattern, resolved.Source)
}

func TestPatternResolved_NoMatch(t *testing.T) {
	resolved := PatternResolved("bespoke-model")

	// The deployment name itself is carried through as the model name
	assert.Equal(t, "bespoke-model", resolved.Name)
	assert.Equal(t, ResolutionSourcePattern, resolved.Source)
}
