package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeploymentIndex(t *testing.T) {
	index := NewDeploymentIndex([]Deployment{
		{Name: "ChatProd", ModelName: "gpt-4o", ModelVersion: "2024-05-13"},
		{Name: "embeddings", ModelName: "text-embedding-3-small"},
		{Name: "", ModelName: "orphan"},
	})

	assert.Equal(t, 2, index.Len())
	assert.False(t, index.IsEmpty())
}

func TestDeploymentIndex_Lookup_CaseInsensitive(t *testing.T) {
	index := NewDeploymentIndex([]Deployment{
		{Name: "ChatProd", ModelName: "gpt-4o"},
	})

	tests := []string{"ChatProd", "chatprod", "CHATPROD", "cHaTpRoD"}
	for _, name := range tests {
		deployment, ok := index.Lookup(name)
		assert.True(t, ok, "lookup %q should hit", name)
		assert.Equal(t, "gpt-4o", deployment.ModelName)
	}
}

func TestDeploymentIndex_Lookup_Miss(t *testing.T) {
	index := NewDeploymentIndex([]Deployment{
		{Name: "ChatProd", ModelName: "gpt-4o"},
	})

	_, ok := index.Lookup("other")
	assert.False(t, ok)
}

func TestDeploymentIndex_Empty(t *testing.T) {
	assert.True(t, NewDeploymentIndex(nil).IsEmpty())
	assert.True(t, NewDeploymentIndex([]Deployment{}).IsEmpty())

	_, ok := NewDeploymentIndex(nil).Lookup("anything")
	assert.False(t, ok)
}
