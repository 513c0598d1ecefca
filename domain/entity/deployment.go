package entity

import (
	"strings"
)

// Deployment is one configured model deployment on an endpoint.
type Deployment struct {
	Name         string
	ModelName    string
	ModelVersion string
}

// DeploymentIndex resolves deployment names to their bound model,
// case-insensitively. Metric metadata does not always preserve the casing
// the deployment was created with.
type DeploymentIndex struct {
	byLowerName map[string]Deployment
}

// NewDeploymentIndex builds an index over the given deployments. A nil or
// empty slice yields an empty index, which callers treat as "registry
// unavailable".
func NewDeploymentIndex(deployments []Deployment) *DeploymentIndex {
	index := &DeploymentIndex{
		byLowerName: make(map[string]Deployment, len(deployments)),
	}
	for _, deployment := range deployments {
		if deployment.Name == "" {
			continue
		}
		index.byLowerName[strings.ToLower(deployment.Name)] = deployment
	}
	return index
}

// IsEmpty reports whether the index holds no deployments.
func (i *DeploymentIndex) IsEmpty() bool {
	return len(i.byLowerName) == 0
}

// Lookup finds a deployment by name, ignoring case.
func (i *DeploymentIndex) Lookup(name string) (Deployment, bool) {
	deployment, ok := i.byLowerName[strings.ToLower(name)]
	return deployment, ok
}

// Len returns the number of indexed deployments.
func (i *DeploymentIndex) Len() int {
	return len(i.byLowerName)
}
