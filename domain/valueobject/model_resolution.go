package valueobject

import (
	"strings"
)

// ResolutionSource records how a deployment name was mapped to a model name.
type ResolutionSource string

const (
	// ResolutionSourceRegistry means the deployment registry supplied the
	// model name; this is the authoritative path.
	ResolutionSourceRegistry ResolutionSource = "registry"

	// ResolutionSourcePattern means the model name was inferred from the
	// deployment name by substring matching; used when the registry is
	// unavailable or does not list the deployment.
	ResolutionSourcePattern ResolutionSource = "pattern"
)

// ResolvedModel is the tagged outcome of model name resolution, so logs and
// tests can tell confident identification from inference.
type ResolvedModel struct {
	Name    string
	Version string
	Source  ResolutionSource
}

// modelPatterns is ordered most specific first: "gpt-4o-mini" must be checked
// before "gpt-4o", otherwise the general pattern would match first.
var modelPatterns = []string{
	"gpt-4o-mini",
	"gpt-4o",
	"gpt-4-turbo",
	"gpt-4",
	"gpt-35-turbo",
	"gpt-3.5-turbo",
	"text-embedding-ada-002",
	"text-embedding-3-large",
	"text-embedding-3-small",
	"text-embedding-ada",
	"o1-preview",
	"o1-mini",
	"o3-mini",
}

// InferModelName maps a deployment name to a known model name by substring
// match against the ordered pattern list. Names matching no pattern are
// returned unchanged; the function never fails.
func InferModelName(deploymentName string) string {
	if deploymentName == "" {
		return deploymentName
	}
	lower := strings.ToLower(deploymentName)
	for _, pattern := range modelPatterns {
		if strings.Contains(lower, pattern) {
			return pattern
		}
	}
	return deploymentName
}

// RegistryResolved builds a resolution result backed by registry data.
func RegistryResolved(modelName, modelVersion string) ResolvedModel {
	return ResolvedModel{
		Name:    modelName,
		Version: modelVersion,
		Source:  ResolutionSourceRegistry,
	}
}

// PatternResolved builds a resolution result inferred from the deployment
// name itself.
func PatternResolved(deploymentName string) ResolvedModel {
	return ResolvedModel{
		Name:   InferModelName(deploymentName),
		Source: ResolutionSourcePattern,
	}
}
