package entity

import (
	"github.com/ca-srg/azusage/domain/valueobject"
)

// UsageRecord is the unit of report output: the combined input and output
// token total for one (endpoint, deployment) pair over the analysis period.
// Deployment names are only unique within an endpoint, so records are never
// merged across endpoints.
type UsageRecord struct {
	Endpoint       Endpoint
	DeploymentName string
	Model          valueobject.ResolvedModel
	TotalTokens    float64
}
