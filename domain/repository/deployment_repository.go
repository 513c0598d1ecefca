package repository

import (
	"context"

	"github.com/ca-srg/azusage/domain/entity"
)

// DeploymentRepository lists the deployments configured on one endpoint,
// with the model name and version each deployment is bound to.
type DeploymentRepository interface {
	ListDeployments(ctx context.Context, subscriptionID, resourceGroup, accountName string) ([]entity.Deployment, error)
}
