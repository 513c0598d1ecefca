package repository

import (
	"context"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/cognitiveservices/armcognitiveservices"

	"github.com/ca-srg/azusage/domain"
	"github.com/ca-srg/azusage/domain/entity"
	"github.com/ca-srg/azusage/domain/repository"
)

// CognitiveDeploymentsRepository lists model deployments through the
// Cognitive Services management API. Clients are created per subscription
// and cached for the lifetime of the run.
type CognitiveDeploymentsRepository struct {
	credential azcore.TokenCredential
	logger     domain.Logger

	mu      sync.Mutex
	clients map[string]*armcognitiveservices.DeploymentsClient
}

// NewCognitiveDeploymentsRepository creates a management API backed
// deployment repository.
func NewCognitiveDeploymentsRepository(credential azcore.TokenCredential, logger domain.Logger) *CognitiveDeploymentsRepository {
	return &CognitiveDeploymentsRepository{
		credential: credential,
		logger:     logger,
		clients:    make(map[string]*armcognitiveservices.DeploymentsClient),
	}
}

// ListDeployments returns the deployments of one account with their model
// bindings. Deployments without a model are skipped.
func (r *CognitiveDeploymentsRepository) ListDeployments(ctx context.Context, subscriptionID, resourceGroup, accountName string) ([]entity.Deployment, error) {
	client, err := r.clientFor(subscriptionID)
	if err != nil {
		return nil, domain.ErrDeploymentQueryWithCause(accountName, err)
	}

	var deployments []entity.Deployment
	pager := client.NewListPager(resourceGroup, accountName, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, domain.ErrDeploymentQueryWithCause(accountName, err)
		}
		for _, item := range page.Value {
			if item == nil || item.Name == nil {
				continue
			}
			deployment := entity.Deployment{Name: *item.Name}
			if item.Properties != nil && item.Properties.Model != nil {
				if item.Properties.Model.Name != nil {
					deployment.ModelName = *item.Properties.Model.Name
				}
				if item.Properties.Model.Version != nil {
					deployment.ModelVersion = *item.Properties.Model.Version
				}
			}
			deployments = append(deployments, deployment)
		}
	}

	r.logger.Debug(ctx, "deployments listed",
		domain.NewField("account", accountName),
		domain.NewField("deployments", len(deployments)))

	return deployments, nil
}

func (r *CognitiveDeploymentsRepository) clientFor(subscriptionID string) (*armcognitiveservices.DeploymentsClient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clients[subscriptionID]; ok {
		return client, nil
	}
	client, err := armcognitiveservices.NewDeploymentsClient(subscriptionID, r.credential, nil)
	if err != nil {
		return nil, err
	}
	r.clients[subscriptionID] = client
	return client, nil
}

var _ repository.DeploymentRepository = (*CognitiveDeploymentsRepository)(nil)
