package repository

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"

	"github.com/ca-srg/azusage/domain"
	"github.com/ca-srg/azusage/domain/entity"
	"github.com/ca-srg/azusage/domain/repository"
)

// endpointQuery joins AI inference accounts with subscription names so each
// endpoint carries its billing context. Accounts without a SKU are stubs and
// are excluded.
const endpointQuery = `
Resources
| where type =~ 'microsoft.cognitiveservices/accounts'
| where kind in ('AIServices','OpenAI')
| where sku != ''
| project id, name, kind, subscriptionId, resourceGroup, location, tags, sku
| join kind=inner (
    resourcecontainers
    | where type == "microsoft.resources/subscriptions"
    | project subscriptionName=name, subscriptionId
) on subscriptionId
| project id, name, kind, subscriptionId, subscriptionName, resourceGroup, location, sku
| order by subscriptionId asc
`

// ResourceGraphInventoryRepository discovers inference endpoints with a
// tenant-wide Resource Graph query.
type ResourceGraphInventoryRepository struct {
	client *armresourcegraph.Client
	logger domain.Logger
}

// NewResourceGraphInventoryRepository creates a Resource Graph backed
// inventory repository.
func NewResourceGraphInventoryRepository(credential azcore.TokenCredential, logger domain.Logger) (*ResourceGraphInventoryRepository, error) {
	client, err := armresourcegraph.NewClient(credential, nil)
	if err != nil {
		return nil, domain.ErrDiscoveryWithCause("failed to create resource graph client", err)
	}
	return &ResourceGraphInventoryRepository{
		client: client,
		logger: logger,
	}, nil
}

// ListEndpoints runs the inventory query and follows skip tokens until the
// full result set is collected.
func (r *ResourceGraphInventoryRepository) ListEndpoints(ctx context.Context) ([]entity.Endpoint, error) {
	var endpoints []entity.Endpoint
	var skipToken *string

	for {
		request := armresourcegraph.QueryRequest{
			Query: to.Ptr(endpointQuery),
		}
		if skipToken != nil {
			request.Options = &armresourcegraph.QueryRequestOptions{
				SkipToken: skipToken,
			}
		}

		response, err := r.client.Resources(ctx, request, nil)
		if err != nil {
			return nil, domain.ErrDiscoveryWithCause("resource graph query failed", err)
		}

		rows, ok := response.Data.([]any)
		if !ok {
			break
		}
		for _, row := range rows {
			fields, ok := row.(map[string]any)
			if !ok {
				r.logger.Warn(ctx, "skipping malformed inventory row")
				continue
			}
			endpoints = append(endpoints, entity.Endpoint{
				ID:               stringField(fields, "id"),
				Name:             stringField(fields, "name"),
				Kind:             stringField(fields, "kind"),
				SubscriptionID:   stringField(fields, "subscriptionId"),
				SubscriptionName: stringField(fields, "subscriptionName"),
				ResourceGroup:    stringField(fields, "resourceGroup"),
				Location:         stringField(fields, "location"),
			})
		}

		if response.SkipToken == nil || *response.SkipToken == "" {
			break
		}
		skipToken = response.SkipToken
	}

	r.logger.Debug(ctx, "inventory query complete",
		domain.NewField("endpoints", len(endpoints)))

	return endpoints, nil
}

func stringField(fields map[string]any, key string) string {
	if value, ok := fields[key].(string); ok {
		return value
	}
	return ""
}

var _ repository.InventoryRepository = (*ResourceGraphInventoryRepository)(nil)
