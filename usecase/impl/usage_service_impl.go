package impl

import (
	"context"

	"github.com/ca-srg/azusage/domain"
	"github.com/ca-srg/azusage/domain/entity"
	"github.com/ca-srg/azusage/domain/repository"
	"github.com/ca-srg/azusage/domain/valueobject"
	usecase "github.com/ca-srg/azusage/usecase/interface"
)

// UsageServiceImpl implements UsageService
type UsageServiceImpl struct {
	inventoryRepo  repository.InventoryRepository
	metricsRepo    repository.TokenMetricsRepository
	deploymentRepo repository.DeploymentRepository
	logger         domain.Logger
}

// NewUsageService creates a new usage collection service.
func NewUsageService(
	inventoryRepo repository.InventoryRepository,
	metricsRepo repository.TokenMetricsRepository,
	deploymentRepo repository.DeploymentRepository,
	logger domain.Logger,
) usecase.UsageService {
	return &UsageServiceImpl{
		inventoryRepo:  inventoryRepo,
		metricsRepo:    metricsRepo,
		deploymentRepo: deploymentRepo,
		logger:         logger,
	}
}

// CollectUsage inventories all endpoints and collects their token usage for
// the period. A failing endpoint is logged and skipped; only the inventory
// query itself is fatal.
func (s *UsageServiceImpl) CollectUsage(ctx context.Context, period entity.Period) (*usecase.UsageReportResult, error) {
	endpoints, err := s.inventoryRepo.ListEndpoints(ctx)
	if err != nil {
		return nil, err
	}

	result := &usecase.UsageReportResult{
		Period:        period,
		EndpointCount: len(endpoints),
	}

	for _, endpoint := range endpoints {
		records := s.collectEndpointUsage(ctx, endpoint, period)
		if len(records) == 0 {
			result.EndpointsWithoutData++
			s.logger.Info(ctx, "no token usage for endpoint",
				domain.NewField("endpoint", endpoint.Name),
				domain.NewField("month", period.Month()))
			continue
		}
		result.Records = append(result.Records, records...)
	}

	s.logger.Info(ctx, "usage collection complete",
		domain.NewField("endpoints", result.EndpointCount),
		domain.NewField("records", len(result.Records)),
		domain.NewField("withoutData", result.EndpointsWithoutData))

	return result, nil
}

// collectEndpointUsage queries both token counters for one endpoint and
// aggregates them per deployment. The counters are queried independently so
// a failure in one direction still reports the other.
func (s *UsageServiceImpl) collectEndpointUsage(ctx context.Context, endpoint entity.Endpoint, period entity.Period) []entity.UsageRecord {
	var samples []entity.MetricSample
	for _, kind := range []entity.MetricKind{entity.MetricKindInput, entity.MetricKindOutput} {
		kindSamples, err := s.metricsRepo.QueryTokenSamples(ctx, endpoint.ID, kind, period)
		if err != nil {
			s.logger.Warn(ctx, "token metric query failed",
				domain.NewField("endpoint", endpoint.Name),
				domain.NewField("kind", string(kind)),
				domain.NewField("error", err.Error()))
			continue
		}
		samples = append(samples, kindSamples...)
	}
	if len(samples) == 0 {
		return nil
	}

	index := s.deploymentIndex(ctx, endpoint)

	return s.aggregateSamples(endpoint, samples, index)
}

// deploymentIndex loads the deployment registry for the endpoint. When the
// listing fails the empty index makes every lookup fall through to pattern
// matching.
func (s *UsageServiceImpl) deploymentIndex(ctx context.Context, endpoint entity.Endpoint) *entity.DeploymentIndex {
	resourceID := valueobject.ParseResourceID(endpoint.ID)

	subscriptionID := resourceID.SubscriptionID
	if subscriptionID == "" {
		subscriptionID = endpoint.SubscriptionID
	}
	resourceGroup := resourceID.ResourceGroup
	if resourceGroup == "" {
		resourceGroup = endpoint.ResourceGroup
	}

	deployments, err := s.deploymentRepo.ListDeployments(ctx, subscriptionID, resourceGroup, endpoint.Name)
	if err != nil {
		s.logger.Warn(ctx, "deployment listing failed, falling back to name patterns",
			domain.NewField("endpoint", endpoint.Name),
			domain.NewField("error", err.Error()))
		return entity.NewDeploymentIndex(nil)
	}
	return entity.NewDeploymentIndex(deployments)
}

type usageGroupKey struct {
	model      string
	deployment string
}

// aggregateSamples sums positive samples per (model, deployment) within one
// endpoint. Input and output tokens land in the same bucket. Group order
// follows first appearance in the sample stream so output is deterministic.
func (s *UsageServiceImpl) aggregateSamples(endpoint entity.Endpoint, samples []entity.MetricSample, index *entity.DeploymentIndex) []entity.UsageRecord {
	totals := make(map[usageGroupKey]float64)
	models := make(map[usageGroupKey]valueobject.ResolvedModel)
	var order []usageGroupKey

	for _, sample := range samples {
		if !sample.HasUsage() {
			continue
		}
		model := s.resolveModel(sample.DeploymentName, index)
		key := usageGroupKey{model: model.Name, deployment: sample.DeploymentName}
		if _, ok := totals[key]; !ok {
			order = append(order, key)
			models[key] = model
		}
		totals[key] += sample.Value
	}

	records := make([]entity.UsageRecord, 0, len(order))
	for _, key := range order {
		records = append(records, entity.UsageRecord{
			Endpoint:       endpoint,
			DeploymentName: key.deployment,
			Model:          models[key],
			TotalTokens:    totals[key],
		})
	}
	return records
}

// resolveModel maps a deployment name to a model name: the registry wins
// when it lists the deployment, otherwise the name itself is matched against
// known model patterns.
func (s *UsageServiceImpl) resolveModel(deploymentName string, index *entity.DeploymentIndex) valueobject.ResolvedModel {
	if deployment, ok := index.Lookup(deploymentName); ok && deployment.ModelName != "" {
		return valueobject.RegistryResolved(deployment.ModelName, deployment.ModelVersion)
	}
	return valueobject.PatternResolved(deploymentName)
}
