package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/monitor/azquery"

	"github.com/ca-srg/azusage/domain"
	"github.com/ca-srg/azusage/domain/entity"
	"github.com/ca-srg/azusage/domain/repository"
)

// metricNames maps the token direction to the Azure Monitor counter name.
var metricNames = map[entity.MetricKind]string{
	entity.MetricKindInput:  "ProcessedPromptTokens",
	entity.MetricKindOutput: "GeneratedTokens",
}

const (
	// Daily buckets keep the per-endpoint response small while still
	// splitting series by deployment.
	metricInterval = "P1D"

	// deploymentFilter asks Monitor to split each counter into one time
	// series per deployment.
	deploymentFilter = "ModelDeploymentName eq '*'"

	deploymentMetadataKey = "modeldeploymentname"
)

// MonitorMetricsRepository queries token counters from Azure Monitor.
type MonitorMetricsRepository struct {
	client *azquery.MetricsClient
	logger domain.Logger
}

// NewMonitorMetricsRepository creates an Azure Monitor backed token metrics
// repository.
func NewMonitorMetricsRepository(credential azcore.TokenCredential, logger domain.Logger) (*MonitorMetricsRepository, error) {
	client, err := azquery.NewMetricsClient(credential, nil)
	if err != nil {
		return nil, domain.ErrMetricsQueryWithCause("", "", err)
	}
	return &MonitorMetricsRepository{
		client: client,
		logger: logger,
	}, nil
}

// QueryTokenSamples fetches one counter for one endpoint over the period,
// split per deployment, and flattens the response into samples.
func (r *MonitorMetricsRepository) QueryTokenSamples(ctx context.Context, endpointID string, kind entity.MetricKind, period entity.Period) ([]entity.MetricSample, error) {
	metricName, ok := metricNames[kind]
	if !ok {
		return nil, domain.ErrInvalidInput("kind", "unknown metric kind")
	}

	response, err := r.client.QueryResource(ctx, endpointID, &azquery.MetricsClientQueryResourceOptions{
		MetricNames: to.Ptr(metricName),
		Timespan:    to.Ptr(azquery.TimeInterval(period.Timespan())),
		Interval:    to.Ptr(metricInterval),
		Aggregation: to.SliceOfPtrs(azquery.AggregationTypeTotal),
		Filter:      to.Ptr(deploymentFilter),
	})
	if err != nil {
		return nil, domain.ErrMetricsQueryWithCause(metricName, endpointID, err)
	}

	samples := samplesFromMetrics(endpointID, kind, response.Value)

	r.logger.Debug(ctx, "token metric queried",
		domain.NewField("endpointId", endpointID),
		domain.NewField("metric", metricName),
		domain.NewField("samples", len(samples)))

	return samples, nil
}

// samplesFromMetrics flattens a Monitor metrics response into samples. Data
// points without a total are skipped; series without deployment metadata are
// attributed to the unknown deployment.
func samplesFromMetrics(endpointID string, kind entity.MetricKind, metrics []*azquery.Metric) []entity.MetricSample {
	var samples []entity.MetricSample

	for _, metric := range metrics {
		if metric == nil {
			continue
		}
		for _, series := range metric.TimeSeries {
			if series == nil {
				continue
			}
			deploymentName := deploymentNameFromMetadata(series.MetadataValues)
			for _, point := range series.Data {
				if point == nil || point.Total == nil {
					continue
				}
				timestamp := time.Time{}
				if point.TimeStamp != nil {
					timestamp = *point.TimeStamp
				}
				samples = append(samples, entity.MetricSample{
					EndpointID:     endpointID,
					DeploymentName: deploymentName,
					Kind:           kind,
					Timestamp:      timestamp,
					Value:          *point.Total,
				})
			}
		}
	}

	return samples
}

func deploymentNameFromMetadata(values []*azquery.MetadataValue) string {
	for _, value := range values {
		if value == nil || value.Name == nil || value.Name.Value == nil || value.Value == nil {
			continue
		}
		if strings.EqualFold(*value.Name.Value, deploymentMetadataKey) && *value.Value != "" {
			return *value.Value
		}
	}
	return entity.UnknownDeployment
}

var _ repository.TokenMetricsRepository = (*MonitorMetricsRepository)(nil)
