package repository

import (
	"context"
	"time"

	"github.com/ca-srg/azusage/domain"
	"github.com/ca-srg/azusage/domain/entity"
	"github.com/ca-srg/azusage/domain/repository"
	"github.com/ca-srg/azusage/infrastructure/config"
)

const usageMetricName = "azure_openai_tokens_total"

// PrometheusUsageRepository pushes per-deployment token totals to a
// Prometheus Remote Write endpoint.
type PrometheusUsageRepository struct {
	client *RemoteWriteClient
	logger domain.Logger
}

// NewPrometheusUsageRepository creates a remote write backed usage push
// repository from the prometheus configuration.
func NewPrometheusUsageRepository(cfg *config.PrometheusConfig, logger domain.Logger) (*PrometheusUsageRepository, error) {
	client, err := NewRemoteWriteClient(
		cfg.RemoteWriteURL,
		time.Duration(cfg.TimeoutSec)*time.Second,
		&AuthConfig{
			Username: cfg.Username,
			Password: cfg.Password,
		},
	)
	if err != nil {
		return nil, domain.ErrMetricsPushWithCause("create client", err)
	}
	return &PrometheusUsageRepository{
		client: client,
		logger: logger,
	}, nil
}

// PushUsage sends one gauge per usage record. Records that fail to push are
// logged and skipped so one bad record never blocks the rest.
func (r *PrometheusUsageRepository) PushUsage(ctx context.Context, records []entity.UsageRecord, period entity.Period) error {
	var failed int
	for _, record := range records {
		labels := map[string]string{
			"resource":          record.Endpoint.Name,
			"deployment":        record.DeploymentName,
			"model":             record.Model.Name,
			"subscription_id":   record.Endpoint.SubscriptionID,
			"subscription_name": record.Endpoint.SubscriptionName,
			"month":             period.Month(),
		}
		if err := r.client.SendGaugeMetric(ctx, usageMetricName, record.TotalTokens, labels); err != nil {
			failed++
			r.logger.Warn(ctx, "failed to push usage record",
				domain.NewField("deployment", record.DeploymentName),
				domain.NewField("error", err.Error()))
		}
	}

	if failed == len(records) && len(records) > 0 {
		return domain.ErrMetricsPushWithCause("push", nil).
			WithDetails("records", len(records))
	}

	r.logger.Info(ctx, "usage records pushed",
		domain.NewField("pushed", len(records)-failed),
		domain.NewField("failed", failed))

	return nil
}

// Close cleans up any resources held by the repository
func (r *PrometheusUsageRepository) Close() error {
	return nil
}

var _ repository.UsagePushRepository = (*PrometheusUsageRepository)(nil)
