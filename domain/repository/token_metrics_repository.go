package repository

import (
	"context"

	"github.com/ca-srg/azusage/domain/entity"
)

// TokenMetricsRepository queries one token counter for one endpoint over the
// analysis period and returns normalized samples. Input and output counters
// are queried separately so a failure in one never affects the other.
type TokenMetricsRepository interface {
	QueryTokenSamples(ctx context.Context, endpointID string, kind entity.MetricKind, period entity.Period) ([]entity.MetricSample, error)
}
