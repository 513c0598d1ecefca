package repository

import (
	"context"

	"github.com/ca-srg/azusage/domain/entity"
)

// UsagePushRepository publishes per-deployment token totals to an external
// metrics system. Pushing is best-effort; failures never affect the report.
type UsagePushRepository interface {
	PushUsage(ctx context.Context, records []entity.UsageRecord, period entity.Period) error

	// Close cleans up any resources held by the repository
	Close() error
}
