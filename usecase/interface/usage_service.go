package usecase

import (
	"context"

	"github.com/ca-srg/azusage/domain/entity"
)

// UsageService collects token usage for every inference endpoint over a
// billing period.
type UsageService interface {
	// CollectUsage inventories endpoints, queries their token counters,
	// resolves deployment names to models, and aggregates the results.
	// Endpoints that fail to answer are skipped, not fatal.
	CollectUsage(ctx context.Context, period entity.Period) (*UsageReportResult, error)
}

// UsageReportResult is the outcome of one collection run.
type UsageReportResult struct {
	Period entity.Period

	// Records holds one aggregated entry per (endpoint, model, deployment)
	// with observed usage.
	Records []entity.UsageRecord

	// EndpointCount is the number of endpoints discovered.
	EndpointCount int

	// EndpointsWithoutData is the number of endpoints that reported no
	// usage for the period.
	EndpointsWithoutData int
}

// TotalTokens returns the sum of tokens over all records.
func (r *UsageReportResult) TotalTokens() float64 {
	var total float64
	for _, record := range r.Records {
		total += record.TotalTokens
	}
	return total
}

// DistinctEndpoints returns the number of endpoints that contributed
// at least one record.
func (r *UsageReportResult) DistinctEndpoints() int {
	seen := make(map[string]struct{})
	for _, record := range r.Records {
		seen[record.Endpoint.ID] = struct{}{}
	}
	return len(seen)
}

// DistinctModels returns the number of distinct model names in the records.
func (r *UsageReportResult) DistinctModels() int {
	seen := make(map[string]struct{})
	for _, record := range r.Records {
		seen[record.Model.Name] = struct{}{}
	}
	return len(seen)
}
