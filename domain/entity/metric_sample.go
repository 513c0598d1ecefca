package entity

import (
	"time"
)

// MetricKind distinguishes the two token counters an endpoint reports.
type MetricKind string

const (
	MetricKindInput  MetricKind = "input"
	MetricKindOutput MetricKind = "output"
)

// UnknownDeployment labels metric series that carry no deployment metadata.
const UnknownDeployment = "Unknown"

// MetricSample is one normalized time-series data point for an endpoint.
// Samples are ephemeral: produced by the metrics client and consumed
// immediately by aggregation.
type MetricSample struct {
	EndpointID     string
	DeploymentName string
	Kind           MetricKind
	Timestamp      time.Time
	Value          float64
}

// HasUsage reports whether the sample carries a positive token count.
// Zero and negative points are excluded from the report.
func (s MetricSample) HasUsage() bool {
	return s.Value > 0
}
