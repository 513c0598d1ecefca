package repository

import (
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/monitor/azquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ca-srg/azusage/domain/entity"
)

func metadataValue(name, value string) *azquery.MetadataValue {
	return &azquery.MetadataValue{
		Name:  &azquery.LocalizableString{Value: to.Ptr(name)},
		Value: to.Ptr(value),
	}
}

func TestSamplesFromMetrics(t *testing.T) {
	ts := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	metrics := []*azquery.Metric{
		{
			TimeSeries: []*azquery.TimeSeriesElement{
				{
					MetadataValues: []*azquery.MetadataValue{
						metadataValue("modeldeploymentname", "chat"),
					},
					Data: []*azquery.MetricValue{
						{TimeStamp: to.Ptr(ts), Total: to.Ptr(100.0)},
						{TimeStamp: to.Ptr(ts.AddDate(0, 0, 1)), Total: to.Ptr(50.0)},
					},
				},
			},
		},
	}

	samples := samplesFromMetrics("/subscriptions/s/r", entity.MetricKindInput, metrics)

	require.Len(t, samples, 2)
	assert.Equal(t, "chat", samples[0].DeploymentName)
	assert.Equal(t, entity.MetricKindInput, samples[0].Kind)
	assert.Equal(t, 100.0, samples[0].Value)
	assert.Equal(t, ts, samples[0].Timestamp)
	assert.Equal(t, 50.0, samples[1].Value)
}

func TestSamplesFromMetrics_SkipsPointsWithoutTotal(t *testing.T) {
	metrics := []*azquery.Metric{
		{
			TimeSeries: []*azquery.TimeSeriesElement{
				{
					Data: []*azquery.MetricValue{
						{TimeStamp: to.Ptr(time.Now())},
						nil,
						{Total: to.Ptr(5.0)},
					},
				},
			},
		},
	}

	samples := samplesFromMetrics("id", entity.MetricKindOutput, metrics)

	require.Len(t, samples, 1)
	assert.Equal(t, 5.0, samples[0].Value)
}

func TestSamplesFromMetrics_NilSafety(t *testing.T) {
	metrics := []*azquery.Metric{
		nil,
		{TimeSeries: []*azquery.TimeSeriesElement{nil}},
	}

	assert.Empty(t, samplesFromMetrics("id", entity.MetricKindInput, metrics))
	assert.Empty(t, samplesFromMetrics("id", entity.MetricKindInput, nil))
}

func TestDeploymentNameFromMetadata(t *testing.T) {
	tests := []struct {
		name     string
		values   []*azquery.MetadataValue
		expected string
	}{
		{
			name:     "exact key",
			values:   []*azquery.MetadataValue{metadataValue("modeldeploymentname", "chat")},
			expected: "chat",
		},
		{
			name:     "mixed case key",
			values:   []*azquery.MetadataValue{metadataValue("ModelDeploymentName", "chat")},
			expected: "chat",
		},
		{
			name:     "missing key",
			values:   []*azquery.MetadataValue{metadataValue("other", "x")},
			expected: entity.UnknownDeployment,
		},
		{
			name:     "empty value",
			values:   []*azquery.MetadataValue{metadataValue("modeldeploymentname", "")},
			expected: entity.UnknownDeployment,
		},
		{
			name:     "no metadata",
			values:   nil,
			expected: entity.UnknownDeployment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deploymentNameFromMetadata(tt.values))
		})
	}
}
