package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricSample_HasUsage(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected bool
	}{
		{"positive", 125.0, true},
		{"zero", 0, false},
		{"negative", -3, false},
		{"fractional", 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := MetricSample{Value: tt.value}
			assert.Equal(t, tt.expected, sample.HasUsage())
		})
	}
}
