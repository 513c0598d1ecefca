package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ca-srg/azusage/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0, cfg.Report.Year)
	assert.Equal(t, 0, cfg.Report.Month)
	assert.Equal(t, ".", cfg.Export.OutputPath)
	assert.Equal(t, 30, cfg.Prometheus.TimeoutSec)
	assert.False(t, cfg.Prometheus.PushEnabled())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Debug)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Export.OutputPath)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("AZUSAGE_REPORT_YEAR", "2026")
	t.Setenv("AZUSAGE_REPORT_MONTH", "3")
	t.Setenv("AZUSAGE_EXPORT_OUTPUT_PATH", "/tmp/reports")
	t.Setenv("AZUSAGE_PROMETHEUS_REMOTE_WRITE_URL", "https://prom.example.com/api/v1/write")
	t.Setenv("AZUSAGE_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2026, cfg.Report.Year)
	assert.Equal(t, 3, cfg.Report.Month)
	assert.Equal(t, "/tmp/reports", cfg.Export.OutputPath)
	assert.True(t, cfg.Prometheus.PushEnabled())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_InvalidMonth(t *testing.T) {
	t.Setenv("AZUSAGE_REPORT_YEAR", "2026")
	t.Setenv("AZUSAGE_REPORT_MONTH", "13")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeConfig))
}

func TestLoadConfig_YearWithoutMonth(t *testing.T) {
	t.Setenv("AZUSAGE_REPORT_YEAR", "2026")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeConfig))
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeConfig))
}

func TestReportPeriod_Explicit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Report.Year = 2026
	cfg.Report.Month = 2

	period := cfg.ReportPeriod(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, "February 2026", period.Month())
}

func TestReportPeriod_DefaultsToPreviousMonth(t *testing.T) {
	cfg := DefaultConfig()

	period := cfg.ReportPeriod(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "July 2026", period.Month())
}

func TestReportPeriod_JanuaryRollsBack(t *testing.T) {
	cfg := DefaultConfig()

	period := cfg.ReportPeriod(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "December 2025", period.Month())
}

func TestReportPeriod_MonthEndDoesNotSkip(t *testing.T) {
	cfg := DefaultConfig()

	// March 31: the previous month is February despite the short month
	period := cfg.ReportPeriod(time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, "February 2026", period.Month())
}
