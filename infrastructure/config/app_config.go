package config

import (
	"fmt"
	"time"

	env "github.com/Netflix/go-env"

	"github.com/ca-srg/azusage/domain"
	"github.com/ca-srg/azusage/domain/entity"
)

// ReportConfig selects the billing month to analyze. When both values are
// zero the previous calendar month is used.
type ReportConfig struct {
	Year  int `env:"AZUSAGE_REPORT_YEAR"`
	Month int `env:"AZUSAGE_REPORT_MONTH"`
}

// ExportConfig controls where the CSV report is written.
type ExportConfig struct {
	OutputPath string `env:"AZUSAGE_EXPORT_OUTPUT_PATH,default=."`
}

// PrometheusConfig holds settings for the optional remote write push.
type PrometheusConfig struct {
	RemoteWriteURL string `env:"AZUSAGE_PROMETHEUS_REMOTE_WRITE_URL"`
	Username       string `env:"AZUSAGE_PROMETHEUS_USERNAME"`
	Password       string `env:"AZUSAGE_PROMETHEUS_PASSWORD"`
	TimeoutSec     int    `env:"AZUSAGE_PROMETHEUS_TIMEOUT_SEC,default=30"`
}

// PushEnabled reports whether a remote write target is configured.
func (c *PrometheusConfig) PushEnabled() bool {
	return c.RemoteWriteURL != ""
}

// PromtailConfig holds settings for shipping logs to Loki. Logging falls
// back to the console when no URL is configured.
type PromtailConfig struct {
	URL      string `env:"AZUSAGE_LOKI_URL"`
	Username string `env:"AZUSAGE_LOKI_USERNAME"`
	Password string `env:"AZUSAGE_LOKI_PASSWORD"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level    string `env:"AZUSAGE_LOG_LEVEL,default=info"`
	Debug    bool   `env:"AZUSAGE_DEBUG_MODE,default=false"`
	Promtail *PromtailConfig
}

// AppConfig is the application configuration assembled from environment
// variables.
type AppConfig struct {
	Report     *ReportConfig
	Export     *ExportConfig
	Prometheus *PrometheusConfig
	Logging    *LoggingConfig
}

// DefaultConfig returns the configuration used when no environment
// variables are set.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Report: &ReportConfig{},
		Export: &ExportConfig{
			OutputPath: ".",
		},
		Prometheus: &PrometheusConfig{
			TimeoutSec: 30,
		},
		Logging: &LoggingConfig{
			Level:    "info",
			Promtail: &PromtailConfig{},
		},
	}
}

// LoadConfig builds the configuration from the environment on top of the
// defaults.
func LoadConfig() (*AppConfig, error) {
	cfg := DefaultConfig()

	if _, err := env.UnmarshalFromEnviron(cfg.Report); err != nil {
		return nil, domain.ErrConfig("report", fmt.Sprintf("failed to load from environment: %v", err))
	}
	if _, err := env.UnmarshalFromEnviron(cfg.Export); err != nil {
		return nil, domain.ErrConfig("export", fmt.Sprintf("failed to load from environment: %v", err))
	}
	if _, err := env.UnmarshalFromEnviron(cfg.Prometheus); err != nil {
		return nil, domain.ErrConfig("prometheus", fmt.Sprintf("failed to load from environment: %v", err))
	}
	if _, err := env.UnmarshalFromEnviron(cfg.Logging); err != nil {
		return nil, domain.ErrConfig("logging", fmt.Sprintf("failed to load from environment: %v", err))
	}
	if _, err := env.UnmarshalFromEnviron(cfg.Logging.Promtail); err != nil {
		return nil, domain.ErrConfig("promtail", fmt.Sprintf("failed to load from environment: %v", err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration consistency.
func (c *AppConfig) Validate() error {
	if (c.Report.Year == 0) != (c.Report.Month == 0) {
		return domain.ErrConfig("report", "AZUSAGE_REPORT_YEAR and AZUSAGE_REPORT_MONTH must be set together")
	}
	if c.Report.Month < 0 || c.Report.Month > 12 {
		return domain.ErrConfig("report.month", fmt.Sprintf("must be 1-12, got %d", c.Report.Month))
	}
	if c.Report.Year < 0 {
		return domain.ErrConfig("report.year", fmt.Sprintf("must not be negative, got %d", c.Report.Year))
	}
	if c.Export.OutputPath == "" {
		return domain.ErrConfig("export.outputPath", "must not be empty")
	}
	if c.Prometheus.TimeoutSec <= 0 {
		return domain.ErrConfig("prometheus.timeoutSec", fmt.Sprintf("must be positive, got %d", c.Prometheus.TimeoutSec))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return domain.ErrConfig("logging.level", fmt.Sprintf("must be debug, info, warn, or error, got %q", c.Logging.Level))
	}
	return nil
}

// ReportPeriod resolves the configured billing month relative to now.
// Without explicit configuration it selects the previous calendar month.
func (c *AppConfig) ReportPeriod(now time.Time) entity.Period {
	if c.Report.Year != 0 && c.Report.Month != 0 {
		return entity.MonthPeriod(c.Report.Year, time.Month(c.Report.Month))
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prev := first.AddDate(0, -1, 0)
	return entity.MonthPeriod(prev.Year(), prev.Month())
}
