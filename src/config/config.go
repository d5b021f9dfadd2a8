package config

import (
	"fmt"
	"os"
	"time"

	"upload-report/src/models"
	"upload-report/src/utils"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// DefaultConfig returns the configuration used when no YAML file is given.
func DefaultConfig() *Config {
	return &Config{MConfig: &models.MConfig{
		Name:     "upload-report",
		LogLevel: "info",
		Input: models.MInputConfig{
			Path:             "stats_report.csv",
			TimestampLayouts: append([]string(nil), utils.DefaultTimestampLayouts...),
		},
		Report: models.MReportConfig{
			NegativeDeltaPolicy: "clamp",
			BucketWindow:        "1h",
		},
		Chart: models.MChartConfig{
			Title:     "Cumulative S3 Uploads Over Time",
			Width:     1400,
			Height:    800,
			OutputDir: ".",
			LineColor: "green",
		},
	}}
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal over the defaults so absent keys keep their default value
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config.MConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	// 3. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	// Validate App configuration
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warning", "error":
	default:
		return fmt.Errorf("unknown log level: %s", c.LogLevel)
	}

	// Validate Input configuration
	if c.Input.Path == "" {
		return fmt.Errorf("input path cannot be empty")
	}
	if len(c.Input.TimestampLayouts) == 0 {
		return fmt.Errorf("at least one timestamp layout must be configured")
	}

	// Validate Report configuration
	switch c.Report.NegativeDeltaPolicy {
	case "clamp", "warn", "fail":
	default:
		return fmt.Errorf("unknown negative delta policy: %s", c.Report.NegativeDeltaPolicy)
	}
	if _, err := c.BucketWindowDuration(); err != nil {
		return err
	}

	// Validate Chart configuration
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive: %dx%d", c.Chart.Width, c.Chart.Height)
	}
	if c.Chart.OutputDir == "" {
		return fmt.Errorf("chart output directory cannot be empty")
	}

	return nil
}

// -----------------------------------------------------------------------------

// BucketWindowDuration parses the configured resample window.
func (c *Config) BucketWindowDuration() (time.Duration, error) {
	if c.Report.BucketWindow == "" {
		return utils.DefaultBucketWindow, nil
	}
	dur, err := time.ParseDuration(c.Report.BucketWindow)
	if err != nil {
		return 0, fmt.Errorf("invalid bucket window '%s': %w", c.Report.BucketWindow, err)
	}
	if dur <= 0 {
		return 0, fmt.Errorf("bucket window must be positive: %s", c.Report.BucketWindow)
	}
	return dur, nil
}

// -----------------------------------------------------------------------------

// MinLogLevel implements the logger level gate.
func (c *Config) MinLogLevel() string {
	return c.LogLevel
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
