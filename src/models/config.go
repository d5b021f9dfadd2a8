package models

// MConfig Structure
type MConfig struct {
	Name     string        `yaml:"name"`
	LogLevel string        `yaml:"log_level"`
	Input    MInputConfig  `yaml:"input"`
	Report   MReportConfig `yaml:"report"`
	Chart    MChartConfig  `yaml:"chart"`
}

type MInputConfig struct {
	Path             string   `yaml:"path"`
	TimestampLayouts []string `yaml:"timestamp_layouts"`
}

type MReportConfig struct {
	NegativeDeltaPolicy string `yaml:"negative_delta_policy"`
	BucketWindow        string `yaml:"bucket_window"`
}

type MChartConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	OutputDir string `yaml:"output_dir"`
	LineColor string `yaml:"line_color"` // Optional
}
