package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "datamaps/internal/errors"
	"datamaps/internal/temporal"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
	Temporal  TemporalConfig  `yaml:"temporal" envconfig:"TEMPORAL"`
	Batch     BatchConfig     `yaml:"batch" envconfig:"BATCH"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int             `yaml:"port" envconfig:"PORT" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration   `yaml:"read_timeout" envconfig:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration   `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout     time.Duration   `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" validate:"gte=0"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
	EnableMetrics   bool            `yaml:"enable_metrics" envconfig:"ENABLE_METRICS"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" validate:"gte=0"`
	Burst   int     `yaml:"burst" envconfig:"BURST" validate:"gte=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"omitempty,oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"omitempty,oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"omitempty,oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig locates the documents directory and the files inside it.
// Relative input and output directories are taken from DocsDir.
type PathsConfig struct {
	DocsDir     string `yaml:"docs_dir" envconfig:"DOCS_DIR" validate:"required"`
	InputDir    string `yaml:"input_dir" envconfig:"INPUT_DIR" validate:"required"`
	OutputDir   string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	MasterFile  string `yaml:"master_file" envconfig:"MASTER_FILE" validate:"required"`
	DatamapFile string `yaml:"datamap_file" envconfig:"DATAMAP_FILE"`
	BlankFile   string `yaml:"blank_file" envconfig:"BLANK_FILE"`
}

// TemporalConfig holds the accepted year ranges for periods.
type TemporalConfig struct {
	QuarterMinYear       int `yaml:"quarter_min_year" envconfig:"QUARTER_MIN_YEAR" validate:"gt=0"`
	QuarterMaxYear       int `yaml:"quarter_max_year" envconfig:"QUARTER_MAX_YEAR" validate:"gtefield=QuarterMinYear"`
	FinancialYearMinYear int `yaml:"financial_year_min_year" envconfig:"FINANCIAL_YEAR_MIN_YEAR" validate:"gt=0"`
	FinancialYearMaxYear int `yaml:"financial_year_max_year" envconfig:"FINANCIAL_YEAR_MAX_YEAR" validate:"gtefield=FinancialYearMinYear"`
}

// Bounds converts the configuration into temporal bounds.
func (t TemporalConfig) Bounds() temporal.Bounds {
	return temporal.Bounds{
		QuarterMin:       t.QuarterMinYear,
		QuarterMax:       t.QuarterMaxYear,
		FinancialYearMin: t.FinancialYearMinYear,
		FinancialYearMax: t.FinancialYearMaxYear,
	}
}

// BatchConfig controls batch projection of a directory of workbooks.
type BatchConfig struct {
	Workers int `yaml:"workers" envconfig:"WORKERS" validate:"min=1,max=64"`
}

// TelemetryConfig controls tracing. Metrics follow Server.EnableMetrics.
type TelemetryConfig struct {
	TracingEnabled bool    `yaml:"tracing_enabled" envconfig:"TRACING_ENABLED"`
	TraceExporter  string  `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"omitempty,oneof=stdout none"`
	SampleRatio    float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO" validate:"gte=0,lte=1"`
	ServiceName    string  `yaml:"service_name" envconfig:"SERVICE_NAME"`
}

// Load builds the configuration from defaults, then the config file (if
// any), then DATAMAPS_* environment variables.
func Load() (*Config, error) {
	return LoadFile(getConfigFilePath())
}

// LoadFile is Load with an explicit config file. An empty path skips the
// file layer.
func LoadFile(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to load config from %s", configFile), err)
		}
	}

	// Only variables that are set override; the rest keep file/default values.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	cfg.resolvePaths()

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.NewConfigError("config validation failed", err)
	}
	return cfg, nil
}

// loadFromFile overlays the YAML file at filePath onto cfg.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// resolvePaths makes input and output directories absolute under DocsDir.
func (c *Config) resolvePaths() {
	if !filepath.IsAbs(c.Paths.InputDir) {
		c.Paths.InputDir = filepath.Join(c.Paths.DocsDir, c.Paths.InputDir)
	}
	if !filepath.IsAbs(c.Paths.OutputDir) {
		c.Paths.OutputDir = filepath.Join(c.Paths.DocsDir, c.Paths.OutputDir)
	}
	if c.Logging.FilePath != "" && !filepath.IsAbs(c.Logging.FilePath) {
		c.Logging.FilePath = filepath.Join(c.Paths.DocsDir, c.Logging.FilePath)
	}
}

var validate = validator.New()

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if err := c.Temporal.Bounds().Validate(); err != nil {
		return err
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "console"
	}
	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("logging output %q needs a file path", c.Logging.Output)
	}
	return nil
}

// YAML renders the configuration as it would appear in a config file.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if explicit := os.Getenv(ConfigEnvVar); explicit != "" {
		return explicit
	}

	locations := []string{
		"datamaps.yaml",
		filepath.Join("configs", "datamaps.yaml"),
		filepath.Join(DefaultDocsDir(), DefaultConfigFileName),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// DefaultDocsDir returns ~/Documents/datamaps, or ./datamaps when the home
// directory cannot be determined.
func DefaultDocsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, "Documents", AppName)
}

// Default returns default configuration
func Default() *Config {
	bounds := temporal.DefaultBounds()
	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			IdleTimeout:     DefaultIdleTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			EnableMetrics:   true,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     DefaultRateLimit,
				Burst:   DefaultBurstSize,
			},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: filepath.Join(DefaultLogsDir, "datamaps.log"),
		},
		Paths: PathsConfig{
			DocsDir:     DefaultDocsDir(),
			InputDir:    DefaultInputDir,
			OutputDir:   DefaultOutputDir,
			MasterFile:  DefaultMasterFileName,
			DatamapFile: DefaultDatamapFileName,
			BlankFile:   DefaultBlankFileName,
		},
		Temporal: TemporalConfig{
			QuarterMinYear:       bounds.QuarterMin,
			QuarterMaxYear:       bounds.QuarterMax,
			FinancialYearMinYear: bounds.FinancialYearMin,
			FinancialYearMaxYear: bounds.FinancialYearMax,
		},
		Batch: BatchConfig{
			Workers: DefaultBatchWorkers,
		},
		Telemetry: TelemetryConfig{
			TraceExporter: "stdout",
			SampleRatio:   1.0,
			ServiceName:   AppName,
		},
	}
}
