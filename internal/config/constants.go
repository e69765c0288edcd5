package config

import "time"

// Application constants
const (
	AppName    = "datamaps"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable, e.g. DATAMAPS_SERVER_PORT.
	EnvPrefix = "DATAMAPS"
	// ConfigEnvVar points at an explicit configuration file.
	ConfigEnvVar = "DATAMAPS_CONFIG"

	// File names inside the input directory
	DefaultMasterFileName  = "master.xlsx"
	DefaultDatamapFileName = "datamap.csv"
	DefaultBlankFileName   = "blank_template.xlsm"
	DefaultConfigFileName  = "config.yaml"

	// Directories below the documents directory
	DefaultInputDir  = "input"
	DefaultOutputDir = "output"
	DefaultLogsDir   = "logs"

	// Server defaults
	DefaultPort            = 8080
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultRateLimit       = 20 // requests per second
	DefaultBurstSize       = 40

	// DefaultBatchWorkers bounds concurrent workbook projections.
	DefaultBatchWorkers = 4
)
