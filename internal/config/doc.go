// Package config loads the datamaps configuration.
//
// Values are layered, later layers winning:
//
//	1. Default()
//	2. a YAML file: $DATAMAPS_CONFIG, ./datamaps.yaml, ./configs/datamaps.yaml
//	   or ~/Documents/datamaps/config.yaml
//	3. DATAMAPS_* environment variables
//
// Environment variables follow the struct layout:
//
//	DATAMAPS_SERVER_PORT=8080
//	DATAMAPS_LOGGING_LEVEL=debug
//	DATAMAPS_PATHS_DOCS_DIR=/srv/datamaps
//	DATAMAPS_TEMPORAL_QUARTER_MIN_YEAR=1950
//	DATAMAPS_BATCH_WORKERS=8
//
// Paths resolves the input and output directories below the documents
// directory, mirroring the layout the desktop tool has always used:
//
//	~/Documents/datamaps/input/master.xlsx
//	~/Documents/datamaps/output/
package config
