// Package config provides configuration management for eoltraits.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Source: type, traits_file, mapping_file
//   - API: url, token, page_size, requests_per_second, timeout_sec,
//     retries, cache_ttl_sec, disk_cache
//   - Database: host, port, user, password, database, ssl_mode, table
//   - Mapping: provider_ids_file, relevant_providers, with_cache
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Output.Predicates, Output.Format (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use EOLTRAITS_ prefix with underscores for nesting:
//
//	EOLTRAITS_SOURCE_TYPE=csv
//	EOLTRAITS_SOURCE_TRAITS_FILE=/data/eol/traits.csv
//	EOLTRAITS_API_TOKEN=secret
//	EOLTRAITS_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete eoltraits configuration.
type Config struct {
	// Source selects and configures the trait data source.
	Source SourceConfig `mapstructure:"source" yaml:"source"`

	// API contains settings of the EOL Cypher web service.
	API APIConfig `mapstructure:"api" yaml:"api"`

	// Database contains PostgreSQL connection settings for the 'pg' source.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Mapping contains settings of the provider identifier map.
	Mapping MappingConfig `mapstructure:"mapping" yaml:"mapping"`

	// Output contains runtime-only settings of command output.
	Output OutputConfig `mapstructure:"-" yaml:"-"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for batch retrieval.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// SourceConfig determines where trait records come from.
type SourceConfig struct {
	// Type is one of 'csv', 'api', 'pg'.
	Type string `mapstructure:"type" yaml:"type"`

	// TraitsFile is the path to the EOL traits CSV export (trait_bank
	// traits.csv). Required for the 'csv' source.
	TraitsFile string `mapstructure:"traits_file" yaml:"traits_file"`

	// MappingFile is an optional YAML file with a custom key mapping.
	// If empty, the built-in mapping of the source type is used.
	MappingFile string `mapstructure:"mapping_file" yaml:"mapping_file"`
}

// APIConfig contains settings for the EOL Cypher API.
type APIConfig struct {
	// URL is the Cypher endpoint.
	URL string `mapstructure:"url" yaml:"url"`

	// Token is the EOL API token. It is sent as 'JWT <token>'.
	Token string `mapstructure:"token" yaml:"token"`

	// PageSize is the LIMIT used for each page of a paginated query.
	PageSize int `mapstructure:"page_size" yaml:"page_size"`

	// RequestsPerSecond limits the request rate to the API.
	RequestsPerSecond int `mapstructure:"requests_per_second" yaml:"requests_per_second"`

	// TimeoutSec is the timeout of a single HTTP request in seconds.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// Retries is the maximum number of retries of a failed page request.
	Retries int `mapstructure:"retries" yaml:"retries"`

	// CacheTTLSec determines how long API responses are cached.
	CacheTTLSec int `mapstructure:"cache_ttl_sec" yaml:"cache_ttl_sec"`

	// DiskCache keeps API responses in ~/.cache/eoltraits/api between runs.
	DiskCache bool `mapstructure:"disk_cache" yaml:"disk_cache"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// Table keeps a copy of the traits CSV export.
	Table string `mapstructure:"table" yaml:"table"`
}

// MappingConfig describes the EOL provider identifier map.
type MappingConfig struct {
	// ProviderIDsFile is the path to provider_ids.csv from
	// https://opendata.eol.org/dataset/identifier-map.
	// If empty, identifier conversion is not available.
	ProviderIDsFile string `mapstructure:"provider_ids_file" yaml:"provider_ids_file"`

	// RelevantProviders lists provider names or IDs loaded from the map.
	RelevantProviders []string `mapstructure:"relevant_providers" yaml:"relevant_providers"`

	// WithCache keeps filtered identifier maps in a SQLite cache.
	WithCache bool `mapstructure:"with_cache" yaml:"with_cache"`
}

// OutputConfig contains per-command output settings.
type OutputConfig struct {
	// Predicates restricts returned triples to these predicate URIs.
	Predicates []string

	// Format is one of 'csv', 'tsv', 'compact', 'pretty'.
	Format string
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Source: SourceConfig{
			Type: "csv",
		},
		API: APIConfig{
			URL:               "https://eol.org/service/cypher",
			PageSize:          100,
			RequestsPerSecond: 5,
			TimeoutSec:        60,
			Retries:           3,
			CacheTTLSec:       600,
			DiskCache:         true,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "eol",
			SSLMode:  "disable",
			Table:    "traits",
		},
		Mapping: MappingConfig{
			RelevantProviders: []string{"gbif"},
			WithCache:         true,
		},
		Output: OutputConfig{
			Format: "csv",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
