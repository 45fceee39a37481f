package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/eoltraits/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "eoltraits"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "eoltraits"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "eoltraits", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "eoltraits", "config.yaml"),
		},
		{
			msg: "lookup cache dir",
			fn:  config.LookupCacheDir,
			res: filepath.Join(tempHome, ".cache", "eoltraits", "lookup"),
		},
		{
			msg: "api cache dir",
			fn:  config.APICacheDir,
			res: filepath.Join(tempHome, ".cache", "eoltraits", "api"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, "csv", cfg.Source.Type)

		// API defaults
		assert.Equal(t, "https://eol.org/service/cypher", cfg.API.URL)
		assert.Equal(t, 100, cfg.API.PageSize)
		assert.Equal(t, 3, cfg.API.Retries)
		assert.True(t, cfg.API.DiskCache)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "eol", cfg.Database.Database)
		assert.Equal(t, "traits", cfg.Database.Table)

		assert.Equal(t, []string{"gbif"}, cfg.Mapping.RelevantProviders)
		assert.Equal(t, "csv", cfg.Output.Format)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptionSourceType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets api",
			input:    "api",
			expected: "api",
		},
		{
			name:     "normalizes case and spaces",
			input:    " PG ",
			expected: "pg",
		},
		{
			name:     "ignores unknown source",
			input:    "mysql",
			expected: "csv", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptSourceType(tt.input)})
			assert.Equal(t, tt.expected, cfg.Source.Type)
		})
	}
}

func TestOptionAPIURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid url",
			input:    "http://localhost:8080/service/cypher",
			expected: "http://localhost:8080/service/cypher",
		},
		{
			name:     "ignores non http url",
			input:    "ftp://eol.org",
			expected: "https://eol.org/service/cypher",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "https://eol.org/service/cypher",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptAPIURL(tt.input)})
			assert.Equal(t, tt.expected, cfg.API.URL)
		})
	}
}

func TestOptionAPIRetries(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets retries",
			input:    5,
			expected: 5,
		},
		{
			name:     "zero disables retries",
			input:    0,
			expected: 0,
		},
		{
			name:     "ignores negative",
			input:    -1,
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptAPIRetries(tt.input)})
			assert.Equal(t, tt.expected, cfg.API.Retries)
		})
	}
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid host",
			input:    "db.example.com",
			expected: "db.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  db.example.com  ",
			expected: "db.example.com",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "localhost", // Should keep default
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "localhost", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseHost(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid port",
			input:    5433,
			expected: 5433,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 5432, // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -100,
			expected: 5432, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabasePort(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionRelevantProviders(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "sets providers",
			input:    []string{"gbif", "WoRMS"},
			expected: []string{"gbif", "WoRMS"},
		},
		{
			name:     "skips unknown providers",
			input:    []string{"col", "459"},
			expected: []string{"459"},
		},
		{
			name:     "ignores only unknown providers",
			input:    []string{"col"},
			expected: []string{"gbif"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptMappingRelevantProviders(tt.input)})
			assert.Equal(t, tt.expected, cfg.Mapping.RelevantProviders)
		})
	}
}

func TestOptionOutputFormat(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptOutputFormat("Pretty")})
	assert.Equal(t, "pretty", cfg.Output.Format)

	cfg.Update([]config.Option{config.OptOutputFormat("xml")})
	assert.Equal(t, "pretty", cfg.Output.Format)
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "normalizes case",
			input:    "WARN",
			expected: "warn",
		},
		{
			name:     "ignores invalid level",
			input:    "verbose",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionJobsNumber(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptJobsNumber(0)})
	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)

	cfg.Update([]config.Option{config.OptJobsNumber(4)})
	assert.Equal(t, 4, cfg.JobsNumber)
}

func TestMultipleOptions(t *testing.T) {
	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptSourceType("api"),
			config.OptSourceType("pg"),
		})
		assert.Equal(t, "pg", cfg.Source.Type)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptSourceType("api"),
			config.OptSourceTraitsFile("/data/traits.csv"),
			config.OptSourceMappingFile("/data/mapping.yaml"),
			config.OptAPIToken("secret"),
			config.OptAPIPageSize(50),
			config.OptAPIRetries(0),
			config.OptAPICacheTTLSec(0),
			config.OptAPIDiskCache(false),
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabaseTable("eol_traits"),
			config.OptMappingProviderIDsFile("/data/provider_ids.csv"),
			config.OptMappingRelevantProviders([]string{"gbif", "ncbi"}),
			config.OptMappingWithCache(false),
			config.OptLogLevel("debug"),
			config.OptLogFormat("tint"),
			config.OptLogDestination("stderr"),
			config.OptJobsNumber(8),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Source, newCfg.Source)
		assert.Equal(t, original.API, newCfg.API)
		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Mapping, newCfg.Mapping)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptOutputPredicates([]string{"habitat"}),
			config.OptOutputFormat("tsv"),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.Nil(t, newCfg.Output.Predicates)
		assert.Equal(t, "csv", newCfg.Output.Format)
	})
}
