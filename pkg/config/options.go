package config

import (
	"strings"

	"github.com/gnames/eoltraits/pkg/ent/provider"
	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptSourceType sets the trait data source.
// Valid values: "csv", "api", "pg".
func OptSourceType(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Source.Type", s) {
			c.Source.Type = s
		}
	}
}

// OptSourceTraitsFile sets the path to the traits CSV export.
func OptSourceTraitsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Traits File", s) {
			c.Source.TraitsFile = s
		}
	}
}

// OptSourceMappingFile sets the path to a custom key mapping YAML file.
func OptSourceMappingFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Mapping File", s) {
			c.Source.MappingFile = s
		}
	}
}

// OptAPIURL sets the Cypher endpoint.
func OptAPIURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("API URL", s) {
			c.API.URL = s
		}
	}
}

// OptAPIToken sets the EOL API token.
func OptAPIToken(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("API Token", s) {
			c.API.Token = s
		}
	}
}

// OptAPIPageSize sets the LIMIT of every page of a Cypher query.
func OptAPIPageSize(i int) Option {
	return func(c *Config) {
		if isValidInt("API Page Size", i) {
			c.API.PageSize = i
		}
	}
}

// OptAPIRequestsPerSecond sets the rate limit for API requests.
func OptAPIRequestsPerSecond(i int) Option {
	return func(c *Config) {
		if isValidInt("API Requests Per Second", i) {
			c.API.RequestsPerSecond = i
		}
	}
}

// OptAPITimeoutSec sets the timeout of a single API request.
func OptAPITimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("API Timeout", i) {
			c.API.TimeoutSec = i
		}
	}
}

// OptAPIRetries sets how many times a failed page request is retried.
// Zero disables retries.
func OptAPIRetries(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("API Retries", i) {
			c.API.Retries = i
		}
	}
}

// OptAPICacheTTLSec sets how long API responses are cached.
// Zero disables the cache.
func OptAPICacheTTLSec(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("API Cache TTL", i) {
			c.API.CacheTTLSec = i
		}
	}
}

// OptAPIDiskCache sets whether API responses are kept on disk.
func OptAPIDiskCache(b bool) Option {
	return func(c *Config) {
		c.API.DiskCache = b
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseTable sets the table that keeps trait records.
func OptDatabaseTable(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Table", s) {
			c.Database.Table = s
		}
	}
}

// OptMappingProviderIDsFile sets the path to the provider identifier map.
func OptMappingProviderIDsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Provider IDs File", s) {
			c.Mapping.ProviderIDsFile = s
		}
	}
}

// OptMappingRelevantProviders sets data providers loaded from the
// identifier map. Unknown providers are ignored with a warning.
func OptMappingRelevantProviders(ss []string) Option {
	return func(c *Config) {
		var res []string
		for _, s := range ss {
			s = strings.TrimSpace(s)
			if provider.New(s) == provider.Unknown {
				gn.Warn("Unknown data provider <em>%s</em>, ignoring", s)
				continue
			}
			res = append(res, s)
		}
		if len(res) > 0 {
			c.Mapping.RelevantProviders = res
		}
	}
}

// OptMappingWithCache sets whether filtered identifier maps are cached.
func OptMappingWithCache(b bool) Option {
	return func(c *Config) {
		c.Mapping.WithCache = b
	}
}

// OptOutputPredicates restricts output to the given predicates.
// Runtime-only field - not in ToOptions().
func OptOutputPredicates(ss []string) Option {
	return func(c *Config) {
		var res []string
		for _, s := range ss {
			s = strings.TrimSpace(s)
			if s != "" {
				res = append(res, s)
			}
		}
		c.Output.Predicates = res
	}
}

// OptOutputFormat sets the output format.
// Valid values: "csv", "tsv", "compact", "pretty".
// Runtime-only field - not in ToOptions().
func OptOutputFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Format", s) {
			c.Output.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for batch retrieval.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
