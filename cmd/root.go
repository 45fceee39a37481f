/*
Copyright © 2026 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/eoltraits/internal/iofs"
	"github.com/gnames/eoltraits/internal/iologger"
	app "github.com/gnames/eoltraits/pkg"
	"github.com/gnames/eoltraits/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "eoltraits",
		Short:   "Eoltraits turns EOL trait records into triples",
		Long: `Eoltraits reads trait records of the Encyclopedia of Life (EOL)
and converts them into subject-predicate-object triples.

Trait sources:
  csv   traits.csv of the EOL trait bank export
  api   EOL Cypher web service (needs an API token)
  pg    PostgreSQL table with the columns of traits.csv

It also converts identifiers of other data providers (GBIF, ITIS,
NCBI, ...) to EOL page IDs and back, using the EOL identifier map.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (EOLTRAITS_*)
  3. Config file (~/.config/eoltraits/config.yaml)
  4. Built-in defaults

Environment variables use underscores for nesting
(api.token -> EOLTRAITS_API_TOKEN).`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for eoltraits")

	rootCmd.AddCommand(getTraitsCmd())
	rootCmd.AddCommand(getIDsCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Defaults until the config file is read.
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"source", cfg.Source.Type,
	)
	return nil
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	// keys missing from the file keep default values
	res := config.New()
	if err = v.Unmarshal(res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return res, nil
}

func initEnvVars(v *viper.Viper) {
	// Allowed variables are listed explicitly. They match the fields of
	// config.ToOptions().
	v.SetEnvPrefix("EOLTRAITS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("source.type", "EOLTRAITS_SOURCE_TYPE")
	v.BindEnv("source.traits_file", "EOLTRAITS_SOURCE_TRAITS_FILE")
	v.BindEnv("source.mapping_file", "EOLTRAITS_SOURCE_MAPPING_FILE")

	v.BindEnv("api.url", "EOLTRAITS_API_URL")
	v.BindEnv("api.token", "EOLTRAITS_API_TOKEN")
	v.BindEnv("api.page_size", "EOLTRAITS_API_PAGE_SIZE")
	v.BindEnv("api.requests_per_second", "EOLTRAITS_API_REQUESTS_PER_SECOND")
	v.BindEnv("api.timeout_sec", "EOLTRAITS_API_TIMEOUT_SEC")
	v.BindEnv("api.retries", "EOLTRAITS_API_RETRIES")
	v.BindEnv("api.cache_ttl_sec", "EOLTRAITS_API_CACHE_TTL_SEC")
	v.BindEnv("api.disk_cache", "EOLTRAITS_API_DISK_CACHE")

	v.BindEnv("database.host", "EOLTRAITS_DATABASE_HOST")
	v.BindEnv("database.port", "EOLTRAITS_DATABASE_PORT")
	v.BindEnv("database.user", "EOLTRAITS_DATABASE_USER")
	v.BindEnv("database.password", "EOLTRAITS_DATABASE_PASSWORD")
	v.BindEnv("database.database", "EOLTRAITS_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "EOLTRAITS_DATABASE_SSL_MODE")
	v.BindEnv("database.table", "EOLTRAITS_DATABASE_TABLE")

	v.BindEnv("mapping.provider_ids_file", "EOLTRAITS_MAPPING_PROVIDER_IDS_FILE")
	v.BindEnv("mapping.relevant_providers", "EOLTRAITS_MAPPING_RELEVANT_PROVIDERS")
	v.BindEnv("mapping.with_cache", "EOLTRAITS_MAPPING_WITH_CACHE")

	v.BindEnv("log.level", "EOLTRAITS_LOG_LEVEL")
	v.BindEnv("log.format", "EOLTRAITS_LOG_FORMAT")
	v.BindEnv("log.destination", "EOLTRAITS_LOG_DESTINATION")

	v.BindEnv("jobs_number", "EOLTRAITS_JOBS_NUMBER")

	v.AutomaticEnv()
}
