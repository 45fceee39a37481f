// Package iofs prepares directories and files eoltraits keeps in the home
// directory and reads user-provided mapping files.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/eoltraits/pkg/config"
	"github.com/gnames/eoltraits/pkg/normalizer"
	"github.com/gnames/gnsys"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config, cache and log directories if they are
// missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := gnsys.MakeDir(v); err != nil {
			return CreateDirError(v, err)
		}
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml if it does not exist.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// LoadMapping reads a key mapping from a YAML file.
func LoadMapping(path string) (normalizer.Mapping, error) {
	var res normalizer.Mapping
	bs, err := os.ReadFile(path)
	if err != nil {
		return res, ReadFileError(path, err)
	}
	if err = yaml.Unmarshal(bs, &res); err != nil {
		return res, MappingFileError(path, err)
	}
	if len(res.Keys) == 0 && len(res.Delete) == 0 {
		return res, MappingFileError(path, errEmptyMapping)
	}
	return res, nil
}
