package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "eoltraits"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/eoltraits by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/eoltraits by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/eoltraits/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/eoltraits/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// LookupCacheDir returns the directory of the identifier map cache.
func LookupCacheDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "lookup")
}

// APICacheDir returns the directory of the persistent API response cache.
func APICacheDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "api")
}
