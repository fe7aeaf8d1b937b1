package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath names an explicit config file
	EnvConfigPath = "RECIPEBOX_CONFIG"
	// ConfigFileName is looked up in the working directory
	ConfigFileName = "recipebox.yaml"
	// ConfigDirName is the directory under the user and system config roots
	ConfigDirName = "recipebox"
)

// candidatePaths lists config locations, highest priority first:
// $RECIPEBOX_CONFIG, ./recipebox.yaml, $XDG_CONFIG_HOME/recipebox/config.yaml,
// ~/.config/recipebox/config.yaml and /etc/recipebox/config.yaml.
func candidatePaths() []string {
	var paths []string
	if p := os.Getenv(EnvConfigPath); p != "" {
		paths = append(paths, p)
	}
	paths = append(paths, ConfigFileName)
	for _, root := range userConfigRoots() {
		paths = append(paths, filepath.Join(root, ConfigDirName, "config.yaml"))
	}
	return append(paths, filepath.Join("/etc", ConfigDirName, "config.yaml"))
}

func userConfigRoots() []string {
	var roots []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		roots = append(roots, xdg)
	}
	if home := os.Getenv("HOME"); home != "" {
		roots = append(roots, filepath.Join(home, ".config"))
	}
	return roots
}

// FindConfigPath returns the first existing candidate, or "" if there is none.
// A relative match is returned as an absolute path.
func FindConfigPath() string {
	for _, p := range candidatePaths() {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return p
	}
	return ""
}

// DefaultConfigPath is where "recipebox config init" writes a new file:
// the first user config root, or the working directory without one.
func DefaultConfigPath() string {
	if roots := userConfigRoots(); len(roots) > 0 {
		return filepath.Join(roots[0], ConfigDirName, "config.yaml")
	}
	return ConfigFileName
}

// EnsureConfigDir creates the directory that will hold configPath
func EnsureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0o755)
}
