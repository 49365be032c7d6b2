package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for submitkit.
type Paths struct {
	// ConfigFile is the path to the config file (~/.submitkit/config.yaml).
	ConfigFile string

	// HomeDir is the submitkit home directory (~/.submitkit).
	HomeDir string
}

// DefaultPaths returns the default paths for submitkit.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	kitHome := filepath.Join(homeDir, ".submitkit")

	return &Paths{
		ConfigFile: filepath.Join(kitHome, "config.yaml"),
		HomeDir:    kitHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If SUBMITKIT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("SUBMITKIT_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/")), nil
	}
	return path, nil
}
