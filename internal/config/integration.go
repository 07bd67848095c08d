package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName  = ".footprint"
	configFileName = "config.yaml"
	homeEnvVar     = "FOOTPRINT_HOME"
)

// GetConfigDir returns the footprint configuration directory: $FOOTPRINT_HOME
// when set, otherwise ~/.footprint.
func GetConfigDir() (string, error) {
	if home := os.Getenv(homeEnvVar); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// DefaultConfigPath returns the path of the global config file.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
