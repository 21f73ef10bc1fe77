package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/epitools/covidtrends/pkg/config"
)

const configHeader = `# covidtrends configuration file
# This file was auto-generated. Edit as needed.
#
# Configuration precedence (highest to lowest):
#   1. CLI flags (--source, --countries, etc.)
#   2. Environment variables (COVIDTRENDS_*)
#   3. This config file
#   4. Built-in defaults

`

// GenerateDefaultConfig creates a documented default config file at
// ~/.config/covidtrends/covidtrends.yaml. Returns the path where the
// config was created. Does NOT overwrite existing config files.
func GenerateDefaultConfig() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return generateAt(defaultPathFor(homeDir))
}

func generateAt(configPath string) (string, error) {
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	body, err := yaml.Marshal(config.New())
	if err != nil {
		return "", fmt.Errorf("failed to marshal default config: %w", err)
	}

	content := append([]byte(configHeader), body...)
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configPath, nil
}
