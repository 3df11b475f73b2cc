package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hamidzr/screenfix/model"
	"gopkg.in/yaml.v2"
)

// canonicalKeys maps a normalized spelling (lowercase, no separators) to the
// key Config reads.
var canonicalKeys = func() map[string]string {
	m := make(map[string]string, len(model.ConfigKeys))
	for _, key := range model.ConfigKeys {
		m[normalizeKeyVariant(key.Name)] = key.Name
	}
	return m
}()

// GetConfigPaths returns the config directory paths in priority order
// prefers ~/.config over macos application support dir
func GetConfigPaths(profile string) []string {
	var paths []string

	if profile != "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(homeDir, ".config", model.ProjectName, profile))
			paths = append(paths, filepath.Join(homeDir, "."+model.ProjectName, profile))
		}
		if configDir, err := os.UserConfigDir(); err == nil {
			paths = append(paths, filepath.Join(configDir, model.ProjectName, profile))
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", model.ProjectName))
		paths = append(paths, filepath.Join(homeDir, "."+model.ProjectName))
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, model.ProjectName))
	}

	return paths
}

// LoadProfile loads config for hosts that embed the plugin without the CLI.
// It reads the first config.yaml found for profile and layers it over the
// defaults. A missing file yields the defaults.
func LoadProfile(profile string) (*model.Config, error) {
	for _, dir := range GetConfigPaths(profile) {
		configPath := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(configPath); err != nil {
			continue
		}
		return LoadFile(configPath)
	}
	return model.DefaultConfig(), nil
}

// LoadFile reads a single config file. Key spellings such as overrideWidth,
// override-width and override_width are all accepted, but not mixed. Keys
// Config does not read are an error.
func LoadFile(configPath string) (*model.Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	if data, err = normalizeConfig(data); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}

	cfg := model.DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func normalizeConfig(data []byte) ([]byte, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return data, nil
	}

	normalized := make(map[string]interface{}, len(raw))
	seen := make(map[string]string, len(raw))

	for key, value := range raw {
		canonical, ok := canonicalKeys[normalizeKeyVariant(key)]
		if !ok {
			return nil, fmt.Errorf("invalid key %q", key)
		}

		if previous, exists := seen[canonical]; exists && previous != key {
			return nil, fmt.Errorf("duplicate config keys %q and %q resolve to %q", previous, key, canonical)
		}

		seen[canonical] = key
		normalized[canonical] = value
	}

	return yaml.Marshal(normalized)
}

func normalizeKeyVariant(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "")
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, " ", "")
	return key
}
