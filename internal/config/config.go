package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hamidzr/screenfix/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// getConfigPaths returns the config directory paths in priority order
// prefers ~/.config over macos application support dir
func getConfigPaths(profile string) []string {
	var paths []string

	// when a profile is provided, prioritize namespaced configs
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
	paths = append(paths, ".")

	return paths
}

// getPreferredConfigDir returns the preferred config directory for writing
func getPreferredConfigDir(profile string) (string, error) {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", model.ProjectName, profile), nil
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(userConfigDir, model.ProjectName, profile), nil
	}
	return "", fmt.Errorf("unable to determine config directory")
}

// InitConfig initializes Viper configuration with proper priority:
// 1. CLI flags (highest priority)
// 2. Environment variables
// 3. Config file (lowest priority)
func InitConfig(cmd *cobra.Command) (*model.Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	profile, _ := cmd.Flags().GetString("profile")
	for _, path := range getConfigPaths(profile) {
		v.AddConfigPath(path)
	}

	SetViperEnvSettings(v)
	SetViperDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// config file not found is ok, we'll use defaults + env vars + flags
	}
	if err := validateConfigFileKeys(v.ConfigFileUsed()); err != nil {
		return nil, err
	}
	// aliases move camelCase values read from the file onto canonical keys
	registerConfigKeyAliases(v)

	if err := bindFlagKeys(v, cmd); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	var config model.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// InitConfigFile generates and saves a default config file to the appropriate location
func InitConfigFile(profile string) (string, error) {
	configDir, err := getPreferredConfigDir(profile)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	defaults := model.DefaultConfig()
	defaults.Profile = profile

	yamlData, err := yaml.Marshal(defaults)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	header := `# screenfix configuration file
# Generated automatically - customize as needed
#
# on_missing: degrade (report no override) or abort (fail startup)
# override_width/override_height: manual physical size, 0 to query the display
# output: auto, text, yaml or json
#

`

	if err := os.WriteFile(configPath, []byte(header+string(yamlData)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return configPath, nil
}
