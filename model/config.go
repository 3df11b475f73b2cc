package model

import "strings"

const ProjectName = "screenfix"

// Missing display policies.
const (
	OnMissingDegrade = "degrade"
	OnMissingAbort   = "abort"
)

// Output formats for diagnostics.
const (
	OutputAuto = "auto"
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// ConfigKey is one setting of Config as it is spelled in config.yaml.
type ConfigKey struct {
	Name  string // snake_case, matches the mapstructure tag
	Camel string // accepted alias, empty for single words
}

// Flag returns the CLI flag bound to the key.
func (k ConfigKey) Flag() string {
	return strings.ReplaceAll(k.Name, "_", "-")
}

// ConfigKeys lists every key Config reads. Flags, env vars, aliases and file
// validation are all derived from it.
var ConfigKeys = []ConfigKey{
	{Name: "profile"},
	{Name: "platform"},
	{Name: "on_missing", Camel: "onMissing"},
	{Name: "override_width", Camel: "overrideWidth"},
	{Name: "override_height", Camel: "overrideHeight"},
	{Name: "log_level", Camel: "logLevel"},
	{Name: "output"},
}

// Config holds all configuration for the application
type Config struct {
	Profile string `mapstructure:"profile" yaml:"profile"`
	// Platform overrides the detected platform identity. Empty means runtime.GOOS.
	Platform  string `mapstructure:"platform" yaml:"platform"`
	OnMissing string `mapstructure:"on_missing" yaml:"on_missing"`
	// manual physical size, both must be > 0 to take effect.
	OverrideWidth  float32 `mapstructure:"override_width" yaml:"override_width"`
	OverrideHeight float32 `mapstructure:"override_height" yaml:"override_height"`
	LogLevel       string  `mapstructure:"log_level" yaml:"log_level"`
	Output         string  `mapstructure:"output" yaml:"output"`
}

// HasManualOverride reports whether a usable manual size is configured.
func (c *Config) HasManualOverride() bool {
	return c.OverrideWidth > 0 && c.OverrideHeight > 0
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Profile:        "",
		Platform:       "",
		OnMissing:      OnMissingDegrade,
		OverrideWidth:  0,
		OverrideHeight: 0,
		LogLevel:       "info",
		Output:         OutputAuto,
	}
}
