package config

import (
	"strings"

	"github.com/hamidzr/screenfix/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// BindFlags binds CLI flags to the cobra command
func BindFlags(cmd *cobra.Command) {
	defaults := model.DefaultConfig()

	cmd.PersistentFlags().StringP("profile", "P", defaults.Profile, "Config profile to load")
	cmd.PersistentFlags().String("platform", defaults.Platform, "Platform identity to resolve for (default: the running platform)")
	cmd.PersistentFlags().String("on-missing", defaults.OnMissing, "What to do when the native display is unavailable: degrade or abort")
	cmd.PersistentFlags().Float32("override-width", defaults.OverrideWidth, "Manual physical width (0 to disable)")
	cmd.PersistentFlags().Float32("override-height", defaults.OverrideHeight, "Manual physical height (0 to disable)")
	cmd.PersistentFlags().String("log-level", defaults.LogLevel, "Log level")
	cmd.PersistentFlags().StringP("output", "o", defaults.Output, "Output format: auto, text, yaml or json")
	cmd.PersistentFlags().Bool("init-config", false, "Generate and save default config file")
}

// SetViperDefaults sets default values in viper configuration
func SetViperDefaults(v *viper.Viper) {
	defaults := model.DefaultConfig()
	v.SetDefault("profile", defaults.Profile)
	v.SetDefault("platform", defaults.Platform)
	v.SetDefault("on_missing", defaults.OnMissing)
	v.SetDefault("override_width", defaults.OverrideWidth)
	v.SetDefault("override_height", defaults.OverrideHeight)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("output", defaults.Output)
}

// SetViperEnvSettings configures viper environment variable settings
func SetViperEnvSettings(v *viper.Viper) {
	v.SetEnvPrefix("SCREENFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}
