package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hamidzr/screenfix/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

// isolateHome points every config search path at a fresh temp dir.
func isolateHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	return tmpDir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
}

func newCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: model.ProjectName}
	BindFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestInitConfigDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := InitConfig(newCommand(t))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestInitConfigReadsFile(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".config", "screenfix"), `
platform: ios
on_missing: abort
override_width: 750
override_height: 1334
log_level: debug
output: json
`)

	cfg, err := InitConfig(newCommand(t))
	require.NoError(t, err)
	assert.Equal(t, "ios", cfg.Platform)
	assert.Equal(t, model.OnMissingAbort, cfg.OnMissing)
	assert.Equal(t, float32(750), cfg.OverrideWidth)
	assert.Equal(t, float32(1334), cfg.OverrideHeight)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, model.OutputJSON, cfg.Output)
	assert.True(t, cfg.HasManualOverride())
}

func TestInitConfigAcceptsCamelCase(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".config", "screenfix"), `
onMissing: abort
overrideWidth: 390
logLevel: warn
`)

	cfg, err := InitConfig(newCommand(t))
	require.NoError(t, err)
	assert.Equal(t, model.OnMissingAbort, cfg.OnMissing)
	assert.Equal(t, float32(390), cfg.OverrideWidth)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestInitConfigRejectsMixedNamingStyles(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".config", "screenfix"), `
on_missing: abort
onMissing: degrade
`)

	cfg, err := InitConfig(newCommand(t))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "on_missing")
	assert.Contains(t, err.Error(), "onMissing")
	assert.Contains(t, err.Error(), "line 3")
}

func TestInitConfigRejectsUnknownKeys(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".config", "screenfix"), "menu_id: old\n")

	_, err := InitConfig(newCommand(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid key "menu_id"`)
}

func TestInitConfigSuggestsMisspelledKey(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".config", "screenfix"), "platform: ios\noveride_width: 750\n")

	_, err := InitConfig(newCommand(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `line 2: invalid key "overide_width"`)
	assert.Contains(t, err.Error(), "did you mean override_width?")
}

func TestEveryConfigKeyHasFlag(t *testing.T) {
	cmd := newCommand(t)
	for _, key := range model.ConfigKeys {
		assert.NotNil(t, cmd.Flags().Lookup(key.Flag()), key.Name)
	}
}

func TestInitConfigInvalidYAML(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".config", "screenfix"), "platform: [ios\n")

	_, err := InitConfig(newCommand(t))
	assert.Error(t, err)
}

func TestInitConfigPriority(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".config", "screenfix"), `
on_missing: abort
platform: android
log_level: debug
`)
	t.Setenv("SCREENFIX_PLATFORM", "ios")
	t.Setenv("SCREENFIX_LOG_LEVEL", "error")

	cfg, err := InitConfig(newCommand(t, "--log-level", "trace"))
	require.NoError(t, err)
	assert.Equal(t, model.OnMissingAbort, cfg.OnMissing, "file")
	assert.Equal(t, "ios", cfg.Platform, "env beats file")
	assert.Equal(t, "trace", cfg.LogLevel, "flag beats env")
}

func TestInitConfigProfileTakesPriority(t *testing.T) {
	home := isolateHome(t)
	writeConfig(t, filepath.Join(home, ".config", "screenfix"), "platform: android\n")
	writeConfig(t, filepath.Join(home, ".config", "screenfix", "device"), "platform: ios\n")

	cfg, err := InitConfig(newCommand(t, "--profile", "device"))
	require.NoError(t, err)
	assert.Equal(t, "ios", cfg.Platform)

	cfg, err = InitConfig(newCommand(t))
	require.NoError(t, err)
	assert.Equal(t, "android", cfg.Platform)
}

func TestGetConfigPaths(t *testing.T) {
	home := isolateHome(t)

	paths := getConfigPaths("device")
	require.NotEmpty(t, paths)
	assert.Equal(t, filepath.Join(home, ".config", "screenfix", "device"), paths[0])
	assert.Equal(t, ".", paths[len(paths)-1])
	assert.Contains(t, paths, filepath.Join(home, ".config", "screenfix"))

	assert.NotContains(t, getConfigPaths(""), filepath.Join(home, ".config", "screenfix", "device"))
}

func TestInitConfigFile(t *testing.T) {
	home := isolateHome(t)

	path, err := InitConfigFile("device")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "screenfix", "device", "config.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# screenfix configuration file")

	var written model.Config
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, "device", written.Profile)
	assert.Equal(t, model.OnMissingDegrade, written.OnMissing)

	_, err = InitConfigFile("device")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// the generated file loads back through viper
	cfg, err := InitConfig(newCommand(t, "--profile", "device"))
	require.NoError(t, err)
	assert.Equal(t, "device", cfg.Profile)
}
