package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("education", "", "")
	fs.String("pollution", "", "")
	fs.Bool("verbose", false, "")
	fs.String("output", "", "")
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultEducationFile, cfg.Datasets.Education)
	assert.Equal(t, DefaultPollutionFile, cfg.Datasets.Pollution)
	assert.False(t, cfg.Datasets.DropBadDates)
	assert.Equal(t, DefaultPort, cfg.UI.Port)
	assert.False(t, cfg.UI.Watch)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "datagaze.yaml")
	content := `
datasets:
  education: fixtures/literacy.csv
  drop_bad_dates: true
ui:
  port: 9000
output: json
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, "fixtures/literacy.csv", cfg.Datasets.Education)
	assert.Equal(t, DefaultPollutionFile, cfg.Datasets.Pollution, "unset keys keep their defaults")
	assert.True(t, cfg.Datasets.DropBadDates)
	assert.Equal(t, 9000, cfg.UI.Port)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "datagaze.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ui:\n  port: 9000\n"), 0o644))

	t.Setenv("DATAGAZE_PORT", "7070")
	t.Setenv("DATAGAZE_EDUCATION", "env/education.csv")

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.UI.Port)
	assert.Equal(t, "env/education.csv", cfg.Datasets.Education)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	ResetConfig()
	t.Cleanup(ResetConfig)

	t.Setenv("DATAGAZE_EDUCATION", "env/education.csv")
	t.Setenv("DATAGAZE_OUTPUT", "json")

	fs := newFlagSet()
	require.NoError(t, fs.Set("education", "flag/education.csv"))

	cfg, err := LoadConfig("", fs)
	require.NoError(t, err)

	assert.Equal(t, "flag/education.csv", cfg.Datasets.Education)
	assert.Equal(t, "json", cfg.OutputFormat, "unchanged flags should not mask env vars")
}

func TestGetLogger_FallsBackToDiscard(t *testing.T) {
	logger := GetLogger(t.Context())
	assert.NotNil(t, logger)
}
