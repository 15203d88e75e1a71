// Package commands implements the datagaze subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/datagaze-labs/datagaze/internal/cli/config"
	"github.com/datagaze-labs/datagaze/internal/dataset"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	return &CommandContext{
		Cfg:    getConfig(),
		Logger: config.GetLogger(cmd.Context()),
	}
}

// getConfig returns the current configuration. It uses
// config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		Datasets: config.DatasetsConfig{
			Education:    getEnvOrDefault("DATAGAZE_EDUCATION", config.DefaultEducationFile),
			Pollution:    getEnvOrDefault("DATAGAZE_POLLUTION", config.DefaultPollutionFile),
			DropBadDates: os.Getenv("DATAGAZE_DROP_BAD_DATES") == "true",
		},
		UI: config.UIConfig{
			Port:  config.DefaultPort,
			Watch: os.Getenv("DATAGAZE_WATCH") == "true",
		},
		Verbose:      os.Getenv("DATAGAZE_VERBOSE") == "true",
		OutputFormat: getEnvOrDefault("DATAGAZE_OUTPUT", config.DefaultOutput),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// datasetOptions converts config into loader options.
func datasetOptions(cfg *config.Config) dataset.Options {
	return dataset.Options{
		EducationPath: cfg.Datasets.Education,
		PollutionPath: cfg.Datasets.Pollution,
		DropBadDates:  cfg.Datasets.DropBadDates,
	}
}
