// Package config handles configuration loading for the datagaze CLI.
package config

// Default configuration values.
const (
	DefaultEducationFile = "data/education.csv"
	DefaultPollutionFile = "data/pollution.csv"
	DefaultPort          = 8080
	DefaultOutput        = "table"
)

// DatasetsConfig locates the CSV datasets and controls cleaning.
type DatasetsConfig struct {
	Education    string `koanf:"education"`
	Pollution    string `koanf:"pollution"`
	DropBadDates bool   `koanf:"drop_bad_dates"`
}

// UIConfig holds dashboard server settings.
type UIConfig struct {
	Port  int  `koanf:"port"`
	Watch bool `koanf:"watch"`
}

// Config is the full CLI configuration.
type Config struct {
	Datasets DatasetsConfig `koanf:"datasets"`
	UI       UIConfig       `koanf:"ui"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
}
