package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "LIFEEXP"

type Config struct {
	DefaultCountry string `yaml:"default_country" envconfig:"DEFAULT_COUNTRY"`
	TxtDelimiter   string `yaml:"txt_delimiter" envconfig:"TXT_DELIMITER" validate:"max=1"`
	PreviewRows    int    `yaml:"preview_rows" envconfig:"PREVIEW_ROWS" validate:"gte=0"`

	// HistoryPath is the sqlite file recording runs. Empty disables history.
	HistoryPath string `yaml:"history_path" envconfig:"HISTORY_PATH"`

	LogLevel  string `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" envconfig:"LOG_FORMAT" validate:"oneof=text json"`
}

func Default() (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DefaultCountry: "PT",
		TxtDelimiter:   "\t",
		PreviewRows:    10,
		HistoryPath:    filepath.Join(cwd, "data", "history.db"),
		LogLevel:       "info",
		LogFormat:      "text",
	}, nil
}

// Load builds the configuration from defaults, the optional YAML file at path and
// LIFEEXP_* environment variables (a .env file in the working directory is read first).
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Delimiter returns the .txt delimiter as a rune, or 0 for the loader default.
func (c Config) Delimiter() rune {
	for _, r := range c.TxtDelimiter {
		return r
	}
	return 0
}
