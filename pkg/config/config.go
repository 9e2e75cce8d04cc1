package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	LogLevel    string `mapstructure:"log_level"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ClassifierConfig selects and configures the upstream classification
// provider. ApiKey and BaseURL come from the environment in practice
// (CLASSIFIER_API_KEY, CLASSIFIER_BASE_URL).
type ClassifierConfig struct {
	Provider    string                 `mapstructure:"provider"`
	Model       string                 `mapstructure:"model"`
	ApiKey      string                 `mapstructure:"api_key"`
	BaseURL     string                 `mapstructure:"base_url"`
	MaxTokens   int                    `mapstructure:"max_tokens"`
	Temperature float64                `mapstructure:"temperature"`
	Timeout     time.Duration          `mapstructure:"timeout"`
	Options     map[string]interface{} `mapstructure:"options"`
}

func Load(configPath string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := bindEnvKeys(); err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No file is fine, environment variables carry the configuration.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setDefaultValues(&cfg)

	return &cfg, nil
}

// bindEnvKeys registers every config key with viper so environment variables
// override keys that are absent from the config file. Unmarshal only sees keys
// viper already knows about; AutomaticEnv by itself does not register any.
func bindEnvKeys() error {
	keys := []string{
		"server.host",
		"server.port",
		"server.metrics_port",
		"server.log_level",
		"metrics.enabled",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.name",
		"database.sslmode",
		"classifier.provider",
		"classifier.model",
		"classifier.api_key",
		"classifier.base_url",
		"classifier.max_tokens",
		"classifier.temperature",
		"classifier.timeout",
	}
	for _, key := range keys {
		if err := viper.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

func setDefaultValues(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MetricsPort == 0 {
		cfg.Server.MetricsPort = 9090
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Classifier.Provider == "" {
		cfg.Classifier.Provider = "openai"
	}
	if cfg.Classifier.Model == "" {
		cfg.Classifier.Model = "gpt-4o-mini"
	}
	if cfg.Classifier.Temperature == 0 {
		cfg.Classifier.Temperature = 0.1
	}
	if cfg.Classifier.Timeout == 0 {
		cfg.Classifier.Timeout = 5 * time.Second
	}
}
