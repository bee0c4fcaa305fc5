package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	FastBound FastBoundConfig
	Submit    SubmitConfig
	Journal   JournalConfig
	API       APIConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// FastBoundConfig holds the upstream API credentials. The API key is a
// secret: it is never written to logs.
type FastBoundConfig struct {
	BaseURL   string
	Account   string
	APIKey    string
	AuditUser string
}

// SubmitConfig bounds the retry behavior of transfer submission.
type SubmitConfig struct {
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
}

type JournalConfig struct {
	Path string
}

// APIConfig protects the inbound HTTP API.
type APIConfig struct {
	Key             string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// FastBound upstream
	cfg.FastBound.BaseURL = viper.GetString("fastbound.base_url")
	cfg.FastBound.Account = viper.GetString("fastbound.account")
	cfg.FastBound.APIKey = viper.GetString("fastbound.api_key")
	cfg.FastBound.AuditUser = viper.GetString("fastbound.audit_user")
	if account := viper.GetString("fastbound_account"); account != "" {
		cfg.FastBound.Account = account
	}
	if apiKey := viper.GetString("fastbound_api_key"); apiKey != "" {
		cfg.FastBound.APIKey = apiKey
	}
	if auditUser := viper.GetString("fastbound_audit_user"); auditUser != "" {
		cfg.FastBound.AuditUser = auditUser
	}

	// Submission retry policy
	cfg.Submit.RetryAttempts = viper.GetInt("submit.retry_attempts")
	var err error
	cfg.Submit.RetryDelay, err = parseDuration("submit.retry_delay")
	if err != nil {
		return nil, err
	}
	cfg.Submit.MaxTotalTimeout, err = parseDuration("submit.max_total_timeout")
	if err != nil {
		return nil, err
	}

	// Journal
	cfg.Journal.Path = viper.GetString("journal.path")
	if path := viper.GetString("journal_path"); path != "" {
		cfg.Journal.Path = path
	}

	// Inbound API protection
	cfg.API.Key = viper.GetString("api.key")
	if key := viper.GetString("api_key"); key != "" {
		cfg.API.Key = key
	}
	cfg.API.RateLimitPerMin = viper.GetInt("api.rate_limit_per_min")

	if cfg.FastBound.Account == "" || cfg.FastBound.APIKey == "" {
		return nil, fmt.Errorf("fastbound account and API key are required - set fastbound.account/fastbound.api_key in config.yaml or FASTBOUND_ACCOUNT/FASTBOUND_API_KEY in the environment")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("fastbound.base_url", "https://cloud.fastbound.com")

	viper.SetDefault("submit.retry_attempts", 3)
	viper.SetDefault("submit.retry_delay", "1s")
	viper.SetDefault("submit.max_total_timeout", "60s")

	viper.SetDefault("journal.path", "submissions.db")

	viper.SetDefault("api.rate_limit_per_min", 60)
}

func parseDuration(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}
