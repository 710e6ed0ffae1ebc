// Package config provides configuration management and dependency injection for the web3 hooks service.
// It handles loading configuration from files, .env and environment variables, and sets up the DI container.
package config

import (
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ngmachado/web3-hooks/domain/errors"
	"github.com/ngmachado/web3-hooks/infrastructure/logger"
	"github.com/spf13/viper"
)

const (
	// LocalDevelopmentEnv enables the development tunnel when NODE_ENV matches.
	LocalDevelopmentEnv = "local_development"

	// NotifierSlack delivers messages through a Slack incoming webhook.
	NotifierSlack = "slack"
	// NotifierTelegram delivers messages through the Telegram Bot API.
	NotifierTelegram = "telegram"
)

// Config represents the application configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Port     int    `mapstructure:"port"`
	NodeEnv  string `mapstructure:"node_env"`

	SubgraphURL     string        `mapstructure:"subgraph_url"`
	MinAmount       string        `mapstructure:"min_amount"`
	ProcessingDelay time.Duration `mapstructure:"processing_delay"`
	ExplorerURL     string        `mapstructure:"explorer_url"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout"`

	Notifier NotifierConfig `mapstructure:"notifier"`
	Tunnel   TunnelConfig   `mapstructure:"tunnel"`
	Database DatabaseConfig `mapstructure:"database"`
}

// NotifierConfig selects and configures the chat channel.
type NotifierConfig struct {
	Kind            string  `mapstructure:"kind"`
	SlackWebhookURL string  `mapstructure:"slack_webhook_url"`
	SlackChannel    string  `mapstructure:"slack_channel"`
	TelegramToken   string  `mapstructure:"telegram_token"`
	TelegramChatID  int64   `mapstructure:"telegram_chat_id"`
	TelegramAPIURL  string  `mapstructure:"telegram_api_url"`
	RatePerSecond   float64 `mapstructure:"rate_per_second"`
}

// TunnelConfig configures the development tunnel.
type TunnelConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	AuthToken string `mapstructure:"auth_token"`
}

// DatabaseConfig represents database configuration.
type DatabaseConfig struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	DBName   string `mapstructure:"dbName"`
	SSLMode  string `mapstructure:"sslMode"`

	// Connection pool settings.
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// legacyEnv maps config keys to the plain environment variable names used by existing deployments.
var legacyEnv = map[string]string{
	"port":                       "PORT",
	"min_amount":                 "MIN_AMOUNT",
	"node_env":                   "NODE_ENV",
	"notifier.slack_webhook_url": "SLACK_WEBHOOK_URL",
	"tunnel.auth_token":          "NGROK_AUTH_TOKEN",
}

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// Set config file.
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/web3-hooks")
	}

	// Enable environment variables.
	v.SetEnvPrefix("HOOKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, "HOOKS_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	// Read config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !v.IsSet("tunnel.enabled") && config.NodeEnv == LocalDevelopmentEnv {
		config.Tunnel.Enabled = true
	}

	// Validate configuration.
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", logger.FormatText)
	v.SetDefault("port", 3000)
	v.SetDefault("subgraph_url", "https://api.thegraph.com/subgraphs/name/superfluid-finance/protocol-v1-matic")
	v.SetDefault("min_amount", "100000000000000000000")
	v.SetDefault("processing_delay", "60s")
	v.SetDefault("explorer_url", "https://polygonscan.com")
	v.SetDefault("query_timeout", "30s")
	v.SetDefault("notifier.kind", NotifierSlack)
	v.SetDefault("notifier.rate_per_second", 1)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", "1h")
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	verr := &errors.ValidationError{}

	switch strings.ToLower(c.LogFormat) {
	case "", logger.FormatText, logger.FormatJSON:
	default:
		verr.AddFieldError("log_format", "must be text or json")
	}

	if c.Port <= 0 || c.Port > 65535 {
		verr.AddFieldError("port", "must be between 1 and 65535")
	}

	if c.SubgraphURL == "" {
		verr.AddFieldError("subgraph_url", "is required")
	} else if _, err := url.ParseRequestURI(c.SubgraphURL); err != nil {
		verr.AddFieldError("subgraph_url", "must be a valid URL")
	}

	if n, ok := new(big.Int).SetString(c.MinAmount, 10); !ok || n.Sign() < 0 {
		verr.AddFieldError("min_amount", "must be a non-negative base-10 integer")
	}

	if c.ProcessingDelay <= 0 {
		verr.AddFieldError("processing_delay", "must be positive")
	}

	if c.QueryTimeout < 0 {
		verr.AddFieldError("query_timeout", "must not be negative")
	}

	switch c.Notifier.Kind {
	case NotifierSlack, NotifierTelegram:
	default:
		verr.AddFieldError("notifier.kind", fmt.Sprintf("unsupported notifier %q", c.Notifier.Kind))
	}

	if c.Notifier.RatePerSecond < 0 {
		verr.AddFieldError("notifier.rate_per_second", "must not be negative")
	}

	if verr.HasErrors() {
		return verr
	}

	return nil
}

// ListenAddr returns the HTTP listen address.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// HasDatabase reports whether delivery history should be persisted.
func (c *Config) HasDatabase() bool {
	return c.Database.Host != ""
}

// GetDatabaseDSN returns the database connection string.
func (c *DatabaseConfig) GetDatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
