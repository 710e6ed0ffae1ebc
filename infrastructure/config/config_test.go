package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	domainerrors "github.com/ngmachado/web3-hooks/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range legacyEnv {
		t.Setenv(env, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "100000000000000000000", cfg.MinAmount)
	assert.Equal(t, 60*time.Second, cfg.ProcessingDelay)
	assert.Equal(t, 30*time.Second, cfg.QueryTimeout)
	assert.Equal(t, "https://polygonscan.com", cfg.ExplorerURL)
	assert.Contains(t, cfg.SubgraphURL, "protocol-v1-matic")
	assert.Equal(t, NotifierSlack, cfg.Notifier.Kind)
	assert.Equal(t, float64(1), cfg.Notifier.RatePerSecond)
	assert.False(t, cfg.Tunnel.Enabled)
	assert.False(t, cfg.HasDatabase())
	assert.Equal(t, ":3000", cfg.ListenAddr())
}

func TestLoadConfig_File(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
log_level = "debug"
port = 8080
min_amount = "5"
processing_delay = "5s"

[notifier]
kind = "telegram"
telegram_token = "123:abc"
telegram_chat_id = -100

[database]
host = "localhost"
port = "5432"
user = "hooks"
password = "secret"
dbName = "hooks"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "5", cfg.MinAmount)
	assert.Equal(t, 5*time.Second, cfg.ProcessingDelay)
	assert.Equal(t, NotifierTelegram, cfg.Notifier.Kind)
	assert.Equal(t, int64(-100), cfg.Notifier.TelegramChatID)
	assert.True(t, cfg.HasDatabase())
	assert.Equal(t,
		"host=localhost port=5432 user=hooks password=secret dbname=hooks sslmode=disable",
		cfg.Database.GetDatabaseDSN(),
	)
}

func TestLoadConfig_LegacyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4000")
	t.Setenv("MIN_AMOUNT", "42")
	t.Setenv("SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/T/B/X")
	t.Setenv("NGROK_AUTH_TOKEN", "ngrok-token")
	t.Setenv("NODE_ENV", LocalDevelopmentEnv)

	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "42", cfg.MinAmount)
	assert.Equal(t, "https://hooks.slack.com/services/T/B/X", cfg.Notifier.SlackWebhookURL)
	assert.Equal(t, "ngrok-token", cfg.Tunnel.AuthToken)
	assert.True(t, cfg.Tunnel.Enabled)
}

func TestLoadConfig_ExplicitTunnelOverridesNodeEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("NODE_ENV", LocalDevelopmentEnv)

	cfg, err := LoadConfig(writeConfig(t, "[tunnel]\nenabled = false\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Tunnel.Enabled)
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(writeConfig(t, `min_amount = "1e20"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:            3000,
			SubgraphURL:     "https://example.com/subgraph",
			MinAmount:       "100",
			ProcessingDelay: time.Second,
			Notifier:        NotifierConfig{Kind: NotifierSlack},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown log format", mutate: func(c *Config) { c.LogFormat = "xml" }, field: "log_format"},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, field: "port"},
		{name: "port too large", mutate: func(c *Config) { c.Port = 70000 }, field: "port"},
		{name: "missing subgraph", mutate: func(c *Config) { c.SubgraphURL = "" }, field: "subgraph_url"},
		{name: "relative subgraph", mutate: func(c *Config) { c.SubgraphURL = "subgraph" }, field: "subgraph_url"},
		{name: "negative min amount", mutate: func(c *Config) { c.MinAmount = "-1" }, field: "min_amount"},
		{name: "hex min amount", mutate: func(c *Config) { c.MinAmount = "0x10" }, field: "min_amount"},
		{name: "zero delay", mutate: func(c *Config) { c.ProcessingDelay = 0 }, field: "processing_delay"},
		{name: "unknown notifier", mutate: func(c *Config) { c.Notifier.Kind = "discord" }, field: "notifier.kind"},
		{name: "negative rate", mutate: func(c *Config) { c.Notifier.RatePerSecond = -1 }, field: "notifier.rate_per_second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var verr *domainerrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}
