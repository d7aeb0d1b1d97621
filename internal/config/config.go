package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables, LEDGER_POSTGRES_PORT
// sets postgres_port.
const EnvPrefix = "LEDGER_"

type Config struct {
	PostgresAddress  string `koanf:"postgres_address"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUsername string `koanf:"postgres_username"`
	PostgresPassword string `koanf:"postgres_password"`

	HTTPPort          string        `koanf:"http_port"`
	LogLevel          string        `koanf:"log_level"`
	Currency          string        `koanf:"currency"`
	OperatorWorkers   int           `koanf:"operator_workers"`
	SettlementTimeout time.Duration `koanf:"settlement_timeout"`
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"postgres_address":   "localhost",
	"postgres_port":      "5433",
	"postgres_db":        "postgres",
	"postgres_username":  "postgres",
	"postgres_password":  "testpassword",
	"http_port":          "9446",
	"log_level":          "info",
	"currency":           "BRL",
	"operator_workers":   4,
	"settlement_timeout": "10s",
}

func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.OperatorWorkers < 1 {
		return nil, fmt.Errorf("operator_workers must be at least 1, got %d", cfg.OperatorWorkers)
	}
	if cfg.SettlementTimeout <= 0 {
		return nil, fmt.Errorf("settlement_timeout must be positive, got %s", cfg.SettlementTimeout)
	}

	return &cfg, nil
}

// PostgresURL is the lib/pq connection string.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
