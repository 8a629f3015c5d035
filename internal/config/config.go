package config

import (
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	PostgresAddress  string `koanf:"postgres_address"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUsername string `koanf:"postgres_username"`
	PostgresPassword string `koanf:"postgres_password"`

	HTTPPort string `koanf:"http_port"`
	LogLevel string `koanf:"log_level"`
	Workers  int    `koanf:"workers"`

	// ServerURL is where budgetctl reaches the budget server.
	ServerURL string `koanf:"budget_server_url"`
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"postgres_address":  "localhost",
	"postgres_port":     "5433",
	"postgres_db":       "postgres",
	"postgres_username": "postgres",
	"postgres_password": "testpassword",
	"http_port":         "9446",
	"log_level":         "info",
	"workers":           4,
	"budget_server_url": "http://localhost:9446",
}

func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}

	// Empty variables fall through to the defaults.
	err := k.Load(env.ProviderWithValue("", ".", func(key string, value string) (string, interface{}) {
		key = strings.ToLower(key)
		if _, known := defaults[key]; !known || value == "" {
			return "", nil
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// PostgresDSN builds the lib/pq connection string for the configured database.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
