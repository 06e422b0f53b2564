package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/khawla-14/markyticket/internal/ticket"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"MarkyTicket"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"markyticket"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"false"`
	}

	Server struct {
		Timeout         time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
		AllowedOrigins  []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}

	Auth struct {
		Secret string `envconfig:"JWT_SECRET" required:"true"`
	}

	OnBus struct {
		Secret     string            `envconfig:"ONBUS_SECRET" required:"true"`
		Settlement ticket.Settlement `envconfig:"ONBUS_SETTLEMENT" default:"cash"`
	}

	Redis struct {
		URL            string        `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
		IdempotencyTTL time.Duration `envconfig:"REDIS_IDEMPOTENCY_TTL" default:"24h"`
	}

	Console struct {
		ReceiverID int64 `envconfig:"CONSOLE_RECEIVER_ID"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Auth.Secret == "" || cfg.OnBus.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET and ONBUS_SECRET must not be empty")
	}

	switch cfg.OnBus.Settlement {
	case ticket.SettlementCash, ticket.SettlementWallet:
	default:
		return nil, fmt.Errorf("invalid ONBUS_SETTLEMENT %q: want cash or wallet", cfg.OnBus.Settlement)
	}

	return &cfg, nil
}
