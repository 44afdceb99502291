package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DatePolicy decides what happens to a hire record whose date does not parse.
type DatePolicy string

const (
	// DatePolicyDrop skips the whole record.
	DatePolicyDrop DatePolicy = "drop"
	// DatePolicyNull keeps the record and stores a NULL hire_datetime.
	DatePolicyNull DatePolicy = "null"
)

type DatabaseOptions struct {
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	Port       string `env:"DB_PORT" envDefault:"5432"`
	User       string `env:"DB_USER" envDefault:"postgres"`
	Password   string `env:"DB_PASSWORD" envDefault:"postgres"`
	Name       string `env:"DB_NAME" envDefault:"migration"`
	SSLMode    string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxRetries int    `env:"DB_MAX_RETRIES" envDefault:"5"`
}

func (d DatabaseOptions) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

type Config struct {
	Port     string `env:"PORT" envDefault:"3000"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Database DatabaseOptions

	// Empty RedisAddr disables report caching.
	RedisAddr      string        `env:"REDIS_ADDR"`
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL" envDefault:"30m"`

	KafkaBroker        string        `env:"KAFKA_BROKER"`
	OutboxPollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"3s"`

	UploadDir       string     `env:"UPLOAD_DIR" envDefault:"./uploads"`
	DateErrorPolicy DatePolicy `env:"DATE_ERROR_POLICY" envDefault:"drop"`
	ReportYear      int        `env:"REPORT_YEAR" envDefault:"2021"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	switch cfg.DateErrorPolicy {
	case DatePolicyDrop, DatePolicyNull:
	default:
		return Config{}, fmt.Errorf("DATE_ERROR_POLICY must be one of: drop, null (got %q)", cfg.DateErrorPolicy)
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
