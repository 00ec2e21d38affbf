package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/yungbote/brewery-backend/internal/data/cache"
	"github.com/yungbote/brewery-backend/internal/data/db"
	"github.com/yungbote/brewery-backend/internal/observability"
)

const envPrefix = "BREWERY"

// Config is read from BREWERY_* variables; each field also falls back to its
// unprefixed name (PORT, POSTGRES_HOST, ...).
type Config struct {
	LogMode  string `envconfig:"LOG_MODE" default:"development"`
	HTTPAddr string `envconfig:"HTTP_ADDR"`
	Port     string `envconfig:"PORT" default:"8080"`

	DBDriver          string        `envconfig:"DB_DRIVER" default:"postgres"`
	PostgresHost      string        `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort      string        `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser      string        `envconfig:"POSTGRES_USER" default:"postgres"`
	PostgresPassword  string        `envconfig:"POSTGRES_PASSWORD"`
	PostgresName      string        `envconfig:"POSTGRES_NAME" default:"brewery"`
	PostgresSSLMode   string        `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	SQLitePath        string        `envconfig:"SQLITE_PATH"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	DBLockTimeout     time.Duration `envconfig:"DB_LOCK_TIMEOUT" default:"5s"`
	AutoMigrate       bool          `envconfig:"AUTO_MIGRATE" default:"true"`

	RedisAddr       string        `envconfig:"REDIS_ADDR"`
	RedisPassword   string        `envconfig:"REDIS_PASSWORD"`
	RedisDB         int           `envconfig:"REDIS_DB" default:"0"`
	ProductCacheTTL time.Duration `envconfig:"PRODUCT_CACHE_TTL" default:"5m"`

	CORSOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	OtelEnabled     bool    `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName     string  `envconfig:"OTEL_SERVICE_NAME" default:"brewery"`
	Environment     string  `envconfig:"ENVIRONMENT" default:"development"`
	Version         string  `envconfig:"VERSION"`
	OtelEndpoint    string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelHeaders     string  `envconfig:"OTEL_EXPORTER_OTLP_HEADERS"`
	OtelInsecure    bool    `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"false"`
	OtelSampleRatio float64 `envconfig:"OTEL_SAMPLER_RATIO" default:"0.1"`

	MetricsEnabled  bool          `envconfig:"METRICS_ENABLED" default:"true"`
	MetricsAddr     string        `envconfig:"METRICS_ADDR"`
	MetricsInterval time.Duration `envconfig:"METRICS_INTERVAL" default:"15s"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// LoadConfig loads .env files (when present) and then the process environment.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.DBDriver)) {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.OtelSampleRatio < 0 || c.OtelSampleRatio > 1 {
		return fmt.Errorf("OTEL_SAMPLER_RATIO must be within [0,1], got %v", c.OtelSampleRatio)
	}
	return nil
}

// Addr is the HTTP listen address; HTTP_ADDR wins over PORT.
func (c Config) Addr() string {
	if addr := strings.TrimSpace(c.HTTPAddr); addr != "" {
		return addr
	}
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

func (c Config) DB() db.Config {
	return db.Config{
		Driver:           strings.ToLower(strings.TrimSpace(c.DBDriver)),
		PostgresHost:     c.PostgresHost,
		PostgresPort:     c.PostgresPort,
		PostgresUser:     c.PostgresUser,
		PostgresPassword: c.PostgresPassword,
		PostgresName:     c.PostgresName,
		PostgresSSLMode:  c.PostgresSSLMode,
		SQLitePath:       c.SQLitePath,
		MaxOpenConns:     c.DBMaxOpenConns,
		MaxIdleConns:     c.DBMaxIdleConns,
		ConnMaxLifetime:  c.DBConnMaxLifetime,
		Tracing:          c.OtelEnabled,
	}
}

func (c Config) Redis() cache.RedisConfig {
	return cache.RedisConfig{Addr: strings.TrimSpace(c.RedisAddr), Password: c.RedisPassword, DB: c.RedisDB}
}

func (c Config) Otel() observability.OtelConfig {
	return observability.OtelConfig{
		Enabled:     c.OtelEnabled,
		ServiceName: c.ServiceName,
		Environment: c.Environment,
		Version:     c.Version,
		Endpoint:    c.OtelEndpoint,
		Headers:     c.OtelHeaders,
		Insecure:    c.OtelInsecure,
		SampleRatio: c.OtelSampleRatio,
	}
}
