package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tair/bikeshop/pkg/database"
	"github.com/tair/bikeshop/pkg/tracing"
)

type (
	// Container groups every configuration section
	Container struct {
		App       *App
		HTTP      *HTTP
		GRPC      *GRPC
		DB        *database.Config
		Redis     *Redis
		Kafka     *Kafka
		Tracing   *tracing.Config
		RateLimit *RateLimit
	}

	App struct {
		Name     string
		Env      string
		LogLevel string
	}

	HTTP struct {
		Port            string
		RequestTimeout  time.Duration
		ShutdownTimeout time.Duration
		AllowedOrigins  []string
	}

	GRPC struct {
		Port           string
		HealthInterval time.Duration
	}

	Redis struct {
		Address  string
		Password string
		DB       int
		TTL      time.Duration
	}

	Kafka struct {
		Brokers []string
		Topic   string
	}

	RateLimit struct {
		RPS   float64
		Burst int
	}
)

// New loads configuration from the environment. Outside production a .env
// file in the working directory is read first when present.
func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Container{
		App: &App{
			Name:     getEnv("OTEL_SERVICE_NAME", "bikeshop"),
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
		},
		HTTP: &HTTP{
			Port:            getEnv("HTTP_PORT", "5000"),
			RequestTimeout:  getDuration("HTTP_REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDuration("HTTP_SHUTDOWN_TIMEOUT", 30*time.Second),
			AllowedOrigins:  getList("ALLOWED_ORIGINS", []string{"*"}),
		},
		GRPC: &GRPC{
			Port:           getEnv("GRPC_PORT", ""),
			HealthInterval: getDuration("GRPC_HEALTH_INTERVAL", 10*time.Second),
		},
		DB: &database.Config{
			Driver:     getEnv("DB_DRIVER", database.DriverSQLite),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			DBName:     getEnv("DB_NAME", "bikeshop"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", database.DefaultSQLitePath),
			LogSQL:     getBool("DB_LOG_SQL", false),
		},
		Redis: &Redis{
			Address:  getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
			TTL:      getDuration("CACHE_TTL", 15*time.Minute),
		},
		Kafka: &Kafka{
			Brokers: getList("KAFKA_BROKERS", nil),
			Topic:   getEnv("KAFKA_TOPIC", "inventory-events"),
		},
		Tracing: &tracing.Config{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "bikeshop"),
			ServiceVersion: getEnv("SERVICE_VERSION", "1.0.0"),
			Exporter:       getEnv("OTEL_TRACES_EXPORTER", tracing.ExporterOTLP),
			Endpoint:       getEnv("OTEL_EXPORTER_ENDPOINT", "localhost:4318"),
			Insecure:       getBool("OTEL_EXPORTER_INSECURE", true),
			SampleRatio:    getFloat("OTEL_SAMPLE_RATIO", 1.0),
		},
		RateLimit: &RateLimit{
			RPS:   getFloat("RATE_LIMIT_RPS", 100),
			Burst: getInt("RATE_LIMIT_BURST", 200),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode
func (c *Container) IsDevelopment() bool {
	return c.App.Env == "development"
}

// Validate rejects settings the service cannot start with
func (c *Container) Validate() error {
	var errs []error

	switch c.DB.Driver {
	case database.DriverSQLite, database.DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver))
	}

	switch c.Tracing.Exporter {
	case tracing.ExporterOTLP, tracing.ExporterJaeger, tracing.ExporterNone:
	default:
		errs = append(errs, fmt.Errorf("unsupported OTEL_TRACES_EXPORTER %q", c.Tracing.Exporter))
	}

	if _, err := strconv.Atoi(c.HTTP.Port); err != nil {
		errs = append(errs, fmt.Errorf("invalid HTTP_PORT %q", c.HTTP.Port))
	}
	if c.HTTP.RequestTimeout <= 0 || c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("HTTP timeouts must be positive"))
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}
	if c.GRPC.Port != "" && c.GRPC.HealthInterval <= 0 {
		errs = append(errs, errors.New("GRPC_HEALTH_INTERVAL must be positive"))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
