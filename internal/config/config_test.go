package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/bikeshop/pkg/database"
	"github.com/tair/bikeshop/pkg/tracing"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, database.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "bikeshop.db", cfg.DB.SQLitePath)
	assert.Equal(t, tracing.ExporterOTLP, cfg.Tracing.Exporter)
	assert.Equal(t, "localhost:4318", cfg.Tracing.Endpoint)
	assert.Equal(t, "bikeshop", cfg.Tracing.ServiceName)
	assert.Equal(t, 100.0, cfg.RateLimit.RPS)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.Empty(t, cfg.GRPC.Port)
	assert.Empty(t, cfg.Redis.Address)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.False(t, cfg.IsDevelopment())
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("OTEL_TRACES_EXPORTER", "none")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, database.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.Equal(t, tracing.ExporterNone, cfg.Tracing.Exporter)
}

func TestNewRejectsInvalidValues(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("OTEL_TRACES_EXPORTER", "zipkin")
	t.Setenv("RATE_LIMIT_RPS", "-1")

	_, err := New()
	require.Error(t, err)
	assert.ErrorContains(t, err, "DB_DRIVER")
	assert.ErrorContains(t, err, "OTEL_TRACES_EXPORTER")
	assert.ErrorContains(t, err, "RATE_LIMIT_RPS")
}

func TestNewWithoutDotEnvInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Chdir(t.TempDir())

	cfg, err := New()
	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())
}
