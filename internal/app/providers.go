package app

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	bikedomain "github.com/tair/bikeshop/internal/bike/domain"
	bikerepository "github.com/tair/bikeshop/internal/bike/repository"
	categorydomain "github.com/tair/bikeshop/internal/category/domain"
	categoryrepository "github.com/tair/bikeshop/internal/category/repository"
	"github.com/tair/bikeshop/internal/config"
	"github.com/tair/bikeshop/kafka"
	"github.com/tair/bikeshop/pkg/cache"
	"github.com/tair/bikeshop/pkg/circuitbreaker"
	"github.com/tair/bikeshop/pkg/database"
	"github.com/tair/bikeshop/pkg/grpcserver"
	"github.com/tair/bikeshop/pkg/logger"
	"github.com/tair/bikeshop/pkg/metrics"
	"github.com/tair/bikeshop/pkg/middleware"
	"github.com/tair/bikeshop/pkg/validation"
)

// Migrate creates or updates the categories and bikes tables
func Migrate(db *gorm.DB) error {
	if err := categoryrepository.NewGormCategoryRepository(db).AutoMigrate(); err != nil {
		return err
	}
	return bikerepository.NewGormBikeRepository(db).AutoMigrate()
}

// ProvideDatabase opens the configured store and migrates the schema
func ProvideDatabase(cfg *config.Container) (*gorm.DB, func(), error) {
	db, err := database.Open(*cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := database.Close(db); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close database")
		}
	}

	if err := Migrate(db); err != nil {
		cleanup()
		return nil, nil, err
	}

	logger.Logger.Info().Str("driver", cfg.DB.Driver).Msg("Database initialized successfully")
	return db, cleanup, nil
}

// ProvideRegistry creates the Prometheus registry served on /metrics
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics registers the HTTP metrics on reg
func ProvideMetrics(reg *prometheus.Registry) *metrics.HTTPMetrics {
	return metrics.NewHTTPMetrics(reg)
}

// ProvideCache connects to Redis when an address is configured
func ProvideCache(cfg *config.Container) (cache.Cache, func(), error) {
	if cfg.Redis.Address == "" {
		logger.Logger.Info().Msg("Redis not configured, caching disabled")
		return cache.NewNoopCache(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Redis close error")
		}
	}
	breaker := circuitbreaker.New("redis", circuitbreaker.DefaultConfig())
	return cache.NewBreakerCache(cache.NewRedisCache(client), breaker), cleanup, nil
}

// ProvideCacheConfig extracts the cache entry lifetime
func ProvideCacheConfig(cfg *config.Container) cache.Config {
	return cache.Config{TTL: cfg.Redis.TTL}
}

// ProvidePublisher connects to Kafka when brokers are configured
func ProvidePublisher(cfg *config.Container) (kafka.EventPublisher, func(), error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Logger.Info().Msg("Kafka not configured, inventory events disabled")
		return kafka.NewNoopPublisher(), func() {}, nil
	}

	publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Kafka publisher close error")
		}
	}
	breaker := circuitbreaker.New("kafka", circuitbreaker.DefaultConfig())
	return kafka.NewBreakerPublisher(publisher, breaker), cleanup, nil
}

// ProvideValidator creates the request validator
func ProvideValidator() *validation.Validator {
	return validation.New()
}

// ProvideBikeCounter lets category deletion check for referencing bikes
func ProvideBikeCounter(repo bikedomain.BikeRepository) categorydomain.BikeCounter {
	return repo
}

// ProvideMiddlewareConfig builds the middleware chain settings
func ProvideMiddlewareConfig(cfg *config.Container, m *metrics.HTTPMetrics) *middleware.Config {
	mw := middleware.DefaultConfig(m)
	mw.TimeoutDuration = cfg.HTTP.RequestTimeout
	mw.RateLimit = cfg.RateLimit.RPS
	mw.RateLimitBurst = cfg.RateLimit.Burst
	mw.CORSOptions.AllowedOrigins = cfg.HTTP.AllowedOrigins
	return mw
}

// ProvideHTTPServer creates the HTTP server
func ProvideHTTPServer(cfg *config.Container, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// ProvideGRPCServer creates the gRPC health server, or nil when GRPC_PORT is unset
func ProvideGRPCServer(cfg *config.Container) *grpcserver.Server {
	if cfg.GRPC.Port == "" {
		return nil
	}
	return grpcserver.New(cfg.App.Name)
}
