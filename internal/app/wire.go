//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/bikeshop/internal/bike"
	"github.com/tair/bikeshop/internal/category"
	"github.com/tair/bikeshop/internal/config"
	"github.com/tair/bikeshop/internal/server"
)

// Wire sets
var InfrastructureSet = wire.NewSet(
	ProvideDatabase,
	ProvideRegistry,
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
	ProvideMetrics,
	ProvideCache,
	ProvideCacheConfig,
	ProvidePublisher,
	ProvideValidator,
)

var TransportSet = wire.NewSet(
	ProvideMiddlewareConfig,
	server.NewHandler,
	ProvideHTTPServer,
	ProvideGRPCServer,
)

// InitializeApp wires the application from configuration
func InitializeApp(cfg *config.Container) (*App, func(), error) {
	wire.Build(
		InfrastructureSet,
		category.ProviderSet,
		bike.ProviderSet,
		ProvideBikeCounter,
		TransportSet,
		NewApp,
	)
	return nil, nil, nil
}
