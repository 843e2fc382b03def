package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/tair/bikeshop/internal/config"
	"github.com/tair/bikeshop/pkg/grpcserver"
	"github.com/tair/bikeshop/pkg/logger"
)

// App owns the servers and runs them until shutdown
type App struct {
	cfg        *config.Container
	httpServer *http.Server
	grpcServer *grpcserver.Server
	db         *gorm.DB
}

// NewApp creates an App. grpcServer may be nil.
func NewApp(cfg *config.Container, httpServer *http.Server, grpcServer *grpcserver.Server, db *gorm.DB) *App {
	return &App{cfg: cfg, httpServer: httpServer, grpcServer: grpcServer, db: db}
}

// Handler returns the HTTP handler served by the app
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run serves HTTP (and gRPC health when enabled) until ctx is cancelled or
// SIGINT/SIGTERM arrives, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var grpcLis net.Listener
	if a.grpcServer != nil {
		lis, err := net.Listen("tcp", ":"+a.cfg.GRPC.Port)
		if err != nil {
			return fmt.Errorf("failed to listen on gRPC port: %w", err)
		}
		grpcLis = lis
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Logger.Info().Str("addr", a.httpServer.Addr).Msg("HTTP server started")
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if a.grpcServer != nil {
		g.Go(func() error {
			if err := a.grpcServer.Serve(grpcLis); err != nil {
				return fmt.Errorf("grpc server: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			sqlDB, err := a.db.DB()
			if err != nil {
				return fmt.Errorf("failed to get database instance: %w", err)
			}
			a.grpcServer.WatchDependency(gctx, sqlDB, a.cfg.GRPC.HealthInterval)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Logger.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()

		if a.grpcServer != nil {
			a.grpcServer.Stop()
		}
		if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}

		logger.Logger.Info().Msg("Server stopped")
		return nil
	})

	return g.Wait()
}
