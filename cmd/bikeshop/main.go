package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tair/bikeshop/internal/app"
	"github.com/tair/bikeshop/internal/config"
	"github.com/tair/bikeshop/pkg/database"
	"github.com/tair/bikeshop/pkg/logger"
	"github.com/tair/bikeshop/pkg/tracing"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bikeshop",
	Short: "Bikeshop inventory service",
	Long: `Bikeshop serves a REST API for managing bike categories and bikes.

Examples:
  bikeshop serve      # Run the HTTP (and optional gRPC health) server
  bikeshop migrate    # Create or update the database schema and exit`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Container, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(cfg.App.Name, cfg.IsDevelopment())
	logger.SetLevel(cfg.App.LogLevel)
	return cfg, nil
}

func runServe(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tp, err := tracing.InitTracer(ctx, *cfg.Tracing)
	if err != nil {
		return fmt.Errorf("failed to initialize tracer: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Error shutting down tracer provider")
		}
	}()

	application, cleanup, err := app.InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer cleanup()

	logger.Logger.Info().
		Str("port", cfg.HTTP.Port).
		Str("driver", cfg.DB.Driver).
		Msg("Starting bikeshop service")

	return application.Run(ctx)
}

func runMigrate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(*cfg.DB)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := app.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Logger.Info().Str("driver", cfg.DB.Driver).Msg("Migrations applied")
	return nil
}
