// Package server implements the `server` CLI command: it loads configuration,
// opens the database, runs migrations, and serves the dashboard until SIGTERM.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"adaptivegame/internal/infrastructure/config"
	"adaptivegame/internal/infrastructure/database"
	"adaptivegame/internal/infrastructure/migration"
	"adaptivegame/internal/infrastructure/persistence/seeds"
	httpRouter "adaptivegame/internal/interfaces/http"
	"adaptivegame/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
	noFixtures  bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the dashboard HTTP server",
		Long:  `Start the game administration dashboard. Without a database DSN the server runs against an in-memory fixture store seeded with demo games.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run gorm auto-migration on startup (not recommended for production)")
	cmd.Flags().BoolVar(&noFixtures, "no-fixtures", false, "Skip demo game fixtures in mock mode")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"mock_mode", cfg.Database.MockMode(),
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if err := prepareSchema(cfg, db); err != nil {
		return fmt.Errorf("schema preparation failed: %w", err)
	}

	router := httpRouter.NewRouter(db, cfg, logger.NewLogger())
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// prepareSchema brings the store to a usable state. Mock mode always
// auto-migrates and seeds, since the in-memory store starts empty on every
// run. Against a real database, migrations run only when requested.
func prepareSchema(cfg *config.Config, db *database.Database) error {
	if cfg.Database.MockMode() {
		manager := migration.NewManagerWithStrategy(migration.NewGormAutoMigrateStrategy())
		if err := manager.Migrate(db.Gorm(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		if err := seeds.Apply(db.Gorm()); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		if !noFixtures {
			if err := seeds.ApplyFixture(db.Gorm()); err != nil {
				return fmt.Errorf("fixture seeding failed: %w", err)
			}
			logger.Info("fixture store ready", "demo_login", "demo@adaptive.game")
		}
		return nil
	}

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		manager := migration.NewManager(env)
		if err := manager.Migrate(db.Gorm(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		if err := seeds.Apply(db.Gorm()); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		logger.Info("auto-migration completed successfully")
	}

	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
