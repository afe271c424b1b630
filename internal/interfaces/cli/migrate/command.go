// Package migrate implements the `migrate` CLI command group for applying,
// rolling back, and inspecting database schema migrations.
package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"adaptivegame/internal/infrastructure/config"
	"adaptivegame/internal/infrastructure/database"
	"adaptivegame/internal/infrastructure/migration"
	"adaptivegame/internal/infrastructure/persistence/seeds"
	"adaptivegame/internal/shared/logger"
)

var (
	env   string
	steps int
)

const scriptsDir = "./internal/infrastructure/migration/scripts"

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll back, inspect status, create new migration files, and seed reference data.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new migration file pair",
		Args:  cobra.ExactArgs(1),
		RunE:  runCreate,
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert reference data (statuses, roles, node types, products)",
		RunE:  runSeed,
	}
}

func openDatabase() (*database.Database, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func gooseStrategy() (*migration.GooseStrategy, error) {
	path, err := filepath.Abs(scriptsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scripts path: %w", err)
	}
	strategy, ok := migration.NewGooseStrategy(path).(*migration.GooseStrategy)
	if !ok {
		return nil, fmt.Errorf("unexpected migration strategy type")
	}
	return strategy, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	strategy, err := gooseStrategy()
	if err != nil {
		return err
	}
	if err := strategy.Migrate(db.Gorm()); err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}

	version, err := strategy.GetVersion(db.Gorm())
	if err != nil {
		logger.Warn("failed to read migration version", "error", err)
	} else {
		logger.Info("migrations applied", "version", version)
	}
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	strategy, err := gooseStrategy()
	if err != nil {
		return err
	}
	if err := strategy.MigrateDown(db.Gorm(), steps); err != nil {
		return fmt.Errorf("migration down failed: %w", err)
	}

	logger.Info("migrations rolled back", "steps", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	strategy, err := gooseStrategy()
	if err != nil {
		return err
	}
	return strategy.Status(db.Gorm())
}

func runCreate(cmd *cobra.Command, args []string) error {
	strategy, err := gooseStrategy()
	if err != nil {
		return err
	}
	if err := strategy.Create(args[0]); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	logger.Info("migration files created", "name", args[0])
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := seeds.Apply(db.Gorm()); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	logger.Info("reference data seeded")
	return nil
}
