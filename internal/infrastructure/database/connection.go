package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"adaptivegame/internal/shared/config"
	appLogger "adaptivegame/internal/shared/logger"
)

// Database is an explicitly constructed connection handle. It is created once
// at process start, injected into repositories, and shut down at process stop.
type Database struct {
	gorm *gorm.DB
}

// New opens the relational store described by cfg. With an empty DSN (or the
// mock flag set) it opens an in-memory SQLite store instead, so the dashboard
// can run without a live database.
func New(cfg *config.DatabaseConfig) (*Database, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.New(
			&filteredLogger{},
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}

	var (
		db  *gorm.DB
		err error
	)

	if cfg.MockMode() {
		appLogger.Warn("no database DSN configured, using in-memory fixture store")
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), gormCfg)
	} else {
		db, err = gorm.Open(postgres.Open(cfg.DSN), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	appLogger.Info("database connection established", "mock", cfg.MockMode())

	return &Database{gorm: db}, nil
}

// Gorm returns the underlying gorm handle for repositories.
func (d *Database) Gorm() *gorm.DB {
	return d.gorm
}

// Ping checks the connection is still alive. The health endpoint calls it.
func (d *Database) Ping() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}

// Close releases the connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	appLogger.Info("database connection closed")
	return nil
}

// filteredLogger routes gorm log output through the application logger.
type filteredLogger struct{}

func (l *filteredLogger) Printf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	if strings.Contains(msg, "[error]") || strings.Contains(msg, "ERROR") {
		appLogger.Error("database error", "details", msg)
	} else if strings.Contains(msg, "slow sql") || strings.Contains(msg, "SLOW SQL") {
		appLogger.Warn("slow query", "details", msg)
	} else {
		appLogger.Debug("database query", "details", msg)
	}
}
