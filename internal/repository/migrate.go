package repository

import (
	"database/sql"
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// goose keeps its dialect, FS and logger in package globals.
var migrateMu sync.Mutex

type gooseLogger struct {
	sugar *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Dialect maps a database/sql driver name to its goose dialect, which is
// also the name of the directory holding that dialect's migrations.
func Dialect(driver string) (string, error) {
	switch driver {
	case "sqlite3", "sqlite":
		return "sqlite3", nil
	case "pgx", "postgres":
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Migrate applies every pending embedded migration for the driver's dialect.
func Migrate(db *sql.DB, driver string, logger *zap.Logger) error {
	dialect, err := Dialect(driver)
	if err != nil {
		return err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)
	goose.SetLogger(gooseLogger{sugar: logger.Named("migrations").Sugar()})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.Up(db, path.Join("migrations", dialect)); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
