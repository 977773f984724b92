package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Open connects to the configured backend, verifies the connection and
// returns the pool together with the matching repository manager. A
// failed open or ping here is the fatal ConnectionError of the startup
// path; callers report it and stop.
func Open(ctx context.Context, driver string, dsn string) (*sql.DB, RepositoryManager, error) {
	var (
		driverName string
		manager    RepositoryManager
	)

	switch driver {
	case DriverSQLite:
		driverName = "sqlite"
		manager = NewSQLiteRepositoryManager()
	case DriverMySQL:
		driverName = "mysql"
		manager = NewMySQLRepositoryManager()
	case DriverPostgres:
		driverName = "pgx"
		manager = NewPostgresRepositoryManager()
	default:
		return nil, nil, fmt.Errorf("unknown database driver: %q", driver)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, manager, nil
}
