// Package sqlstore provides database/sql data proxies for SQLite and
// PostgreSQL. Each entity type gets one table holding the key and the
// JSON-encoded entity.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver
)

// Supported storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrUnsupportedDriver is returned by Open for drivers other than sqlite and postgres.
var ErrUnsupportedDriver = errors.New("unsupported storage driver")

// dialect captures the SQL differences between the supported databases.
type dialect struct {
	sqlDriver string
	keyType   string
	blobType  string
	bind      func(n int) string
}

var dialects = map[string]dialect{
	DriverSQLite: {
		sqlDriver: "sqlite",
		keyType:   "INTEGER",
		blobType:  "BLOB",
		bind:      func(int) string { return "?" },
	},
	DriverPostgres: {
		sqlDriver: "pgx",
		keyType:   "BIGINT",
		blobType:  "BYTEA",
		bind:      func(n int) string { return "$" + strconv.Itoa(n) },
	},
}

// DB is a connection pool shared by the stores of one database. It also
// serves as the database health checker.
type DB struct {
	*sql.DB
	driver  string
	dialect dialect
}

// Open connects to the database named by driver and dsn and verifies the
// connection.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	if dsn == "" {
		return nil, fmt.Errorf("%s dsn is required", driver)
	}

	if driver == DriverSQLite && !strings.HasPrefix(dsn, "file:") && !strings.HasPrefix(dsn, ":memory:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o750); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	sqlDB, err := sql.Open(d.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// SQLite allows a single writer; serialize through one connection.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return &DB{DB: sqlDB, driver: driver, dialect: d}, nil
}

// Driver returns the storage driver name.
func (db *DB) Driver() string { return db.driver }

// Name implements ports.HealthChecker.
func (db *DB) Name() string { return "database" }

// HealthCheck implements ports.HealthChecker.
func (db *DB) HealthCheck(ctx context.Context) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s unreachable: %w", db.driver, err)
	}
	return nil
}
