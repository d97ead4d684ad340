// Package database provides database connectivity and operations.
package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect identifies the SQL flavor the connection speaks. It decides
// placeholder style and how generated ids are read back after INSERT.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

func (d Dialect) String() string {
	switch d {
	case DialectPostgres:
		return "postgres"
	default:
		return "sqlite"
	}
}

// Rebind rewrites a query written with ? placeholders into the dialect's
// native placeholder style.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SupportsReturning reports whether INSERT ... RETURNING id must be used
// instead of sql.Result.LastInsertId.
func (d Dialect) SupportsReturning() bool {
	return d == DialectPostgres
}

// Config holds database connection configuration.
type Config struct {
	// Driver is "postgres" or "sqlite".
	Driver string
	// DSN is the driver-specific connection string. For sqlite this is a
	// file path or ":memory:".
	DSN string
}

// DefaultConfig returns a Config pointing at a local SQLite file.
func DefaultConfig() Config {
	return Config{
		Driver: "sqlite",
		DSN:    "sitekit.db",
	}
}

// ParseDialect maps a driver name to its Dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch driver {
	case "postgres":
		return DialectPostgres, nil
	case "sqlite", "sqlite3", "":
		return DialectSQLite, nil
	default:
		return DialectSQLite, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Connect opens a connection pool for the configured store.
func Connect(cfg Config) (*sql.DB, Dialect, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, dialect, err
	}

	driver := "sqlite"
	dsn := cfg.DSN
	if dialect == DialectPostgres {
		driver = "postgres"
	} else {
		dsn = sqliteDSN(dsn)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, dialect, fmt.Errorf("opening database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	// A :memory: database exists per connection, so the pool must not
	// open a second one.
	if dialect == DialectSQLite && strings.Contains(cfg.DSN, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	return db, dialect, nil
}

// sqliteDSN appends the foreign_keys pragma to the DSN. The pool opens and
// recycles connections at will, so the pragma must be part of the DSN to
// hold on every connection, not a one-off statement.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// Ping verifies the database connection is alive.
func Ping(db *sql.DB) error {
	if err := db.Ping(); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

// Close closes the database connection.
func Close(db *sql.DB) error {
	if err := db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// PoolStats returns current connection pool statistics.
type PoolStats struct {
	MaxOpenConnections int
	OpenConnections    int
	InUse              int
	Idle               int
}

// GetPoolStats returns the current connection pool statistics.
func GetPoolStats(db *sql.DB) PoolStats {
	stats := db.Stats()
	return PoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
	}
}
