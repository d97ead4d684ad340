package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialect_Rebind(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		query   string
		want    string
	}{
		{
			name:    "sqlite keeps question marks",
			dialect: DialectSQLite,
			query:   "SELECT * FROM t WHERE a = ? AND b = ?",
			want:    "SELECT * FROM t WHERE a = ? AND b = ?",
		},
		{
			name:    "postgres numbers placeholders",
			dialect: DialectPostgres,
			query:   "SELECT * FROM t WHERE a = ? AND b = ?",
			want:    "SELECT * FROM t WHERE a = $1 AND b = $2",
		},
		{
			name:    "postgres with no placeholders",
			dialect: DialectPostgres,
			query:   "SELECT COUNT(*) FROM t",
			want:    "SELECT COUNT(*) FROM t",
		},
		{
			name:    "postgres with many placeholders",
			dialect: DialectPostgres,
			query:   "INSERT INTO t (a, b, c) VALUES (?, ?, ?)",
			want:    "INSERT INTO t (a, b, c) VALUES ($1, $2, $3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dialect.Rebind(tt.query))
		})
	}
}

func TestParseDialect(t *testing.T) {
	t.Run("known drivers", func(t *testing.T) {
		for driver, want := range map[string]Dialect{
			"postgres": DialectPostgres,
			"sqlite":   DialectSQLite,
			"sqlite3":  DialectSQLite,
			"":         DialectSQLite,
		} {
			got, err := ParseDialect(driver)
			require.NoError(t, err, "driver %q", driver)
			assert.Equal(t, want, got, "driver %q", driver)
		}
	})

	t.Run("unknown driver is an error", func(t *testing.T) {
		_, err := ParseDialect("mysql")
		assert.Error(t, err)
	})
}

func TestDialect_SupportsReturning(t *testing.T) {
	assert.True(t, DialectPostgres.SupportsReturning())
	assert.False(t, DialectSQLite.SupportsReturning())
}

func TestConnect(t *testing.T) {
	t.Run("opens in-memory sqlite", func(t *testing.T) {
		db, dialect, err := Connect(Config{Driver: "sqlite", DSN: ":memory:"})
		require.NoError(t, err)
		defer Close(db)

		assert.Equal(t, DialectSQLite, dialect)
		assert.NoError(t, Ping(db))
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		_, _, err := Connect(Config{Driver: "oracle", DSN: ""})
		assert.Error(t, err)
	})
}

func TestGetPoolStats(t *testing.T) {
	db, _, err := Connect(Config{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "pool.db")})
	require.NoError(t, err)
	defer Close(db)

	stats := GetPoolStats(db)
	assert.Equal(t, 25, stats.MaxOpenConnections)
}

func TestConnect_ForeignKeysHoldAcrossPooledConnections(t *testing.T) {
	db, dialect, err := Connect(Config{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "fk.db")})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, NewMigrator(db, dialect).MigrateUp())

	// Drop every idle connection so the next statement runs on a connection
	// opened after the migration.
	db.SetMaxIdleConns(0)
	db.SetMaxIdleConns(5)

	_, err = db.Exec(
		"INSERT INTO news (title, content, category_id) VALUES (?, ?, ?)",
		"orphan", "body", 99999,
	)
	require.Error(t, err, "insert referencing a missing category must be rejected")
	assert.Contains(t, err.Error(), "FOREIGN KEY")
}

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sitekit.db", "sitekit.db?_pragma=foreign_keys(1)"},
		{"sitekit.db?cache=shared", "sitekit.db?cache=shared&_pragma=foreign_keys(1)"},
		{"sitekit.db?_pragma=foreign_keys(1)", "sitekit.db?_pragma=foreign_keys(1)"},
		{":memory:", ":memory:?_pragma=foreign_keys(1)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteDSN(tt.in), "dsn %q", tt.in)
	}
}

func TestConnect_MemoryPoolIsSingleConnection(t *testing.T) {
	db, _, err := Connect(Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	defer Close(db)

	assert.Equal(t, 1, GetPoolStats(db).MaxOpenConnections)
}
