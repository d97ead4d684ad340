// Package testing provides test helpers for database tests.
package testing

import (
	"database/sql"
	"testing"

	"github.com/bargom/sitekit/internal/database"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory SQLite database for testing
// and runs all migrations.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// The pragma rides on the DSN so it holds on every connection.
	db, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// A :memory: database exists per connection; keep the pool at one.
	db.SetMaxOpenConns(1)

	// Run migrations
	migrator := database.NewMigrator(db, database.DialectSQLite)
	if err := migrator.MigrateUp(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

// TeardownTestDB closes the test database connection.
func TeardownTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	if err := db.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// SeedCategory inserts a category row and returns its id.
func SeedCategory(t *testing.T, db *sql.DB, name, description string) int64 {
	t.Helper()

	res, err := db.Exec(
		"INSERT INTO categories (name, description) VALUES (?, ?)",
		name, description,
	)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded category id: %v", err)
	}
	return id
}

// SeedNews inserts a news row and returns its id. Pass nil for an
// uncategorized item.
func SeedNews(t *testing.T, db *sql.DB, title, content string, categoryID *int64) int64 {
	t.Helper()

	res, err := db.Exec(
		"INSERT INTO news (title, content, category_id) VALUES (?, ?, ?)",
		title, content, categoryID,
	)
	if err != nil {
		t.Fatalf("failed to seed news: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded news id: %v", err)
	}
	return id
}

// SeedProduct inserts a product row and returns its id.
func SeedProduct(t *testing.T, db *sql.DB, name string, price float64) int64 {
	t.Helper()

	res, err := db.Exec(
		"INSERT INTO products (name, price) VALUES (?, ?)",
		name, price,
	)
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded product id: %v", err)
	}
	return id
}

// SeedMessage inserts a message row with the given status and returns its id.
func SeedMessage(t *testing.T, db *sql.DB, name, content, status string) int64 {
	t.Helper()

	res, err := db.Exec(
		"INSERT INTO messages (name, content, status) VALUES (?, ?, ?)",
		name, content, status,
	)
	if err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded message id: %v", err)
	}
	return id
}
