// Package repository implements the repository pattern for data access.
//
// All four resource repositories are thin typed wrappers around a single
// generic Store, parameterized by a Schema descriptor. SQL is always built
// from the descriptor's fixed column sets, never from caller-supplied keys.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a record is not found. A zero-row lookup is a
// normal query outcome, not a store failure.
var ErrNotFound = errors.New("record not found")

// ErrEmptyIDSet is returned when a batch delete is attempted with no ids.
var ErrEmptyIDSet = errors.New("id set must not be empty")

// Querier is an interface that can execute queries.
// Both *sql.DB and *sql.Tx implement this interface.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Scanner abstracts over *sql.Row and *sql.Rows for row mapping.
type Scanner interface {
	Scan(dest ...any) error
}

// Change is a single column assignment or exact-match condition. Repositories
// construct Changes from their entity's enumerated field set; arbitrary input
// keys never become column names.
type Change struct {
	Column string
	Value  any
}
