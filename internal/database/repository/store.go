package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bargom/sitekit/internal/database"
)

// Schema describes one resource table: where rows live, which columns make up
// an entity, and which text columns participate in free-text search.
type Schema[T any] struct {
	// Table is the table name.
	Table string
	// Columns is the full select list, id first. Insert and update column
	// sets are always subsets of this list.
	Columns []string
	// SearchColumns are the text columns matched by the search term.
	SearchColumns []string
	// Scan maps one row to an entity.
	Scan func(row Scanner) (*T, error)
}

// ListQuery narrows and pages a Find or Count.
type ListQuery struct {
	// Limit and Offset bound the page. The store trusts these values;
	// normalization belongs to the caller-facing layer.
	Limit  int
	Offset int
	// Search, when non-empty, matches rows where any search column contains
	// the term as a case-insensitive substring.
	Search string
	// Match adds exact-match column conditions, AND-combined with Search.
	Match []Change
}

// Store executes parameterized CRUD for one resource table.
type Store[T any] struct {
	db      *sql.DB
	dialect database.Dialect
	schema  Schema[T]
}

// NewStore creates a Store for the given schema.
func NewStore[T any](db *sql.DB, dialect database.Dialect, schema Schema[T]) *Store[T] {
	return &Store[T]{db: db, dialect: dialect, schema: schema}
}

// whereClause builds the WHERE fragment. Find and Count must use the same
// fragment so the total agrees with the page contents.
func (s *Store[T]) whereClause(q ListQuery) (string, []any) {
	var conds []string
	var args []any

	if q.Search != "" {
		term := "%" + strings.ToLower(q.Search) + "%"
		parts := make([]string, 0, len(s.schema.SearchColumns))
		for _, col := range s.schema.SearchColumns {
			parts = append(parts, "LOWER("+col+") LIKE ?")
			args = append(args, term)
		}
		conds = append(conds, "("+strings.Join(parts, " OR ")+")")
	}

	for _, m := range q.Match {
		conds = append(conds, m.Column+" = ?")
		args = append(args, m.Value)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Find returns one page of rows, newest first. Ordering is fixed by contract:
// created_at descending with id as tiebreaker, so pages are stable.
func (s *Store[T]) Find(ctx context.Context, q ListQuery) ([]*T, error) {
	where, args := s.whereClause(q)

	query := "SELECT " + strings.Join(s.schema.Columns, ", ") +
		" FROM " + s.schema.Table +
		where +
		" ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, q.Limit, q.Offset)

	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.schema.Table, err)
	}
	defer rows.Close()

	var result []*T
	for rows.Next() {
		entity, err := s.schema.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", s.schema.Table, err)
		}
		result = append(result, entity)
	}
	return result, rows.Err()
}

// Count returns the total number of rows matching the same predicate Find
// uses, independent of Limit and Offset.
func (s *Store[T]) Count(ctx context.Context, q ListQuery) (int64, error) {
	where, args := s.whereClause(q)

	query := "SELECT COUNT(*) FROM " + s.schema.Table + where

	var total int64
	if err := s.db.QueryRowContext(ctx, s.dialect.Rebind(query), args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting %s: %w", s.schema.Table, err)
	}
	return total, nil
}

// FindByID returns the entity with the given id, or ErrNotFound.
func (s *Store[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return s.findByID(ctx, s.db, id)
}

func (s *Store[T]) findByID(ctx context.Context, q Querier, id int64) (*T, error) {
	query := "SELECT " + strings.Join(s.schema.Columns, ", ") +
		" FROM " + s.schema.Table + " WHERE id = ?"

	row := q.QueryRowContext(ctx, s.dialect.Rebind(query), id)
	entity, err := s.schema.Scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s %d: %w", s.schema.Table, id, err)
	}
	return entity, nil
}

// Insert creates a row from the given column assignments and returns the
// store-assigned id. Timestamps are filled by column defaults.
func (s *Store[T]) Insert(ctx context.Context, changes []Change) (int64, error) {
	cols := make([]string, 0, len(changes))
	placeholders := make([]string, 0, len(changes))
	args := make([]any, 0, len(changes))
	for _, c := range changes {
		cols = append(cols, c.Column)
		placeholders = append(placeholders, "?")
		args = append(args, c.Value)
	}

	query := "INSERT INTO " + s.schema.Table +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"

	if s.dialect.SupportsReturning() {
		query = s.dialect.Rebind(query + " RETURNING id")
		var id int64
		if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("inserting into %s: %w", s.schema.Table, err)
		}
		return id, nil
	}

	res, err := s.db.ExecContext(ctx, s.dialect.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("inserting into %s: %w", s.schema.Table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading insert id for %s: %w", s.schema.Table, err)
	}
	return id, nil
}

// Create inserts a row and reads it back so the result carries the
// store-assigned id and timestamps.
func (s *Store[T]) Create(ctx context.Context, changes []Change) (*T, error) {
	id, err := s.Insert(ctx, changes)
	if err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}

// Update applies the given column assignments to one row and returns the row
// as stored afterwards. The statement and the read-back run in a single
// transaction so the returned entity reflects exactly the applied change.
// An empty change set is a no-op that returns the current row.
func (s *Store[T]) Update(ctx context.Context, id int64, changes []Change) (*T, error) {
	if len(changes) == 0 {
		return s.FindByID(ctx, id)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning update of %s %d: %w", s.schema.Table, id, err)
	}
	defer tx.Rollback()

	sets := make([]string, 0, len(changes)+1)
	args := make([]any, 0, len(changes)+1)
	for _, c := range changes {
		sets = append(sets, c.Column+" = ?")
		args = append(args, c.Value)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := "UPDATE " + s.schema.Table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?"

	res, err := tx.ExecContext(ctx, s.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("updating %s %d: %w", s.schema.Table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating %s %d: %w", s.schema.Table, id, err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	entity, err := s.findByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing update of %s %d: %w", s.schema.Table, id, err)
	}
	return entity, nil
}

// Delete removes at most one row. Deleting a missing id is a no-op.
func (s *Store[T]) Delete(ctx context.Context, id int64) error {
	query := s.dialect.Rebind("DELETE FROM " + s.schema.Table + " WHERE id = ?")
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting from %s: %w", s.schema.Table, err)
	}
	return nil
}

// DeleteMany removes all rows with the given ids in one statement.
func (s *Store[T]) DeleteMany(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return ErrEmptyIDSet
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := "DELETE FROM " + s.schema.Table +
		" WHERE id IN (" + strings.Join(placeholders, ", ") + ")"

	if _, err := s.db.ExecContext(ctx, s.dialect.Rebind(query), args...); err != nil {
		return fmt.Errorf("batch deleting from %s: %w", s.schema.Table, err)
	}
	return nil
}
