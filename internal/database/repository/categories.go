package repository

import (
	"context"
	"database/sql"

	"github.com/bargom/sitekit/internal/database"
	"github.com/bargom/sitekit/internal/database/models"
)

// CategoryInput holds the caller-settable fields for creating a category.
type CategoryInput struct {
	Name        string
	Description *string
}

// CategoryPatch holds a sparse set of category field changes. Nil fields are
// left untouched.
type CategoryPatch struct {
	Name        *string
	Description *string
}

// changes maps the patch to the fixed set of updatable category columns.
func (p CategoryPatch) changes() []Change {
	var cs []Change
	if p.Name != nil {
		cs = append(cs, Change{Column: "name", Value: *p.Name})
	}
	if p.Description != nil {
		cs = append(cs, Change{Column: "description", Value: *p.Description})
	}
	return cs
}

// CategoryRepository handles category persistence.
type CategoryRepository struct {
	store *Store[models.Category]
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sql.DB, dialect database.Dialect) *CategoryRepository {
	return &CategoryRepository{
		store: NewStore(db, dialect, Schema[models.Category]{
			Table:         "categories",
			Columns:       []string{"id", "name", "description", "created_at", "updated_at"},
			SearchColumns: []string{"name", "description"},
			Scan:          scanCategory,
		}),
	}
}

func scanCategory(row Scanner) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Find returns one page of categories, newest first.
func (r *CategoryRepository) Find(ctx context.Context, limit, offset int, search string) ([]*models.Category, error) {
	return r.store.Find(ctx, ListQuery{Limit: limit, Offset: offset, Search: search})
}

// Count returns the number of categories matching the search term.
func (r *CategoryRepository) Count(ctx context.Context, search string) (int64, error) {
	return r.store.Count(ctx, ListQuery{Search: search})
}

// FindByID retrieves a category by its id.
func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	return r.store.FindByID(ctx, id)
}

// Create inserts a new category and returns it with id and timestamps.
func (r *CategoryRepository) Create(ctx context.Context, in CategoryInput) (*models.Category, error) {
	return r.store.Create(ctx, []Change{
		{Column: "name", Value: in.Name},
		{Column: "description", Value: in.Description},
	})
}

// Update applies a sparse patch and returns the stored row.
func (r *CategoryRepository) Update(ctx context.Context, id int64, p CategoryPatch) (*models.Category, error) {
	return r.store.Update(ctx, id, p.changes())
}

// Delete removes a category. Missing ids are a no-op.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, id)
}
