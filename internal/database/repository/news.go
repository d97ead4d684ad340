package repository

import (
	"context"
	"database/sql"

	"github.com/bargom/sitekit/internal/database"
	"github.com/bargom/sitekit/internal/database/models"
)

// NewsInput holds the caller-settable fields for creating a news item.
type NewsInput struct {
	Title      string
	Content    string
	CategoryID *int64
}

// NewsPatch holds a sparse set of news field changes. Nil fields are left
// untouched.
type NewsPatch struct {
	Title      *string
	Content    *string
	CategoryID *int64
}

func (p NewsPatch) changes() []Change {
	var cs []Change
	if p.Title != nil {
		cs = append(cs, Change{Column: "title", Value: *p.Title})
	}
	if p.Content != nil {
		cs = append(cs, Change{Column: "content", Value: *p.Content})
	}
	if p.CategoryID != nil {
		cs = append(cs, Change{Column: "category_id", Value: *p.CategoryID})
	}
	return cs
}

// NewsRepository handles news persistence.
type NewsRepository struct {
	store *Store[models.News]
}

// NewNewsRepository creates a new NewsRepository.
func NewNewsRepository(db *sql.DB, dialect database.Dialect) *NewsRepository {
	return &NewsRepository{
		store: NewStore(db, dialect, Schema[models.News]{
			Table:         "news",
			Columns:       []string{"id", "title", "content", "category_id", "created_at", "updated_at"},
			SearchColumns: []string{"title", "content"},
			Scan:          scanNews,
		}),
	}
}

func scanNews(row Scanner) (*models.News, error) {
	var n models.News
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.CategoryID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Find returns one page of news, newest first.
func (r *NewsRepository) Find(ctx context.Context, limit, offset int, search string) ([]*models.News, error) {
	return r.store.Find(ctx, ListQuery{Limit: limit, Offset: offset, Search: search})
}

// Count returns the number of news items matching the search term.
func (r *NewsRepository) Count(ctx context.Context, search string) (int64, error) {
	return r.store.Count(ctx, ListQuery{Search: search})
}

// FindByID retrieves a news item by its id.
func (r *NewsRepository) FindByID(ctx context.Context, id int64) (*models.News, error) {
	return r.store.FindByID(ctx, id)
}

// Create inserts a new news item and returns it with id and timestamps.
// A nil CategoryID is stored as NULL; a non-nil value must reference an
// existing category, enforced by the store's foreign key.
func (r *NewsRepository) Create(ctx context.Context, in NewsInput) (*models.News, error) {
	return r.store.Create(ctx, []Change{
		{Column: "title", Value: in.Title},
		{Column: "content", Value: in.Content},
		{Column: "category_id", Value: in.CategoryID},
	})
}

// Update applies a sparse patch and returns the stored row.
func (r *NewsRepository) Update(ctx context.Context, id int64, p NewsPatch) (*models.News, error) {
	return r.store.Update(ctx, id, p.changes())
}

// Delete removes a news item. Missing ids are a no-op.
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, id)
}

// DeleteMany removes all news items with the given ids in one statement.
// An empty id set is rejected before any SQL is issued.
func (r *NewsRepository) DeleteMany(ctx context.Context, ids []int64) error {
	return r.store.DeleteMany(ctx, ids)
}
