package repository

import (
	"context"
	"database/sql"

	"github.com/bargom/sitekit/internal/database"
	"github.com/bargom/sitekit/internal/database/models"
)

// CategoryRepo defines the interface for category persistence operations.
type CategoryRepo interface {
	Find(ctx context.Context, limit, offset int, search string) ([]*models.Category, error)
	Count(ctx context.Context, search string) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, in CategoryInput) (*models.Category, error)
	Update(ctx context.Context, id int64, p CategoryPatch) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

// NewsRepo defines the interface for news persistence operations.
type NewsRepo interface {
	Find(ctx context.Context, limit, offset int, search string) ([]*models.News, error)
	Count(ctx context.Context, search string) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.News, error)
	Create(ctx context.Context, in NewsInput) (*models.News, error)
	Update(ctx context.Context, id int64, p NewsPatch) (*models.News, error)
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) error
}

// ProductRepo defines the interface for product persistence operations.
type ProductRepo interface {
	Find(ctx context.Context, limit, offset int, search string) ([]*models.Product, error)
	Count(ctx context.Context, search string) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, in ProductInput) (*models.Product, error)
	Update(ctx context.Context, id int64, p ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

// MessageRepo defines the interface for message persistence operations.
type MessageRepo interface {
	Find(ctx context.Context, limit, offset int, search, status string) ([]*models.Message, error)
	Count(ctx context.Context, search, status string) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.Message, error)
	Create(ctx context.Context, in MessageInput) (*models.Message, error)
	Update(ctx context.Context, id int64, p MessagePatch) (*models.Message, error)
	Delete(ctx context.Context, id int64) error
}

// Repositories holds all repository interfaces for dependency injection.
type Repositories struct {
	Categories CategoryRepo
	News       NewsRepo
	Products   ProductRepo
	Messages   MessageRepo
}

// NewRepositories wires all repositories onto one shared connection pool.
func NewRepositories(db *sql.DB, dialect database.Dialect) *Repositories {
	return &Repositories{
		Categories: NewCategoryRepository(db, dialect),
		News:       NewNewsRepository(db, dialect),
		Products:   NewProductRepository(db, dialect),
		Messages:   NewMessageRepository(db, dialect),
	}
}
