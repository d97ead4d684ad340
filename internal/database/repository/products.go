package repository

import (
	"context"
	"database/sql"

	"github.com/bargom/sitekit/internal/database"
	"github.com/bargom/sitekit/internal/database/models"
)

// ProductInput holds the caller-settable fields for creating a product.
// StockQuantity defaults to zero when nil.
type ProductInput struct {
	Name          string
	Description   *string
	Price         float64
	StockQuantity *int64
}

// ProductPatch holds a sparse set of product field changes. Nil fields are
// left untouched.
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *float64
	StockQuantity *int64
}

func (p ProductPatch) changes() []Change {
	var cs []Change
	if p.Name != nil {
		cs = append(cs, Change{Column: "name", Value: *p.Name})
	}
	if p.Description != nil {
		cs = append(cs, Change{Column: "description", Value: *p.Description})
	}
	if p.Price != nil {
		cs = append(cs, Change{Column: "price", Value: *p.Price})
	}
	if p.StockQuantity != nil {
		cs = append(cs, Change{Column: "stock_quantity", Value: *p.StockQuantity})
	}
	return cs
}

// ProductRepository handles product persistence.
type ProductRepository struct {
	store *Store[models.Product]
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sql.DB, dialect database.Dialect) *ProductRepository {
	return &ProductRepository{
		store: NewStore(db, dialect, Schema[models.Product]{
			Table:         "products",
			Columns:       []string{"id", "name", "description", "price", "stock_quantity", "created_at", "updated_at"},
			SearchColumns: []string{"name", "description"},
			Scan:          scanProduct,
		}),
	}
}

func scanProduct(row Scanner) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Find returns one page of products, newest first.
func (r *ProductRepository) Find(ctx context.Context, limit, offset int, search string) ([]*models.Product, error) {
	return r.store.Find(ctx, ListQuery{Limit: limit, Offset: offset, Search: search})
}

// Count returns the number of products matching the search term.
func (r *ProductRepository) Count(ctx context.Context, search string) (int64, error) {
	return r.store.Count(ctx, ListQuery{Search: search})
}

// FindByID retrieves a product by its id.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	return r.store.FindByID(ctx, id)
}

// Create inserts a new product and returns it with id and timestamps.
func (r *ProductRepository) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	stock := int64(0)
	if in.StockQuantity != nil {
		stock = *in.StockQuantity
	}
	return r.store.Create(ctx, []Change{
		{Column: "name", Value: in.Name},
		{Column: "description", Value: in.Description},
		{Column: "price", Value: in.Price},
		{Column: "stock_quantity", Value: stock},
	})
}

// Update applies a sparse patch and returns the stored row.
func (r *ProductRepository) Update(ctx context.Context, id int64, p ProductPatch) (*models.Product, error) {
	return r.store.Update(ctx, id, p.changes())
}

// Delete removes a product. Missing ids are a no-op.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, id)
}
