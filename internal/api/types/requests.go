// Package types defines API request and response types.
package types

// CreateCategoryRequest represents a request to create a category.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// UpdateCategoryRequest represents a sparse category update. Nil fields are
// left untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// CreateNewsRequest represents a request to create a news item.
type CreateNewsRequest struct {
	Title      string `json:"title" validate:"required,min=1,max=255"`
	Content    string `json:"content" validate:"required"`
	CategoryID *int64 `json:"category_id" validate:"omitempty,gt=0"`
}

// UpdateNewsRequest represents a sparse news update.
type UpdateNewsRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content    *string `json:"content" validate:"omitempty,min=1"`
	CategoryID *int64  `json:"category_id" validate:"omitempty,gt=0"`
}

// BatchDeleteNewsRequest represents a request to delete several news items.
type BatchDeleteNewsRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

// CreateProductRequest represents a request to create a product.
// Price is a pointer so an explicit zero price is accepted while an omitted
// one is rejected.
type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=255"`
	Description   *string  `json:"description" validate:"omitempty,max=2000"`
	Price         *float64 `json:"price" validate:"required,gte=0"`
	StockQuantity *int64   `json:"stock_quantity" validate:"omitempty,gte=0"`
}

// UpdateProductRequest represents a sparse product update.
type UpdateProductRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description   *string  `json:"description" validate:"omitempty,max=2000"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	StockQuantity *int64   `json:"stock_quantity" validate:"omitempty,gte=0"`
}

// CreateMessageRequest represents a request to create a contact message.
type CreateMessageRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=255"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Content string  `json:"content" validate:"required"`
}

// UpdateMessageRequest represents a sparse message update.
type UpdateMessageRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Content *string `json:"content" validate:"omitempty,min=1"`
	Status  *string `json:"status" validate:"omitempty,oneof=pending read archived"`
}
