package types

import (
	"time"

	"github.com/bargom/sitekit/internal/database/models"
)

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryFromModel converts a database model to an API response.
func CategoryFromModel(c *models.Category) *CategoryResponse {
	resp := &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Description.Valid {
		resp.Description = &c.Description.String
	}
	return resp
}

// CategoriesFromModels converts a slice of database models to API responses.
func CategoriesFromModels(categories []*models.Category) []*CategoryResponse {
	responses := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = CategoryFromModel(c)
	}
	return responses
}

// NewsResponse represents a news item in API responses.
type NewsResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CategoryID *int64    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewsFromModel converts a database model to an API response.
func NewsFromModel(n *models.News) *NewsResponse {
	resp := &NewsResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if n.CategoryID.Valid {
		resp.CategoryID = &n.CategoryID.Int64
	}
	return resp
}

// NewsFromModels converts a slice of database models to API responses.
func NewsFromModels(news []*models.News) []*NewsResponse {
	responses := make([]*NewsResponse, len(news))
	for i, n := range news {
		responses[i] = NewsFromModel(n)
	}
	return responses
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price"`
	StockQuantity int64     `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductFromModel converts a database model to an API response.
func ProductFromModel(p *models.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.Description.Valid {
		resp.Description = &p.Description.String
	}
	if p.Price.Valid {
		resp.Price = &p.Price.Float64
	}
	return resp
}

// ProductsFromModels converts a slice of database models to API responses.
func ProductsFromModels(products []*models.Product) []*ProductResponse {
	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ProductFromModel(p)
	}
	return responses
}

// MessageResponse represents a contact message in API responses.
type MessageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageFromModel converts a database model to an API response.
func MessageFromModel(m *models.Message) *MessageResponse {
	resp := &MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Content:   m.Content,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Email.Valid {
		resp.Email = &m.Email.String
	}
	return resp
}

// MessagesFromModels converts a slice of database models to API responses.
func MessagesFromModels(messages []*models.Message) []*MessageResponse {
	responses := make([]*MessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = MessageFromModel(m)
	}
	return responses
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}
