package repository

import (
	"context"
	"database/sql"

	"github.com/bargom/sitekit/internal/database"
	"github.com/bargom/sitekit/internal/database/models"
)

// MessageInput holds the caller-settable fields for creating a message.
// Status always starts as pending.
type MessageInput struct {
	Name    string
	Email   *string
	Content string
}

// MessagePatch holds a sparse set of message field changes. Nil fields are
// left untouched.
type MessagePatch struct {
	Name    *string
	Email   *string
	Content *string
	Status  *models.MessageStatus
}

func (p MessagePatch) changes() []Change {
	var cs []Change
	if p.Name != nil {
		cs = append(cs, Change{Column: "name", Value: *p.Name})
	}
	if p.Email != nil {
		cs = append(cs, Change{Column: "email", Value: *p.Email})
	}
	if p.Content != nil {
		cs = append(cs, Change{Column: "content", Value: *p.Content})
	}
	if p.Status != nil {
		cs = append(cs, Change{Column: "status", Value: string(*p.Status)})
	}
	return cs
}

// MessageRepository handles contact message persistence.
type MessageRepository struct {
	store *Store[models.Message]
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *sql.DB, dialect database.Dialect) *MessageRepository {
	return &MessageRepository{
		store: NewStore(db, dialect, Schema[models.Message]{
			Table:         "messages",
			Columns:       []string{"id", "name", "email", "content", "status", "created_at", "updated_at"},
			SearchColumns: []string{"name", "email", "content"},
			Scan:          scanMessage,
		}),
	}
}

func scanMessage(row Scanner) (*models.Message, error) {
	var m models.Message
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Content, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// statusMatch builds the exact-match condition for a status filter.
func statusMatch(status string) []Change {
	if status == "" {
		return nil
	}
	return []Change{{Column: "status", Value: status}}
}

// Find returns one page of messages, newest first. A non-empty status
// restricts results to that exact processing state.
func (r *MessageRepository) Find(ctx context.Context, limit, offset int, search, status string) ([]*models.Message, error) {
	return r.store.Find(ctx, ListQuery{
		Limit:  limit,
		Offset: offset,
		Search: search,
		Match:  statusMatch(status),
	})
}

// Count returns the number of messages matching the same predicate Find uses.
func (r *MessageRepository) Count(ctx context.Context, search, status string) (int64, error) {
	return r.store.Count(ctx, ListQuery{Search: search, Match: statusMatch(status)})
}

// FindByID retrieves a message by its id.
func (r *MessageRepository) FindByID(ctx context.Context, id int64) (*models.Message, error) {
	return r.store.FindByID(ctx, id)
}

// Create inserts a new message. The status column keeps its default.
func (r *MessageRepository) Create(ctx context.Context, in MessageInput) (*models.Message, error) {
	return r.store.Create(ctx, []Change{
		{Column: "name", Value: in.Name},
		{Column: "email", Value: in.Email},
		{Column: "content", Value: in.Content},
	})
}

// Update applies a sparse patch and returns the stored row.
func (r *MessageRepository) Update(ctx context.Context, id int64, p MessagePatch) (*models.Message, error) {
	return r.store.Update(ctx, id, p.changes())
}

// Delete removes a message. Missing ids are a no-op.
func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	return r.store.Delete(ctx, id)
}
