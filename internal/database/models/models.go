// Package models defines domain models for the database layer.
package models

import (
	"database/sql"
	"time"
)

// Category groups news articles.
type Category struct {
	ID          int64
	Name        string
	Description sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// News is a published article, optionally assigned to a category.
type News struct {
	ID         int64
	Title      string
	Content    string
	CategoryID sql.NullInt64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Product is a catalog entry.
type Product struct {
	ID            int64
	Name          string
	Description   sql.NullString
	Price         sql.NullFloat64
	StockQuantity int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MessageStatus represents the processing state of a contact message.
type MessageStatus string

const (
	MessageStatusPending  MessageStatus = "pending"
	MessageStatusRead     MessageStatus = "read"
	MessageStatusArchived MessageStatus = "archived"
)

// ValidMessageStatus reports whether s is a known message status.
func ValidMessageStatus(s string) bool {
	switch MessageStatus(s) {
	case MessageStatusPending, MessageStatusRead, MessageStatusArchived:
		return true
	}
	return false
}

// Message is an inbound contact-form message.
type Message struct {
	ID        int64
	Name      string
	Email     sql.NullString
	Content   string
	Status    MessageStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
