package domain

import (
	"context"
	"time"
)

// Message read states
const (
	MessageStatusUnread = "unread"
	MessageStatusRead   = "read"
)

// Message is an inbox record created as a side effect of pipeline activity.
// Delivery to an external channel is out of scope; only the read flag is
// ever mutated after creation.
type Message struct {
	ID        string    `json:"id"`
	To        string    `json:"to"`
	From      string    `json:"from"` // sender label, not an address
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"` // read | unread
	RelatedID *string   `json:"related_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	// FetchByRecipient lists messages addressed to the given email, newest
	// first. When includeSystem is true, messages addressed to the system
	// sender label are included as well (manager broadcast behavior).
	FetchByRecipient(ctx context.Context, email string, includeSystem bool) ([]Message, error)
	UpdateStatus(ctx context.Context, id, status string) (*Message, error)
}

type InboxUsecase interface {
	ListMessages(ctx context.Context, userID string) ([]Message, error)
	MarkMessage(ctx context.Context, id, status string) (*Message, error)
}
