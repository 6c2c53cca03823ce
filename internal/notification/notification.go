package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind identifies what triggered a notification
type Kind string

const (
	KindWelcome            Kind = "welcome"
	KindMaintenanceCreated Kind = "maintenance_created"
)

// Message is a push notification addressed to one user's devices
type Message struct {
	Kind   Kind              `json:"kind"`
	UserID uuid.UUID         `json:"user_id"`
	Tokens []string          `json:"tokens,omitempty"`
	Title  string            `json:"title"`
	Body   string            `json:"body"`
	Data   map[string]string `json:"data,omitempty"`
	SentAt time.Time         `json:"sent_at"`
}

// Publisher delivers messages to the push gateway transport
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Name() string
	Close() error
}

// Notifier accepts messages without blocking the caller
type Notifier interface {
	Dispatch(ctx context.Context, msg Message)
}
