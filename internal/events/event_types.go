package events

import (
	"time"

	"github.com/craftside/marketplace/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventOrderPlaced     EventType = "order_placed"
	EventReviewSubmitted EventType = "review_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    int64       `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderID    int64              `json:"order_id"`
	TotalCents int64              `json:"total_cents"`
	Status     domain.OrderStatus `json:"status"`
	ItemCount  int                `json:"item_count"`
}

// ReviewSubmittedPayload payload.
type ReviewSubmittedPayload struct {
	ProductID int64 `json:"product_id"`
	Rating    int32 `json:"rating"`
}
