package domain

import "time"

// UserStatus represents lifecycle states for a shopper or seller account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User is the domain model for marketplace accounts. Shoppers and sellers
// share the same record; sellers are users that own products.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
