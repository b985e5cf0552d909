package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an app account. PasswordHash carries the bcrypt hash into the
// persisted JSON; handlers never serialize User directly into responses.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
}
