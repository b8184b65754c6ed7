package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered visitor. Accounts are provisioned outside this
// service; requests arrive with a bearer token identifying the user.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
