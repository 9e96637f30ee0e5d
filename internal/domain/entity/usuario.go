// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is a system account used for authentication. It carries the bcrypt
// hash of the password, never the plaintext.
type Usuario struct {
	ID           uuid.UUID // The unique identifier for the account.
	Username     string    // The login identifier, unique across all accounts.
	PasswordHash string    // The bcrypt blob produced at registration. Immutable once set.
	Role         Role      // The role tag embedded in issued session tokens.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
