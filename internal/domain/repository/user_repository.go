// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
)

// ErrUsuarioNotFound is a domain-specific error returned when an account is not found.
var ErrUsuarioNotFound = errors.New("usuario not found")

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUsername retrieves a single account by its login identifier.
	// Returns ErrUsuarioNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (*entity.Usuario, error)

	// ExistsByUsername reports whether an account with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create persists a new account. The store's unique constraint on
	// username is the authoritative duplicate check.
	Create(ctx context.Context, usuario *entity.Usuario) error
}
