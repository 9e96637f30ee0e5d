package repository

import (
	"context"
	"errors"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
	"github.com/google/uuid"
)

// ErrProprietarioNotFound is a domain-specific error returned when an owner is not found.
var ErrProprietarioNotFound = errors.New("proprietario not found")

// OwnerRepository defines the standard operations for owner persistence.
type OwnerRepository interface {
	// FindByID retrieves a single owner by ID.
	// Returns ErrProprietarioNotFound when no owner matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Proprietario, error)

	// ExistsByID reports whether an owner with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
