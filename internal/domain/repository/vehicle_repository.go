package repository

import (
	"context"
	"errors"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
)

// ErrVeiculoNotFound is a domain-specific error returned when a vehicle is not found.
var ErrVeiculoNotFound = errors.New("veiculo not found")

// ListVeiculosFilter narrows and pages vehicle listings. Results are always
// ordered by mileage ascending.
type ListVeiculosFilter struct {
	VersaoMotor string // Optional engine-version filter; empty matches all.
	Page        int    // 1-based page number.
	Limit       int    // Page size.
}

// VehicleRepository defines the standard operations for vehicle persistence.
type VehicleRepository interface {
	// List retrieves vehicles matching the filter, ordered by mileage.
	List(ctx context.Context, filter ListVeiculosFilter) ([]*entity.Veiculo, error)

	// FindByChassi retrieves a single vehicle with its owner preloaded.
	// Returns ErrVeiculoNotFound when no vehicle matches.
	FindByChassi(ctx context.Context, chassi string) (*entity.Veiculo, error)

	// ExistsByChassi reports whether a vehicle with the given chassis exists.
	ExistsByChassi(ctx context.Context, chassi string) (bool, error)

	// Create persists a new vehicle. The store's constraints on chassis
	// uniqueness and owner reference are authoritative.
	Create(ctx context.Context, veiculo *entity.Veiculo) error

	// Update modifies an existing vehicle identified by its chassis.
	Update(ctx context.Context, veiculo *entity.Veiculo) error

	// Delete removes a vehicle by chassis.
	Delete(ctx context.Context, chassi string) error
}
