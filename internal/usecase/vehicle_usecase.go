package usecase

import (
	"context"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListVeiculosInput narrows and pages vehicle listings.
type ListVeiculosInput struct {
	VersaoMotor string
	Page        int
	Limit       int
}

// CreateVeiculoInput defines the data required to register a vehicle.
type CreateVeiculoInput struct {
	Chassi         string
	Modelo         string
	VersaoMotor    string
	Quilometragem  int64
	AnoFabricacao  int
	Cor            string
	Preco          float64
	ProprietarioID *uuid.UUID
}

// UpdateVeiculoInput defines the data for updating an existing vehicle.
// Chassi identifies the vehicle and cannot change.
type UpdateVeiculoInput struct {
	Chassi         string
	Modelo         string
	VersaoMotor    string
	Quilometragem  int64
	AnoFabricacao  int
	Cor            string
	Preco          float64
	ProprietarioID *uuid.UUID
}

// VehicleUsecase defines the interface for inventory business operations.
type VehicleUsecase interface {
	// List retrieves vehicles ordered by mileage, optionally filtered by
	// engine version.
	List(ctx context.Context, input *ListVeiculosInput) ([]*entity.Veiculo, error)

	// GetByChassi retrieves a vehicle with its owner.
	GetByChassi(ctx context.Context, chassi string) (*entity.Veiculo, error)

	// Create runs the validation chain and persists the vehicle only when
	// every rule passes.
	Create(ctx context.Context, input *CreateVeiculoInput) (*entity.Veiculo, error)

	// Update modifies an existing vehicle; an owner reference, when set,
	// must exist.
	Update(ctx context.Context, input *UpdateVeiculoInput) error

	// Delete removes a vehicle, refusing while sales reference it.
	Delete(ctx context.Context, chassi string) error
}
