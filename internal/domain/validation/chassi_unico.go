package validation

import (
	"context"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/repository"
	"github.com/pkg/errors"
)

// chassiUnico rejects vehicles whose chassis is already registered.
type chassiUnico struct {
	veiculos repository.VehicleRepository
}

// NewChassiUnico is the constructor for the chassis-uniqueness validator.
func NewChassiUnico(veiculos repository.VehicleRepository) Validator {
	return &chassiUnico{veiculos: veiculos}
}

func (v *chassiUnico) Validate(ctx context.Context, veiculo *entity.Veiculo) error {
	exists, err := v.veiculos.ExistsByChassi(ctx, veiculo.Chassi)
	if err != nil {
		// Store faults pass through as-is so they are never mistaken for a
		// validation failure.
		return errors.Wrap(err, "failed to check chassi uniqueness")
	}
	if exists {
		return domainerrors.ErrChassiTaken.WrapMessage("chassi " + veiculo.Chassi + " already registered")
	}

	return nil
}
