package validation

import (
	"context"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/repository"
	"github.com/pkg/errors"
)

// proprietarioExistente rejects vehicles whose owner reference points at a
// nonexistent owner. Vehicles without an owner reference pass trivially.
type proprietarioExistente struct {
	proprietarios repository.OwnerRepository
}

// NewProprietarioExistente is the constructor for the owner-existence validator.
func NewProprietarioExistente(proprietarios repository.OwnerRepository) Validator {
	return &proprietarioExistente{proprietarios: proprietarios}
}

func (v *proprietarioExistente) Validate(ctx context.Context, veiculo *entity.Veiculo) error {
	if !veiculo.HasProprietario() {
		return nil
	}

	exists, err := v.proprietarios.ExistsByID(ctx, *veiculo.ProprietarioID)
	if err != nil {
		return errors.Wrap(err, "failed to check proprietario existence")
	}
	if !exists {
		return domainerrors.ErrProprietarioMissing.WrapMessage("proprietario " + veiculo.ProprietarioID.String() + " does not exist")
	}

	return nil
}
