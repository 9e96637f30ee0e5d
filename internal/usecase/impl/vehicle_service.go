package impl

import (
	"context"
	"log/slog"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/repository"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/validation"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vehicleService implements the VehicleUsecase interface. The validation
// chain is assembled once at construction; it is stateless between calls, so
// one instance serves concurrent requests.
type vehicleService struct {
	veiculoRepo      repository.VehicleRepository
	proprietarioRepo repository.OwnerRepository
	vendaRepo        repository.SaleRepository
	chain            *validation.Chain
	logger           *slog.Logger
}

// VehicleServiceParams holds dependencies for vehicleService, injected by Fx.
type VehicleServiceParams struct {
	fx.In

	VeiculoRepo      repository.VehicleRepository
	ProprietarioRepo repository.OwnerRepository
	VendaRepo        repository.SaleRepository
	Logger           *slog.Logger
}

// NewVehicleService is the constructor for vehicleService. The chain order
// is a policy decision: chassis uniqueness is checked before owner
// existence, so a duplicate chassis is always reported as a duplicate even
// when the owner reference is also broken.
func NewVehicleService(params VehicleServiceParams) usecase.VehicleUsecase {
	chain := validation.NewChain(
		validation.NewChassiUnico(params.VeiculoRepo),
		validation.NewProprietarioExistente(params.ProprietarioRepo),
	)

	return &vehicleService{
		veiculoRepo:      params.VeiculoRepo,
		proprietarioRepo: params.ProprietarioRepo,
		vendaRepo:        params.VendaRepo,
		chain:            chain,
		logger:           params.Logger,
	}
}

// List retrieves vehicles ordered by mileage, optionally filtered by engine version.
func (srv *vehicleService) List(ctx context.Context, input *usecase.ListVeiculosInput) ([]*entity.Veiculo, error) {
	veiculos, err := srv.veiculoRepo.List(ctx, repository.ListVeiculosFilter{
		VersaoMotor: input.VersaoMotor,
		Page:        input.Page,
		Limit:       input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list veiculos")
	}

	return veiculos, nil
}

// GetByChassi retrieves a vehicle with its owner preloaded.
func (srv *vehicleService) GetByChassi(ctx context.Context, chassi string) (*entity.Veiculo, error) {
	veiculo, err := srv.veiculoRepo.FindByChassi(ctx, chassi)
	if err != nil {
		if errors.Is(err, repository.ErrVeiculoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVeiculoNotFound, "unknown chassi")
		}

		return nil, errors.Wrap(err, "failed to find veiculo")
	}

	return veiculo, nil
}

// Create runs the validation chain and persists the vehicle only when every
// rule passes. The chain reads, never writes; the insert is a separate step,
// and the store's constraints settle any race between concurrent creations.
func (srv *vehicleService) Create(ctx context.Context, input *usecase.CreateVeiculoInput) (*entity.Veiculo, error) {
	veiculo := &entity.Veiculo{
		Chassi:         input.Chassi,
		Modelo:         input.Modelo,
		VersaoMotor:    input.VersaoMotor,
		Quilometragem:  input.Quilometragem,
		AnoFabricacao:  input.AnoFabricacao,
		Cor:            input.Cor,
		Preco:          input.Preco,
		ProprietarioID: input.ProprietarioID,
	}

	if err := srv.chain.Validate(ctx, veiculo); err != nil {
		srv.logger.Warn("Veiculo rejected by validation chain", slog.String("chassi", input.Chassi), slog.Any("error", err))

		return nil, err
	}

	if err := srv.veiculoRepo.Create(ctx, veiculo); err != nil {
		return nil, errors.Wrap(err, "failed to create veiculo")
	}

	srv.logger.Info("Veiculo created", slog.String("chassi", veiculo.Chassi), slog.String("modelo", veiculo.Modelo))

	return veiculo, nil
}

// Update modifies an existing vehicle. The owner reference, when set, must
// point at an existing owner.
func (srv *vehicleService) Update(ctx context.Context, input *usecase.UpdateVeiculoInput) error {
	if input.ProprietarioID != nil {
		exists, err := srv.proprietarioRepo.ExistsByID(ctx, *input.ProprietarioID)
		if err != nil {
			return errors.Wrap(err, "failed to check proprietario existence")
		}
		if !exists {
			return errors.Wrap(domainerrors.ErrProprietarioMissing, "proprietario does not exist")
		}
	}

	veiculo := &entity.Veiculo{
		Chassi:         input.Chassi,
		Modelo:         input.Modelo,
		VersaoMotor:    input.VersaoMotor,
		Quilometragem:  input.Quilometragem,
		AnoFabricacao:  input.AnoFabricacao,
		Cor:            input.Cor,
		Preco:          input.Preco,
		ProprietarioID: input.ProprietarioID,
	}

	if err := srv.veiculoRepo.Update(ctx, veiculo); err != nil {
		if errors.Is(err, repository.ErrVeiculoNotFound) {
			return errors.Wrap(domainerrors.ErrVeiculoNotFound, "unknown chassi")
		}

		return errors.Wrap(err, "failed to update veiculo")
	}

	srv.logger.Info("Veiculo updated", slog.String("chassi", input.Chassi))

	return nil
}

// Delete removes a vehicle, refusing while sales reference it.
func (srv *vehicleService) Delete(ctx context.Context, chassi string) error {
	if _, err := srv.veiculoRepo.FindByChassi(ctx, chassi); err != nil {
		if errors.Is(err, repository.ErrVeiculoNotFound) {
			return errors.Wrap(domainerrors.ErrVeiculoNotFound, "unknown chassi")
		}

		return errors.Wrap(err, "failed to find veiculo")
	}

	hasVendas, err := srv.vendaRepo.ExistsByVeiculoChassi(ctx, chassi)
	if err != nil {
		return errors.Wrap(err, "failed to check vendas for veiculo")
	}
	if hasVendas {
		return errors.Wrap(domainerrors.ErrVeiculoHasVendas, "veiculo has recorded vendas")
	}

	if err := srv.veiculoRepo.Delete(ctx, chassi); err != nil {
		if errors.Is(err, repository.ErrVeiculoNotFound) {
			return errors.Wrap(domainerrors.ErrVeiculoNotFound, "unknown chassi")
		}

		return errors.Wrap(err, "failed to delete veiculo")
	}

	srv.logger.Info("Veiculo deleted", slog.String("chassi", chassi))

	return nil
}
