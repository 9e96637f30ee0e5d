package postgres

import (
	"context"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/repository"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// vehicleRepository implements the repository.VehicleRepository interface using GORM.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

// List retrieves vehicles matching the filter, ordered by mileage ascending.
func (repo *vehicleRepository) List(ctx context.Context, filter repository.ListVeiculosFilter) ([]*entity.Veiculo, error) {
	page := filter.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	query := repo.db.WithContext(ctx).Model(&model.VeiculoModel{})
	if filter.VersaoMotor != "" {
		query = query.Where("versao_motor = ?", filter.VersaoMotor)
	}

	var veiculosM []*model.VeiculoModel
	err := query.
		Order("quilometragem ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&veiculosM).Error
	if err != nil {
		return nil, domainerrors.NewStoreUnavailableError(err, "failed to list veiculos")
	}

	veiculos := make([]*entity.Veiculo, 0, len(veiculosM))
	for _, m := range veiculosM {
		veiculos = append(veiculos, toVeiculoDomain(m))
	}

	return veiculos, nil
}

// FindByChassi retrieves a single vehicle with its owner preloaded.
func (repo *vehicleRepository) FindByChassi(ctx context.Context, chassi string) (*entity.Veiculo, error) {
	var veiculoM model.VeiculoModel
	err := repo.db.WithContext(ctx).
		Preload("Proprietario").
		Where("chassi = ?", chassi).
		First(&veiculoM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVeiculoNotFound
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to find veiculo by chassi")
	}

	return toVeiculoDomain(&veiculoM), nil
}

// ExistsByChassi reports whether a vehicle with the given chassis exists.
func (repo *vehicleRepository) ExistsByChassi(ctx context.Context, chassi string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.VeiculoModel{}).
		Where("chassi = ?", chassi).
		Count(&count).Error

	if err != nil {
		return false, domainerrors.NewStoreUnavailableError(err, "failed to check chassi existence")
	}

	return count > 0, nil
}

// Create persists a new vehicle. Constraint violations translate to the same
// domain errors the validation chain reports, so a race between two
// concurrent creations resolves to the store's verdict.
func (repo *vehicleRepository) Create(ctx context.Context, veiculo *entity.Veiculo) error {
	veiculoM := fromVeiculoDomain(veiculo)

	if err := repo.db.WithContext(ctx).Create(veiculoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrChassiTaken.WrapMessage("chassi already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProprietarioMissing.WrapMessage("invalid proprietario reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required veiculo information")
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to create veiculo")
	}

	veiculo.CreatedAt = veiculoM.CreatedAt
	veiculo.UpdatedAt = veiculoM.UpdatedAt

	return nil
}

// Update modifies an existing vehicle identified by its chassis.
func (repo *vehicleRepository) Update(ctx context.Context, veiculo *entity.Veiculo) error {
	veiculoM := fromVeiculoDomain(veiculo)

	result := repo.db.WithContext(ctx).
		Model(&model.VeiculoModel{}).
		Where("chassi = ?", veiculo.Chassi).
		Updates(map[string]any{
			"modelo":          veiculoM.Modelo,
			"versao_motor":    veiculoM.VersaoMotor,
			"quilometragem":   veiculoM.Quilometragem,
			"ano_fabricacao":  veiculoM.AnoFabricacao,
			"cor":             veiculoM.Cor,
			"preco":           veiculoM.Preco,
			"proprietario_id": veiculoM.ProprietarioID,
		})

	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProprietarioMissing.WrapMessage("invalid proprietario reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required veiculo information")
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to update veiculo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVeiculoNotFound
	}

	return nil
}

// Delete removes a vehicle by chassis.
func (repo *vehicleRepository) Delete(ctx context.Context, chassi string) error {
	result := repo.db.WithContext(ctx).
		Where("chassi = ?", chassi).
		Delete(&model.VeiculoModel{})

	if err := result.Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVeiculoHasVendas.WrapMessage("veiculo has recorded vendas")
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to delete veiculo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVeiculoNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVeiculoDomain converts a GORM VeiculoModel to a domain Veiculo entity.
func toVeiculoDomain(data *model.VeiculoModel) *entity.Veiculo {
	if data == nil {
		return nil
	}

	return &entity.Veiculo{
		Chassi:         data.Chassi,
		Modelo:         data.Modelo,
		VersaoMotor:    data.VersaoMotor,
		Quilometragem:  data.Quilometragem,
		AnoFabricacao:  data.AnoFabricacao,
		Cor:            data.Cor,
		Preco:          data.Preco,
		ProprietarioID: data.ProprietarioID,
		Proprietario:   toProprietarioDomain(data.Proprietario),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromVeiculoDomain converts a domain Veiculo entity to a GORM VeiculoModel for persistence.
func fromVeiculoDomain(data *entity.Veiculo) *model.VeiculoModel {
	if data == nil {
		return nil
	}

	return &model.VeiculoModel{
		Chassi:         data.Chassi,
		Modelo:         data.Modelo,
		VersaoMotor:    data.VersaoMotor,
		Quilometragem:  data.Quilometragem,
		AnoFabricacao:  data.AnoFabricacao,
		Cor:            data.Cor,
		Preco:          data.Preco,
		ProprietarioID: data.ProprietarioID,
	}
}
