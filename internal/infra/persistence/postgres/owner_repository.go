package postgres

import (
	"context"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/repository"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownerRepository implements the repository.OwnerRepository interface using GORM.
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

// FindByID retrieves a single owner by ID.
func (repo *ownerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Proprietario, error) {
	var proprietarioM model.ProprietarioModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&proprietarioM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProprietarioNotFound
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to find proprietario by id")
	}

	return toProprietarioDomain(&proprietarioM), nil
}

// ExistsByID reports whether an owner with the given ID exists.
func (repo *ownerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ProprietarioModel{}).
		Where("id = ?", id).
		Count(&count).Error

	if err != nil {
		return false, domainerrors.NewStoreUnavailableError(err, "failed to check proprietario existence")
	}

	return count > 0, nil
}

// toProprietarioDomain converts a GORM ProprietarioModel to a domain Proprietario entity.
func toProprietarioDomain(data *model.ProprietarioModel) *entity.Proprietario {
	if data == nil {
		return nil
	}

	return &entity.Proprietario{
		ID:        data.ID,
		Nome:      data.Nome,
		Documento: data.Documento,
		Telefone:  data.Telefone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
