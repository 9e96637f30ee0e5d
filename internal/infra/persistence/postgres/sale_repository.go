package postgres

import (
	"context"

	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/repository"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// saleRepository implements the repository.SaleRepository interface using GORM.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// ExistsByVeiculoChassi reports whether any sale references the vehicle.
func (repo *saleRepository) ExistsByVeiculoChassi(ctx context.Context, chassi string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.VendaModel{}).
		Where("veiculo_chassi = ?", chassi).
		Count(&count).Error

	if err != nil {
		return false, domainerrors.NewStoreUnavailableError(err, "failed to check vendas for veiculo")
	}

	return count > 0, nil
}
