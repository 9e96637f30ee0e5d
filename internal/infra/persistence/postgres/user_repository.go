// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByUsername retrieves a single account by its login identifier.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	var usuarioM model.UsuarioModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&usuarioM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUsuarioNotFound
		}

		return nil, domainerrors.NewStoreUnavailableError(err, "failed to find usuario by username")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUsuarioDomain(&usuarioM), nil
}

// ExistsByUsername reports whether an account with the given username exists.
func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UsuarioModel{}).
		Where("username = ?", username).
		Count(&count).Error

	if err != nil {
		return false, domainerrors.NewStoreUnavailableError(err, "failed to check username existence")
	}

	return count > 0, nil
}

// Create persists a new account. The unique index on username is the
// authoritative duplicate check; a race loser surfaces the same domain error
// the advisory pre-check would have reported.
func (repo *userRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	usuarioM := fromUsuarioDomain(usuario)

	if err := repo.db.WithContext(ctx).Create(usuarioM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewStoreUnavailableError(err, "failed to create usuario")
	}

	// Update the entity with the generated ID and timestamps
	usuario.ID = usuarioM.ID
	usuario.CreatedAt = usuarioM.CreatedAt
	usuario.UpdatedAt = usuarioM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toUsuarioDomain converts a GORM UsuarioModel to a domain Usuario entity.
func toUsuarioDomain(data *model.UsuarioModel) *entity.Usuario {
	if data == nil {
		return nil
	}

	return &entity.Usuario{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUsuarioDomain converts a domain Usuario entity to a GORM UsuarioModel for persistence.
func fromUsuarioDomain(data *entity.Usuario) *model.UsuarioModel {
	if data == nil {
		return nil
	}

	return &model.UsuarioModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
	}
}
