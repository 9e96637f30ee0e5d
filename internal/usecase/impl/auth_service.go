// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/repository"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/service"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It orchestrates the
// credential store, the password hasher and the token service; it holds no
// request-crossing state and is safe for concurrent use.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Login verifies the credentials and mints a session token. An unknown
// username and a wrong password surface as the same error, so callers cannot
// enumerate accounts. Login performs no writes.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	usuario, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNotFound) {
			srv.logger.Warn("Login attempt for unknown username", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
		}

		return nil, errors.Wrap(err, "failed to look up usuario for login")
	}

	if !srv.hasher.Check(input.Password, usuario.PasswordHash) {
		srv.logger.Warn("Login attempt with wrong password", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	issued, err := srv.tokenService.Issue(usuario.ID, usuario.Username, usuario.Role.String())
	if err != nil {
		srv.logger.Error("Failed to issue session token", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.logger.Info("Login successful", slog.String("username", usuario.Username), slog.String("role", usuario.Role.String()))

	return &usecase.LoginOutput{
		Token:     issued.Token,
		Username:  usuario.Username,
		Role:      usuario.Role.String(),
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

// Register creates a new account. The uniqueness pre-check gives early
// feedback; the store's unique constraint remains the final word, so a lost
// race surfaces the same error. Exactly one insert happens, only on success.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	exists, err := srv.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return errors.Wrap(err, "failed to check username availability")
	}
	if exists {
		srv.logger.Warn("Registration attempt with taken username", slog.String("username", input.Username))

		return errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	usuario := &entity.Usuario{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         entity.Role(input.Role).OrDefault(),
	}

	if err := srv.userRepo.Create(ctx, usuario); err != nil {
		return errors.Wrap(err, "failed to create usuario")
	}

	srv.logger.Info("Registration completed", slog.String("username", usuario.Username), slog.String("role", usuario.Role.String()))

	return nil
}
