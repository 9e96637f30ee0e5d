package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/repository"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/service"
	mockRepo "github.com/CaioSeniuk/AutoManage-Volvo/internal/mocks/repository"
	mockSvc "github.com/CaioSeniuk/AutoManage-Volvo/internal/mocks/service"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	usuario := &entity.Usuario{
		ID:           uuid.New(),
		Username:     "caio",
		PasswordHash: "stored_hash",
		Role:         entity.RoleVendedor,
	}
	expiresAt := time.Now().UTC().Add(24 * time.Hour)

	fx.userRepo.EXPECT().FindByUsername(ctx, "caio").Return(usuario, nil)
	fx.hasher.EXPECT().Check("senha123", "stored_hash").Return(true)
	fx.tokenService.EXPECT().
		Issue(usuario.ID, "caio", "Vendedor").
		Return(&service.IssuedToken{Token: "signed.jwt.token", ExpiresAt: expiresAt}, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "caio", Password: "senha123"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, "caio", output.Username)
	assert.Equal(t, "Vendedor", output.Role)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUsuarioNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	usuario := &entity.Usuario{
		ID:           uuid.New(),
		Username:     "caio",
		PasswordHash: "stored_hash",
		Role:         entity.RoleVendedor,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "caio").Return(usuario, nil)
	fx.hasher.EXPECT().Check("wrong", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "caio", Password: "wrong"})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_FailureReasonsAreIndistinguishable(t *testing.T) {
	// Unknown username and wrong password must surface as the same error, so
	// a caller cannot tell which credential was wrong.
	ctx := context.Background()

	unknownFx := createTestAuthService(t)
	unknownFx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUsuarioNotFound)
	_, unknownErr := unknownFx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "x"})

	wrongFx := createTestAuthService(t)
	wrongFx.userRepo.EXPECT().FindByUsername(ctx, "caio").Return(&entity.Usuario{
		ID:           uuid.New(),
		Username:     "caio",
		PasswordHash: "stored_hash",
	}, nil)
	wrongFx.hasher.EXPECT().Check("x", "stored_hash").Return(false)
	_, wrongErr := wrongFx.service.Login(ctx, &usecase.LoginInput{Username: "caio", Password: "x"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)

	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongErr, &wrongApp))
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
}

func TestAuthService_Login_StoreFault(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storeErr := domainerrors.NewStoreUnavailableError(errors.New("connection refused"), "find by username")
	fx.userRepo.EXPECT().FindByUsername(ctx, "caio").Return(nil, storeErr)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "caio", Password: "senha123"})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "novo").Return(false, nil)
	fx.hasher.EXPECT().Hash("senha123").Return("hashed_blob", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Usuario")).
		Run(func(ctx context.Context, usuario *entity.Usuario) {
			assert.Equal(t, "novo", usuario.Username)
			assert.Equal(t, "hashed_blob", usuario.PasswordHash)
			assert.Equal(t, entity.RoleAdmin, usuario.Role)
		}).
		Return(nil)

	err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "novo",
		Password: "senha123",
		Role:     "Admin",
	})

	require.NoError(t, err)
}

func TestAuthService_Register_DefaultsRole(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "novo").Return(false, nil)
	fx.hasher.EXPECT().Hash("senha123").Return("hashed_blob", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Usuario")).
		Run(func(ctx context.Context, usuario *entity.Usuario) {
			assert.Equal(t, entity.RoleVendedor, usuario.Role)
		}).
		Return(nil)

	err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "novo", Password: "senha123"})

	require.NoError(t, err)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)

	// Neither the hasher nor Create may run: a duplicate leaves the store
	// untouched and no hashing work happens.
	ctx := context.Background()
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "caio").Return(true, nil)

	err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "caio", Password: "senha123"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "novo").Return(false, nil)
	fx.hasher.EXPECT().Hash("senha123").Return("", errors.New("bcrypt: password too long"))

	err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "novo", Password: "senha123"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_LostRaceSurfacesDuplicate(t *testing.T) {
	// The pre-check passed but a concurrent registration won the insert; the
	// store's unique constraint reports the same duplicate error.
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "corrida").Return(false, nil)
	fx.hasher.EXPECT().Hash("senha123").Return("hashed_blob", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Usuario")).
		Return(domainerrors.ErrUsernameTaken.WrapMessage("unique constraint on username"))

	err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "corrida", Password: "senha123"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}
