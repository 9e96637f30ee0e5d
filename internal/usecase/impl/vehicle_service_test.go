package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/repository"
	mockRepo "github.com/CaioSeniuk/AutoManage-Volvo/internal/mocks/repository"
	"github.com/CaioSeniuk/AutoManage-Volvo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// vehicleServiceFixtures holds all test dependencies for vehicle service tests.
type vehicleServiceFixtures struct {
	service     usecase.VehicleUsecase
	veiculoRepo *mockRepo.MockVehicleRepository
	ownerRepo   *mockRepo.MockOwnerRepository
	vendaRepo   *mockRepo.MockSaleRepository
}

func createTestVehicleService(t *testing.T) vehicleServiceFixtures {
	veiculoRepo := mockRepo.NewMockVehicleRepository(t)
	ownerRepo := mockRepo.NewMockOwnerRepository(t)
	vendaRepo := mockRepo.NewMockSaleRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewVehicleService(VehicleServiceParams{
		VeiculoRepo:      veiculoRepo,
		ProprietarioRepo: ownerRepo,
		VendaRepo:        vendaRepo,
		Logger:           logger,
	})

	return vehicleServiceFixtures{
		service:     svc,
		veiculoRepo: veiculoRepo,
		ownerRepo:   ownerRepo,
		vendaRepo:   vendaRepo,
	}
}

func TestVehicleService_List_PassesFilter(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	expected := []*entity.Veiculo{
		{Chassi: "9BWZZZ377VT004251", Quilometragem: 50000},
		{Chassi: "9BWZZZ377VT004252", Quilometragem: 80000},
	}

	fx.veiculoRepo.EXPECT().
		List(ctx, repository.ListVeiculosFilter{VersaoMotor: "D13K540", Page: 2, Limit: 5}).
		Return(expected, nil)

	veiculos, err := fx.service.List(ctx, &usecase.ListVeiculosInput{
		VersaoMotor: "D13K540",
		Page:        2,
		Limit:       5,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, veiculos)
}

func TestVehicleService_GetByChassi_NotFound(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	fx.veiculoRepo.EXPECT().FindByChassi(ctx, "UNKNOWN0000000000").Return(nil, repository.ErrVeiculoNotFound)

	veiculo, err := fx.service.GetByChassi(ctx, "UNKNOWN0000000000")

	assert.Nil(t, veiculo)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVeiculoNotFound))
}

func TestVehicleService_Create_Success(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.veiculoRepo.EXPECT().ExistsByChassi(ctx, "9BWZZZ377VT004251").Return(false, nil)
	fx.ownerRepo.EXPECT().ExistsByID(ctx, ownerID).Return(true, nil)
	fx.veiculoRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Veiculo")).
		Run(func(ctx context.Context, veiculo *entity.Veiculo) {
			assert.Equal(t, "9BWZZZ377VT004251", veiculo.Chassi)
			assert.Equal(t, "FH 540", veiculo.Modelo)
			require.NotNil(t, veiculo.ProprietarioID)
			assert.Equal(t, ownerID, *veiculo.ProprietarioID)
		}).
		Return(nil)

	veiculo, err := fx.service.Create(ctx, &usecase.CreateVeiculoInput{
		Chassi:         "9BWZZZ377VT004251",
		Modelo:         "FH 540",
		VersaoMotor:    "D13K540",
		Quilometragem:  120000,
		AnoFabricacao:  2021,
		Cor:            "Branco",
		Preco:          750000,
		ProprietarioID: &ownerID,
	})

	require.NoError(t, err)
	require.NotNil(t, veiculo)
	assert.Equal(t, "9BWZZZ377VT004251", veiculo.Chassi)
}

func TestVehicleService_Create_NoOwnerSkipsOwnerCheck(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	fx.veiculoRepo.EXPECT().ExistsByChassi(ctx, "9BWZZZ377VT004251").Return(false, nil)
	fx.veiculoRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Veiculo")).Return(nil)

	_, err := fx.service.Create(ctx, &usecase.CreateVeiculoInput{
		Chassi:      "9BWZZZ377VT004251",
		Modelo:      "FH 540",
		VersaoMotor: "D13K540",
	})

	require.NoError(t, err)
	fx.ownerRepo.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
}

func TestVehicleService_Create_DuplicateChassi(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	fx.veiculoRepo.EXPECT().ExistsByChassi(ctx, "9BWZZZ377VT004251").Return(true, nil)

	veiculo, err := fx.service.Create(ctx, &usecase.CreateVeiculoInput{
		Chassi:      "9BWZZZ377VT004251",
		Modelo:      "FH 540",
		VersaoMotor: "D13K540",
	})

	assert.Nil(t, veiculo)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChassiTaken))
	fx.veiculoRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVehicleService_Create_MissingOwner(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.veiculoRepo.EXPECT().ExistsByChassi(ctx, "9BWZZZ377VT004251").Return(false, nil)
	fx.ownerRepo.EXPECT().ExistsByID(ctx, ownerID).Return(false, nil)

	veiculo, err := fx.service.Create(ctx, &usecase.CreateVeiculoInput{
		Chassi:         "9BWZZZ377VT004251",
		Modelo:         "FH 540",
		VersaoMotor:    "D13K540",
		ProprietarioID: &ownerID,
	})

	assert.Nil(t, veiculo)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProprietarioMissing))
	fx.veiculoRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVehicleService_Create_LostRaceSurfacesDuplicate(t *testing.T) {
	// The chain passed, but a concurrent creation won the insert; the store's
	// primary key reports the same duplicate error the chain would.
	fx := createTestVehicleService(t)

	ctx := context.Background()
	fx.veiculoRepo.EXPECT().ExistsByChassi(ctx, "9BWZZZ377VT004251").Return(false, nil)
	fx.veiculoRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Veiculo")).
		Return(domainerrors.ErrChassiTaken.WrapMessage("primary key on chassi"))

	veiculo, err := fx.service.Create(ctx, &usecase.CreateVeiculoInput{
		Chassi:      "9BWZZZ377VT004251",
		Modelo:      "FH 540",
		VersaoMotor: "D13K540",
	})

	assert.Nil(t, veiculo)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChassiTaken))
}

func TestVehicleService_Update_Success(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.ownerRepo.EXPECT().ExistsByID(ctx, ownerID).Return(true, nil)
	fx.veiculoRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Veiculo")).
		Run(func(ctx context.Context, veiculo *entity.Veiculo) {
			assert.Equal(t, "9BWZZZ377VT004251", veiculo.Chassi)
			assert.Equal(t, int64(130000), veiculo.Quilometragem)
		}).
		Return(nil)

	err := fx.service.Update(ctx, &usecase.UpdateVeiculoInput{
		Chassi:         "9BWZZZ377VT004251",
		Modelo:         "FH 540",
		VersaoMotor:    "D13K540",
		Quilometragem:  130000,
		ProprietarioID: &ownerID,
	})

	require.NoError(t, err)
}

func TestVehicleService_Update_MissingOwner(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.ownerRepo.EXPECT().ExistsByID(ctx, ownerID).Return(false, nil)

	err := fx.service.Update(ctx, &usecase.UpdateVeiculoInput{
		Chassi:         "9BWZZZ377VT004251",
		ProprietarioID: &ownerID,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProprietarioMissing))
	fx.veiculoRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestVehicleService_Update_UnknownChassi(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	fx.veiculoRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Veiculo")).
		Return(repository.ErrVeiculoNotFound)

	err := fx.service.Update(ctx, &usecase.UpdateVeiculoInput{Chassi: "UNKNOWN0000000000"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVeiculoNotFound))
}

func TestVehicleService_Delete_Success(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	fx.veiculoRepo.EXPECT().
		FindByChassi(ctx, "9BWZZZ377VT004251").
		Return(&entity.Veiculo{Chassi: "9BWZZZ377VT004251"}, nil)
	fx.vendaRepo.EXPECT().ExistsByVeiculoChassi(ctx, "9BWZZZ377VT004251").Return(false, nil)
	fx.veiculoRepo.EXPECT().Delete(ctx, "9BWZZZ377VT004251").Return(nil)

	err := fx.service.Delete(ctx, "9BWZZZ377VT004251")

	require.NoError(t, err)
}

func TestVehicleService_Delete_RefusedWhileVendasExist(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	fx.veiculoRepo.EXPECT().
		FindByChassi(ctx, "9BWZZZ377VT004251").
		Return(&entity.Veiculo{Chassi: "9BWZZZ377VT004251"}, nil)
	fx.vendaRepo.EXPECT().ExistsByVeiculoChassi(ctx, "9BWZZZ377VT004251").Return(true, nil)

	err := fx.service.Delete(ctx, "9BWZZZ377VT004251")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVeiculoHasVendas))
	fx.veiculoRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestVehicleService_Delete_UnknownChassi(t *testing.T) {
	fx := createTestVehicleService(t)

	ctx := context.Background()
	fx.veiculoRepo.EXPECT().
		FindByChassi(ctx, "UNKNOWN0000000000").
		Return(nil, repository.ErrVeiculoNotFound)

	err := fx.service.Delete(ctx, "UNKNOWN0000000000")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVeiculoNotFound))
}
