package validation

import (
	"context"
	"testing"

	"github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/entity"
	domainerrors "github.com/CaioSeniuk/AutoManage-Volvo/internal/domain/errors"
	mockRepo "github.com/CaioSeniuk/AutoManage-Volvo/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVeiculo(ownerID *uuid.UUID) *entity.Veiculo {
	return &entity.Veiculo{
		Chassi:         "9BWZZZ377VT004251",
		Modelo:         "FH 540",
		VersaoMotor:    "D13K540",
		Quilometragem:  120000,
		AnoFabricacao:  2021,
		ProprietarioID: ownerID,
	}
}

func TestChain_AllRulesPass(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	veiculo := testVeiculo(&ownerID)

	veiculoRepo := mockRepo.NewMockVehicleRepository(t)
	ownerRepo := mockRepo.NewMockOwnerRepository(t)

	veiculoRepo.EXPECT().ExistsByChassi(ctx, veiculo.Chassi).Return(false, nil)
	ownerRepo.EXPECT().ExistsByID(ctx, ownerID).Return(true, nil)

	chain := NewChain(
		NewChassiUnico(veiculoRepo),
		NewProprietarioExistente(ownerRepo),
	)

	assert.NoError(t, chain.Validate(ctx, veiculo))
}

func TestChain_FirstFailureShortCircuits(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	veiculo := testVeiculo(&ownerID)

	veiculoRepo := mockRepo.NewMockVehicleRepository(t)
	// No expectations: the owner rule must never run once the chassis rule fails.
	ownerRepo := mockRepo.NewMockOwnerRepository(t)

	veiculoRepo.EXPECT().ExistsByChassi(ctx, veiculo.Chassi).Return(true, nil)

	chain := NewChain(
		NewChassiUnico(veiculoRepo),
		NewProprietarioExistente(ownerRepo),
	)

	err := chain.Validate(ctx, veiculo)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrChassiTaken))
}

func TestChain_OrderDecidesReportedFailure(t *testing.T) {
	// Both rules are violated; the reported reason is whichever rule was
	// placed first when the chain was assembled.
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("chassi rule first", func(t *testing.T) {
		veiculo := testVeiculo(&ownerID)
		veiculoRepo := mockRepo.NewMockVehicleRepository(t)
		ownerRepo := mockRepo.NewMockOwnerRepository(t)

		veiculoRepo.EXPECT().ExistsByChassi(ctx, veiculo.Chassi).Return(true, nil)

		chain := NewChain(
			NewChassiUnico(veiculoRepo),
			NewProprietarioExistente(ownerRepo),
		)

		err := chain.Validate(ctx, veiculo)
		assert.True(t, errors.Is(err, domainerrors.ErrChassiTaken))
	})

	t.Run("owner rule first", func(t *testing.T) {
		veiculo := testVeiculo(&ownerID)
		veiculoRepo := mockRepo.NewMockVehicleRepository(t)
		ownerRepo := mockRepo.NewMockOwnerRepository(t)

		ownerRepo.EXPECT().ExistsByID(ctx, ownerID).Return(false, nil)

		chain := NewChain(
			NewProprietarioExistente(ownerRepo),
			NewChassiUnico(veiculoRepo),
		)

		err := chain.Validate(ctx, veiculo)
		assert.True(t, errors.Is(err, domainerrors.ErrProprietarioMissing))
	})
}

func TestChain_EmptyChainPasses(t *testing.T) {
	chain := NewChain()

	assert.NoError(t, chain.Validate(context.Background(), testVeiculo(nil)))
}

func TestChassiUnico_StoreFaultPassesThrough(t *testing.T) {
	ctx := context.Background()
	veiculo := testVeiculo(nil)

	veiculoRepo := mockRepo.NewMockVehicleRepository(t)
	storeErr := domainerrors.NewStoreUnavailableError(errors.New("connection refused"), "exists by chassi")
	veiculoRepo.EXPECT().ExistsByChassi(ctx, veiculo.Chassi).Return(false, storeErr)

	err := NewChassiUnico(veiculoRepo).Validate(ctx, veiculo)
	require.Error(t, err)
	// A store fault is not a validation verdict.
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	assert.False(t, errors.Is(err, domainerrors.ErrChassiTaken))
}

func TestProprietarioExistente_NoReferencePasses(t *testing.T) {
	// No owner reference means nothing to check; the repository is not touched.
	ownerRepo := mockRepo.NewMockOwnerRepository(t)

	err := NewProprietarioExistente(ownerRepo).Validate(context.Background(), testVeiculo(nil))
	assert.NoError(t, err)
}

func TestProprietarioExistente_StoreFaultPassesThrough(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	veiculo := testVeiculo(&ownerID)

	ownerRepo := mockRepo.NewMockOwnerRepository(t)
	storeErr := domainerrors.NewStoreUnavailableError(errors.New("connection refused"), "exists by id")
	ownerRepo.EXPECT().ExistsByID(ctx, ownerID).Return(false, storeErr)

	err := NewProprietarioExistente(ownerRepo).Validate(ctx, veiculo)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	assert.False(t, errors.Is(err, domainerrors.ErrProprietarioMissing))
}
