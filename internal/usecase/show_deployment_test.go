package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/models"
	"github.com/energynft/nftdeploy/internal/usecase"
)

func TestShowDeployment(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	older := &models.Deployment{
		Script:         domain.ScriptDeploy,
		Contract:       "EnergyNFT",
		Kind:           domain.ProxyDeploy,
		Address:        "0xAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAa",
		Implementation: "0x1111111111111111111111111111111111111111",
		CreatedAt:      now,
	}
	newer := &models.Deployment{
		Script:    domain.ScriptDeploy,
		Contract:  "EnergyNFT",
		Kind:      domain.ProxyDeploy,
		Address:   "0xBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBbBb",
		CreatedAt: now.Add(time.Hour),
	}

	newUseCase := func() *usecase.ShowDeployment {
		repo := &MockDeploymentRepository{}
		repo.On("ListDeployments", mock.Anything).Return([]*models.Deployment{older, newer}, nil)
		return usecase.NewShowDeployment(repo)
	}

	t.Run("latest by contract name", func(t *testing.T) {
		got, err := newUseCase().Run(ctx, "energynft")
		require.NoError(t, err)
		assert.Same(t, newer, got)
	})

	t.Run("by script name", func(t *testing.T) {
		got, err := newUseCase().Run(ctx, "deploy")
		require.NoError(t, err)
		assert.Same(t, newer, got)
	})

	t.Run("by address ignoring case", func(t *testing.T) {
		got, err := newUseCase().Run(ctx, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
		require.NoError(t, err)
		assert.Same(t, older, got)
	})

	t.Run("by implementation address", func(t *testing.T) {
		got, err := newUseCase().Run(ctx, "0x1111111111111111111111111111111111111111")
		require.NoError(t, err)
		assert.Same(t, older, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := newUseCase().Run(ctx, "BlindBox")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = newUseCase().Run(ctx, "0x9999999999999999999999999999999999999999")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
