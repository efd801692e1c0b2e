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

func TestVerifyDeployment(t *testing.T) {
	now := time.Now()
	healthy := &models.Deployment{Contract: "BlindBox", Kind: domain.ProxyDeploy, Address: "0x01", CreatedAt: now}
	gone := &models.Deployment{Contract: "MultiTransfer", Kind: domain.PlainDeploy, Address: "0x02", CreatedAt: now.Add(time.Minute)}

	t.Run("reports every deployment", func(t *testing.T) {
		repo := &MockDeploymentRepository{}
		repo.On("ListDeployments", mock.Anything).Return([]*models.Deployment{gone, healthy}, nil)
		checker := &MockDeploymentChecker{}
		checker.On("CheckDeployment", mock.Anything, healthy).Return(nil)
		checker.On("CheckDeployment", mock.Anything, gone).Return(domain.ErrNoCodeAfterDeploy)
		sink := &MockProgressSink{}

		uc := usecase.NewVerifyDeployment(usecase.NewListDeployments(repo), checker, sink)
		result, err := uc.Run(context.Background(), usecase.ListDeploymentsParams{})
		require.NoError(t, err)

		require.Len(t, result.Results, 2)
		assert.Equal(t, 1, result.Failed)
		assert.Same(t, healthy, result.Results[0].Deployment)
		assert.NoError(t, result.Results[0].Err)
		assert.ErrorIs(t, result.Results[1].Err, domain.ErrNoCodeAfterDeploy)
		checker.AssertExpectations(t)
	})

	t.Run("filters before checking", func(t *testing.T) {
		repo := &MockDeploymentRepository{}
		repo.On("ListDeployments", mock.Anything).Return([]*models.Deployment{gone, healthy}, nil)
		checker := &MockDeploymentChecker{}
		checker.On("CheckDeployment", mock.Anything, healthy).Return(nil)

		uc := usecase.NewVerifyDeployment(usecase.NewListDeployments(repo), checker, usecase.NopProgress{})
		result, err := uc.Run(context.Background(), usecase.ListDeploymentsParams{Kind: domain.ProxyDeploy})
		require.NoError(t, err)

		assert.Len(t, result.Results, 1)
		assert.Zero(t, result.Failed)
		checker.AssertNotCalled(t, "CheckDeployment", mock.Anything, gone)
	})

	t.Run("cancelled context stops the run", func(t *testing.T) {
		repo := &MockDeploymentRepository{}
		repo.On("ListDeployments", mock.Anything).Return([]*models.Deployment{healthy}, nil)
		checker := &MockDeploymentChecker{}
		checker.On("CheckDeployment", mock.Anything, healthy).Return(context.Canceled)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		uc := usecase.NewVerifyDeployment(usecase.NewListDeployments(repo), checker, usecase.NopProgress{})
		_, err := uc.Run(ctx, usecase.ListDeploymentsParams{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
