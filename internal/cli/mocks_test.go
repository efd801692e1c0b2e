package cli

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/models"
)

type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) GetArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artifact), args.Error(1)
}

type MockContractDeployer struct {
	mock.Mock
}

func (m *MockContractDeployer) Deploy(ctx context.Context, artifact *models.Artifact, params []any) (*models.PendingDeployment, error) {
	args := m.Called(ctx, artifact, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PendingDeployment), args.Error(1)
}

func (m *MockContractDeployer) DeployProxy(ctx context.Context, artifact *models.Artifact, params []any, opts domain.ProxyOptions) (*models.PendingDeployment, error) {
	args := m.Called(ctx, artifact, params, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PendingDeployment), args.Error(1)
}

func (m *MockContractDeployer) Confirm(ctx context.Context, pending *models.PendingDeployment) (*models.Deployment, error) {
	args := m.Called(ctx, pending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

type MockDeploymentRepository struct {
	mock.Mock
}

func (m *MockDeploymentRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	return m.Called(ctx, deployment).Error(0)
}

func (m *MockDeploymentRepository) ListDeployments(ctx context.Context) ([]*models.Deployment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deployment), args.Error(1)
}

func (m *MockDeploymentRepository) GetImplementation(ctx context.Context, bytecodeHash string) (*models.ContractRecord, error) {
	args := m.Called(ctx, bytecodeHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContractRecord), args.Error(1)
}

func (m *MockDeploymentRepository) SaveImplementation(ctx context.Context, record *models.ContractRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockDeploymentRepository) GetAdmin(ctx context.Context) (*models.ContractRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContractRecord), args.Error(1)
}

func (m *MockDeploymentRepository) SaveAdmin(ctx context.Context, record *models.ContractRecord) error {
	return m.Called(ctx, record).Error(0)
}

type MockDeploymentChecker struct {
	mock.Mock
}

func (m *MockDeploymentChecker) CheckDeployment(ctx context.Context, deployment *models.Deployment) error {
	return m.Called(ctx, deployment).Error(0)
}
