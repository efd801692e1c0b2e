package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/models"
	"github.com/energynft/nftdeploy/internal/usecase"
)

// MockArtifactRepository is a mock implementation of ArtifactRepository
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

// MockContractDeployer is a mock implementation of ContractDeployer
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

// MockDeploymentRepository is a mock implementation of DeploymentRepository
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

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

type MockDeploymentChecker struct {
	mock.Mock
}

func (m *MockDeploymentChecker) CheckDeployment(ctx context.Context, deployment *models.Deployment) error {
	return m.Called(ctx, deployment).Error(0)
}
