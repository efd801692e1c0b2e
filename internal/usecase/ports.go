package usecase

import (
	"context"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/models"
)

// ArtifactRepository resolves contract factories from compiled artifacts
type ArtifactRepository interface {
	GetArtifact(ctx context.Context, name string) (*models.Artifact, error)
}

// ArtifactSelector handles interactive selection between artifacts sharing a name
type ArtifactSelector interface {
	SelectArtifact(ctx context.Context, artifacts []*models.Artifact, prompt string) (*models.Artifact, error)
}

// ContractDeployer sends deployments and waits for their confirmation
type ContractDeployer interface {
	Deploy(ctx context.Context, artifact *models.Artifact, args []any) (*models.PendingDeployment, error)
	DeployProxy(ctx context.Context, artifact *models.Artifact, args []any, opts domain.ProxyOptions) (*models.PendingDeployment, error)
	Confirm(ctx context.Context, pending *models.PendingDeployment) (*models.Deployment, error)
}

// DeploymentChecker verifies a recorded deployment against the chain
type DeploymentChecker interface {
	CheckDeployment(ctx context.Context, deployment *models.Deployment) error
}

// DeploymentRepository persists confirmed deployments and the supporting
// contracts reused by later proxy deployments
type DeploymentRepository interface {
	SaveDeployment(ctx context.Context, deployment *models.Deployment) error
	ListDeployments(ctx context.Context) ([]*models.Deployment, error)
	GetImplementation(ctx context.Context, bytecodeHash string) (*models.ContractRecord, error)
	SaveImplementation(ctx context.Context, record *models.ContractRecord) error
	GetAdmin(ctx context.Context) (*models.ContractRecord, error)
	SaveAdmin(ctx context.Context, record *models.ContractRecord) error
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Deployment stages reported to the progress sink
const (
	StageResolving  = "resolving"
	StageDeploying  = "deploying"
	StageConfirming = "confirming"
	StageCompleted  = "completed"
)
