package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/config"
	"github.com/energynft/nftdeploy/internal/domain/models"
)

// DeployContract is the use case behind every deployment script: resolve the
// factory, deploy plainly or behind a proxy, wait for confirmation.
type DeployContract struct {
	config    *config.RuntimeConfig
	artifacts ArtifactRepository
	deployer  ContractDeployer
	repo      DeploymentRepository
	sink      ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	artifacts ArtifactRepository,
	deployer ContractDeployer,
	repo DeploymentRepository,
	sink ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		artifacts: artifacts,
		deployer:  deployer,
		repo:      repo,
		sink:      sink,
		log:       log,
	}
}

// Run executes script and returns the confirmed deployment
func (uc *DeployContract) Run(ctx context.Context, script domain.Script) (*models.Deployment, error) {
	log := uc.log.With("script", script.Name, "contract", script.Contract)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageResolving,
		Message: fmt.Sprintf("Resolving %s", script.Contract),
		Spinner: true,
	})

	artifact, err := uc.artifacts.GetArtifact(ctx, script.Contract)
	if err != nil {
		return nil, fmt.Errorf("failed to get contract factory for %s: %w", script.Contract, err)
	}
	log.Debug("resolved artifact", "artifact", artifact.FullyQualifiedName(), "path", artifact.Path)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageDeploying,
		Message: fmt.Sprintf("Deploying %s", script.Contract),
		Spinner: true,
	})

	args := script.Args
	if args == nil {
		args = []any{}
	}

	var pending *models.PendingDeployment
	switch script.Kind {
	case domain.ProxyDeploy:
		opts := domain.ProxyOptions{
			Initializer: script.Initializer,
			Kind:        uc.proxyKind(),
		}
		pending, err = uc.deployer.DeployProxy(ctx, artifact, args, opts)
	default:
		pending, err = uc.deployer.Deploy(ctx, artifact, args)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", script.Contract, err)
	}
	log.Debug("deployment sent", "tx", pending.TxHash, "address", pending.Address)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   StageConfirming,
		Message: fmt.Sprintf("Waiting for %s confirmation", pending.TxHash),
		Spinner: true,
	})

	deployment, err := uc.deployer.Confirm(ctx, pending)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm %s deployment: %w", script.Contract, err)
	}

	deployment.Script = script.Name
	if deployment.CreatedAt.IsZero() {
		deployment.CreatedAt = time.Now().UTC()
	}
	if uc.config != nil && uc.config.Network != nil {
		deployment.Network = uc.config.Network.Name
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	// The deployment is final on chain at this point; a manifest write failure
	// must not hide the address from the operator.
	if err := uc.repo.SaveDeployment(ctx, deployment); err != nil {
		log.Warn("failed to record deployment", "error", err)
	}

	log.Debug("deployment confirmed", "address", deployment.Address, "tx", deployment.TxHash, "block", deployment.BlockNumber)
	return deployment, nil
}

func (uc *DeployContract) proxyKind() domain.ProxyKind {
	if uc.config == nil || uc.config.Upgrades.Kind == "" {
		return domain.TransparentProxy
	}
	return uc.config.Upgrades.Kind
}
