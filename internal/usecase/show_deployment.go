package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/models"
)

// ShowDeployment is the use case for showing deployment details
type ShowDeployment struct {
	repo DeploymentRepository
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(repo DeploymentRepository) *ShowDeployment {
	return &ShowDeployment{repo: repo}
}

// Run returns the deployment at the given address, or the latest deployment
// of the given contract
func (uc *ShowDeployment) Run(ctx context.Context, ref string) (*models.Deployment, error) {
	deployments, err := uc.repo.ListDeployments(ctx)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(ref, "0x") {
		deployment, ok := lo.Find(deployments, func(d *models.Deployment) bool {
			return strings.EqualFold(d.Address, ref) || strings.EqualFold(d.Implementation, ref)
		})
		if !ok {
			return nil, fmt.Errorf("deployment at %s: %w", ref, domain.ErrNotFound)
		}
		return deployment, nil
	}

	matches := lo.Filter(deployments, func(d *models.Deployment, _ int) bool {
		return strings.EqualFold(d.Contract, ref) || strings.EqualFold(d.Script, ref)
	})
	if len(matches) == 0 {
		return nil, fmt.Errorf("deployment of %s: %w", ref, domain.ErrNotFound)
	}

	return lo.MaxBy(matches, func(a, b *models.Deployment) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}), nil
}
