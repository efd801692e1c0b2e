package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/models"
)

// ListDeploymentsParams filters the recorded deployments
type ListDeploymentsParams struct {
	Contract string // case-insensitive contract name
	Kind     domain.DeployKind
}

// DeploymentListResult contains the result of listing deployments
type DeploymentListResult struct {
	Deployments []*models.Deployment
	Summary     DeploymentSummary
}

// DeploymentSummary provides summary statistics
type DeploymentSummary struct {
	Total      int
	ByKind     map[domain.DeployKind]int
	ByContract map[string]int
}

// ListDeployments lists deployments recorded in the manifest of the active network
type ListDeployments struct {
	repo DeploymentRepository
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(repo DeploymentRepository) *ListDeployments {
	return &ListDeployments{repo: repo}
}

// Run returns the matching deployments, oldest first
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	deployments, err := uc.repo.ListDeployments(ctx)
	if err != nil {
		return nil, err
	}

	filtered := lo.Filter(deployments, func(d *models.Deployment, _ int) bool {
		if params.Contract != "" && !strings.EqualFold(d.Contract, params.Contract) {
			return false
		}
		if params.Kind != "" && d.Kind != params.Kind {
			return false
		}
		return true
	})

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
	})

	summary := DeploymentSummary{
		Total:      len(filtered),
		ByKind:     lo.CountValuesBy(filtered, func(d *models.Deployment) domain.DeployKind { return d.Kind }),
		ByContract: lo.CountValuesBy(filtered, func(d *models.Deployment) string { return d.Contract }),
	}

	return &DeploymentListResult{
		Deployments: filtered,
		Summary:     summary,
	}, nil
}
