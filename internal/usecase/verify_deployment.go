package usecase

import (
	"context"
	"fmt"

	"github.com/energynft/nftdeploy/internal/domain/models"
)

// VerifyDeployment checks recorded deployments against the chain: code must
// still exist and proxies must still point at the recorded implementation
type VerifyDeployment struct {
	list    *ListDeployments
	checker DeploymentChecker
	sink    ProgressSink
}

// NewVerifyDeployment creates a new verify deployment use case
func NewVerifyDeployment(list *ListDeployments, checker DeploymentChecker, sink ProgressSink) *VerifyDeployment {
	return &VerifyDeployment{
		list:    list,
		checker: checker,
		sink:    sink,
	}
}

// VerifyResult contains the result of checking one deployment
type VerifyResult struct {
	Deployment *models.Deployment
	Err        error
}

// VerifyAllResult contains the results of a verify run
type VerifyAllResult struct {
	Results []*VerifyResult
	Failed  int
}

// Run checks every deployment matching params
func (v *VerifyDeployment) Run(ctx context.Context, params ListDeploymentsParams) (*VerifyAllResult, error) {
	listed, err := v.list.Run(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}

	result := &VerifyAllResult{Results: make([]*VerifyResult, 0, len(listed.Deployments))}
	for _, deployment := range listed.Deployments {
		v.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "verifying",
			Message: fmt.Sprintf("Checking %s at %s", deployment.Contract, deployment.Address),
			Spinner: true,
		})

		checkErr := v.checker.CheckDeployment(ctx, deployment)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if checkErr != nil {
			result.Failed++
		}
		result.Results = append(result.Results, &VerifyResult{Deployment: deployment, Err: checkErr})
	}

	v.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	return result, nil
}
