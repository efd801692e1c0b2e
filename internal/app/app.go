package app

import (
	"log/slog"

	"github.com/energynft/nftdeploy/internal/domain/config"
	"github.com/energynft/nftdeploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	DeployContract   *usecase.DeployContract
	ListDeployments  *usecase.ListDeployments
	ShowDeployment   *usecase.ShowDeployment
	VerifyDeployment *usecase.VerifyDeployment

	Log *slog.Logger
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	deployContract *usecase.DeployContract,
	listDeployments *usecase.ListDeployments,
	showDeployment *usecase.ShowDeployment,
	verifyDeployment *usecase.VerifyDeployment,
	log *slog.Logger,
) *App {
	return &App{
		Config:           cfg,
		DeployContract:   deployContract,
		ListDeployments:  listDeployments,
		ShowDeployment:   showDeployment,
		VerifyDeployment: verifyDeployment,
		Log:              log,
	}
}
