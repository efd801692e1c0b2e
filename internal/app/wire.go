//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/energynft/nftdeploy/internal/adapters"
	"github.com/energynft/nftdeploy/internal/config"
	"github.com/energynft/nftdeploy/internal/logging"
	"github.com/energynft/nftdeploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewListDeployments,
		usecase.NewShowDeployment,
		usecase.NewVerifyDeployment,

		// App
		NewApp,
	)
	return nil, nil
}
