package adapters

import (
	"github.com/google/wire"

	"github.com/energynft/nftdeploy/internal/adapters/blockchain"
	"github.com/energynft/nftdeploy/internal/adapters/contracts"
	"github.com/energynft/nftdeploy/internal/adapters/deployer"
	"github.com/energynft/nftdeploy/internal/adapters/interactive"
	"github.com/energynft/nftdeploy/internal/adapters/progress"
	"github.com/energynft/nftdeploy/internal/adapters/repository/deployments"
	"github.com/energynft/nftdeploy/internal/usecase"
)

// ArtifactSet provides compiled artifact resolution
var ArtifactSet = wire.NewSet(
	contracts.NewRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*contracts.Repository)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ArtifactSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides the chain client and the deployer driving it
var BlockchainSet = wire.NewSet(
	blockchain.ProvideClient,
	wire.Bind(new(deployer.Chain), new(*blockchain.Client)),

	deployer.NewDeployer,
	wire.Bind(new(usecase.ContractDeployer), new(*deployer.Deployer)),
	wire.Bind(new(usecase.DeploymentChecker), new(*deployer.Deployer)),
)

// RepositorySet provides the deployment manifest
var RepositorySet = wire.NewSet(
	deployments.NewFileRepositoryFromConfig,
	wire.Bind(new(usecase.DeploymentRepository), new(*deployments.FileRepository)),
)

// ProgressSet provides the progress sink
var ProgressSet = wire.NewSet(
	progress.NewSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ArtifactSet,
	InteractiveSet,
	BlockchainSet,
	RepositorySet,
	ProgressSet,
)
