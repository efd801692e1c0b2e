package deployer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/models"
	"github.com/energynft/nftdeploy/internal/usecase"
)

// Artifact names of the OpenZeppelin proxy contracts
const (
	ProxyAdminContract                  = "ProxyAdmin"
	TransparentUpgradeableProxyContract = "TransparentUpgradeableProxy"
	ERC1967ProxyContract                = "ERC1967Proxy"
)

// ERC-1967 storage slots
var (
	ImplementationSlot = common.HexToHash("0x360894a13ba1a3210667c828492db98dca3e2076cc3735a920a3ca505d382bbc")
	AdminSlot          = common.HexToHash("0xb53127684a568b3173ae13b9f8a6016e243e63b6e8ee1178d6a717850b5d6103")
)

// Chain is the subset of the blockchain client the deployer drives
type Chain interface {
	ChainID(ctx context.Context) (uint64, error)
	From() (common.Address, error)
	Create(ctx context.Context, parsed abi.ABI, bytecode []byte, args ...any) (common.Address, common.Hash, error)
	WaitForReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
	CodeAt(ctx context.Context, address common.Address) ([]byte, error)
	StorageAt(ctx context.Context, address common.Address, slot common.Hash) (common.Hash, error)
}

// Deployer implements usecase.ContractDeployer. Proxy deployments follow the
// OpenZeppelin upgrades flow: reuse or deploy the implementation, then deploy
// a proxy that calls the initializer in its constructor.
type Deployer struct {
	chain     Chain
	artifacts usecase.ArtifactRepository
	repo      usecase.DeploymentRepository
	log       *slog.Logger
	now       func() time.Time
}

// NewDeployer creates a new deployer
func NewDeployer(
	chain Chain,
	artifacts usecase.ArtifactRepository,
	repo usecase.DeploymentRepository,
	log *slog.Logger,
) *Deployer {
	if log == nil {
		log = slog.Default()
	}
	return &Deployer{
		chain:     chain,
		artifacts: artifacts,
		repo:      repo,
		log:       log.With("component", "deployer"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Deploy sends the creation transaction of artifact with args as constructor arguments
func (d *Deployer) Deploy(ctx context.Context, artifact *models.Artifact, args []any) (*models.PendingDeployment, error) {
	parsed, err := deployable(artifact)
	if err != nil {
		return nil, err
	}

	address, txHash, err := d.chain.Create(ctx, parsed, artifact.CreationCode(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s creation: %w", artifact.Name, err)
	}

	return &models.PendingDeployment{
		Contract: artifact.Name,
		Kind:     domain.PlainDeploy,
		Address:  address.Hex(),
		TxHash:   txHash.Hex(),
	}, nil
}

// DeployProxy deploys artifact as the implementation behind a new proxy and
// sends the proxy creation transaction
func (d *Deployer) DeployProxy(ctx context.Context, artifact *models.Artifact, args []any, opts domain.ProxyOptions) (*models.PendingDeployment, error) {
	parsed, err := deployable(artifact)
	if err != nil {
		return nil, err
	}

	data, err := initializerData(parsed, opts.Initializer, args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", artifact.Name, err)
	}

	impl, err := d.implementation(ctx, artifact, parsed)
	if err != nil {
		return nil, err
	}

	pending := &models.PendingDeployment{
		Contract:       artifact.Name,
		Kind:           domain.ProxyDeploy,
		ProxyKind:      opts.Kind,
		Implementation: impl.Hex(),
	}

	var proxy common.Address
	var txHash common.Hash
	switch opts.Kind {
	case domain.UUPSProxy:
		proxy, txHash, err = d.createSupport(ctx, ERC1967ProxyContract, impl, data)
	case domain.TransparentProxy, "":
		pending.ProxyKind = domain.TransparentProxy
		var admin common.Address
		admin, err = d.adminArgument(ctx)
		if err != nil {
			return nil, err
		}
		proxy, txHash, err = d.createSupport(ctx, TransparentUpgradeableProxyContract, impl, admin, data)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProxyKind, opts.Kind)
	}
	if err != nil {
		return nil, err
	}

	pending.Address = proxy.Hex()
	pending.TxHash = txHash.Hex()
	return pending, nil
}

// Confirm waits for the creation transaction and checks the resulting contract
func (d *Deployer) Confirm(ctx context.Context, pending *models.PendingDeployment) (*models.Deployment, error) {
	address := common.HexToAddress(pending.Address)

	receipt, err := d.confirmCreation(ctx, pending.Contract, address, common.HexToHash(pending.TxHash))
	if err != nil {
		return nil, err
	}

	deployment := &models.Deployment{
		Contract:       pending.Contract,
		Kind:           pending.Kind,
		ProxyKind:      pending.ProxyKind,
		Address:        pending.Address,
		Implementation: pending.Implementation,
		Admin:          pending.Admin,
		TxHash:         pending.TxHash,
		CreatedAt:      d.now(),
	}
	if receipt.BlockNumber != nil {
		deployment.BlockNumber = receipt.BlockNumber.Uint64()
	}

	if pending.Kind == domain.ProxyDeploy {
		if err := d.verifyProxy(ctx, address, deployment); err != nil {
			return nil, err
		}
	}

	chainID, err := d.chain.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	deployment.ChainID = chainID

	return deployment, nil
}

// CheckDeployment verifies a recorded deployment still has code and, for
// proxies, still points at the recorded implementation
func (d *Deployer) CheckDeployment(ctx context.Context, deployment *models.Deployment) error {
	address := common.HexToAddress(deployment.Address)

	code, err := d.chain.CodeAt(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to check code at %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		return fmt.Errorf("%w: %s at %s", domain.ErrNoCodeAfterDeploy, deployment.Contract, address.Hex())
	}

	if !deployment.IsProxy() {
		return nil
	}
	check := *deployment
	return d.verifyProxy(ctx, address, &check)
}

// deployable parses the artifact ABI after checking the bytecode can be sent
func deployable(artifact *models.Artifact) (abi.ABI, error) {
	if !artifact.HasBytecode() {
		return abi.ABI{}, fmt.Errorf("%w: %s (abstract contract or interface?)", domain.ErrNoBytecode, artifact.FullyQualifiedName())
	}
	if artifact.HasUnlinkedLibraries() {
		return abi.ABI{}, fmt.Errorf("%w: %s", domain.ErrUnlinkedLibraries, artifact.FullyQualifiedName())
	}
	return artifact.ParsedABI()
}

// initializerData encodes the initializer call, or nothing when there is no initializer
func initializerData(parsed abi.ABI, initializer string, args []any) ([]byte, error) {
	if initializer == "" {
		return []byte{}, nil
	}

	method, ok := parsed.Methods[initializer]
	if !ok {
		return nil, fmt.Errorf("%w: contract has no %s function", domain.ErrInitializerMismatch, initializer)
	}
	if len(method.Inputs) != len(args) {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d",
			domain.ErrInitializerMismatch, initializer, len(method.Inputs), len(args))
	}

	data, err := parsed.Pack(initializer, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInitializerMismatch, err)
	}
	return data, nil
}

// implementation returns the implementation address, reusing a recorded one
// when its bytecode is unchanged and it still has code
func (d *Deployer) implementation(ctx context.Context, artifact *models.Artifact, parsed abi.ABI) (common.Address, error) {
	hash := artifact.BytecodeHash()

	record, err := d.repo.GetImplementation(ctx, hash)
	switch {
	case err == nil:
		address := common.HexToAddress(record.Address)
		if d.hasCode(ctx, address) {
			d.log.Debug("reusing implementation", "contract", artifact.Name, "address", record.Address)
			return address, nil
		}
		d.log.Debug("recorded implementation has no code, redeploying", "contract", artifact.Name, "address", record.Address)
	case !errors.Is(err, domain.ErrNotFound):
		return common.Address{}, err
	}

	address, txHash, err := d.chain.Create(ctx, parsed, artifact.CreationCode())
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to send %s implementation creation: %w", artifact.Name, err)
	}
	if _, err := d.confirmCreation(ctx, artifact.Name, address, txHash); err != nil {
		return common.Address{}, err
	}

	d.record(ctx, "implementation", d.repo.SaveImplementation, &models.ContractRecord{
		Contract:     artifact.Name,
		Address:      address.Hex(),
		TxHash:       txHash.Hex(),
		BytecodeHash: hash,
		CreatedAt:    d.now(),
	})
	return address, nil
}

// adminArgument returns the second TransparentUpgradeableProxy constructor
// argument: a shared ProxyAdmin for OpenZeppelin 4.x, the initial owner of the
// proxy's own admin for 5.x
func (d *Deployer) adminArgument(ctx context.Context) (common.Address, error) {
	artifact, err := d.supportArtifact(ctx, ProxyAdminContract)
	if err != nil {
		return common.Address{}, err
	}
	parsed, err := deployable(artifact)
	if err != nil {
		return common.Address{}, err
	}

	if len(parsed.Constructor.Inputs) > 0 {
		return d.chain.From()
	}

	record, err := d.repo.GetAdmin(ctx)
	switch {
	case err == nil:
		address := common.HexToAddress(record.Address)
		if d.hasCode(ctx, address) {
			return address, nil
		}
	case !errors.Is(err, domain.ErrNotFound):
		return common.Address{}, err
	}

	address, txHash, err := d.chain.Create(ctx, parsed, artifact.CreationCode())
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to send %s creation: %w", ProxyAdminContract, err)
	}
	if _, err := d.confirmCreation(ctx, ProxyAdminContract, address, txHash); err != nil {
		return common.Address{}, err
	}

	d.record(ctx, "proxy admin", d.repo.SaveAdmin, &models.ContractRecord{
		Contract:  ProxyAdminContract,
		Address:   address.Hex(),
		TxHash:    txHash.Hex(),
		CreatedAt: d.now(),
	})
	return address, nil
}

// supportSources maps the proxy contracts to the OpenZeppelin file that must be
// compiled into the project
var supportSources = map[string]string{
	ProxyAdminContract:                  "@openzeppelin/contracts/proxy/transparent/ProxyAdmin.sol",
	TransparentUpgradeableProxyContract: "@openzeppelin/contracts/proxy/transparent/TransparentUpgradeableProxy.sol",
	ERC1967ProxyContract:                "@openzeppelin/contracts/proxy/ERC1967/ERC1967Proxy.sol",
}

// supportArtifact loads a proxy contract artifact. A missing one gets a hint,
// naming the OpenZeppelin file to import.
func (d *Deployer) supportArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	artifact, err := d.artifacts.GetArtifact(ctx, name)
	if err == nil {
		return artifact, nil
	}
	if source, ok := supportSources[name]; ok && errors.Is(err, domain.ErrArtifactNotFound) {
		return nil, fmt.Errorf("failed to load %s: %w (import %q in a Solidity file so it gets compiled)", name, err, source)
	}
	return nil, fmt.Errorf("failed to load %s: %w", name, err)
}

// createSupport sends the creation of a proxy contract loaded from artifacts
func (d *Deployer) createSupport(ctx context.Context, name string, args ...any) (common.Address, common.Hash, error) {
	artifact, err := d.supportArtifact(ctx, name)
	if err != nil {
		return common.Address{}, common.Hash{}, err
	}
	parsed, err := deployable(artifact)
	if err != nil {
		return common.Address{}, common.Hash{}, err
	}

	address, txHash, err := d.chain.Create(ctx, parsed, artifact.CreationCode(), args...)
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("failed to send %s creation: %w", name, err)
	}
	return address, txHash, nil
}

// confirmCreation waits for a creation receipt and checks code landed at address
func (d *Deployer) confirmCreation(ctx context.Context, contract string, address common.Address, txHash common.Hash) (*ethtypes.Receipt, error) {
	receipt, err := d.chain.WaitForReceipt(ctx, txHash)
	if err != nil {
		return nil, err
	}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s (tx %s)", domain.ErrDeploymentReverted, contract, txHash.Hex())
	}

	code, err := d.chain.CodeAt(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to check code at %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: %s at %s", domain.ErrNoCodeAfterDeploy, contract, address.Hex())
	}
	return receipt, nil
}

// verifyProxy checks the proxy points at the implementation and reads back its admin
func (d *Deployer) verifyProxy(ctx context.Context, proxy common.Address, deployment *models.Deployment) error {
	slot, err := d.chain.StorageAt(ctx, proxy, ImplementationSlot)
	if err != nil {
		return fmt.Errorf("failed to read implementation slot of %s: %w", proxy.Hex(), err)
	}
	impl := common.BytesToAddress(slot.Bytes())
	if impl != common.HexToAddress(deployment.Implementation) {
		return fmt.Errorf("%w: %s points at %s, expected %s",
			domain.ErrProxyVerification, proxy.Hex(), impl.Hex(), deployment.Implementation)
	}

	if deployment.ProxyKind != domain.TransparentProxy {
		return nil
	}
	slot, err = d.chain.StorageAt(ctx, proxy, AdminSlot)
	if err != nil {
		return fmt.Errorf("failed to read admin slot of %s: %w", proxy.Hex(), err)
	}
	if admin := common.BytesToAddress(slot.Bytes()); admin != (common.Address{}) {
		deployment.Admin = admin.Hex()
	}
	return nil
}

func (d *Deployer) hasCode(ctx context.Context, address common.Address) bool {
	code, err := d.chain.CodeAt(ctx, address)
	return err == nil && len(code) > 0
}

// record stores a supporting contract; the contract is already on chain so a
// failed write only costs a redeploy on the next run
func (d *Deployer) record(ctx context.Context, what string, save func(context.Context, *models.ContractRecord) error, record *models.ContractRecord) {
	if err := save(ctx, record); err != nil {
		d.log.Warn("failed to record "+what, "contract", record.Contract, "address", record.Address, "error", err)
	}
}

// Ensure the deployer implements the ports
var (
	_ usecase.ContractDeployer  = (*Deployer)(nil)
	_ usecase.DeploymentChecker = (*Deployer)(nil)
)
