package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/config"
)

// DefaultPollInterval is the receipt polling period
const DefaultPollInterval = time.Second

// Backend is the node API the client needs. Both *ethclient.Client and the
// simulated backend's client satisfy it.
type Backend interface {
	bind.ContractBackend
	ethereum.ChainIDReader
	ethereum.ChainStateReader
	ethereum.TransactionReader
}

// DialFunc opens a backend for the network
type DialFunc func(ctx context.Context, network *config.Network) (Backend, error)

// Client signs and sends creation transactions for the active network.
// The node is dialed on first use and its chain ID checked against the config.
type Client struct {
	network      *config.Network
	dial         DialFunc
	log          *slog.Logger
	pollInterval time.Duration

	mu      sync.Mutex
	backend Backend
	chainID *big.Int
	key     *ecdsa.PrivateKey
}

// NewClient creates a client on an already opened backend
func NewClient(backend Backend, network *config.Network, log *slog.Logger) *Client {
	return newClient(network, func(context.Context, *config.Network) (Backend, error) {
		return backend, nil
	}, log)
}

// ProvideClient creates a client that dials the configured RPC URL lazily
func ProvideClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return newClient(cfg.Network, dialRPC, log)
}

func newClient(network *config.Network, dial DialFunc, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		network:      network,
		dial:         dial,
		log:          log.With("component", "blockchain", "network", network.Name),
		pollInterval: DefaultPollInterval,
	}
}

func dialRPC(ctx context.Context, network *config.Network) (Backend, error) {
	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", network.RPCURL, err)
	}
	return client, nil
}

// SetPollInterval changes the receipt polling period
func (c *Client) SetPollInterval(d time.Duration) {
	c.pollInterval = d
}

// connect dials the node once and verifies the chain ID
func (c *Client) connect(ctx context.Context) (Backend, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.backend != nil {
		return c.backend, nil
	}

	backend, err := c.dial(ctx, c.network)
	if err != nil {
		return nil, err
	}

	networkChainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	// If chainID was 0, use the network's chain ID
	if c.network.ChainID != 0 && networkChainID.Uint64() != c.network.ChainID {
		return nil, fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, c.network.ChainID, networkChainID.Uint64())
	}

	c.log.Debug("connected", "chain_id", networkChainID.Uint64())
	c.backend = backend
	c.chainID = networkChainID
	return backend, nil
}

// signer loads the deployer key from the first configured account
func (c *Client) signer() (*ecdsa.PrivateKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.key != nil {
		return c.key, nil
	}
	if len(c.network.Accounts) == 0 {
		return nil, fmt.Errorf("%w for network %s", domain.ErrNoAccount, c.network.Name)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(c.network.Accounts[0]), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid deployer key for network %s: %w", c.network.Name, err)
	}
	c.key = key
	return key, nil
}

// ChainID returns the chain ID reported by the node
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	if _, err := c.connect(ctx); err != nil {
		return 0, err
	}
	return c.chainID.Uint64(), nil
}

// From returns the deployer address
func (c *Client) From() (common.Address, error) {
	key, err := c.signer()
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// Create sends a creation transaction for bytecode with constructor args
// packed against parsed. It returns once the transaction is accepted by the node.
func (c *Client) Create(ctx context.Context, parsed abi.ABI, bytecode []byte, args ...any) (common.Address, common.Hash, error) {
	backend, err := c.connect(ctx)
	if err != nil {
		return common.Address{}, common.Hash{}, err
	}
	key, err := c.signer()
	if err != nil {
		return common.Address{}, common.Hash{}, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, c.chainID)
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("creating keyed transactor with chain ID: %w", err)
	}
	opts.Context = ctx

	address, tx, _, err := bind.DeployContract(opts, parsed, bytecode, backend, args...)
	if err != nil {
		return common.Address{}, common.Hash{}, err
	}

	c.log.Debug("creation transaction sent", "tx", tx.Hash().Hex(), "address", address.Hex())
	return address, tx.Hash(), nil
}

// WaitForReceipt polls for the receipt of txHash until it is mined or ctx ends.
// Receipt errors other than cancellation are retried.
func (c *Client) WaitForReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	backend, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := backend.TransactionReceipt(ctx, txHash)
		switch {
		case err == nil:
			if c.confirmed(ctx, backend, receipt) {
				return receipt, nil
			}
		case ctx.Err() != nil:
			return nil, fmt.Errorf("waiting for %s: %w", txHash.Hex(), ctx.Err())
		case errors.Is(err, ethereum.NotFound):
			c.log.Debug("transaction not yet mined", "tx", txHash.Hex())
		default:
			// nodes report indexing and transport hiccups while the tx is pending
			c.log.Debug("receipt retrieval failed", "tx", txHash.Hex(), "error", err)
		}

		// not mined or not confirmed yet
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for %s: %w", txHash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

// confirmed reports whether the receipt's block is buried under the
// configured number of confirmations
func (c *Client) confirmed(ctx context.Context, backend Backend, receipt *ethtypes.Receipt) bool {
	if c.network.Confirmations <= 1 || receipt.BlockNumber == nil {
		return true
	}
	head, err := backend.HeaderByNumber(ctx, nil)
	if err != nil {
		c.log.Debug("failed to read head", "error", err)
		return false
	}
	return head.Number.Uint64()+1 >= receipt.BlockNumber.Uint64()+c.network.Confirmations
}

// CodeAt returns the runtime code at address on the latest block
func (c *Client) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	backend, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	return backend.CodeAt(ctx, address, nil)
}

// StorageAt reads one storage slot on the latest block
func (c *Client) StorageAt(ctx context.Context, address common.Address, slot common.Hash) (common.Hash, error) {
	backend, err := c.connect(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	value, err := backend.StorageAt(ctx, address, slot, nil)
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(value), nil
}
