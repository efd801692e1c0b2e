package models

import (
	"time"

	"github.com/energynft/nftdeploy/internal/domain"
)

// Deployment is a confirmed contract deployment. Address is the address the
// operator interacts with: the proxy for proxy deployments.
type Deployment struct {
	Script         string            `json:"script,omitempty" yaml:"script,omitempty"`
	Contract       string            `json:"contract" yaml:"contract"`
	Kind           domain.DeployKind `json:"kind" yaml:"kind"`
	ProxyKind      domain.ProxyKind  `json:"proxyKind,omitempty" yaml:"proxyKind,omitempty"`
	Address        string            `json:"address" yaml:"address"`
	Implementation string            `json:"implementation,omitempty" yaml:"implementation,omitempty"`
	Admin          string            `json:"admin,omitempty" yaml:"admin,omitempty"`
	TxHash         string            `json:"txHash" yaml:"txHash"`
	BlockNumber    uint64            `json:"blockNumber" yaml:"blockNumber"`
	ChainID        uint64            `json:"chainId" yaml:"chainId"`
	Network        string            `json:"network" yaml:"network"`
	CreatedAt      time.Time         `json:"createdAt" yaml:"createdAt"`
}

// IsProxy reports whether the deployment sits behind a proxy
func (d *Deployment) IsProxy() bool {
	return d.Kind == domain.ProxyDeploy
}

// PendingDeployment is a deployment whose creation transaction has been sent
// but not yet confirmed.
type PendingDeployment struct {
	Contract       string
	Kind           domain.DeployKind
	ProxyKind      domain.ProxyKind
	Address        string // predicted from sender and nonce
	Implementation string
	Admin          string
	TxHash         string
}

// ContractRecord is a supporting contract (implementation or proxy admin)
// kept in the manifest for reuse.
type ContractRecord struct {
	Contract     string    `json:"contract"`
	Address      string    `json:"address"`
	TxHash       string    `json:"txHash"`
	BytecodeHash string    `json:"bytecodeHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
