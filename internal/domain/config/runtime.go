package config

import (
	"time"

	"github.com/energynft/nftdeploy/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	DataDir      string
	ArtifactsDir string

	// Active network
	Network *Network

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	Upgrades Upgrades
}

// Network represents a resolved network configuration
type Network struct {
	Name          string   `json:"name"`
	RPCURL        string   `json:"rpcUrl"`
	ChainID       uint64   `json:"chainId"` // 0 means "whatever the node reports"
	Accounts      []string `json:"-"`       // hex private keys, first one deploys
	Confirmations uint64   `json:"confirmations"`
}

// Upgrades holds proxy deployment settings
type Upgrades struct {
	Kind domain.ProxyKind
}
