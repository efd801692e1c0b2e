package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/energynft/nftdeploy/internal/domain/config"
)

// ProjectFileName is the optional project configuration file
const ProjectFileName = "nftdeploy.toml"

// DefaultNetwork is used when neither the flag nor the project file names one
const DefaultNetwork = "localhost"

// hardhatDevKey is the first well-known account of a local hardhat/anvil node
const hardhatDevKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80" //nolint:gosec // public dev key

// builtinNetworks are available without any configuration
var builtinNetworks = map[string]config.NetworkConfig{
	"localhost": {URL: "http://127.0.0.1:8545", ChainID: 31337, Accounts: []string{hardhatDevKey}},
	"hardhat":   {URL: "http://127.0.0.1:8545", ChainID: 31337, Accounts: []string{hardhatDevKey}},
}

// loadProjectFile loads .env files and parses nftdeploy.toml. A missing
// nftdeploy.toml yields an empty configuration.
func loadProjectFile(projectRoot string) (*config.ProjectFile, error) {
	// Load .env files first for variable expansion
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	raw := &config.ProjectFile{}
	path := filepath.Join(projectRoot, ProjectFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return raw, nil
	}

	if _, err := toml.DecodeFile(path, raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	raw.DefaultNetwork = os.ExpandEnv(raw.DefaultNetwork)
	raw.Artifacts = os.ExpandEnv(raw.Artifacts)
	for name, network := range raw.Networks {
		network.URL = os.ExpandEnv(network.URL)
		accounts := make([]string, 0, len(network.Accounts))
		for _, account := range network.Accounts {
			if expanded := os.ExpandEnv(account); expanded != "" {
				accounts = append(accounts, expanded)
			}
		}
		network.Accounts = accounts
		raw.Networks[name] = network
	}

	return raw, nil
}

// ResolveNetwork looks a network up in the project file, falling back to the
// built-in local networks.
func ResolveNetwork(projectFile *config.ProjectFile, name string) (*config.Network, error) {
	network, ok := projectFile.Networks[name]
	if !ok {
		network, ok = builtinNetworks[name]
	}
	if !ok {
		return nil, fmt.Errorf("network '%s' not found in %s [networks]", name, ProjectFileName)
	}
	if network.URL == "" {
		return nil, fmt.Errorf("network '%s' has no url", name)
	}

	confirmations := network.Confirmations
	if confirmations == 0 {
		confirmations = 1
	}

	return &config.Network{
		Name:          name,
		RPCURL:        network.URL,
		ChainID:       network.ChainID,
		Accounts:      network.Accounts,
		Confirmations: confirmations,
	}, nil
}
