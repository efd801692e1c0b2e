package config

// ProjectFile is the nftdeploy.toml structure
type ProjectFile struct {
	DefaultNetwork string                   `toml:"default_network"`
	Artifacts      string                   `toml:"artifacts"`
	Networks       map[string]NetworkConfig `toml:"networks"`
	Upgrades       UpgradesConfig           `toml:"upgrades"`
}

// NetworkConfig is a [networks.<name>] table
type NetworkConfig struct {
	URL           string   `toml:"url"`
	ChainID       uint64   `toml:"chain_id"`
	Accounts      []string `toml:"accounts"` //nolint:gosec // holds env var references
	Confirmations uint64   `toml:"confirmations"`
}

// UpgradesConfig is the [upgrades] table
type UpgradesConfig struct {
	Kind string `toml:"kind"`
}
