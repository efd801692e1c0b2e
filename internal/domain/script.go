package domain

import (
	"fmt"
	"sort"
)

// DeployKind selects how a script deploys its contract
type DeployKind string

const (
	// PlainDeploy sends a single creation transaction
	PlainDeploy DeployKind = "plain"
	// ProxyDeploy deploys the contract as the implementation behind an upgradeable proxy
	ProxyDeploy DeployKind = "proxy"
)

// ProxyKind selects the upgradeable proxy pattern
type ProxyKind string

const (
	TransparentProxy ProxyKind = "transparent"
	UUPSProxy        ProxyKind = "uups"
)

// ParseProxyKind validates a configured proxy kind, defaulting to transparent.
func ParseProxyKind(s string) (ProxyKind, error) {
	switch ProxyKind(s) {
	case "", TransparentProxy:
		return TransparentProxy, nil
	case UUPSProxy:
		return UUPSProxy, nil
	default:
		return "", fmt.Errorf("%w: %q (expected transparent or uups)", ErrUnknownProxyKind, s)
	}
}

// DefaultInitializer is the initializer invoked by every proxy script
const DefaultInitializer = "initialize"

// Script describes one deployment entry point
type Script struct {
	Name        string     // operator-facing script name, e.g. "blindBox"
	Command     string     // cobra subcommand name, e.g. "blind-box"
	Contract    string     // artifact name, e.g. "BlindBox"
	Kind        DeployKind // plain or proxy
	Initializer string     // proxy only
	Args        []any      // initializer arguments; always empty for the catalog
	Label       string     // prefix of the "<Label> deployed to:" line
}

// ProxyOptions carries the proxy-specific parameters of a deployment
type ProxyOptions struct {
	Initializer string
	Kind        ProxyKind
}

// Script names
const (
	ScriptBlindBox      = "blindBox"
	ScriptBlindBoxV2    = "blindBoxV2"
	ScriptDeploy        = "deploy"
	ScriptFuseNFT       = "fuseNFT"
	ScriptMultiTransfer = "multiTransfer"
)

// The deploy script prints "Greeter" although it deploys EnergyNFT. The label is
// kept so that existing tooling scraping the output keeps working.
var scripts = map[string]Script{
	ScriptBlindBox: {
		Name:        ScriptBlindBox,
		Command:     "blind-box",
		Contract:    "BlindBox",
		Kind:        ProxyDeploy,
		Initializer: DefaultInitializer,
		Label:       "Contract",
	},
	ScriptBlindBoxV2: {
		Name:        ScriptBlindBoxV2,
		Command:     "blind-box-v2",
		Contract:    "BlindBoxV2",
		Kind:        ProxyDeploy,
		Initializer: DefaultInitializer,
		Label:       "Contract",
	},
	ScriptDeploy: {
		Name:        ScriptDeploy,
		Command:     "deploy",
		Contract:    "EnergyNFT",
		Kind:        ProxyDeploy,
		Initializer: DefaultInitializer,
		Label:       "Greeter",
	},
	ScriptFuseNFT: {
		Name:        ScriptFuseNFT,
		Command:     "fuse-nft",
		Contract:    "FuseNFT",
		Kind:        ProxyDeploy,
		Initializer: DefaultInitializer,
		Label:       "Contract",
	},
	ScriptMultiTransfer: {
		Name:     ScriptMultiTransfer,
		Command:  "multi-transfer",
		Contract: "MultiTransfer",
		Kind:     PlainDeploy,
		Label:    "Contract",
	},
}

// LookupScript returns the catalog entry for name. The returned Script owns a
// fresh, empty argument list.
func LookupScript(name string) (Script, error) {
	s, ok := scripts[name]
	if !ok {
		return Script{}, fmt.Errorf("%w: %s", ErrUnknownScript, name)
	}
	s.Args = []any{}
	return s, nil
}

// Scripts returns every catalog entry sorted by name.
func Scripts() []Script {
	out := make([]Script, 0, len(scripts))
	for name := range scripts {
		s, _ := LookupScript(name)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
