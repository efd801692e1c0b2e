package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Artifact is a compiled contract: the factory a deployment is created from.
// Hardhat stores bytecode as a hex string, Foundry as {"object": "0x..."};
// both are normalised into Bytecode by the loader.
type Artifact struct {
	Name           string                    `json:"contractName"`
	SourceName     string                    `json:"sourceName"`
	ABI            json.RawMessage           `json:"abi"`
	Bytecode       string                    `json:"bytecode"`
	LinkReferences map[string]map[string]any `json:"linkReferences,omitempty"`

	// Path of the artifact file on disk
	Path string `json:"-"`
}

// FullyQualifiedName returns "sourceName:ContractName"
func (a *Artifact) FullyQualifiedName() string {
	return fmt.Sprintf("%s:%s", a.SourceName, a.Name)
}

// ParsedABI decodes the artifact ABI
func (a *Artifact) ParsedABI() (abi.ABI, error) {
	if len(a.ABI) == 0 {
		return abi.ABI{}, nil
	}
	parsed, err := abi.JSON(strings.NewReader(string(a.ABI)))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse ABI of %s: %w", a.Name, err)
	}
	return parsed, nil
}

// CreationCode returns the decoded creation bytecode
func (a *Artifact) CreationCode() []byte {
	return common.FromHex(a.Bytecode)
}

// HasBytecode reports whether the artifact is deployable at all
func (a *Artifact) HasBytecode() bool {
	return len(a.CreationCode()) > 0
}

// HasUnlinkedLibraries reports whether library placeholders remain in the bytecode
func (a *Artifact) HasUnlinkedLibraries() bool {
	return len(a.LinkReferences) > 0 || strings.Contains(a.Bytecode, "__$")
}

// BytecodeHash identifies an implementation across runs
func (a *Artifact) BytecodeHash() string {
	return crypto.Keccak256Hash(a.CreationCode()).Hex()
}
