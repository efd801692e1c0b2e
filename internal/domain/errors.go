package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrArtifactNotFound is returned when no compiled artifact matches a contract name
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrNoBytecode is returned for abstract contracts and interfaces
	ErrNoBytecode = errors.New("artifact has no creation bytecode")

	// ErrUnlinkedLibraries is returned when the bytecode still has library placeholders
	ErrUnlinkedLibraries = errors.New("artifact has unlinked library references")

	// ErrInitializerMismatch is returned when the initializer is missing or takes different arguments
	ErrInitializerMismatch = errors.New("initializer mismatch")

	// ErrDeploymentReverted is returned when the creation transaction was mined with status 0
	ErrDeploymentReverted = errors.New("deployment transaction reverted")

	// ErrNoCodeAfterDeploy is returned when a confirmed deployment left no code at the address
	ErrNoCodeAfterDeploy = errors.New("no contract code after deployment")

	// ErrProxyVerification is returned when the proxy does not point at the deployed implementation
	ErrProxyVerification = errors.New("proxy implementation slot mismatch")

	// ErrChainIDMismatch is returned when the node reports a different chain than configured
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrNoAccount is returned when the active network has no deployer account
	ErrNoAccount = errors.New("no deployer account configured")

	// ErrUnknownScript is returned when a script name is not in the catalog
	ErrUnknownScript = errors.New("unknown deployment script")

	// ErrUnknownProxyKind is returned for unsupported upgrades.kind values
	ErrUnknownProxyKind = errors.New("unknown proxy kind")
)

// AmbiguousArtifactErr is returned when a contract name matches several artifacts
// and no interactive selection is possible.
type AmbiguousArtifactErr struct {
	Name    string
	Sources []string
}

func (e AmbiguousArtifactErr) Error() string {
	sources := make([]string, len(e.Sources))
	copy(sources, e.Sources)
	sort.Strings(sources)

	var suggestions []string
	for _, source := range sources {
		suggestions = append(suggestions, fmt.Sprintf("  - %s:%s", source, e.Name))
	}

	return fmt.Sprintf("multiple artifacts found for %s - use the fully qualified sourceName:ContractName form:\n%s",
		e.Name, strings.Join(suggestions, "\n"))
}
