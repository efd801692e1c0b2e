package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/config"
	"github.com/energynft/nftdeploy/internal/domain/models"
	"github.com/energynft/nftdeploy/internal/usecase"
)

// Repository indexes compiled artifacts and resolves contract factories by name.
// Hardhat artifacts (artifacts/**/Name.json) are preferred; a Foundry out/
// directory is used when no Hardhat artifacts exist.
type Repository struct {
	dirs           []string
	selector       usecase.ArtifactSelector
	nonInteractive bool

	mu      sync.RWMutex
	indexed bool
	byName  map[string][]*models.Artifact // key: contract name
	byFQN   map[string]*models.Artifact   // key: "sourceName:ContractName"
}

// NewRepository creates a new artifact repository
func NewRepository(cfg *config.RuntimeConfig, selector usecase.ArtifactSelector) *Repository {
	return &Repository{
		dirs: []string{
			cfg.ArtifactsDir,
			filepath.Join(cfg.ProjectRoot, "out"),
		},
		selector:       selector,
		nonInteractive: cfg.NonInteractive,
	}
}

// Index walks the first existing artifact directory
func (r *Repository) Index() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName = make(map[string][]*models.Artifact)
	r.byFQN = make(map[string]*models.Artifact)

	dir, ok := lo.Find(r.dirs, func(d string) bool {
		info, err := os.Stat(d)
		return err == nil && info.IsDir()
	})
	if !ok {
		return fmt.Errorf("%w: artifacts directory %s does not exist, compile the contracts first",
			domain.ErrArtifactNotFound, r.dirs[0])
	}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}

		artifact, err := loadArtifact(path)
		if err != nil || artifact == nil {
			return nil // not a contract artifact
		}

		fqn := artifact.FullyQualifiedName()
		if _, exists := r.byFQN[fqn]; exists {
			return nil
		}
		r.byFQN[fqn] = artifact
		r.byName[artifact.Name] = append(r.byName[artifact.Name], artifact)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to index artifacts in %s: %w", dir, err)
	}

	r.indexed = true
	return nil
}

// GetArtifact resolves a contract name or "sourceName:ContractName" to its artifact
func (r *Repository) GetArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	if err := r.ensureIndexed(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	exact := r.byFQN[name]
	matches := r.byName[name]
	r.mu.RUnlock()

	if exact != nil {
		return exact, nil
	}

	switch len(matches) {
	case 0:
		return nil, r.notFound(name)
	case 1:
		return matches[0], nil
	}

	if r.selector != nil && !r.nonInteractive {
		selected, err := r.selector.SelectArtifact(ctx, matches, fmt.Sprintf("Multiple artifacts found for '%s'. Select one:", name))
		if err != nil {
			return nil, fmt.Errorf("artifact selection failed: %w", err)
		}
		return selected, nil
	}

	return nil, domain.AmbiguousArtifactErr{
		Name:    name,
		Sources: lo.Map(matches, func(a *models.Artifact, _ int) string { return a.SourceName }),
	}
}

// Names returns all indexed contract names, sorted
func (r *Repository) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.byName)
	sort.Strings(names)
	return names
}

func (r *Repository) ensureIndexed() error {
	r.mu.RLock()
	indexed := r.indexed
	r.mu.RUnlock()
	if indexed {
		return nil
	}
	return r.Index()
}

// notFound builds the not-found error with close name suggestions
func (r *Repository) notFound(name string) error {
	matches := fuzzy.Find(name, r.Names())
	if len(matches) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, name)
	}

	suggestions := lo.Map(lo.Slice(matches, 0, 3), func(m fuzzy.Match, _ int) string { return m.Str })
	return fmt.Errorf("%w: %s (did you mean %s?)", domain.ErrArtifactNotFound, name, strings.Join(suggestions, ", "))
}

// rawArtifact covers both the Hardhat and the Foundry artifact layouts
type rawArtifact struct {
	ContractName   string                    `json:"contractName"`
	SourceName     string                    `json:"sourceName"`
	ABI            json.RawMessage           `json:"abi"`
	Bytecode       json.RawMessage           `json:"bytecode"`
	LinkReferences map[string]map[string]any `json:"linkReferences"`
	Metadata       struct {
		Settings struct {
			CompilationTarget map[string]string `json:"compilationTarget"`
		} `json:"settings"`
	} `json:"metadata"`
}

// loadArtifact parses one artifact file; nil means the file is not an artifact
func loadArtifact(path string) (*models.Artifact, error) {
	data, err := os.ReadFile(path) //nolint:gosec // artifact paths come from the project tree
	if err != nil {
		return nil, err
	}

	var raw rawArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw.ABI) == 0 {
		return nil, nil
	}

	artifact := &models.Artifact{
		Name:           raw.ContractName,
		SourceName:     raw.SourceName,
		ABI:            raw.ABI,
		LinkReferences: raw.LinkReferences,
		Path:           path,
	}

	// Hardhat: "bytecode": "0x..."; Foundry: "bytecode": {"object": "0x...", "linkReferences": {...}}
	var bytecode string
	if err := json.Unmarshal(raw.Bytecode, &bytecode); err == nil {
		artifact.Bytecode = bytecode
	} else {
		var object struct {
			Object         string                    `json:"object"`
			LinkReferences map[string]map[string]any `json:"linkReferences"`
		}
		if err := json.Unmarshal(raw.Bytecode, &object); err == nil {
			artifact.Bytecode = object.Object
			if len(object.LinkReferences) > 0 {
				artifact.LinkReferences = object.LinkReferences
			}
		}
	}

	if artifact.Name == "" {
		for source, contract := range raw.Metadata.Settings.CompilationTarget {
			artifact.SourceName = source
			artifact.Name = contract
			break // There should only be one entry
		}
	}
	if artifact.Name == "" {
		return nil, nil
	}

	return artifact, nil
}

// Ensure the repository implements the port
var _ usecase.ArtifactRepository = (*Repository)(nil)
