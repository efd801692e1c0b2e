package deployments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/config"
	"github.com/energynft/nftdeploy/internal/domain/models"
	"github.com/energynft/nftdeploy/internal/usecase"
)

// ManifestVersion is written into every manifest file
const ManifestVersion = "1"

// Manifest is the on-disk record of one network's deployments
type Manifest struct {
	Version         string                            `json:"manifestVersion"`
	Network         string                            `json:"network"`
	ChainID         uint64                            `json:"chainId"`
	Admin           *models.ContractRecord            `json:"admin,omitempty"`
	Implementations map[string]*models.ContractRecord `json:"impls"` // key: creation bytecode hash
	Deployments     []*models.Deployment              `json:"deployments"`
}

// FileRepository stores the manifest of the active network as a JSON file
type FileRepository struct {
	path     string
	mu       sync.RWMutex
	manifest *Manifest
}

// NewFileRepository creates a repository for the manifest file in dataDir
func NewFileRepository(dataDir string, network string, chainID uint64) (*FileRepository, error) {
	r := &FileRepository{
		path: filepath.Join(dataDir, manifestFileName(network)),
		manifest: &Manifest{
			Version:         ManifestVersion,
			Network:         network,
			ChainID:         chainID,
			Implementations: make(map[string]*models.ContractRecord),
		},
	}

	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", r.path, err)
	}

	return r, nil
}

// NewFileRepositoryFromConfig creates the manifest repository for the active network
func NewFileRepositoryFromConfig(cfg *config.RuntimeConfig) (*FileRepository, error) {
	return NewFileRepository(cfg.DataDir, cfg.Network.Name, cfg.Network.ChainID)
}

// Path returns the manifest file location
func (r *FileRepository) Path() string {
	return r.path
}

func manifestFileName(network string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(network)
	return name + ".json"
}

// load reads the manifest file, keeping the empty manifest when it doesn't exist
func (r *FileRepository) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if m.Implementations == nil {
		m.Implementations = make(map[string]*models.ContractRecord)
	}
	if r.manifest.ChainID != 0 && m.ChainID != 0 && m.ChainID != r.manifest.ChainID {
		return fmt.Errorf("%w: manifest is for chain %d, network is configured for %d",
			domain.ErrChainIDMismatch, m.ChainID, r.manifest.ChainID)
	}
	if m.ChainID == 0 {
		m.ChainID = r.manifest.ChainID
	}
	r.manifest = &m
	return nil
}

// save writes the manifest atomically; callers hold the write lock
func (r *FileRepository) save() error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(r.path), err)
	}

	data, err := json.MarshalIndent(r.manifest, "", "  ")
	if err != nil {
		return err
	}

	// Write to temp file first
	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, r.path)
}

// SaveDeployment appends a confirmed deployment
func (r *FileRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if deployment.ChainID != 0 && r.manifest.ChainID == 0 {
		r.manifest.ChainID = deployment.ChainID
	}
	r.manifest.Deployments = append(r.manifest.Deployments, deployment)
	return r.save()
}

// ListDeployments returns all recorded deployments
func (r *FileRepository) ListDeployments(ctx context.Context) ([]*models.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Deployment, len(r.manifest.Deployments))
	copy(out, r.manifest.Deployments)
	return out, nil
}

// GetImplementation returns the implementation deployed from the given bytecode
func (r *FileRepository) GetImplementation(ctx context.Context, bytecodeHash string) (*models.ContractRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.manifest.Implementations[bytecodeHash]
	if !ok {
		return nil, fmt.Errorf("implementation %s: %w", bytecodeHash, domain.ErrNotFound)
	}
	return record, nil
}

// SaveImplementation records an implementation under its bytecode hash
func (r *FileRepository) SaveImplementation(ctx context.Context, record *models.ContractRecord) error {
	if record.BytecodeHash == "" {
		return fmt.Errorf("implementation record for %s has no bytecode hash", record.Contract)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.manifest.Implementations[record.BytecodeHash] = record
	return r.save()
}

// GetAdmin returns the shared proxy admin
func (r *FileRepository) GetAdmin(ctx context.Context) (*models.ContractRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.manifest.Admin == nil {
		return nil, fmt.Errorf("proxy admin: %w", domain.ErrNotFound)
	}
	return r.manifest.Admin, nil
}

// SaveAdmin records the shared proxy admin
func (r *FileRepository) SaveAdmin(ctx context.Context, record *models.ContractRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.manifest.Admin = record
	return r.save()
}

// Ensure the repository implements the port
var _ usecase.DeploymentRepository = (*FileRepository)(nil)
