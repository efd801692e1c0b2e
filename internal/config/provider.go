package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/config"
)

// DataDirName is the per-project directory holding deployment manifests
const DataDirName = ".nftdeploy"

// projectMarkers identify a project root, checked in order
var projectMarkers = []string{
	ProjectFileName,
	"hardhat.config.js",
	"hardhat.config.ts",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	projectFile, err := loadProjectFile(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ProjectFileName, err)
	}

	networkName := v.GetString("network")
	if networkName == "" {
		networkName = projectFile.DefaultNetwork
	}
	if networkName == "" {
		networkName = DefaultNetwork
	}

	network, err := ResolveNetwork(projectFile, networkName)
	if err != nil {
		return nil, err
	}

	kind, err := domain.ParseProxyKind(projectFile.Upgrades.Kind)
	if err != nil {
		return nil, err
	}

	artifactsDir := projectFile.Artifacts
	if artifactsDir == "" {
		artifactsDir = "artifacts"
	}
	if !filepath.IsAbs(artifactsDir) {
		artifactsDir = filepath.Join(projectRoot, artifactsDir)
	}

	return &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		ArtifactsDir:   artifactsDir,
		Network:        network,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		Upgrades:       config.Upgrades{Kind: kind},
	}, nil
}

// FindProjectRoot walks up from current directory to find a project marker
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a contracts project (%s not found)", strings.Join(projectMarkers, ", "))
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("NFTDEPLOY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
