package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/energynft/nftdeploy/internal/domain/config"
	"github.com/energynft/nftdeploy/internal/domain/models"
	"github.com/energynft/nftdeploy/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectArtifact asks the operator which of several same-named artifacts to deploy
func (s *SelectorAdapter) SelectArtifact(ctx context.Context, artifacts []*models.Artifact, prompt string) (*models.Artifact, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(artifacts) == 0 {
		return nil, fmt.Errorf("no artifacts provided for selection")
	}

	if len(artifacts) == 1 {
		return artifacts[0], nil
	}

	options := formatArtifactOptions(artifacts)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return artifacts[index], nil
}

// formatArtifactOptions creates display strings like "BlindBox (contracts/BlindBox.sol)"
func formatArtifactOptions(artifacts []*models.Artifact) []string {
	options := make([]string, len(artifacts))
	for i, artifact := range artifacts {
		name := color.New(color.FgWhite, color.Bold).Sprint(artifact.Name)
		source := color.New(color.FgBlue).Sprint(strings.TrimPrefix(artifact.SourceName, "contracts/"))
		options[i] = fmt.Sprintf("%s (%s)", name, source)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactSelector = (*SelectorAdapter)(nil)
