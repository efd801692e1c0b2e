package interactive

import (
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/energynft/nftdeploy/internal/domain/config"
	"github.com/energynft/nftdeploy/internal/domain/models"
)

func TestSelectArtifact(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses in non-interactive mode", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
		_, err := s.SelectArtifact(ctx, []*models.Artifact{{Name: "Box"}, {Name: "Box"}}, "pick")
		assert.Error(t, err)
	})

	t.Run("single candidate needs no prompt", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		only := &models.Artifact{Name: "Box"}
		selected, err := s.SelectArtifact(ctx, []*models.Artifact{only}, "pick")
		require.NoError(t, err)
		assert.Same(t, only, selected)
	})

	t.Run("no candidates", func(t *testing.T) {
		s := NewSelectorAdapter(&config.RuntimeConfig{})
		_, err := s.SelectArtifact(ctx, nil, "pick")
		assert.Error(t, err)
	})
}

func TestFuzzySearch(t *testing.T) {
	color.NoColor = true
	options := formatArtifactOptions([]*models.Artifact{
		{Name: "BlindBox", SourceName: "contracts/BlindBox.sol"},
		{Name: "BlindBox", SourceName: "contracts/legacy/BlindBox.sol"},
	})
	assert.Equal(t, "BlindBox (BlindBox.sol)", options[0])

	search := createFuzzySearchFunc(options)
	assert.True(t, search("", 0))
	assert.True(t, search("legacy", 1))
	assert.False(t, search("legacy", 0))
	assert.True(t, search("lgcy", 1))
}
