package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/energynft/nftdeploy/internal/domain/config"
	"github.com/energynft/nftdeploy/internal/usecase"
)

func TestSpinnerSinkStages(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	sink := NewSpinnerSink(&buf)
	ctx := context.Background()

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageResolving, Message: "Resolving BlindBox", Spinner: true})
	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageDeploying, Message: "Deploying BlindBox", Spinner: true})
	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageCompleted})

	out := buf.String()
	assert.Contains(t, out, "✓ resolving")
	assert.Contains(t, out, "✓ deploying")
	assert.False(t, sink.spinner.Active())
}

func TestNewSinkNonInteractive(t *testing.T) {
	sink := NewSink(&config.RuntimeConfig{NonInteractive: true})
	assert.IsType(t, usecase.NopProgress{}, sink)
}
