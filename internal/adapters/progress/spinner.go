package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/energynft/nftdeploy/internal/domain/config"
	"github.com/energynft/nftdeploy/internal/usecase"
)

// SpinnerSink shows deployment stages with a spinner on stderr
type SpinnerSink struct {
	spinner    *spinner.Spinner
	out        io.Writer
	stage      string
	stageStart time.Time
}

// NewSpinnerSink creates a spinner-based progress sink writing to w
func NewSpinnerSink(w io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.HideCursor = false

	return &SpinnerSink{spinner: s, out: w}
}

// NewSink picks the spinner for interactive terminals and a no-op sink otherwise
func NewSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.Debug || !isatty.IsTerminal(os.Stderr.Fd()) {
		return usecase.NopProgress{}
	}
	return NewSpinnerSink(os.Stderr)
}

// OnProgress handles progress events
func (s *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage != s.stage {
		s.completeStage()
		s.stage = event.Stage
		s.stageStart = time.Now()
	}

	if event.Spinner {
		s.spinner.Suffix = " " + event.Message
		if !s.spinner.Active() {
			s.spinner.Start()
		}
		return
	}

	if s.spinner.Active() {
		s.spinner.Stop()
	}
}

// Info prints an info message
func (s *SpinnerSink) Info(message string) {
	s.withSpinnerPaused(func() {
		color.New(color.FgCyan).Fprintln(s.out, message)
	})
}

// Error prints an error message
func (s *SpinnerSink) Error(message string) {
	s.withSpinnerPaused(func() {
		color.New(color.FgRed).Fprintln(s.out, message)
	})
}

func (s *SpinnerSink) withSpinnerPaused(fn func()) {
	wasActive := s.spinner.Active()
	if wasActive {
		s.spinner.Stop()
	}
	fn()
	if wasActive {
		s.spinner.Start()
	}
}

// completeStage prints a check mark line for the stage that just finished
func (s *SpinnerSink) completeStage() {
	if s.stage == "" || s.stage == usecase.StageCompleted {
		return
	}
	if s.spinner.Active() {
		s.spinner.Stop()
	}
	elapsed := time.Since(s.stageStart).Round(time.Millisecond)
	fmt.Fprintf(s.out, "%s %s (%s)\n", color.GreenString("✓"), s.stage, elapsed)
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
