package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/energynft/nftdeploy/internal/domain"
)

// Main runs a single deployment script as a program and returns its exit code
func Main(scriptName string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	script, err := domain.LookupScript(scriptName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return Execute(ctx, NewScriptRootCmd(script), os.Args[1:], os.Stdout, os.Stderr)
}

// MainAll runs the aggregate nftdeploy command and returns its exit code
func MainAll() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Execute(ctx, NewRootCmd(), os.Args[1:], os.Stdout, os.Stderr)
}

// Execute runs cmd with args. Errors are written to stderr and turned into
// exit code 1.
func Execute(ctx context.Context, cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	// Contexts derived in prepareApp end with this one
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
