package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/energynft/nftdeploy/internal/app"
	"github.com/energynft/nftdeploy/internal/config"
	"github.com/energynft/nftdeploy/internal/domain"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the aggregate command holding every deployment script
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nftdeploy",
		Short: "Deployment scripts for the EnergyNFT contracts",
		Long: `nftdeploy deploys the EnergyNFT contract suite from compiled Hardhat or
Foundry artifacts, either directly or behind OpenZeppelin upgradeable proxies.`,
		SilenceUsage:      true,
		PersistentPreRunE: prepareApp,
	}

	addGlobalFlags(rootCmd)

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "scripts",
		Title: "Deployment Scripts",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, script := range domain.Scripts() {
		scriptCmd := NewScriptCmd(script)
		scriptCmd.GroupID = "scripts"
		rootCmd.AddCommand(scriptCmd)
	}

	listCmd := NewListCmd()
	listCmd.GroupID = "management"
	rootCmd.AddCommand(listCmd)

	showCmd := NewShowCmd()
	showCmd.GroupID = "management"
	rootCmd.AddCommand(showCmd)

	verifyCmd := NewVerifyCmd()
	verifyCmd.GroupID = "management"
	rootCmd.AddCommand(verifyCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewScriptRootCmd creates a standalone command running a single script
func NewScriptRootCmd(script domain.Script) *cobra.Command {
	cmd := NewScriptCmd(script)
	cmd.Use = script.Name
	cmd.Version = Version
	cmd.SilenceUsage = true
	cmd.PersistentPreRunE = prepareApp
	addGlobalFlags(cmd)
	return cmd
}

func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("network", "n", "", "Network from nftdeploy.toml to deploy to (default: default_network or localhost)")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	cmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	cmd.PersistentFlags().Duration("timeout", 0, "Overall timeout (default 5m)")
}

// prepareApp builds the app unless one is already in the context, then
// installs the configured timeout
func prepareApp(cmd *cobra.Command, args []string) error {
	// Skip for help/version commands
	if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	ctx := cmd.Context()
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok {
		// Provider reports a missing project root unless one is set in the environment
		projectRoot, _ := config.FindProjectRoot()

		v := config.SetupViper(projectRoot, cmd)

		var err error
		appInstance, err = app.InitApp(v)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store app in context
		ctx = context.WithValue(ctx, appKey, appInstance)
	}

	// Add timeout if configured
	if appInstance.Config != nil && appInstance.Config.Timeout > 0 {
		parent := ctx
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, appInstance.Config.Timeout)
		// Execute cancels parent on return, whether or not RunE failed
		context.AfterFunc(parent, cancel)
	}

	cmd.SetContext(ctx)

	return nil
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
