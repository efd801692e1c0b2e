package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/energynft/nftdeploy/internal/cli/render"
	"github.com/energynft/nftdeploy/internal/domain"
)

// NewScriptCmd creates the command running one deployment script
func NewScriptCmd(script domain.Script) *cobra.Command {
	short := fmt.Sprintf("Deploy %s", script.Contract)
	if script.Kind == domain.ProxyDeploy {
		short = fmt.Sprintf("Deploy %s behind an upgradeable proxy", script.Contract)
	}

	return &cobra.Command{
		Use:   script.Command,
		Short: short,
		Long: fmt.Sprintf(`%s.

Resolves the %s artifact, deploys it and waits for confirmation, then prints
"%s deployed to: <address>".`, short, script.Contract, script.Label),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			deployment, err := app.DeployContract.Run(cmd.Context(), script)
			if err != nil {
				return err
			}

			return render.NewDeploymentRenderer(cmd.OutOrStdout(), script.Label).Render(deployment)
		},
	}
}
