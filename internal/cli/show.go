package cli

import (
	"github.com/spf13/cobra"

	"github.com/energynft/nftdeploy/internal/cli/render"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <contract|script|address>",
		Short: "Show details of a recorded deployment",
		Long: `Show the details of a deployment recorded for the network.

A contract or script name selects its most recent deployment; an address
matches a proxy, a plain deployment or a proxy's implementation.`,
		Example: `  nftdeploy show BlindBox
  nftdeploy show 0x5FbDB2315678afecb367f032d93F642f64180aa3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			deployment, err := app.ShowDeployment.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return render.NewDeploymentDetailRenderer(cmd.OutOrStdout()).Render(deployment)
		},
	}
}
