package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/energynft/nftdeploy/internal/cli/render"
	"github.com/energynft/nftdeploy/internal/usecase"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var (
		contractName string
		deployKind   string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check recorded deployments against the chain",
		Long: `Check that every recorded deployment still has code on chain and that
every proxy still points at its recorded implementation.

Exits with status 1 when any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseDeployKind(deployKind)
			if err != nil {
				return err
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.VerifyDeployment.Run(cmd.Context(), usecase.ListDeploymentsParams{
				Contract: contractName,
				Kind:     kind,
			})
			if err != nil {
				return err
			}

			if err := render.NewVerifyRenderer(cmd.OutOrStdout()).Render(result); err != nil {
				return err
			}
			if result.Failed > 0 {
				return fmt.Errorf("%d of %d deployments failed verification", result.Failed, len(result.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&contractName, "contract", "", "Only check deployments of this contract")
	cmd.Flags().StringVar(&deployKind, "kind", "", "Only check deployments of this kind (proxy, plain)")

	return cmd
}
