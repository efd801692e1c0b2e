package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/energynft/nftdeploy/internal/cli/render"
	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		contractName string
		deployKind   string
		format       string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List deployments recorded for the network",
		Long: `List the deployments recorded in the manifest of the selected network.

The list can be filtered by contract name or deployment kind.`,
		Example: `  # List all deployments on the default network
  nftdeploy list

  # List BlindBox deployments on bsctest
  nftdeploy list --network bsctest --contract BlindBox

  # Proxies only, as JSON
  nftdeploy list --kind proxy --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			kind, err := parseDeployKind(deployKind)
			if err != nil {
				return err
			}

			renderer, err := render.NewDeploymentsRenderer(cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}

			result, err := app.ListDeployments.Run(cmd.Context(), usecase.ListDeploymentsParams{
				Contract: contractName,
				Kind:     kind,
			})
			if err != nil {
				return err
			}

			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&contractName, "contract", "", "Filter by contract name")
	cmd.Flags().StringVar(&deployKind, "kind", "", "Filter by deployment kind (proxy, plain)")
	cmd.Flags().StringVarP(&format, "format", "o", render.FormatTable, "Output format (table, json, yaml)")

	return cmd
}

// parseDeployKind converts a --kind flag value to a domain kind. Empty means any.
func parseDeployKind(value string) (domain.DeployKind, error) {
	switch value {
	case "":
		return "", nil
	case string(domain.ProxyDeploy), string(domain.PlainDeploy):
		return domain.DeployKind(value), nil
	default:
		return "", fmt.Errorf("invalid deployment kind: %s (valid: proxy, plain)", value)
	}
}
