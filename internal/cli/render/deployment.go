package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/energynft/nftdeploy/internal/domain/models"
)

// DeploymentRenderer prints the single result line of a deployment script.
// Tooling parses this line, so it carries no color or decoration.
type DeploymentRenderer struct {
	out   io.Writer
	label string
}

// NewDeploymentRenderer creates a renderer printing "<label> deployed to: <address>"
func NewDeploymentRenderer(out io.Writer, label string) *DeploymentRenderer {
	return &DeploymentRenderer{
		out:   out,
		label: label,
	}
}

// Render prints the deployed address
func (r *DeploymentRenderer) Render(deployment *models.Deployment) error {
	_, err := fmt.Fprintf(r.out, "%s deployed to: %s\n", r.label, deployment.Address)
	return err
}

var _ Renderer[*models.Deployment] = (*DeploymentRenderer)(nil)

// DeploymentDetailRenderer renders detailed information about a single deployment
type DeploymentDetailRenderer struct {
	out io.Writer
}

// NewDeploymentDetailRenderer creates a new deployment detail renderer
func NewDeploymentDetailRenderer(out io.Writer) *DeploymentDetailRenderer {
	return &DeploymentDetailRenderer{out: out}
}

// Render renders detailed deployment information
func (r *DeploymentDetailRenderer) Render(deployment *models.Deployment) error {
	// Header
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Deployment: %s\n", deployment.Contract)
	fmt.Fprintln(r.out, strings.Repeat("=", 80))

	// Basic Info
	fmt.Fprintln(r.out, "\nBasic Information:")
	fmt.Fprintf(r.out, "  Contract: %s\n", color.New(color.FgYellow).Sprint(deployment.Contract))
	fmt.Fprintf(r.out, "  Address: %s\n", deployment.Address)
	fmt.Fprintf(r.out, "  Kind: %s\n", deployment.Kind)
	if deployment.Script != "" {
		fmt.Fprintf(r.out, "  Script: %s\n", deployment.Script)
	}
	fmt.Fprintf(r.out, "  Network: %s (chain %d)\n", deployment.Network, deployment.ChainID)

	// Proxy Info
	if deployment.IsProxy() {
		fmt.Fprintln(r.out, "\nProxy Information:")
		fmt.Fprintf(r.out, "  Proxy Kind: %s\n", deployment.ProxyKind)
		fmt.Fprintf(r.out, "  Implementation: %s\n", deployment.Implementation)
		if deployment.Admin != "" {
			fmt.Fprintf(r.out, "  Admin: %s\n", deployment.Admin)
		}
	}

	// Transaction Info
	fmt.Fprintln(r.out, "\nTransaction Information:")
	fmt.Fprintf(r.out, "  Hash: %s\n", deployment.TxHash)
	fmt.Fprintf(r.out, "  Block: %d\n", deployment.BlockNumber)
	fmt.Fprintf(r.out, "  Deployed: %s\n", deployment.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	return nil
}

var _ Renderer[*models.Deployment] = (*DeploymentDetailRenderer)(nil)
