package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/energynft/nftdeploy/internal/domain"
	"github.com/energynft/nftdeploy/internal/domain/models"
	"github.com/energynft/nftdeploy/internal/usecase"
)

// Output formats of the list command
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Color styles for table format
var (
	headerStyle    = color.New(color.Bold, color.FgHiWhite)
	proxyStyle     = color.New(color.FgMagenta, color.Bold)
	plainStyle     = color.New(color.FgGreen, color.Bold)
	implStyle      = color.New(color.Faint)
	timestampStyle = color.New(color.Faint)
)

// DeploymentsRenderer renders the recorded deployments of a network
type DeploymentsRenderer struct {
	out    io.Writer
	format string
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer, format string) (*DeploymentsRenderer, error) {
	switch format {
	case "", FormatTable:
		format = FormatTable
	case FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("invalid format: %s (valid: table, json, yaml)", format)
	}
	return &DeploymentsRenderer{
		out:    out,
		format: format,
	}, nil
}

// Render writes the deployment list in the configured format
func (r *DeploymentsRenderer) Render(result *usecase.DeploymentListResult) error {
	deployments := result.Deployments
	if deployments == nil {
		deployments = []*models.Deployment{}
	}

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(deployments)
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(deployments); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(deployments) == 0 {
		fmt.Fprintln(r.out, FormatWarning("No deployments found"))
		return nil
	}

	r.renderTable(deployments)
	r.renderSummary(result.Summary)
	return nil
}

func (r *DeploymentsRenderer) renderTable(deployments []*models.Deployment) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box.PaddingRight = "   "
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignLeft},
	})

	t.AppendHeader(table.Row{
		headerStyle.Sprint("CONTRACT"),
		headerStyle.Sprint("KIND"),
		headerStyle.Sprint("ADDRESS"),
		headerStyle.Sprint("BLOCK"),
		headerStyle.Sprint("DEPLOYED"),
	})

	for _, dep := range deployments {
		t.AppendRow(table.Row{
			dep.Contract,
			kindLabel(dep),
			dep.Address,
			dep.BlockNumber,
			timestampStyle.Sprint(dep.CreatedAt.Format("2006-01-02 15:04:05")),
		})
		if dep.IsProxy() && dep.Implementation != "" {
			t.AppendRow(table.Row{
				implStyle.Sprint("└─ implementation"),
				"",
				implStyle.Sprint(dep.Implementation),
				"",
				"",
			})
		}
	}

	t.Render()
}

func (r *DeploymentsRenderer) renderSummary(summary usecase.DeploymentSummary) {
	contracts := make([]string, 0, len(summary.ByContract))
	for name, count := range summary.ByContract {
		contracts = append(contracts, fmt.Sprintf("%s: %d", name, count))
	}
	sort.Strings(contracts)

	fmt.Fprintf(r.out, "\nTotal: %d (%d proxy, %d plain)\n",
		summary.Total, summary.ByKind[domain.ProxyDeploy], summary.ByKind[domain.PlainDeploy])
	if len(contracts) > 0 {
		fmt.Fprintf(r.out, "%s\n", strings.Join(contracts, ", "))
	}
}

func kindLabel(dep *models.Deployment) string {
	if dep.IsProxy() {
		kind := string(dep.ProxyKind)
		if kind == "" {
			kind = string(domain.TransparentProxy)
		}
		return proxyStyle.Sprintf("proxy (%s)", kind)
	}
	return plainStyle.Sprint(string(dep.Kind))
}

var _ Renderer[*usecase.DeploymentListResult] = (*DeploymentsRenderer)(nil)
