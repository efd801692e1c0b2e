package render

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/energynft/nftdeploy/internal/usecase"
)

// VerifyRenderer renders the on-chain check of recorded deployments
type VerifyRenderer struct {
	out io.Writer
}

// NewVerifyRenderer creates a new verify renderer
func NewVerifyRenderer(out io.Writer) *VerifyRenderer {
	return &VerifyRenderer{out: out}
}

// Render prints one line per checked deployment and a summary
func (r *VerifyRenderer) Render(result *usecase.VerifyAllResult) error {
	if len(result.Results) == 0 {
		fmt.Fprintln(r.out, FormatWarning("No deployments found"))
		return nil
	}

	title := cases.Title(language.English)
	for _, res := range result.Results {
		dep := res.Deployment
		line := fmt.Sprintf("[%s] %s at %s", title.String(string(dep.Kind)), dep.Contract, dep.Address)
		if res.Err != nil {
			fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%s: %v", line, res.Err)))
			continue
		}
		fmt.Fprintln(r.out, FormatSuccess(line))
	}

	fmt.Fprintf(r.out, "\n%d checked, %d failed\n", len(result.Results), result.Failed)
	return nil
}

var _ Renderer[*usecase.VerifyAllResult] = (*VerifyRenderer)(nil)
