package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/ignis/internal/domain"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// PlanRenderer renders deployment plans
type PlanRenderer struct {
	out  io.Writer
	json bool
}

// NewPlanRenderer creates a new plan renderer
func NewPlanRenderer(out io.Writer, json bool) *PlanRenderer {
	return &PlanRenderer{out: out, json: json}
}

// Render renders the plan
func (r *PlanRenderer) Render(result *usecase.PlanDeploymentResult) error {
	plan := result.Plan

	if r.json {
		return RenderJSON(r.out, plan)
	}

	vm := "evm"
	if plan.PolkaVM {
		vm = "polkavm"
	}
	fmt.Fprintf(r.out, "%s %s %s\n",
		headerStyle.Sprint("🚀 Deployment plan for"),
		nameStyle.Sprint(plan.Module),
		faintStyle.Sprintf("on %s (%s)", plan.Network, vm))
	if plan.ChainID != 0 {
		fmt.Fprintf(r.out, "   %s\n", faintStyle.Sprintf("chain ID %d", plan.ChainID))
	}
	if plan.Deployer != "" {
		fmt.Fprintf(r.out, "   %s %s\n", faintStyle.Sprint("deployer"), addressStyle.Sprint(plan.Deployer))
	}
	fmt.Fprintln(r.out)

	if len(plan.Parameters) > 0 {
		fmt.Fprintln(r.out, headerStyle.Sprint("Parameters"))
		t := newTable(r.out, table.Row{"NAME", "TYPE", "VALUE", "SOURCE"})
		for _, p := range plan.Parameters {
			source := Title(string(p.Source))
			if p.Source == domain.SourceOverride {
				source = overrideStyle.Sprint(source)
			} else {
				source = faintStyle.Sprint(source)
			}
			t.AppendRow(table.Row{
				nameStyle.Sprint(p.Name),
				typeStyle.Sprint(p.Type),
				p.Value,
				source,
			})
		}
		t.Render()
		fmt.Fprintln(r.out)
	}

	fmt.Fprintln(r.out, headerStyle.Sprint("Deployment order"))
	for _, step := range plan.Steps {
		fmt.Fprintf(r.out, "  %d. %s\n", step.Index+1, formatNode(step.FutureID, step.ContractName, step.ConstructorArgs))
		if len(step.Dependencies) > 0 {
			fmt.Fprintf(r.out, "     %s\n", faintStyle.Sprintf("after: %s", strings.Join(step.Dependencies, ", ")))
		}
		if step.PredictedAddress != "" {
			fmt.Fprintf(r.out, "     %s %s %s\n",
				faintStyle.Sprint("address:"),
				addressStyle.Sprint(step.PredictedAddress),
				faintStyle.Sprintf("(nonce %d)", *step.Nonce))
		}
		if step.EncodedArgs != "" && step.EncodedArgs != "0x" {
			fmt.Fprintf(r.out, "     %s %s\n", faintStyle.Sprint("args:"), shortHex(step.EncodedArgs, 16))
		}
	}

	if result.OutputPath != "" {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Plan written to %s", relativePath(result.OutputPath))))
	}

	return nil
}

var _ Renderer[*usecase.PlanDeploymentResult] = (*PlanRenderer)(nil)
