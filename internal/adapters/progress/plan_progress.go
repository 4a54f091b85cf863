package progress

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// PlanProgress reports plan building on stderr
type PlanProgress struct {
	spinner *SpinnerSink
}

// NewPlanProgress creates a new plan progress reporter
func NewPlanProgress() *PlanProgress {
	return &PlanProgress{spinner: NewSpinnerSink()}
}

// OnProgress handles progress events for plan operations
func (p *PlanProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	switch event.Stage {
	case "module_built":
		p.spinner.Stop()
		if build, ok := event.Metadata.(*usecase.BuildResult); ok {
			fmt.Fprintf(p.spinner.out, "%s %s %s\n",
				color.New(color.FgGreen).Sprint("✓"),
				color.New(color.Bold).Sprint(build.Module.Name),
				color.New(color.Faint).Sprintf("built, %d contract(s) to deploy", len(build.Nodes)))
		}

	case "plan_created":
		p.spinner.Stop()

	default:
		p.spinner.OnProgress(ctx, event)
	}
}

// Info forwards info messages to the spinner
func (p *PlanProgress) Info(message string) {
	p.spinner.Info(message)
}

// Error forwards error messages to the spinner
func (p *PlanProgress) Error(message string) {
	p.spinner.Error(message)
}

var _ usecase.ProgressSink = (*PlanProgress)(nil)
