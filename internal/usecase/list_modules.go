package usecase

import (
	"context"

	"github.com/trebuchet-org/ignis/internal/domain"
)

// ListModulesResult contains the registered modules
type ListModulesResult struct {
	Modules []ModuleSummary
}

// ModuleSummary is a one-line view of a registered module
type ModuleSummary struct {
	Name        string
	Description string
	Source      string
	Parameters  int
	Contracts   int
	Error       error // set when the module's declarations are invalid
}

// ListModules is a use case for listing registered modules
type ListModules struct {
	registry ModuleRegistry
}

// NewListModules creates a new ListModules use case
func NewListModules(registry ModuleRegistry) *ListModules {
	return &ListModules{
		registry: registry,
	}
}

// Run executes the use case
func (uc *ListModules) Run(ctx context.Context) (*ListModulesResult, error) {
	modules := uc.registry.List()

	summaries := make([]ModuleSummary, 0, len(modules))
	for _, def := range modules {
		summaries = append(summaries, summarize(def))
	}

	return &ListModulesResult{Modules: summaries}, nil
}

func summarize(def *domain.ModuleDefinition) ModuleSummary {
	summary := ModuleSummary{
		Name:        def.Name,
		Description: def.Description,
		Source:      def.Source,
		Parameters:  len(def.Parameters),
	}

	decls, err := def.Declarations()
	if err != nil {
		summary.Error = err
	} else {
		summary.Contracts = len(decls)
	}

	return summary
}
