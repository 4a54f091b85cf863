package usecase

import (
	"context"

	"github.com/trebuchet-org/ignis/internal/domain"
)

// ShowModuleResult describes one module and how it builds with no overrides
type ShowModuleResult struct {
	Module       *domain.ModuleDefinition
	Declarations []domain.ContractDecl
	Build        *BuildResult
	BuildError   error // e.g. a required parameter without default
}

// ShowModule is a use case for inspecting a module
type ShowModule struct {
	registry ModuleRegistry
}

// NewShowModule creates a new ShowModule use case
func NewShowModule(registry ModuleRegistry) *ShowModule {
	return &ShowModule{
		registry: registry,
	}
}

// Run executes the use case
func (uc *ShowModule) Run(ctx context.Context, name string) (*ShowModuleResult, error) {
	def, err := uc.registry.Get(name)
	if err != nil {
		return nil, err
	}

	decls, err := def.Declarations()
	if err != nil {
		return nil, err
	}

	result := &ShowModuleResult{
		Module:       def,
		Declarations: decls,
	}

	result.Build, result.BuildError = BuildModule(def, nil)

	return result, nil
}
