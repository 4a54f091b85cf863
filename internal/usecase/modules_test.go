package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ignis/internal/domain"
	"github.com/trebuchet-org/ignis/internal/modules"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

func builtinRegistry(t *testing.T) *modules.Registry {
	t.Helper()
	r := modules.NewRegistry()
	require.NoError(t, modules.RegisterBuiltins(r))
	return r
}

func TestListModules(t *testing.T) {
	r := builtinRegistry(t)
	require.NoError(t, r.Register("BrokenModule", &domain.ModuleDefinition{
		Name: "BrokenModule",
		Build: func(m *domain.ModuleBuilder) {
			m.Contract("A")
			m.Contract("A")
		},
	}))

	result, err := usecase.NewListModules(r).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Modules, 3)

	broken := result.Modules[0]
	assert.Equal(t, "BrokenModule", broken.Name)
	assert.ErrorIs(t, broken.Error, domain.ErrInvalidModule)

	insurance := result.Modules[1]
	assert.Equal(t, "InsuranceModule", insurance.Name)
	assert.Equal(t, modules.SourceBuiltin, insurance.Source)
	assert.Equal(t, 2, insurance.Parameters)
	assert.Equal(t, 1, insurance.Contracts)
	assert.NoError(t, insurance.Error)
}

func TestShowModule(t *testing.T) {
	ctx := context.Background()

	t.Run("builds with defaults", func(t *testing.T) {
		result, err := usecase.NewShowModule(builtinRegistry(t)).Run(ctx, "InsuranceModule")
		require.NoError(t, err)

		assert.Equal(t, "InsuranceModule", result.Module.Name)
		require.Len(t, result.Declarations, 1)
		assert.NoError(t, result.BuildError)
		require.NotNil(t, result.Build)
		assert.Equal(t, "InsuranceModule#Insurance", result.Build.Nodes[0].FutureID)
	})

	t.Run("reports build error for required parameters", func(t *testing.T) {
		r := modules.NewRegistry()
		require.NoError(t, r.Register("OwnedModule", &domain.ModuleDefinition{
			Name:       "OwnedModule",
			Parameters: []domain.ParameterSpec{{Name: "owner", Type: domain.ParamTypeAddress, Required: true}},
			Build: func(m *domain.ModuleBuilder) {
				m.Contract("Owned", m.Parameter("owner"))
			},
		}))

		result, err := usecase.NewShowModule(r).Run(ctx, "OwnedModule")
		require.NoError(t, err)
		assert.Nil(t, result.Build)
		assert.ErrorIs(t, result.BuildError, domain.ErrInvalidParameter)
	})

	t.Run("unknown module", func(t *testing.T) {
		_, err := usecase.NewShowModule(builtinRegistry(t)).Run(ctx, "Missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
