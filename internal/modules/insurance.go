package modules

import (
	"github.com/trebuchet-org/ignis/internal/domain"
)

// LegacyCurrency is the settlement token the first Insurance deployment defaulted to
const LegacyCurrency = "0xC21C311b7FabEb355e8BE695bE0ad2e1B89b8c7B"

// InsuranceModule deploys Insurance with its settlement currency and flight verifier.
func InsuranceModule() *domain.ModuleDefinition {
	return &domain.ModuleDefinition{
		Name:        "InsuranceModule",
		Description: "Insurance with settlement currency and flight verifier",
		Source:      SourceBuiltin,
		Parameters: []domain.ParameterSpec{
			{
				Name:        "currency",
				Type:        domain.ParamTypeAddress,
				Default:     domain.ZeroAddress,
				Description: "ERC-20 token premiums and payouts are settled in",
			},
			{
				Name:        "flightVerifier",
				Type:        domain.ParamTypeAddress,
				Default:     domain.ZeroAddress,
				Description: "Oracle contract that attests flight delays",
			},
		},
		Build: func(m *domain.ModuleBuilder) {
			m.Contract("Insurance", m.Parameter("currency"), m.Parameter("flightVerifier"))
		},
	}
}

// LegacyInsuranceModule is the earlier single-argument Insurance deployment.
func LegacyInsuranceModule() *domain.ModuleDefinition {
	return &domain.ModuleDefinition{
		Name:        "LegacyInsuranceModule",
		Description: "Insurance with settlement currency only (superseded by InsuranceModule)",
		Source:      SourceBuiltin,
		Parameters: []domain.ParameterSpec{
			{
				Name:        "_currency",
				Type:        domain.ParamTypeAddress,
				Default:     LegacyCurrency,
				Description: "ERC-20 token premiums and payouts are settled in",
			},
		},
		Build: func(m *domain.ModuleBuilder) {
			m.Contract("Insurance", m.Parameter("_currency"))
		},
	}
}

// Builtins returns fresh copies of every built-in module
func Builtins() []*domain.ModuleDefinition {
	return []*domain.ModuleDefinition{
		InsuranceModule(),
		LegacyInsuranceModule(),
	}
}

// RegisterBuiltins registers the built-in modules
func RegisterBuiltins(r *Registry) error {
	for _, def := range Builtins() {
		if err := r.Register(def.Name, def); err != nil {
			return err
		}
	}
	return nil
}
