package adapters

import (
	"log/slog"

	"github.com/google/wire"
	"github.com/trebuchet-org/ignis/internal/adapters/abi"
	"github.com/trebuchet-org/ignis/internal/adapters/blockchain"
	"github.com/trebuchet-org/ignis/internal/adapters/fs"
	"github.com/trebuchet-org/ignis/internal/adapters/interactive"
	"github.com/trebuchet-org/ignis/internal/adapters/modulefile"
	"github.com/trebuchet-org/ignis/internal/adapters/parameters"
	"github.com/trebuchet-org/ignis/internal/domain/config"
	"github.com/trebuchet-org/ignis/internal/modules"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// ProvideModuleRegistry builds the process registry: built-in modules first,
// then every module file in the project's modules directory.
func ProvideModuleRegistry(cfg *config.RuntimeConfig, log *slog.Logger) (*modules.Registry, error) {
	reg := modules.NewRegistry()
	if err := modules.RegisterBuiltins(reg); err != nil {
		return nil, err
	}

	if err := modulefile.NewLoader(cfg.ModulesDir, log).LoadInto(reg); err != nil {
		return nil, err
	}

	return reg, nil
}

// ProvideRPCClient provides a chain client bounded by the configured timeout
func ProvideRPCClient(cfg *config.RuntimeConfig) *blockchain.RPCClient {
	return blockchain.NewRPCClient(cfg.Timeout)
}

// RegistrySet provides the module registry
var RegistrySet = wire.NewSet(
	ProvideModuleRegistry,
	wire.Bind(new(usecase.ModuleRegistry), new(*modules.Registry)),
)

// ParametersSet provides parameter override sources
var ParametersSet = wire.NewSet(
	parameters.NewEnvSource,
	wire.Bind(new(usecase.ParameterSource), new(*parameters.EnvSource)),

	parameters.NewFileLoader,
	wire.Bind(new(usecase.ParametersFileLoader), new(*parameters.FileLoader)),
)

// EncodingSet provides ABI encoding
var EncodingSet = wire.NewSet(
	abi.NewConstructorEncoder,
	wire.Bind(new(usecase.ArgumentEncoder), new(*abi.ConstructorEncoder)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewPlanWriterAdapter,
	wire.Bind(new(usecase.PlanWriter), new(*fs.PlanWriterAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.InteractiveSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	ProvideRPCClient,
	wire.Bind(new(usecase.ChainClient), new(*blockchain.RPCClient)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RegistrySet,
	ParametersSet,
	EncodingSet,
	FSSet,
	InteractiveSet,
	BlockchainSet,
)
