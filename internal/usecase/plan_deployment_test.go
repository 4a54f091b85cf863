package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ignis/internal/domain"
	"github.com/trebuchet-org/ignis/internal/domain/config"
	"github.com/trebuchet-org/ignis/internal/modules"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

const (
	hardhatKey      = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	hardhatAccount  = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	settlementToken = "0xC21C311b7FabEb355e8BE695bE0ad2e1B89b8c7B"
)

// MockChainClient is a mock implementation of ChainClient
type MockChainClient struct {
	mock.Mock
}

func (m *MockChainClient) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	args := m.Called(ctx, rpcURL)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockChainClient) PendingNonce(ctx context.Context, rpcURL string, account common.Address) (uint64, error) {
	args := m.Called(ctx, rpcURL, account)
	return args.Get(0).(uint64), args.Error(1)
}

// MockParametersFileLoader is a mock implementation of ParametersFileLoader
type MockParametersFileLoader struct {
	mock.Mock
}

func (m *MockParametersFileLoader) Load(path string) (map[string]map[string]string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]map[string]string), args.Error(1)
}

// MockArgumentEncoder is a mock implementation of ArgumentEncoder
type MockArgumentEncoder struct {
	mock.Mock
}

func (m *MockArgumentEncoder) EncodeArgs(values []domain.Value) ([]byte, error) {
	args := m.Called(values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockPlanWriter is a mock implementation of PlanWriter
type MockPlanWriter struct {
	mock.Mock
}

func (m *MockPlanWriter) WritePlan(plan *usecase.DeploymentPlan, path string) error {
	args := m.Called(plan, path)
	return args.Error(0)
}

// MockSelector is a mock implementation of InteractiveSelector
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) SelectModule(ctx context.Context, defs []*domain.ModuleDefinition) (*domain.ModuleDefinition, error) {
	args := m.Called(ctx, defs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModuleDefinition), args.Error(1)
}

func (m *MockSelector) SelectParameters(ctx context.Context, specs []domain.ParameterSpec) ([]domain.ParameterSpec, error) {
	args := m.Called(ctx, specs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParameterSpec), args.Error(1)
}

func (m *MockSelector) PromptValue(ctx context.Context, spec domain.ParameterSpec) (string, error) {
	args := m.Called(ctx, spec)
	return args.String(0), args.Error(1)
}

// staticEnv returns fixed values for declared parameters of one module
type staticEnv map[string]map[string]string

func (e staticEnv) Lookup(module string, specs []domain.ParameterSpec) map[string]string {
	values := make(map[string]string)
	for _, spec := range specs {
		if v, ok := e[module][spec.Name]; ok {
			values[spec.Name] = v
		}
	}
	return values
}

// recordingSink records progress events
type recordingSink struct {
	events []usecase.ProgressEvent
	infos  []string
}

func (s *recordingSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	s.events = append(s.events, event)
}

func (s *recordingSink) Info(message string) { s.infos = append(s.infos, message) }
func (s *recordingSink) Error(string)        {}

func (s *recordingSink) stages() []string {
	stages := make([]string, len(s.events))
	for i, e := range s.events {
		stages[i] = e.Stage
	}
	return stages
}

type planFixture struct {
	cfg      *config.RuntimeConfig
	registry *modules.Registry
	env      staticEnv
	files    *MockParametersFileLoader
	encoder  *MockArgumentEncoder
	chain    *MockChainClient
	writer   *MockPlanWriter
	selector *MockSelector
	sink     *recordingSink
}

func newPlanFixture(t *testing.T, network config.NetworkConfig) *planFixture {
	t.Helper()

	registry := modules.NewRegistry()
	require.NoError(t, modules.RegisterBuiltins(registry))

	f := &planFixture{
		cfg:      &config.RuntimeConfig{Network: &network},
		registry: registry,
		env:      staticEnv{},
		files:    new(MockParametersFileLoader),
		encoder:  new(MockArgumentEncoder),
		chain:    new(MockChainClient),
		writer:   new(MockPlanWriter),
		selector: new(MockSelector),
		sink:     &recordingSink{},
	}
	f.encoder.On("EncodeArgs", mock.Anything).Return([]byte{0x01, 0x02}, nil).Maybe()
	return f
}

func (f *planFixture) useCase() *usecase.PlanDeployment {
	return usecase.NewPlanDeployment(
		f.cfg,
		f.registry,
		f.env,
		f.files,
		f.encoder,
		f.chain,
		f.writer,
		f.selector,
		f.sink,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func hardhatNetwork() config.NetworkConfig {
	return config.NetworkConfig{Name: "hardhat", PolkaVM: true, Accounts: []string{hardhatKey}}
}

func remoteNetwork() config.NetworkConfig {
	return config.NetworkConfig{
		Name:     "westend",
		PolkaVM:  true,
		URL:      "https://westend-asset-hub-eth-rpc.polkadot.io",
		Accounts: []string{hardhatKey},
	}
}

func registerVaultModule(t *testing.T, r *modules.Registry) {
	t.Helper()
	require.NoError(t, r.Register("VaultModule", &domain.ModuleDefinition{
		Name: "VaultModule",
		Build: func(m *domain.ModuleBuilder) {
			m.Contract("Vault", m.Ref("Token"))
			m.Contract("Token")
		},
	}))
}

func TestPlanDeployment(t *testing.T) {
	ctx := context.Background()

	t.Run("plans builtin module with defaults", func(t *testing.T) {
		f := newPlanFixture(t, hardhatNetwork())

		result, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{Module: "InsuranceModule"})
		require.NoError(t, err)

		plan := result.Plan
		assert.Equal(t, "InsuranceModule", plan.Module)
		assert.Equal(t, "hardhat", plan.Network)
		assert.True(t, plan.PolkaVM)
		assert.Empty(t, plan.Deployer)
		require.Len(t, plan.Steps, 1)
		assert.Equal(t, "InsuranceModule#Insurance", plan.Steps[0].FutureID)
		assert.Equal(t, "0x0102", plan.Steps[0].EncodedArgs)
		assert.Nil(t, plan.Steps[0].Nonce)

		require.Len(t, plan.Parameters, 2)
		assert.Equal(t, domain.SourceDefault, plan.Parameters[0].Source)
		assert.Equal(t, []string{"module_built", "plan_created"}, f.sink.stages())
		assert.Empty(t, result.OutputPath)

		f.chain.AssertNotCalled(t, "PendingNonce", mock.Anything, mock.Anything, mock.Anything)
		f.writer.AssertNotCalled(t, "WritePlan", mock.Anything, mock.Anything)
	})

	t.Run("override precedence", func(t *testing.T) {
		f := newPlanFixture(t, hardhatNetwork())
		f.env = staticEnv{"InsuranceModule": {
			"currency":       settlementToken,
			"flightVerifier": settlementToken,
		}}
		f.files.On("Load", "params.json").Return(map[string]map[string]string{
			"InsuranceModule":       {"flightVerifier": hardhatAccount},
			"LegacyInsuranceModule": {"_currency": "ignored"},
		}, nil)

		result, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{
			Module:         "InsuranceModule",
			ParametersFile: "params.json",
			Parameters:     map[string]string{"currency": domain.ZeroAddress},
		})
		require.NoError(t, err)

		args := result.Plan.Steps[0].ConstructorArgs
		assert.Equal(t, domain.ZeroAddress, args[0].Raw)
		assert.Equal(t, hardhatAccount, args[1].Raw)
		assert.Equal(t, domain.SourceOverride, result.Plan.Parameters[0].Source)
		assert.Equal(t, []string{
			"Using InsuranceModule.currency from the environment",
			"Using InsuranceModule.flightVerifier from the environment",
		}, f.sink.infos)
		f.files.AssertExpectations(t)
	})

	t.Run("interactive answers sit below flags", func(t *testing.T) {
		f := newPlanFixture(t, hardhatNetwork())
		def, err := f.registry.Get("InsuranceModule")
		require.NoError(t, err)

		f.selector.On("SelectParameters", ctx, def.Parameters).Return(def.Parameters, nil)
		f.selector.On("PromptValue", ctx, def.Parameters[0]).Return(settlementToken, nil)
		f.selector.On("PromptValue", ctx, def.Parameters[1]).Return(settlementToken, nil)

		result, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{
			Module:      "InsuranceModule",
			Interactive: true,
			Parameters:  map[string]string{"flightVerifier": hardhatAccount},
		})
		require.NoError(t, err)

		args := result.Plan.Steps[0].ConstructorArgs
		assert.Equal(t, settlementToken, args[0].Raw)
		assert.Equal(t, hardhatAccount, args[1].Raw)
		f.selector.AssertExpectations(t)
	})

	t.Run("selects module when none given", func(t *testing.T) {
		f := newPlanFixture(t, hardhatNetwork())
		legacy, err := f.registry.Get("LegacyInsuranceModule")
		require.NoError(t, err)
		f.selector.On("SelectModule", ctx, mock.Anything).Return(legacy, nil)

		result, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{})
		require.NoError(t, err)
		assert.Equal(t, "LegacyInsuranceModule", result.Plan.Module)
		assert.Equal(t, modules.LegacyCurrency, result.Plan.Steps[0].ConstructorArgs[0].Raw)
	})

	t.Run("module name required in non-interactive mode", func(t *testing.T) {
		f := newPlanFixture(t, hardhatNetwork())
		f.cfg.NonInteractive = true

		_, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{})
		assert.Error(t, err)
		f.selector.AssertNotCalled(t, "SelectModule", mock.Anything, mock.Anything)

		_, err = f.useCase().Run(ctx, usecase.PlanDeploymentParams{Module: "InsuranceModule", Interactive: true})
		assert.Error(t, err)
	})

	t.Run("unknown module", func(t *testing.T) {
		f := newPlanFixture(t, hardhatNetwork())

		_, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{Module: "Nope"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("unknown parameter", func(t *testing.T) {
		f := newPlanFixture(t, hardhatNetwork())

		_, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{
			Module:     "InsuranceModule",
			Parameters: map[string]string{"_currency": settlementToken},
		})
		assert.ErrorIs(t, err, domain.ErrUnknownParameter)
	})

	t.Run("parameters file error", func(t *testing.T) {
		f := newPlanFixture(t, hardhatNetwork())
		f.files.On("Load", "missing.json").Return(nil, errors.New("no such file"))

		_, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{
			Module:         "InsuranceModule",
			ParametersFile: "missing.json",
		})
		assert.ErrorContains(t, err, "failed to load parameters file")
	})

	t.Run("pending steps are not encoded without prediction", func(t *testing.T) {
		f := newPlanFixture(t, hardhatNetwork())
		registerVaultModule(t, f.registry)

		result, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{Module: "VaultModule"})
		require.NoError(t, err)

		steps := result.Plan.Steps
		require.Len(t, steps, 2)
		assert.Equal(t, "VaultModule#Token", steps[0].FutureID)
		assert.Equal(t, "0x0102", steps[0].EncodedArgs)
		assert.True(t, steps[1].Pending())
		assert.Empty(t, steps[1].EncodedArgs)
		assert.Equal(t, []string{"VaultModule#Token"}, steps[1].Dependencies)
		f.encoder.AssertNumberOfCalls(t, "EncodeArgs", 1)
	})

	t.Run("predicts addresses on in-process network", func(t *testing.T) {
		f := newPlanFixture(t, hardhatNetwork())
		registerVaultModule(t, f.registry)

		result, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{Module: "VaultModule", Predict: true})
		require.NoError(t, err)

		deployer := common.HexToAddress(hardhatAccount)
		token := crypto.CreateAddress(deployer, 0)
		vault := crypto.CreateAddress(deployer, 1)

		plan := result.Plan
		assert.Equal(t, hardhatAccount, plan.Deployer)
		assert.Equal(t, token.Hex(), plan.Steps[0].PredictedAddress)
		assert.Equal(t, vault.Hex(), plan.Steps[1].PredictedAddress)
		assert.Equal(t, uint64(1), *plan.Steps[1].Nonce)

		arg := plan.Steps[1].ConstructorArgs[0]
		assert.False(t, arg.IsFuture())
		assert.Equal(t, token, arg.Address)
		assert.NotEmpty(t, plan.Steps[1].EncodedArgs)

		f.chain.AssertNotCalled(t, "PendingNonce", mock.Anything, mock.Anything, mock.Anything)
		f.chain.AssertNotCalled(t, "ChainID", mock.Anything, mock.Anything)
	})

	t.Run("fetches nonce and chain ID from remote network", func(t *testing.T) {
		network := remoteNetwork()
		f := newPlanFixture(t, network)
		registerVaultModule(t, f.registry)

		deployer := common.HexToAddress(hardhatAccount)
		f.chain.On("PendingNonce", ctx, network.URL, deployer).Return(uint64(5), nil)
		f.chain.On("ChainID", ctx, network.URL).Return(uint64(420420421), nil)

		result, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{Module: "VaultModule", Predict: true})
		require.NoError(t, err)

		plan := result.Plan
		assert.Equal(t, uint64(420420421), plan.ChainID)
		assert.Equal(t, uint64(5), *plan.Steps[0].Nonce)
		assert.Equal(t, crypto.CreateAddress(deployer, 5).Hex(), plan.Steps[0].PredictedAddress)
		assert.Equal(t, crypto.CreateAddress(deployer, 6).Hex(), plan.Steps[1].PredictedAddress)
		assert.Equal(t, []string{"module_built", "fetching_nonce", "nonce_fetched", "plan_created"}, f.sink.stages())
		f.chain.AssertExpectations(t)
	})

	t.Run("explicit deployer and nonce skip the network", func(t *testing.T) {
		f := newPlanFixture(t, remoteNetwork())
		nonce := uint64(9)

		result, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{
			Module:   "InsuranceModule",
			Deployer: settlementToken,
			Nonce:    &nonce,
		})
		require.NoError(t, err)

		deployer := common.HexToAddress(settlementToken)
		assert.Equal(t, settlementToken, result.Plan.Deployer)
		assert.Equal(t, crypto.CreateAddress(deployer, 9).Hex(), result.Plan.Steps[0].PredictedAddress)
		f.chain.AssertNotCalled(t, "PendingNonce", mock.Anything, mock.Anything, mock.Anything)
		f.chain.AssertNotCalled(t, "ChainID", mock.Anything, mock.Anything)
	})

	t.Run("invalid deployer", func(t *testing.T) {
		f := newPlanFixture(t, hardhatNetwork())

		_, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{
			Module:   "InsuranceModule",
			Deployer: "0xabc",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	})

	t.Run("nonce fetch failure", func(t *testing.T) {
		network := remoteNetwork()
		f := newPlanFixture(t, network)
		f.chain.On("PendingNonce", ctx, network.URL, mock.Anything).Return(uint64(0), errors.New("connection refused"))

		_, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{Module: "InsuranceModule", Predict: true})
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("writes plan when output path is set", func(t *testing.T) {
		f := newPlanFixture(t, hardhatNetwork())
		f.writer.On("WritePlan", mock.AnythingOfType("*usecase.DeploymentPlan"), "plan.json").Return(nil)

		result, err := f.useCase().Run(ctx, usecase.PlanDeploymentParams{
			Module:     "InsuranceModule",
			OutputPath: "plan.json",
		})
		require.NoError(t, err)
		assert.Equal(t, "plan.json", result.OutputPath)
		f.writer.AssertExpectations(t)
	})
}
