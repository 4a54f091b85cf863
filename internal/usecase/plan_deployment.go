package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/ignis/internal/domain"
	"github.com/trebuchet-org/ignis/internal/domain/config"
)

// PlanDeployment runs the registration -> resolution -> build pipeline for one module
// and turns the ordered nodes into a plan for the chain-interaction layer.
type PlanDeployment struct {
	cfg      *config.RuntimeConfig
	registry ModuleRegistry
	env      ParameterSource
	files    ParametersFileLoader
	encoder  ArgumentEncoder
	chain    ChainClient
	writer   PlanWriter
	selector InteractiveSelector
	progress ProgressSink
	log      *slog.Logger
}

// NewPlanDeployment creates a new plan deployment use case
func NewPlanDeployment(
	cfg *config.RuntimeConfig,
	registry ModuleRegistry,
	env ParameterSource,
	files ParametersFileLoader,
	encoder ArgumentEncoder,
	chain ChainClient,
	writer PlanWriter,
	selector InteractiveSelector,
	progress ProgressSink,
	log *slog.Logger,
) *PlanDeployment {
	return &PlanDeployment{
		cfg:      cfg,
		registry: registry,
		env:      env,
		files:    files,
		encoder:  encoder,
		chain:    chain,
		writer:   writer,
		selector: selector,
		progress: progress,
		log:      log,
	}
}

// PlanDeploymentParams contains parameters for planning
type PlanDeploymentParams struct {
	Module         string
	Parameters     map[string]string // --param overrides, highest precedence
	ParametersFile string
	Interactive    bool // prompt for overrides
	Predict        bool // predict deployed addresses from deployer and nonce
	Deployer       string
	Nonce          *uint64
	OutputPath     string
}

// DeploymentPlan is the ordered list of deployment actions handed to the execution layer
type DeploymentPlan struct {
	Module     string             `json:"module" yaml:"module"`
	Network    string             `json:"network" yaml:"network"`
	PolkaVM    bool               `json:"polkavm" yaml:"polkavm"`
	ChainID    uint64             `json:"chainId,omitempty" yaml:"chainId,omitempty"`
	Deployer   string             `json:"deployer,omitempty" yaml:"deployer,omitempty"`
	Parameters []PlannedParameter `json:"parameters" yaml:"parameters"`
	Steps      []*PlannedStep     `json:"steps" yaml:"steps"`
	CreatedAt  time.Time          `json:"createdAt" yaml:"createdAt"`
}

// PlannedParameter is a resolved parameter as recorded in the plan
type PlannedParameter struct {
	Name   string               `json:"name" yaml:"name"`
	Type   domain.ParameterType `json:"type" yaml:"type"`
	Value  string               `json:"value" yaml:"value"`
	Source domain.ValueSource   `json:"source" yaml:"source"`
}

// PlannedStep is one contract deployment in the plan
type PlannedStep struct {
	Index            int            `json:"index" yaml:"index"`
	FutureID         string         `json:"futureId" yaml:"futureId"`
	ContractName     string         `json:"contractName" yaml:"contractName"`
	ConstructorArgs  []domain.Value `json:"constructorArgs" yaml:"constructorArgs"`
	Dependencies     []string       `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	EncodedArgs      string         `json:"encodedArgs,omitempty" yaml:"encodedArgs,omitempty"`
	Nonce            *uint64        `json:"nonce,omitempty" yaml:"nonce,omitempty"`
	PredictedAddress string         `json:"predictedAddress,omitempty" yaml:"predictedAddress,omitempty"`
}

// Pending reports whether the step still has constructor arguments waiting on other deployments
func (s *PlannedStep) Pending() bool {
	for _, arg := range s.ConstructorArgs {
		if arg.IsFuture() {
			return true
		}
	}
	return false
}

// PlanDeploymentResult contains the result of planning
type PlanDeploymentResult struct {
	Plan       *DeploymentPlan
	Build      *BuildResult
	OutputPath string
}

// Run builds the plan
func (p *PlanDeployment) Run(ctx context.Context, params PlanDeploymentParams) (*PlanDeploymentResult, error) {
	def, err := p.resolveModule(ctx, params.Module)
	if err != nil {
		return nil, err
	}

	overrides, err := p.collectOverrides(ctx, def, params)
	if err != nil {
		return nil, err
	}

	build, err := BuildModule(def, overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to build module %s: %w", def.Name, err)
	}

	for _, param := range build.Parameters {
		p.log.Debug("resolved parameter",
			"module", def.Name,
			"name", param.Name,
			"value", param.Value.Raw,
			"source", param.Source)
	}

	p.progress.OnProgress(ctx, ProgressEvent{
		Stage:    "module_built",
		Total:    len(build.Nodes),
		Metadata: build,
	})

	plan := newDeploymentPlan(p.cfg.Network, build)

	if params.Predict || params.Deployer != "" || params.Nonce != nil {
		if err := p.predictAddresses(ctx, plan, params); err != nil {
			return nil, err
		}
	}

	for _, step := range plan.Steps {
		if step.Pending() {
			continue
		}
		encoded, err := p.encoder.EncodeArgs(step.ConstructorArgs)
		if err != nil {
			return nil, fmt.Errorf("failed to encode constructor arguments of %s: %w", step.FutureID, err)
		}
		step.EncodedArgs = hexutil.Encode(encoded)
	}

	result := &PlanDeploymentResult{Plan: plan, Build: build}

	if params.OutputPath != "" {
		if err := p.writer.WritePlan(plan, params.OutputPath); err != nil {
			return nil, fmt.Errorf("failed to write plan: %w", err)
		}
		result.OutputPath = params.OutputPath
	}

	p.progress.OnProgress(ctx, ProgressEvent{
		Stage:    "plan_created",
		Total:    len(plan.Steps),
		Metadata: plan,
	})

	return result, nil
}

func (p *PlanDeployment) resolveModule(ctx context.Context, name string) (*domain.ModuleDefinition, error) {
	if name != "" {
		return p.registry.Get(name)
	}

	if p.cfg.NonInteractive {
		return nil, fmt.Errorf("module name is required in non-interactive mode")
	}

	modules := p.registry.List()
	if len(modules) == 0 {
		return nil, fmt.Errorf("no modules registered")
	}

	return p.selector.SelectModule(ctx, modules)
}

// collectOverrides merges sources, lowest precedence first:
// environment, parameters file, interactive answers, --param flags.
func (p *PlanDeployment) collectOverrides(ctx context.Context, def *domain.ModuleDefinition, params PlanDeploymentParams) (map[string]string, error) {
	overrides := make(map[string]string)

	env := p.env.Lookup(def.Name, def.Parameters)
	for _, spec := range def.Parameters {
		if value, ok := env[spec.Name]; ok {
			overrides[spec.Name] = value
			p.progress.Info(fmt.Sprintf("Using %s.%s from the environment", def.Name, spec.Name))
		}
	}

	if params.ParametersFile != "" {
		byModule, err := p.files.Load(params.ParametersFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load parameters file: %w", err)
		}
		for name, value := range byModule[def.Name] {
			overrides[name] = value
		}
	}

	if params.Interactive {
		if p.cfg.NonInteractive {
			return nil, fmt.Errorf("interactive parameter entry not available in non-interactive mode")
		}
		selected, err := p.selector.SelectParameters(ctx, def.Parameters)
		if err != nil {
			return nil, err
		}
		for _, spec := range selected {
			value, err := p.selector.PromptValue(ctx, spec)
			if err != nil {
				return nil, err
			}
			overrides[spec.Name] = value
		}
	}

	for name, value := range params.Parameters {
		overrides[name] = value
	}

	return overrides, nil
}

// predictAddresses assigns CREATE addresses assuming the deployer sends one
// transaction per step, in plan order, starting at the given nonce.
func (p *PlanDeployment) predictAddresses(ctx context.Context, plan *DeploymentPlan, params PlanDeploymentParams) error {
	network := p.cfg.Network

	var deployer common.Address
	if params.Deployer != "" {
		v, err := domain.ParseValue(domain.ParamTypeAddress, params.Deployer)
		if err != nil {
			return &domain.InvalidParameterError{Parameter: "deployer", Value: params.Deployer, Reason: err.Error()}
		}
		deployer = v.Address
	} else {
		addr, err := network.DeployerAddress()
		if err != nil {
			return fmt.Errorf("cannot predict addresses: %w", err)
		}
		deployer = addr
	}

	var nonce uint64
	switch {
	case params.Nonce != nil:
		nonce = *params.Nonce
	case network.InProcess():
		nonce = 0
	default:
		p.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "fetching_nonce",
			Message: fmt.Sprintf("Fetching nonce of %s on %s", deployer.Hex(), network.Name),
			Spinner: true,
		})
		n, err := p.chain.PendingNonce(ctx, network.URL, deployer)
		p.progress.OnProgress(ctx, ProgressEvent{Stage: "nonce_fetched"})
		if err != nil {
			return fmt.Errorf("failed to fetch nonce of %s on %s: %w", deployer.Hex(), network.Name, err)
		}
		nonce = n
	}

	if plan.ChainID == 0 && !network.InProcess() && params.Predict {
		chainID, err := p.chain.ChainID(ctx, network.URL)
		if err != nil {
			return fmt.Errorf("failed to fetch chain ID of %s: %w", network.Name, err)
		}
		plan.ChainID = chainID
	}

	plan.Deployer = deployer.Hex()

	addresses := make(map[string]common.Address, len(plan.Steps))
	for i, step := range plan.Steps {
		n := nonce + uint64(i)
		addr := crypto.CreateAddress(deployer, n)
		step.Nonce = &n
		step.PredictedAddress = addr.Hex()
		addresses[step.FutureID] = addr
	}

	for _, step := range plan.Steps {
		for j, arg := range step.ConstructorArgs {
			if !arg.IsFuture() {
				continue
			}
			addr, ok := addresses[arg.Future]
			if !ok {
				return &domain.NotFoundError{Kind: "future", Name: arg.Future}
			}
			step.ConstructorArgs[j] = domain.AddressValue(addr)
		}
	}

	return nil
}

func newDeploymentPlan(network *config.NetworkConfig, build *BuildResult) *DeploymentPlan {
	plan := &DeploymentPlan{
		Module:     build.Module.Name,
		Parameters: make([]PlannedParameter, 0, len(build.Parameters)),
		Steps:      make([]*PlannedStep, 0, len(build.Nodes)),
		CreatedAt:  time.Now().UTC(),
	}
	if network != nil {
		plan.Network = network.Name
		plan.PolkaVM = network.PolkaVM
		plan.ChainID = network.ChainID
	}

	for _, param := range build.Parameters {
		plan.Parameters = append(plan.Parameters, PlannedParameter{
			Name:   param.Name,
			Type:   param.Value.Type,
			Value:  param.Value.Raw,
			Source: param.Source,
		})
	}

	for i, node := range build.Nodes {
		plan.Steps = append(plan.Steps, &PlannedStep{
			Index:           i,
			FutureID:        node.FutureID,
			ContractName:    node.ContractName,
			ConstructorArgs: append([]domain.Value(nil), node.ConstructorArgs...),
			Dependencies:    append([]string(nil), node.Dependencies...),
		})
	}

	return plan
}
