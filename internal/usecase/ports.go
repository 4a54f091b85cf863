package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/ignis/internal/domain"
	"github.com/trebuchet-org/ignis/internal/domain/config"
)

// ModuleRegistry gives read access to registered module definitions
type ModuleRegistry interface {
	Get(name string) (*domain.ModuleDefinition, error)
	List() []*domain.ModuleDefinition
}

// ParameterSource supplies override values for a module's declared parameters.
// Sources only return names present in specs.
type ParameterSource interface {
	Lookup(module string, specs []domain.ParameterSpec) map[string]string
}

// ParametersFileLoader reads a parameters file keyed by module name
type ParametersFileLoader interface {
	Load(path string) (map[string]map[string]string, error)
}

// ArgumentEncoder ABI-encodes constructor arguments
type ArgumentEncoder interface {
	EncodeArgs(values []domain.Value) ([]byte, error)
}

// ChainClient queries a network over JSON-RPC
type ChainClient interface {
	ChainID(ctx context.Context, rpcURL string) (uint64, error)
	PendingNonce(ctx context.Context, rpcURL string, account common.Address) (uint64, error)
}

// PlanWriter persists a deployment plan for the execution layer
type PlanWriter interface {
	WritePlan(plan *DeploymentPlan, path string) error
}

// LocalConfigStore persists local configuration defaults
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, cfg *config.LocalConfig) error
	GetPath() string
}

// InteractiveSelector asks the user to choose when input is incomplete
type InteractiveSelector interface {
	SelectModule(ctx context.Context, modules []*domain.ModuleDefinition) (*domain.ModuleDefinition, error)
	SelectParameters(ctx context.Context, specs []domain.ParameterSpec) ([]domain.ParameterSpec, error)
	PromptValue(ctx context.Context, spec domain.ParameterSpec) (string, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
