package app

import (
	"log/slog"

	"github.com/trebuchet-org/ignis/internal/domain/config"
	"github.com/trebuchet-org/ignis/internal/modules"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Registry *modules.Registry
	Logger   *slog.Logger

	// Use cases
	ListModules    *usecase.ListModules
	ShowModule     *usecase.ShowModule
	PlanDeployment *usecase.PlanDeployment
	ListNetworks   *usecase.ListNetworks
	ShowConfig     *usecase.ShowConfig
	SetConfig      *usecase.SetConfig
	RemoveConfig   *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	registry *modules.Registry,
	logger *slog.Logger,
	listModules *usecase.ListModules,
	showModule *usecase.ShowModule,
	planDeployment *usecase.PlanDeployment,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:         cfg,
		Registry:       registry,
		Logger:         logger,
		ListModules:    listModules,
		ShowModule:     showModule,
		PlanDeployment: planDeployment,
		ListNetworks:   listNetworks,
		ShowConfig:     showConfig,
		SetConfig:      setConfig,
		RemoveConfig:   removeConfig,
	}, nil
}
