package usecase

import (
	"context"

	"github.com/trebuchet-org/ignis/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *config.RuntimeConfig
	ConfigPath string // ignis.toml, empty when defaults are in use
	Local      *config.LocalConfig
	LocalPath  string
}

// ShowConfig is a use case for showing the resolved configuration
type ShowConfig struct {
	cfg   *config.RuntimeConfig
	store LocalConfigStore
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, store LocalConfigStore) *ShowConfig {
	return &ShowConfig{
		cfg:   cfg,
		store: store,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Config:     uc.cfg,
		ConfigPath: uc.cfg.ConfigFile,
		Local:      local,
		LocalPath:  uc.store.GetPath(),
	}, nil
}
