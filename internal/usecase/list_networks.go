package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/trebuchet-org/ignis/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	Probe bool // query each RPC endpoint for its chain ID
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Current  string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name     string
	URL      string
	PolkaVM  bool
	ChainID  uint64 // configured, or reported by the endpoint when probed
	Accounts int
	Deployer string // address of the first account, empty when none is usable
	Error    error
}

// ListNetworks is a use case for listing configured networks
type ListNetworks struct {
	cfg   *config.RuntimeConfig
	chain ChainClient
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, chain ChainClient) *ListNetworks {
	return &ListNetworks{
		cfg:   cfg,
		chain: chain,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	names := make([]string, 0, len(uc.cfg.Project.Networks))
	for name := range uc.cfg.Project.Networks {
		names = append(names, name)
	}
	sort.Strings(names)

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		network := uc.cfg.Project.Networks[name]
		status := NetworkStatus{
			Name:     name,
			URL:      network.URL,
			PolkaVM:  network.PolkaVM,
			ChainID:  network.ChainID,
			Accounts: len(network.Accounts),
		}
		if deployer, err := network.DeployerAddress(); err == nil {
			status.Deployer = deployer.Hex()
		}

		if params.Probe && !network.InProcess() {
			chainID, err := uc.chain.ChainID(ctx, network.URL)
			switch {
			case err != nil:
				status.Error = err
			case network.ChainID != 0 && chainID != network.ChainID:
				status.Error = fmt.Errorf("chain ID mismatch: configured %d, endpoint reports %d", network.ChainID, chainID)
			default:
				status.ChainID = chainID
			}
		}

		networks = append(networks, status)
	}

	result := &ListNetworksResult{Networks: networks}
	if uc.cfg.Network != nil {
		result.Current = uc.cfg.Network.Name
	}

	return result, nil
}
