package config

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DefaultNetwork is the in-process development network that needs no RPC endpoint
const DefaultNetwork = "hardhat"

// ProjectConfig represents the full ignis.toml configuration
type ProjectConfig struct {
	Solidity SolidityConfig           `toml:"solidity" json:"solidity"`
	Resolc   ResolcConfig             `toml:"resolc" json:"resolc"`
	Networks map[string]NetworkConfig `toml:"networks" json:"networks"`
	Ignition IgnitionConfig           `toml:"ignition" json:"ignition"`
}

// SolidityConfig selects the solc release used for EVM bytecode
type SolidityConfig struct {
	Version string `toml:"version" json:"version"`
}

// ResolcConfig configures the resolc compiler that lowers Solidity to PolkaVM bytecode
type ResolcConfig struct {
	Version        string          `toml:"version" json:"version"`
	CompilerSource string          `toml:"compiler_source" json:"compilerSource"` // npm | binary
	Optimizer      OptimizerConfig `toml:"optimizer" json:"optimizer"`
}

type OptimizerConfig struct {
	Enabled    bool   `toml:"enabled" json:"enabled"`
	Parameters string `toml:"parameters" json:"parameters"` // LLVM level: 0 1 2 3 s z
	FallbackOz bool   `toml:"fallback_oz" json:"fallbackOz"`
	Runs       int    `toml:"runs" json:"runs"`
}

// NetworkConfig represents a [networks.<name>] section
type NetworkConfig struct {
	Name     string   `toml:"-" json:"name"`
	PolkaVM  bool     `toml:"polkavm" json:"polkavm"`
	URL      string   `toml:"url,omitempty" json:"url,omitempty"`
	ChainID  uint64   `toml:"chain_id,omitempty" json:"chainId,omitempty"`
	Accounts []string `toml:"accounts,omitempty" json:"-"` //nolint:gosec // private keys after env expansion
}

// IgnitionConfig locates declarative module files
type IgnitionConfig struct {
	ModulesDir string `toml:"modules_dir" json:"modulesDir"`
}

// InProcess reports whether the network runs inside the toolchain without an RPC endpoint
func (n NetworkConfig) InProcess() bool {
	return n.URL == ""
}

// DeployerAddress derives the address of the network's first configured account
func (n NetworkConfig) DeployerAddress() (common.Address, error) {
	for _, key := range n.Accounts {
		if key == "" {
			continue
		}
		return AddressFromPrivateKey(key)
	}
	return common.Address{}, fmt.Errorf("network %s has no accounts configured", n.Name)
}

// AddressFromPrivateKey derives an Ethereum address from a hex private key
func AddressFromPrivateKey(privateKeyHex string) (common.Address, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKeyECDSA, ok := privateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return common.Address{}, fmt.Errorf("failed to cast public key to ECDSA")
	}

	return crypto.PubkeyToAddress(*publicKeyECDSA), nil
}

// DefaultProjectConfig returns the settings used when ignis.toml is absent
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Solidity: SolidityConfig{Version: "0.8.28"},
		Resolc: ResolcConfig{
			Version:        "1.5.2",
			CompilerSource: "npm",
			Optimizer: OptimizerConfig{
				Enabled:    true,
				Parameters: "z",
				FallbackOz: true,
				Runs:       200,
			},
		},
		Networks: map[string]NetworkConfig{
			DefaultNetwork: {Name: DefaultNetwork, PolkaVM: true},
		},
		Ignition: IgnitionConfig{ModulesDir: "ignition/modules"},
	}
}
