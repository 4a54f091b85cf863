package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string
	ConfigFile  string // empty when ignis.toml is absent and defaults are in use

	// Context settings
	Network *NetworkConfig // always set, defaults to the in-process hardhat network

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Default parameters file for plan, from --parameters or config.local.json
	ParametersFile string

	// Resolved configurations
	Project    *ProjectConfig
	ModulesDir string // absolute path of the declarative module directory
}
