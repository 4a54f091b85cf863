package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/ignis/internal/domain"
	"github.com/trebuchet-org/ignis/internal/domain/config"
)

// ConfigFileName is the project configuration file looked up at the project root
const ConfigFileName = "ignis.toml"

var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// LoadProjectConfig loads .env files and ignis.toml from projectRoot. It returns the
// path of the file that was read, or "" when the file is absent and defaults apply.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, string, error) {
	loadEnvFiles(projectRoot)

	cfg := config.DefaultProjectConfig()

	path := filepath.Join(projectRoot, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, "", nil
	}

	// Decoding over the defaults keeps the in-process network and unset sections
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, "", fmt.Errorf("%w: failed to parse %s: %w", domain.ErrInvalidConfig, ConfigFileName, err)
	}

	for name, network := range cfg.Networks {
		network.Name = name
		network.URL = os.ExpandEnv(network.URL)
		accounts := make([]string, len(network.Accounts))
		for i, account := range network.Accounts {
			accounts[i] = os.ExpandEnv(account)
		}
		network.Accounts = accounts
		cfg.Networks[name] = network
	}

	if cfg.Ignition.ModulesDir == "" {
		cfg.Ignition.ModulesDir = config.DefaultProjectConfig().Ignition.ModulesDir
	}

	if err := Validate(cfg); err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}

// loadEnvFiles loads .env then .env.local. Variables already set in the
// environment are never overwritten.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// Validate checks a project configuration and reports every problem at once
func Validate(cfg *config.ProjectConfig) error {
	var errs []error

	if !semverPattern.MatchString(cfg.Solidity.Version) {
		errs = append(errs, fmt.Errorf("solidity.version %q is not MAJOR.MINOR.PATCH", cfg.Solidity.Version))
	}

	if cfg.Resolc.Version != "" && !semverPattern.MatchString(cfg.Resolc.Version) {
		errs = append(errs, fmt.Errorf("resolc.version %q is not MAJOR.MINOR.PATCH", cfg.Resolc.Version))
	}

	switch cfg.Resolc.CompilerSource {
	case "npm", "binary":
	default:
		errs = append(errs, fmt.Errorf("resolc.compiler_source must be npm or binary, got %q", cfg.Resolc.CompilerSource))
	}

	switch cfg.Resolc.Optimizer.Parameters {
	case "0", "1", "2", "3", "s", "z":
	default:
		errs = append(errs, fmt.Errorf("resolc.optimizer.parameters must be one of 0 1 2 3 s z, got %q", cfg.Resolc.Optimizer.Parameters))
	}

	if cfg.Resolc.Optimizer.Runs < 0 {
		errs = append(errs, fmt.Errorf("resolc.optimizer.runs must not be negative"))
	}

	names := make([]string, 0, len(cfg.Networks))
	for name := range cfg.Networks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		network := cfg.Networks[name]
		if name != config.DefaultNetwork && network.URL == "" {
			errs = append(errs, fmt.Errorf("networks.%s.url is required", name))
		}
		if network.URL != "" && !hasScheme(network.URL) {
			errs = append(errs, fmt.Errorf("networks.%s.url %q must be an http(s) or ws(s) URL", name, network.URL))
		}
		for i, account := range network.Accounts {
			if account == "" {
				continue
			}
			if !isPrivateKey(account) {
				errs = append(errs, fmt.Errorf("networks.%s.accounts[%d] is not a 32-byte hex private key", name, i))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func hasScheme(url string) bool {
	for _, scheme := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(url, scheme) {
			return true
		}
	}
	return false
}

func isPrivateKey(key string) bool {
	if !strings.HasPrefix(key, "0x") {
		key = "0x" + key
	}
	b, err := hexutil.Decode(key)
	return err == nil && len(b) == 32
}
