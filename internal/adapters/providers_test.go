package adapters

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ignis/internal/domain/config"
)

func TestProvideModuleRegistry(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()

	cfg := &config.RuntimeConfig{ModulesDir: filepath.Join(dir, "missing")}
	reg, err := ProvideModuleRegistry(cfg, log)
	require.NoError(t, err)
	assert.Equal(t, []string{"InsuranceModule", "LegacyInsuranceModule"}, reg.Names())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "token.yaml"), []byte("name: TokenModule\ncontracts:\n  - contract: Token\n"), 0644))
	cfg.ModulesDir = dir
	reg, err = ProvideModuleRegistry(cfg, log)
	require.NoError(t, err)
	assert.Equal(t, []string{"InsuranceModule", "LegacyInsuranceModule", "TokenModule"}, reg.Names())
}

func TestProvideRPCClient(t *testing.T) {
	assert.NotNil(t, ProvideRPCClient(&config.RuntimeConfig{}))
}
