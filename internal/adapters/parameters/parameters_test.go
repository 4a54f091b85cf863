package parameters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ignis/internal/domain"
)

var insuranceSpecs = []domain.ParameterSpec{
	{Name: "currency", Type: domain.ParamTypeAddress},
	{Name: "flightVerifier", Type: domain.ParamTypeAddress},
}

func TestEnvVarName(t *testing.T) {
	assert.Equal(t, "IGNIS_INSURANCEMODULE_FLIGHTVERIFIER", EnvVarName("InsuranceModule", "flightVerifier"))
	assert.Equal(t, "IGNIS_LEGACYINSURANCEMODULE__CURRENCY", EnvVarName("LegacyInsuranceModule", "_currency"))
	assert.Equal(t, "IGNIS_MY_MODULE_FEE_BPS", EnvVarName("my-module", "fee.bps"))
}

func TestEnvSource(t *testing.T) {
	t.Setenv("IGNIS_INSURANCEMODULE_CURRENCY", "0xC21C311b7FabEb355e8BE695bE0ad2e1B89b8c7B")
	t.Setenv("IGNIS_INSURANCEMODULE__CURRENCY", "undeclared")

	values := NewEnvSource().Lookup("InsuranceModule", insuranceSpecs)

	assert.Equal(t, map[string]string{
		"currency": "0xC21C311b7FabEb355e8BE695bE0ad2e1B89b8c7B",
	}, values)
}

func TestEnvSourceKeepsEmptyValues(t *testing.T) {
	src := &EnvSource{lookup: func(key string) (string, bool) {
		if key == "IGNIS_INSURANCEMODULE_FLIGHTVERIFIER" {
			return "", true
		}
		return "", false
	}}

	values := src.Lookup("InsuranceModule", insuranceSpecs)
	v, ok := values["flightVerifier"]
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestParseJSON(t *testing.T) {
	t.Run("strings numbers and booleans", func(t *testing.T) {
		doc := `{
  "InsuranceModule": {"currency": "0xC21C311b7FabEb355e8BE695bE0ad2e1B89b8c7B"},
  "VaultModule": {"cap": 115792089237316195423570985008687907853269984665640564039457584007913129639935, "paused": false}
}`
		values, err := ParseJSON([]byte(doc))
		require.NoError(t, err)

		assert.Equal(t, "0xC21C311b7FabEb355e8BE695bE0ad2e1B89b8c7B", values["InsuranceModule"]["currency"])
		assert.Equal(t, "115792089237316195423570985008687907853269984665640564039457584007913129639935", values["VaultModule"]["cap"])
		assert.Equal(t, "false", values["VaultModule"]["paused"])
	})

	t.Run("rejects nested values", func(t *testing.T) {
		_, err := ParseJSON([]byte(`{"M": {"p": [1, 2]}}`))
		assert.Error(t, err)
	})

	t.Run("rejects malformed document", func(t *testing.T) {
		_, err := ParseJSON([]byte(`{"M": "flat"}`))
		assert.Error(t, err)
	})
}

func TestParseYAML(t *testing.T) {
	doc := `
InsuranceModule:
  currency: "0xC21C311b7FabEb355e8BE695bE0ad2e1B89b8c7B"
  flightVerifier: 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266
VaultModule:
  cap: 500
`
	values, err := ParseYAML([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", values["InsuranceModule"]["flightVerifier"])
	assert.Equal(t, "500", values["VaultModule"]["cap"])

	_, err = ParseYAML([]byte("M:\n  p:\n    nested: true\n"))
	assert.Error(t, err)

	t.Run("null leaves the default", func(t *testing.T) {
		values, err := ParseYAML([]byte("M:\n  a: ~\n  b: null\n  c:\n  d: \"null\"\n"))
		require.NoError(t, err)

		assert.NotContains(t, values["M"], "a")
		assert.NotContains(t, values["M"], "b")
		assert.NotContains(t, values["M"], "c")
		assert.Equal(t, "null", values["M"]["d"])
	})
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "params.json")
	yamlPath := filepath.Join(dir, "params.yml")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"M": {"p": "1"}}`), 0644))
	require.NoError(t, os.WriteFile(yamlPath, []byte("M:\n  p: 2\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "params.toml"), []byte(""), 0644))

	loader := NewFileLoader()

	values, err := loader.Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "1", values["M"]["p"])

	values, err = loader.Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "2", values["M"]["p"])

	_, err = loader.Load(filepath.Join(dir, "params.toml"))
	assert.ErrorContains(t, err, "unsupported parameters file extension")

	_, err = loader.Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestParseAssignments(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "simple",
			input: []string{"currency=0xC21C311b7FabEb355e8BE695bE0ad2e1B89b8c7B", "cap=10"},
			want:  map[string]string{"currency": "0xC21C311b7FabEb355e8BE695bE0ad2e1B89b8c7B", "cap": "10"},
		},
		{
			name:  "value containing equals",
			input: []string{"label=a=b"},
			want:  map[string]string{"label": "a=b"},
		},
		{
			name:  "empty value",
			input: []string{"label="},
			want:  map[string]string{"label": ""},
		},
		{name: "missing equals", input: []string{"label"}, wantErr: true},
		{name: "missing name", input: []string{"=x"}, wantErr: true},
		{name: "duplicate", input: []string{"a=1", "a=2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssignments(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
