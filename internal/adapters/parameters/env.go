package parameters

import (
	"os"
	"strings"

	"github.com/trebuchet-org/ignis/internal/domain"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// EnvPrefix is prepended to every parameter environment variable
const EnvPrefix = "IGNIS"

// EnvSource reads parameter overrides from IGNIS_<MODULE>_<PARAM> variables
type EnvSource struct {
	lookup func(string) (string, bool)
}

// NewEnvSource creates a source backed by the process environment
func NewEnvSource() *EnvSource {
	return &EnvSource{lookup: os.LookupEnv}
}

// Lookup returns the values set for the given parameters. Variables for
// undeclared names are never read.
func (s *EnvSource) Lookup(module string, specs []domain.ParameterSpec) map[string]string {
	values := make(map[string]string)
	for _, spec := range specs {
		if v, ok := s.lookup(EnvVarName(module, spec.Name)); ok {
			values[spec.Name] = v
		}
	}
	return values
}

// EnvVarName returns the variable consulted for a module parameter,
// e.g. IGNIS_INSURANCEMODULE_FLIGHTVERIFIER.
func EnvVarName(module, param string) string {
	return EnvPrefix + "_" + envSegment(module) + "_" + envSegment(param)
}

func envSegment(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}

var _ usecase.ParameterSource = (*EnvSource)(nil)
