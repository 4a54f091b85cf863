package usecase

import (
	"github.com/trebuchet-org/ignis/internal/domain"
)

// ResolveParameter binds a parameter spec to its final value.
//
// A non-nil override wins and must be well-formed for the parameter's type; a malformed
// override never falls back to the default. Without an override the default is used.
// A required parameter with neither fails, and an optional one resolves to the zero
// value of its type.
func ResolveParameter(spec domain.ParameterSpec, override *string) (domain.ResolvedParameter, error) {
	if override != nil {
		v, err := domain.ParseValue(spec.Type, *override)
		if err != nil {
			return domain.ResolvedParameter{}, &domain.InvalidParameterError{
				Parameter: spec.Name,
				Value:     *override,
				Reason:    err.Error(),
			}
		}
		return domain.ResolvedParameter{Name: spec.Name, Value: v, Source: domain.SourceOverride}, nil
	}

	if spec.HasDefault() {
		v, err := domain.ParseValue(spec.Type, spec.Default)
		if err != nil {
			return domain.ResolvedParameter{}, &domain.InvalidParameterError{
				Parameter: spec.Name,
				Value:     spec.Default,
				Reason:    "default " + err.Error(),
			}
		}
		return domain.ResolvedParameter{Name: spec.Name, Value: v, Source: domain.SourceDefault}, nil
	}

	if spec.Required {
		return domain.ResolvedParameter{}, &domain.InvalidParameterError{
			Parameter: spec.Name,
			Reason:    "required parameter has no value and no default",
		}
	}

	if !spec.Type.Valid() {
		return domain.ResolvedParameter{}, &domain.InvalidParameterError{
			Parameter: spec.Name,
			Reason:    "unsupported parameter type " + string(spec.Type),
		}
	}

	return domain.ResolvedParameter{Name: spec.Name, Value: domain.ZeroValue(spec.Type), Source: domain.SourceZero}, nil
}
