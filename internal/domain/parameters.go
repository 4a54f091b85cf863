package domain

// ParameterType represents the type of a module parameter
type ParameterType string

const (
	ParamTypeAddress ParameterType = "address"
	ParamTypeUint256 ParameterType = "uint256"
	ParamTypeBytes   ParameterType = "bytes"
	ParamTypeString  ParameterType = "string"
	ParamTypeBool    ParameterType = "bool"
)

// ParameterTypes returns every supported parameter type
func ParameterTypes() []ParameterType {
	return []ParameterType{
		ParamTypeAddress,
		ParamTypeUint256,
		ParamTypeBytes,
		ParamTypeString,
		ParamTypeBool,
	}
}

// Valid reports whether t is a supported parameter type
func (t ParameterType) Valid() bool {
	for _, known := range ParameterTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// ParameterSpec declares a module parameter. Name is unique within a module.
type ParameterSpec struct {
	Name        string        `json:"name" yaml:"name"`
	Type        ParameterType `json:"type" yaml:"type"`
	Default     string        `json:"default,omitempty" yaml:"default,omitempty"`
	Required    bool          `json:"required,omitempty" yaml:"required,omitempty"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
}

// HasDefault reports whether the parameter carries a default value
func (s ParameterSpec) HasDefault() bool {
	return s.Default != ""
}

// ValueSource records where a resolved value came from
type ValueSource string

const (
	SourceOverride ValueSource = "override"
	SourceDefault  ValueSource = "default"
	SourceZero     ValueSource = "zero"
)

// ResolvedParameter is a parameter bound to its final value. It is never mutated after resolution.
type ResolvedParameter struct {
	Name   string
	Value  Value
	Source ValueSource
}
