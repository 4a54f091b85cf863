package domain

import "fmt"

// BuildFunc declares the contracts of a module on the given builder
type BuildFunc func(m *ModuleBuilder)

// ModuleDefinition is a named, parameterized recipe for deploying contracts.
// Definitions are registered once and never mutated afterwards.
type ModuleDefinition struct {
	Name        string
	Description string
	Parameters  []ParameterSpec
	Build       BuildFunc

	// Source is "builtin" or the file the module was loaded from
	Source string
}

// Parameter looks up a declared parameter by name
func (d *ModuleDefinition) Parameter(name string) (ParameterSpec, bool) {
	for _, p := range d.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return ParameterSpec{}, false
}

// ParameterNames returns the declared parameter names in declaration order
func (d *ModuleDefinition) ParameterNames() []string {
	names := make([]string, len(d.Parameters))
	for i, p := range d.Parameters {
		names[i] = p.Name
	}
	return names
}

// Validate checks the definition's shape: a name, a build function, unique and
// well-typed parameters, and well-formed defaults.
func (d *ModuleDefinition) Validate() error {
	if d.Name == "" {
		return &InvalidModuleError{Reason: "module name is required"}
	}
	if d.Build == nil {
		return &InvalidModuleError{Module: d.Name, Reason: "module has no build function"}
	}

	seen := make(map[string]bool)
	for _, p := range d.Parameters {
		if p.Name == "" {
			return &InvalidModuleError{Module: d.Name, Reason: "parameter name is required"}
		}
		if seen[p.Name] {
			return &InvalidModuleError{Module: d.Name, Reason: fmt.Sprintf("parameter %s declared twice", p.Name)}
		}
		seen[p.Name] = true

		if !p.Type.Valid() {
			return &InvalidModuleError{Module: d.Name, Reason: fmt.Sprintf("parameter %s has unsupported type %q", p.Name, p.Type)}
		}
		if p.HasDefault() {
			if _, err := ParseValue(p.Type, p.Default); err != nil {
				return &InvalidParameterError{Parameter: p.Name, Value: p.Default, Reason: "default " + err.Error()}
			}
		}
	}

	return nil
}

// Declarations runs the build function on a fresh builder and returns what it declared.
// Every call gets its own builder, so concurrent callers never share declarations.
func (d *ModuleDefinition) Declarations() ([]ContractDecl, error) {
	if d.Build == nil {
		return nil, &InvalidModuleError{Module: d.Name, Reason: "module has no build function"}
	}

	m := NewModuleBuilder(d.Name)
	d.Build(m)

	decls := m.Declarations()
	seen := make(map[string]bool)
	for _, decl := range decls {
		if decl.ContractName == "" {
			return nil, &InvalidModuleError{Module: d.Name, Reason: fmt.Sprintf("contract %q has no contract name", decl.ID)}
		}
		if seen[decl.ID] {
			return nil, &InvalidModuleError{Module: d.Name, Reason: fmt.Sprintf("future %s declared twice, give one of them an explicit id", decl.ID)}
		}
		seen[decl.ID] = true
	}

	return decls, nil
}

// ModuleBuilder collects contract declarations for one module
type ModuleBuilder struct {
	module string
	decls  []*ContractDecl
}

func NewModuleBuilder(module string) *ModuleBuilder {
	return &ModuleBuilder{module: module}
}

// Module returns the name of the module being built
func (m *ModuleBuilder) Module() string {
	return m.module
}

// Parameter references a declared module parameter
func (m *ModuleBuilder) Parameter(name string) Arg {
	return ParamArg(name)
}

// Literal passes a fixed value
func (m *ModuleBuilder) Literal(v Value) Arg {
	return LiteralArg(v)
}

// Ref references the address of a contract by ID, which may be declared later
func (m *ModuleBuilder) Ref(id string) Arg {
	return FutureArg(id)
}

// Contract declares a contract whose ID is its contract name
func (m *ModuleBuilder) Contract(contractName string, args ...Arg) *Future {
	return m.ContractWithID(contractName, contractName, args...)
}

// ContractWithID declares a contract under an explicit ID
func (m *ModuleBuilder) ContractWithID(id, contractName string, args ...Arg) *Future {
	return m.Declare(ContractDecl{ID: id, ContractName: contractName, Args: args})
}

// Declare adds a fully formed declaration
func (m *ModuleBuilder) Declare(decl ContractDecl) *Future {
	d := decl
	d.Args = append([]Arg(nil), decl.Args...)
	d.After = append([]string(nil), decl.After...)
	m.decls = append(m.decls, &d)
	return &Future{decl: &d}
}

// Declarations returns copies of everything declared so far, in declaration order
func (m *ModuleBuilder) Declarations() []ContractDecl {
	out := make([]ContractDecl, len(m.decls))
	for i, d := range m.decls {
		out[i] = *d
		out[i].Args = append([]Arg(nil), d.Args...)
		out[i].After = append([]string(nil), d.After...)
	}
	return out
}

// Future is a handle to a declared contract
type Future struct {
	decl *ContractDecl
}

func (f *Future) ID() string {
	return f.decl.ID
}

// Address references the deployed address of this contract
func (f *Future) Address() Arg {
	return FutureArg(f.decl.ID)
}

// After orders this contract after the given ones without passing their addresses
func (f *Future) After(others ...*Future) *Future {
	for _, o := range others {
		f.decl.After = append(f.decl.After, o.decl.ID)
	}
	return f
}
