package domain

import (
	"fmt"
)

// ArgKind tells how a constructor argument gets its value
type ArgKind string

const (
	ArgParameter ArgKind = "parameter"
	ArgLiteral   ArgKind = "literal"
	ArgFuture    ArgKind = "future"
)

// Arg is a constructor argument as declared by a module, before resolution.
// Name is the parameter name for ArgParameter and the future ID for ArgFuture.
type Arg struct {
	Kind    ArgKind
	Name    string
	Literal Value
}

func ParamArg(name string) Arg {
	return Arg{Kind: ArgParameter, Name: name}
}

func LiteralArg(v Value) Arg {
	return Arg{Kind: ArgLiteral, Literal: v}
}

// FutureArg references the deployed address of the contract declared under id
func FutureArg(id string) Arg {
	return Arg{Kind: ArgFuture, Name: id}
}

func (a Arg) String() string {
	switch a.Kind {
	case ArgParameter:
		return fmt.Sprintf("${param.%s}", a.Name)
	case ArgFuture:
		return fmt.Sprintf("${%s.address}", a.Name)
	default:
		return a.Literal.Raw
	}
}

// ContractDecl is one contract instantiation declared by a module's build function
type ContractDecl struct {
	ID           string
	ContractName string
	Args         []Arg
	After        []string
}

// References returns the future IDs this declaration must be deployed after,
// in first-mention order and without duplicates.
func (d ContractDecl) References() []string {
	seen := make(map[string]bool)
	var refs []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			refs = append(refs, id)
		}
	}
	for _, arg := range d.Args {
		if arg.Kind == ArgFuture {
			add(arg.Name)
		}
	}
	for _, id := range d.After {
		add(id)
	}
	return refs
}

// ContractInstantiationNode is one deployment step with its resolved constructor arguments.
// Nodes belong to the build that produced them and are read-only for everyone else.
type ContractInstantiationNode struct {
	ID              string   `json:"id" yaml:"id"`
	FutureID        string   `json:"futureId" yaml:"futureId"`
	ContractName    string   `json:"contractName" yaml:"contractName"`
	ConstructorArgs []Value  `json:"constructorArgs" yaml:"constructorArgs"`
	Dependencies    []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// FutureID qualifies a contract ID with its module, e.g. InsuranceModule#Insurance
func FutureID(module, id string) string {
	return module + "#" + id
}
