package usecase

import (
	"sort"

	"github.com/trebuchet-org/ignis/internal/domain"
)

// BuildResult is the output of one module build
type BuildResult struct {
	Module     *domain.ModuleDefinition
	Parameters []domain.ResolvedParameter
	Nodes      []*domain.ContractInstantiationNode
}

// BuildModule resolves a module's parameters against overrides and returns its contract
// instantiation nodes in deployment order. Each call builds an independent graph.
func BuildModule(def *domain.ModuleDefinition, overrides map[string]string) (*BuildResult, error) {
	if def == nil {
		return nil, &domain.InvalidModuleError{Reason: "module definition is nil"}
	}

	// Reject overrides for undeclared parameters before resolving anything
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := def.Parameter(name); !ok {
			return nil, &domain.UnknownParameterError{
				Module:    def.Name,
				Parameter: name,
				Declared:  def.ParameterNames(),
			}
		}
	}

	// Resolve in declaration order
	resolved := make([]domain.ResolvedParameter, 0, len(def.Parameters))
	values := make(map[string]domain.Value, len(def.Parameters))
	for _, spec := range def.Parameters {
		var override *string
		if v, ok := overrides[spec.Name]; ok {
			override = &v
		}
		param, err := ResolveParameter(spec, override)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, param)
		values[spec.Name] = param.Value
	}

	decls, err := def.Declarations()
	if err != nil {
		return nil, err
	}

	graph, err := NewModuleGraph(def.Name, decls)
	if err != nil {
		return nil, err
	}

	order, err := graph.TopologicalSort()
	if err != nil {
		return nil, err
	}

	nodes := make([]*domain.ContractInstantiationNode, 0, len(order))
	for _, idx := range order {
		node, err := graph.instantiate(idx, values)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return &BuildResult{
		Module:     def,
		Parameters: resolved,
		Nodes:      nodes,
	}, nil
}

// ModuleGraph is the dependency graph of one module's contract declarations
type ModuleGraph struct {
	module string
	decls  []domain.ContractDecl
	index  map[string]int // future ID -> declaration index
	deps   [][]int        // declaration index -> indices it depends on
	edges  [][]int        // declaration index -> indices that depend on it
}

// NewModuleGraph builds the graph, failing on references to undeclared futures
// and on contracts that depend on themselves.
func NewModuleGraph(module string, decls []domain.ContractDecl) (*ModuleGraph, error) {
	g := &ModuleGraph{
		module: module,
		decls:  decls,
		index:  make(map[string]int, len(decls)),
		deps:   make([][]int, len(decls)),
		edges:  make([][]int, len(decls)),
	}

	for i, decl := range decls {
		g.index[decl.ID] = i
	}

	for i, decl := range decls {
		for _, ref := range decl.References() {
			j, ok := g.index[ref]
			if !ok {
				return nil, &domain.NotFoundError{Kind: "future", Name: domain.FutureID(module, ref)}
			}
			if j == i {
				return nil, &domain.CyclicDependencyError{
					Module:  module,
					Futures: []string{domain.FutureID(module, decl.ID)},
				}
			}
			g.deps[i] = append(g.deps[i], j)
			g.edges[j] = append(g.edges[j], i)
		}
	}

	return g, nil
}

// TopologicalSort returns declaration indices in deployment order.
// Among contracts that are ready at the same time, declaration order wins.
func (g *ModuleGraph) TopologicalSort() ([]int, error) {
	inDegree := make([]int, len(g.decls))
	for i := range g.decls {
		inDegree[i] = len(g.deps[i])
	}

	var queue []int
	for i, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, i)
		}
	}

	result := make([]int, 0, len(g.decls))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		result = append(result, current)

		for _, dependent := range g.edges[current] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
				sort.Ints(queue)
			}
		}
	}

	if len(result) != len(g.decls) {
		var cycle []string
		for i, degree := range inDegree {
			if degree > 0 && g.reaches(i, i, inDegree) {
				cycle = append(cycle, domain.FutureID(g.module, g.decls[i].ID))
			}
		}
		return nil, &domain.CyclicDependencyError{Module: g.module, Futures: cycle}
	}

	return result, nil
}

// reaches reports whether target can be reached from start along dependency
// edges, walking only nodes the sort left unresolved.
func (g *ModuleGraph) reaches(start, target int, inDegree []int) bool {
	seen := make([]bool, len(g.decls))
	stack := append([]int(nil), g.edges[start]...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == target {
			return true
		}
		if seen[n] || inDegree[n] == 0 {
			continue
		}
		seen[n] = true
		stack = append(stack, g.edges[n]...)
	}
	return false
}

func (g *ModuleGraph) instantiate(idx int, params map[string]domain.Value) (*domain.ContractInstantiationNode, error) {
	decl := g.decls[idx]

	args := make([]domain.Value, 0, len(decl.Args))
	for _, arg := range decl.Args {
		switch arg.Kind {
		case domain.ArgParameter:
			v, ok := params[arg.Name]
			if !ok {
				return nil, &domain.NotFoundError{Kind: "parameter", Name: arg.Name}
			}
			args = append(args, v)
		case domain.ArgFuture:
			args = append(args, domain.FutureValue(domain.FutureID(g.module, arg.Name)))
		default:
			args = append(args, arg.Literal)
		}
	}

	deps := append([]int(nil), g.deps[idx]...)
	sort.Ints(deps)
	var dependencies []string
	for i, d := range deps {
		if i > 0 && deps[i-1] == d {
			continue
		}
		dependencies = append(dependencies, domain.FutureID(g.module, g.decls[d].ID))
	}

	return &domain.ContractInstantiationNode{
		ID:              decl.ID,
		FutureID:        domain.FutureID(g.module, decl.ID),
		ContractName:    decl.ContractName,
		ConstructorArgs: args,
		Dependencies:    dependencies,
	}, nil
}
