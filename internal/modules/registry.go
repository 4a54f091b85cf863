package modules

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
	"github.com/trebuchet-org/ignis/internal/domain"
)

// SourceBuiltin marks modules compiled into the binary
const SourceBuiltin = "builtin"

// Registry maps module names to their definitions. A registry is created per
// process (or per test) and passed explicitly to whatever needs it.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*domain.ModuleDefinition
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]*domain.ModuleDefinition),
	}
}

// Register adds a definition under name. The definition is validated first and the
// registry is left untouched on any error.
func (r *Registry) Register(name string, def *domain.ModuleDefinition) error {
	if def == nil {
		return &domain.InvalidModuleError{Module: name, Reason: "module definition is nil"}
	}
	if name == "" {
		return &domain.InvalidModuleError{Reason: "module name is required"}
	}
	if def.Name != name {
		return &domain.InvalidModuleError{
			Module: name,
			Reason: fmt.Sprintf("definition is named %q", def.Name),
		}
	}
	if err := def.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[name]; exists {
		return &domain.DuplicateModuleError{Name: name}
	}
	r.modules[name] = def
	return nil
}

// Get returns the definition registered under name
func (r *Registry) Get(name string) (*domain.ModuleDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.modules[name]
	if !ok {
		return nil, &domain.NotFoundError{Kind: "module", Name: name}
	}
	return def, nil
}

// Names returns the registered module names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.modules)
	sort.Strings(names)
	return names
}

// List returns all definitions sorted by name
func (r *Registry) List() []*domain.ModuleDefinition {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(names, func(name string, _ int) *domain.ModuleDefinition {
		return r.modules[name]
	})
}

// Len returns the number of registered modules
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}
