package catalog

import (
	"fmt"
	"sync"

	"github.com/aretw0/graft/pkg/eval"
	"github.com/aretw0/graft/pkg/jsgen"
)

// Module bundles a catalog with everything its node types need to run:
// the code generation handlers for their building blocks and the
// calculations keyed by their type ids.
type Module interface {
	// Name is the short identifier a module is addressed by, in URLs
	// and tool arguments.
	Name() string

	// Title is the human-facing display name.
	Title() string

	// Catalog returns the module's node types.
	Catalog() (*Catalog, error)

	// RegisterGenerators installs the handlers for every generation
	// tag the module's types reach.
	RegisterGenerators(r *jsgen.Registry) error

	// Calculator returns the module's calculations.
	Calculator() (*eval.Calculator, error)
}

// Registry holds installed modules, keyed by name.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	modules map[string]Module
}

// NewRegistry creates an empty module registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Register installs a module. Registering a name twice is an error.
func (r *Registry) Register(m Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := m.Name()
	if name == "" {
		return fmt.Errorf("catalog: module has no name")
	}
	if _, exists := r.modules[name]; exists {
		return fmt.Errorf("catalog: module already registered: %s", name)
	}
	r.modules[name] = m
	r.order = append(r.order, name)
	return nil
}

// Module returns the installed module with the given name.
func (r *Registry) Module(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.modules[name]
	return m, ok
}

// Modules returns the installed modules in registration order.
func (r *Registry) Modules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Module, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.modules[name])
	}
	return out
}

// Names returns the installed module names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
