package jsgen

import (
	"fmt"
	"sync"
)

// Value is anything generation can be asked about: a data type, pin
// generator, property, or node type. The tag selects the registered
// handler pair.
type Value interface {
	GenTag() string
}

// GenerateFunc produces the per-instance text for one value. Handlers
// may recurse into the context to generate nested values, e.g. a
// pin's data type or a chained generator's pieces.
type GenerateFunc func(ctx *Context, v Value) (string, error)

// Constant wraps a fixed string as a GenerateFunc, for handlers whose
// per-instance output never varies.
func Constant(text string) GenerateFunc {
	return func(*Context, Value) (string, error) { return text, nil }
}

type handler struct {
	static  string
	dynamic GenerateFunc
}

// Registry maps generation tags to their handler pair: a static
// fragment recorded at most once per build, and a dynamic generator.
// Domain modules populate a registry before generation; the engine
// defines no built-in handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]handler)}
}

// Register binds a tag to its fragments. The static fragment may be
// empty, and the dynamic generator may be nil for a static-only tag.
// Registering the same tag twice is an error.
func (r *Registry) Register(tag, static string, dynamic GenerateFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[tag]; exists {
		return fmt.Errorf("jsgen: tag already registered: %s", tag)
	}
	r.handlers[tag] = handler{static: static, dynamic: dynamic}
	return nil
}

// Tags returns the number of registered tags.
func (r *Registry) Tags() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

func (r *Registry) lookup(tag string) (handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[tag]
	return h, ok
}
