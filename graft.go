package graft

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/graft/internal/logging"
	"github.com/aretw0/graft/pkg/catalog"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/dsl"
	"github.com/aretw0/graft/pkg/eval"
	"github.com/aretw0/graft/pkg/jsgen"
)

// ErrUnknownModule is returned when an engine operation names a module
// that was never registered.
var ErrUnknownModule = errors.New("unknown module")

// Engine is the high-level entry point for the graft library. It holds
// the installed modules and serves catalogs, generated editor scripts,
// and evaluation on top of them.
//
// An Engine is safe for concurrent use. Catalogs, calculators, and
// generated scripts are built once per module and cached.
type Engine struct {
	logger  *slog.Logger
	modules *catalog.Registry
	pending []catalog.Module

	mu       sync.Mutex
	catalogs map[string]*catalog.Catalog
	calcs    map[string]*eval.Calculator
	scripts  map[string]string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithModules installs modules at construction time.
func WithModules(mods ...catalog.Module) Option {
	return func(e *Engine) {
		e.pending = append(e.pending, mods...)
	}
}

// New initializes an Engine.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		logger:   logging.NewNop(),
		modules:  catalog.NewRegistry(),
		catalogs: make(map[string]*catalog.Catalog),
		calcs:    make(map[string]*eval.Calculator),
		scripts:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, m := range e.pending {
		if err := e.RegisterModule(m); err != nil {
			return nil, err
		}
	}
	e.pending = nil
	return e, nil
}

// RegisterModule installs a module after construction.
func (e *Engine) RegisterModule(m catalog.Module) error {
	if err := e.modules.Register(m); err != nil {
		return err
	}
	e.logger.Debug("module registered", "module", m.Name())
	return nil
}

// Module returns an installed module.
func (e *Engine) Module(name string) (catalog.Module, bool) {
	return e.modules.Module(name)
}

// Modules returns the installed modules in registration order.
func (e *Engine) Modules() []catalog.Module {
	return e.modules.Modules()
}

// Catalog returns the module's catalog. The catalog is built on first
// use and shared by every later call, so type templates keep pointer
// identity across the engine's surfaces.
func (e *Engine) Catalog(module string) (*catalog.Catalog, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalogLocked(module)
}

func (e *Engine) catalogLocked(module string) (*catalog.Catalog, error) {
	if c, ok := e.catalogs[module]; ok {
		return c, nil
	}
	m, ok := e.modules.Module(module)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, module)
	}
	c, err := m.Catalog()
	if err != nil {
		return nil, fmt.Errorf("graft: module %s: %w", module, err)
	}
	e.catalogs[module] = c
	return c, nil
}

// NewBuilder returns a graph builder bound to the module's catalog.
func (e *Engine) NewBuilder(module string) (*dsl.Builder, error) {
	c, err := e.Catalog(module)
	if err != nil {
		return nil, err
	}
	return dsl.New(c), nil
}

// GenerateScript returns the module's complete editor script: every
// node type's definition block, preceded by the static fragments they
// share. The script is generated once and cached.
func (e *Engine) GenerateScript(module string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if s, ok := e.scripts[module]; ok {
		return s, nil
	}
	c, err := e.catalogLocked(module)
	if err != nil {
		return "", err
	}
	m, _ := e.modules.Module(module)

	r := jsgen.NewRegistry()
	if err := m.RegisterGenerators(r); err != nil {
		return "", fmt.Errorf("graft: module %s: %w", module, err)
	}
	ctx := jsgen.NewContext(r)
	for _, nt := range c.Types() {
		if err := ctx.NodeType(nt); err != nil {
			return "", fmt.Errorf("graft: module %s: %w", module, err)
		}
	}

	s := ctx.Build()
	e.scripts[module] = s
	e.logger.Debug("module script generated", "module", module, "bytes", len(s))
	return s, nil
}

// Calculator returns the module's calculations, built on first use.
func (e *Engine) Calculator(module string) (*eval.Calculator, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if c, ok := e.calcs[module]; ok {
		return c, nil
	}
	m, ok := e.modules.Module(module)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, module)
	}
	c, err := m.Calculator()
	if err != nil {
		return nil, fmt.Errorf("graft: module %s: %w", module, err)
	}
	e.calcs[module] = c
	return c, nil
}

// Evaluate runs a graph with the module's calculations.
func (e *Engine) Evaluate(module string, g *domain.Graph, opts ...eval.Option) (eval.Values, error) {
	calc, err := e.Calculator(module)
	if err != nil {
		return nil, err
	}
	runOpts := append([]eval.Option{eval.WithLogger(e.logger)}, opts...)
	return eval.Evaluate(g, calc, runOpts...)
}
