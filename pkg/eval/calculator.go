package eval

import (
	"fmt"
	"sync"

	"github.com/aretw0/graft/pkg/domain"
)

// CalcFunc computes a node's output values from its input values.
//
// The inputs slice holds one value per incoming connection, ordered by
// the node's declared input pins and, within a pin, by the order in
// which the connections were made. The returned slice must hold
// exactly one value per declared output pin, in declared order.
//
// The node is provided for access to its property values; calculations
// must not mutate it.
type CalcFunc func(n *domain.Node, inputs []any) ([]any, error)

// Calculator resolves node type identifiers to calculation functions.
type Calculator struct {
	mu    sync.RWMutex
	funcs map[string]CalcFunc
}

// NewCalculator returns an empty calculator.
func NewCalculator() *Calculator {
	return &Calculator{funcs: make(map[string]CalcFunc)}
}

// Register binds a calculation to a node type identifier. Registering
// the same identifier twice is an error.
func (c *Calculator) Register(typeID string, fn CalcFunc) error {
	if fn == nil {
		return fmt.Errorf("eval: nil calculation for type %q", typeID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.funcs[typeID]; ok {
		return fmt.Errorf("eval: calculation already registered for type %q", typeID)
	}
	c.funcs[typeID] = fn
	return nil
}

// Lookup returns the calculation for a node type identifier.
func (c *Calculator) Lookup(typeID string) (CalcFunc, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fn, ok := c.funcs[typeID]
	return fn, ok
}

// Types returns how many node types have calculations registered.
func (c *Calculator) Types() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.funcs)
}
