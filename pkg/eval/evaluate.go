package eval

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/graft/internal/logging"
	"github.com/aretw0/graft/pkg/domain"
)

// ValueRef addresses one output pin in an evaluation result.
type ValueRef struct {
	Node string
	Pin  string
}

func (r ValueRef) String() string { return r.Node + "." + r.Pin }

// Values maps every evaluated output pin to the value it produced.
type Values map[ValueRef]any

// NodeHook observes a node right after its calculation ran. The
// outputs slice is in declared output-pin order; hooks must not keep
// or mutate it.
type NodeHook func(n *domain.Node, outputs []any)

// Option configures one evaluation run.
type Option func(*runner)

// WithLogger attaches a logger for per-node progress.
func WithLogger(logger *slog.Logger) Option {
	return func(r *runner) {
		r.logger = logger
	}
}

// OnNodeEvaluated registers a hook invoked after each node runs.
func OnNodeEvaluated(fn NodeHook) Option {
	return func(r *runner) {
		r.hooks = append(r.hooks, fn)
	}
}

type runner struct {
	logger *slog.Logger
	hooks  []NodeHook
}

// Evaluate runs every node in dependency order and returns the value
// produced at each output pin.
//
// The full order is computed before any calculation runs: a node
// becomes ready once every node feeding its inputs has been scheduled,
// ties broken by graph insertion order. If no complete order exists
// the graph has a cycle and Evaluate fails with a CycleError without
// running anything.
//
// Each calculation receives one input value per incoming edge, ordered
// by the node's declared input pins and, within a pin, by the order
// the connections were made. An edge whose source value is absent (a
// dangling reference left behind by node removal) fails the run with a
// MissingValueError. Any failure returns a nil result.
func Evaluate(g *domain.Graph, calc *Calculator, opts ...Option) (Values, error) {
	r := &runner{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	order, err := schedule(g)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("evaluation scheduled", "nodes", len(order))

	values := make(Values)
	for _, n := range order {
		outputs, err := r.runNode(calc, n, values)
		if err != nil {
			return nil, err
		}
		for _, hook := range r.hooks {
			hook(n, outputs)
		}
	}
	return values, nil
}

// schedule orders the graph's nodes so every node follows the nodes
// feeding its inputs. Edges whose source lies outside the graph carry
// no ordering weight; the hole they leave is reported when the input
// is gathered.
func schedule(g *domain.Graph) ([]*domain.Node, error) {
	indegree := make(map[string]int, g.Len())
	for _, id := range g.IDs() {
		indegree[id] = 0
	}
	for _, n := range g.Nodes() {
		for _, p := range n.InputPins() {
			for _, src := range n.Connections(p.ID) {
				if _, present := indegree[src.NodeID]; present {
					indegree[n.ID()]++
				}
			}
		}
	}

	pending := g.IDs()
	order := make([]*domain.Node, 0, g.Len())
	for len(pending) > 0 {
		var ready, blocked []string
		for _, id := range pending {
			if indegree[id] == 0 {
				ready = append(ready, id)
			} else {
				blocked = append(blocked, id)
			}
		}
		if len(ready) == 0 {
			return nil, &CycleError{Remaining: blocked}
		}
		for _, id := range ready {
			n, _ := g.Node(id)
			order = append(order, n)
			for _, p := range n.OutputPins() {
				for _, dst := range n.Connections(p.ID) {
					if _, present := indegree[dst.NodeID]; present {
						indegree[dst.NodeID]--
					}
				}
			}
		}
		pending = blocked
	}
	return order, nil
}

func (r *runner) runNode(calc *Calculator, n *domain.Node, values Values) ([]any, error) {
	typeID := n.Type().ID()
	fn, ok := calc.Lookup(typeID)
	if !ok {
		return nil, &NoCalculatorError{NodeID: n.ID(), TypeID: typeID}
	}

	inputs, err := gatherInputs(n, values)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("evaluating node", "node", n.ID(), "type", typeID, "inputs", len(inputs))

	outputs, err := fn(n, inputs)
	if err != nil {
		return nil, fmt.Errorf("eval: node %q: %w", n.ID(), err)
	}

	outPins := n.OutputPins()
	if len(outputs) != len(outPins) {
		return nil, &OutputArityError{NodeID: n.ID(), Got: len(outputs), Want: len(outPins)}
	}
	for i, p := range outPins {
		values[ValueRef{Node: n.ID(), Pin: p.ID}] = outputs[i]
	}
	return outputs, nil
}

func gatherInputs(n *domain.Node, values Values) ([]any, error) {
	var inputs []any
	for _, p := range n.InputPins() {
		for _, src := range n.Connections(p.ID) {
			v, ok := values[ValueRef{Node: src.NodeID, Pin: src.PinID}]
			if !ok {
				return nil, &MissingValueError{
					Source: src,
					Dest:   domain.ConnRef{NodeID: n.ID(), PinID: p.ID},
				}
			}
			inputs = append(inputs, v)
		}
	}
	return inputs, nil
}
