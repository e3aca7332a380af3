package cli

import (
	"fmt"
	"strings"

	view "github.com/aretw0/graft/internal/presentation/graph"
	"github.com/aretw0/graft/internal/validator"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/eval"
)

func (s *Shell) printHelp() {
	s.printTable([]string{"Command", "Description"}, [][]string{
		{"types", "List the node types the module offers"},
		{"nodes", "List the nodes in the graph with their connections"},
		{"create <id> <type> [value ...]", "Create a node; values fill properties in declared order"},
		{"connect <node.pin> <node.pin>", "Wire an output pin to an input pin"},
		{"disconnect <node.pin> <node.pin>", "Remove a wire"},
		{"remove <id>", "Remove a node (its wires go stale, see check)"},
		{"graph", "Print the graph as a Mermaid flowchart"},
		{"check", "Verify every wire still resolves"},
		{"evaluate", "Run the graph in dependency order"},
		{"generate", "Print the LiteGraph editor script for the module"},
		{"reset", "Discard the graph and start over"},
		{"exit", "Leave the shell"},
	})
}

func (s *Shell) cmdTypes() {
	rows := make([][]string, 0, s.catalog.Len())
	for _, nt := range s.catalog.Types() {
		names := make([]string, 0, len(nt.Properties()))
		for _, spec := range nt.Properties() {
			names = append(names, spec.Name)
		}
		rows = append(rows, []string{
			strings.Join(nt.Category(), "/"),
			nt.ID(),
			nt.Name(),
			"[" + strings.Join(names, ", ") + "]",
		})
	}
	s.printTable([]string{"Category", "Type id", "Type name", "Properties"}, rows)
}

func (s *Shell) cmdNodes() {
	rows := make([][]string, 0, s.graph.Len())
	for _, n := range s.graph.Nodes() {
		rows = append(rows, []string{
			n.ID(),
			n.Type().Name(),
			formatPins(n, n.InputPins()) + " -> " + formatPins(n, n.OutputPins()),
		})
	}
	s.printTable([]string{"Node id", "Type name", "Inputs -> Outputs"}, rows)
}

func (s *Shell) cmdCreate(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: create <id> <type> [value ...]")
	}
	id, typeID, overrides := args[0], args[1], args[2:]

	nt, ok := s.catalog.Type(typeID)
	if !ok {
		return fmt.Errorf("unknown type %q", typeID)
	}
	specs := nt.Properties()
	if len(overrides) > len(specs) {
		return fmt.Errorf("too many arguments (expected at most %d)", len(specs))
	}

	// Positional values fill properties in declared order.
	params := make(map[string]any, len(overrides))
	for i, raw := range overrides {
		spec := specs[i]
		v, err := spec.Property.FromExternal(raw)
		if err != nil {
			return fmt.Errorf("argument %d (%s): %w", i+1, spec.Name, err)
		}
		params[spec.Name] = v
	}

	n, err := nt.Create(id, params, nil)
	if err != nil {
		return err
	}
	return s.graph.Add(n)
}

func (s *Shell) cmdWire(verb string, args []string, connect bool) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: %s <node.pin> <node.pin>", verb)
	}
	src, err := s.graph.Endpoint(args[0])
	if err != nil {
		return err
	}
	dst, err := s.graph.Endpoint(args[1])
	if err != nil {
		return err
	}
	if connect {
		return domain.Connect(src, dst)
	}
	return domain.Disconnect(src, dst)
}

func (s *Shell) cmdRemove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: remove <id>")
	}
	if !s.graph.Remove(args[0]) {
		return fmt.Errorf("no such node: %s", args[0])
	}
	return nil
}

func (s *Shell) cmdGraph() {
	problems := validator.Check(s.graph)
	overlay := &view.Overlay{
		Evaluated: s.evaluated,
		Broken:    validator.BrokenNodes(problems),
	}
	fmt.Fprintln(s.out, view.GenerateMermaid(s.graph, overlay))
}

func (s *Shell) cmdCheck() error {
	if err := validator.ValidateGraph(s.graph); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "graph ok")
	return nil
}

func (s *Shell) cmdEvaluate() error {
	var order []string
	_, err := s.engine.Evaluate(s.module, s.graph, eval.OnNodeEvaluated(func(n *domain.Node, _ []any) {
		order = append(order, n.ID())
	}))
	if err != nil {
		return err
	}
	s.evaluated = order
	return nil
}

func (s *Shell) cmdGenerate() error {
	script, err := s.engine.GenerateScript(s.module)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, script)
	return nil
}

func (s *Shell) cmdReset() {
	s.graph = domain.NewGraph()
	s.evaluated = nil
	fmt.Fprintln(s.out, "graph cleared")
}

func formatPins(n *domain.Node, pins []domain.Pin) string {
	parts := make([]string, 0, len(pins))
	for _, p := range pins {
		refs := n.Connections(p.ID)
		strs := make([]string, 0, len(refs))
		for _, r := range refs {
			strs = append(strs, r.String())
		}
		parts = append(parts, fmt.Sprintf("%s: [%s]", p.ID, strings.Join(strs, ", ")))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
