package domain

import (
	"fmt"
	"strings"
)

// Graph is an insertion-ordered collection of nodes: the unit of
// evaluation, code generation, and session storage. A node belongs to
// exactly one graph, which is its exclusive owner.
type Graph struct {
	order []string
	nodes map[string]*Node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// Add inserts a node. Inserting an id the graph already holds fails
// with a DuplicateNodeError.
func (g *Graph) Add(n *Node) error {
	if _, exists := g.nodes[n.id]; exists {
		return &DuplicateNodeError{ID: n.id}
	}
	g.nodes[n.id] = n
	g.order = append(g.order, n.id)
	return nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Remove deletes a node and reports whether it was present. Edges
// recorded on peer nodes are left untouched; the closure check exists
// to surface the resulting dangling references.
func (g *Graph) Remove(id string) bool {
	if _, ok := g.nodes[id]; !ok {
		return false
	}
	delete(g.nodes, id)
	for i, nid := range g.order {
		if nid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// IDs returns the node ids in insertion order.
func (g *Graph) IDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Endpoint resolves a textual "node.pin" reference against the graph.
func (g *Graph) Endpoint(ref string) (Endpoint, error) {
	nodeID, pinID, ok := strings.Cut(ref, ".")
	if !ok || nodeID == "" || pinID == "" {
		return Endpoint{}, fmt.Errorf("bad pin reference %q (want node.pin)", ref)
	}
	n, found := g.nodes[nodeID]
	if !found {
		return Endpoint{}, fmt.Errorf("no node %q in graph", nodeID)
	}
	return Endpoint{Node: n, Pin: pinID}, nil
}
