// Package validator checks instance graphs for structural defects before
// evaluation: connection records pointing at nodes that are gone, pins
// that do not exist, and one-sided records left behind by Remove.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/graft/pkg/domain"
)

// Problem describes one structural defect found in a graph.
type Problem struct {
	Node   string // node holding the connection record
	Pin    string
	Target string // peer reference that failed to resolve
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s.%s -> %s: %s", p.Node, p.Pin, p.Target, p.Reason)
}

// Check crawls every connection record in the graph and reports the ones
// that do not resolve. An empty result means the graph is closed: every
// recorded peer exists, has the named pin, and records the connection
// back.
func Check(g *domain.Graph) []Problem {
	var problems []Problem
	for _, n := range g.Nodes() {
		for _, p := range n.Pins() {
			for _, ref := range n.Connections(p.ID) {
				peer, ok := g.Node(ref.NodeID)
				if !ok {
					problems = append(problems, Problem{n.ID(), p.ID, ref.String(), "node not in graph"})
					continue
				}
				if _, ok := peer.Pin(ref.PinID); !ok {
					problems = append(problems, Problem{n.ID(), p.ID, ref.String(), "no such pin"})
					continue
				}
				if !records(peer, ref.PinID, domain.ConnRef{NodeID: n.ID(), PinID: p.ID}) {
					problems = append(problems, Problem{n.ID(), p.ID, ref.String(), "peer does not record the connection"})
				}
			}
		}
	}
	return problems
}

// ValidateGraph runs Check and folds the result into a single error.
func ValidateGraph(g *domain.Graph) error {
	problems := Check(g)
	if len(problems) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(problems))
	for _, p := range problems {
		msgs = append(msgs, p.String())
	}
	return fmt.Errorf("found %d errors:\n- %s", len(problems), strings.Join(msgs, "\n- "))
}

// BrokenNodes returns the IDs of nodes involved in the given problems,
// each once, in first-seen order.
func BrokenNodes(problems []Problem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range problems {
		if !seen[p.Node] {
			seen[p.Node] = true
			out = append(out, p.Node)
		}
	}
	return out
}

func records(n *domain.Node, pinID string, want domain.ConnRef) bool {
	for _, ref := range n.Connections(pinID) {
		if ref == want {
			return true
		}
	}
	return false
}
