package domain

import (
	"fmt"
	"maps"
	"slices"
)

// ConnRef identifies one end of a connection: a pin on a node, by id.
type ConnRef struct {
	NodeID string
	PinID  string
}

func (r ConnRef) String() string { return r.NodeID + "." + r.PinID }

// Endpoint names a pin on a live node instance, the form Connect and
// Disconnect operate on.
type Endpoint struct {
	Node *Node
	Pin  string
}

// Node is a concrete, connectable instance created from a NodeType.
// Property values and the pin set are frozen at creation; only the
// connection lists change afterwards, and only through Connect and
// Disconnect.
type Node struct {
	id       string
	nodeType *NodeType
	values   map[string]any
	pins     map[string]Pin
	pinOrder []string
	conns    map[string][]ConnRef
	metadata map[string]any
}

// ID returns the instance identifier.
func (n *Node) ID() string { return n.id }

// Type returns the template this node was created from.
func (n *Node) Type() *NodeType { return n.nodeType }

// Metadata returns the instance metadata supplied at creation.
func (n *Node) Metadata() map[string]any { return n.metadata }

// Value returns the validated value stored for a property name.
func (n *Node) Value(name string) (any, bool) {
	v, ok := n.values[name]
	return v, ok
}

// Values returns a copy of all stored property values.
func (n *Node) Values() map[string]any {
	return maps.Clone(n.values)
}

// AddPin inserts a pin, preserving insertion order. It exists for
// PinGenerator implementations running during Create; calling it on a
// node that is already wired breaks the frozen-pin-set contract.
func (n *Node) AddPin(p Pin) error {
	if _, exists := n.pins[p.ID]; exists {
		return &PinCollisionError{NodeID: n.id, PinID: p.ID}
	}
	n.pins[p.ID] = p
	n.pinOrder = append(n.pinOrder, p.ID)
	return nil
}

// Pin returns the pin with the given id.
func (n *Node) Pin(id string) (Pin, bool) {
	p, ok := n.pins[id]
	return p, ok
}

// Pins returns every pin in insertion order.
func (n *Node) Pins() []Pin {
	out := make([]Pin, 0, len(n.pinOrder))
	for _, id := range n.pinOrder {
		out = append(out, n.pins[id])
	}
	return out
}

// InputPins returns the pins with direction In, in insertion order.
func (n *Node) InputPins() []Pin {
	return n.pinsByDirection(In)
}

// OutputPins returns the pins with direction Out, in insertion order.
func (n *Node) OutputPins() []Pin {
	return n.pinsByDirection(Out)
}

func (n *Node) pinsByDirection(d Direction) []Pin {
	var out []Pin
	for _, id := range n.pinOrder {
		if p := n.pins[id]; p.Direction == d {
			out = append(out, p)
		}
	}
	return out
}

// Connections returns a copy of the edges recorded for one pin, in the
// order they were made.
func (n *Node) Connections(pinID string) []ConnRef {
	return slices.Clone(n.conns[pinID])
}

// Sources returns the recorded edges of every connected input pin.
func (n *Node) Sources() map[string][]ConnRef {
	return n.connsByDirection(In)
}

// Targets returns the recorded edges of every connected output pin.
func (n *Node) Targets() map[string][]ConnRef {
	return n.connsByDirection(Out)
}

func (n *Node) connsByDirection(d Direction) map[string][]ConnRef {
	out := make(map[string][]ConnRef)
	for pinID, refs := range n.conns {
		if len(refs) == 0 {
			continue
		}
		if p, ok := n.pins[pinID]; ok && p.Direction == d {
			out[pinID] = slices.Clone(refs)
		}
	}
	return out
}

// Connect records a directed edge from an output pin to an input pin.
// The edge is written to both endpoints, or to neither: every rule is
// checked before the first write. Violations are reported as a
// ConnectionError naming the broken rule.
func Connect(source, dest Endpoint) error {
	sp, ok := source.Node.Pin(source.Pin)
	if !ok {
		return connErr(source, dest, fmt.Sprintf("no pin %q on node %q", source.Pin, source.Node.id))
	}
	dp, ok := dest.Node.Pin(dest.Pin)
	if !ok {
		return connErr(source, dest, fmt.Sprintf("no pin %q on node %q", dest.Pin, dest.Node.id))
	}
	if sp.Direction != Out {
		return connErr(source, dest, fmt.Sprintf("source pin %q is not an output", source.Pin))
	}
	if dp.Direction != In {
		return connErr(source, dest, fmt.Sprintf("destination pin %q is not an input", dest.Pin))
	}
	if !Compatible(sp.Type, dp.Type) {
		return connErr(source, dest, fmt.Sprintf("type %q cannot flow into %q", sp.Type.ID(), dp.Type.ID()))
	}

	srcRef := ConnRef{NodeID: source.Node.id, PinID: source.Pin}
	dstRef := ConnRef{NodeID: dest.Node.id, PinID: dest.Pin}
	if slices.Contains(source.Node.conns[source.Pin], dstRef) {
		return connErr(source, dest, "edge already recorded on source")
	}
	if slices.Contains(dest.Node.conns[dest.Pin], srcRef) {
		return connErr(source, dest, "edge already recorded on destination")
	}

	source.Node.conns[source.Pin] = append(source.Node.conns[source.Pin], dstRef)
	dest.Node.conns[dest.Pin] = append(dest.Node.conns[dest.Pin], srcRef)
	return nil
}

// Disconnect removes a previously recorded edge from both endpoints.
// The edge must be present on both sides; otherwise nothing is removed
// and a ConnectionError is returned.
func Disconnect(source, dest Endpoint) error {
	srcRef := ConnRef{NodeID: source.Node.id, PinID: source.Pin}
	dstRef := ConnRef{NodeID: dest.Node.id, PinID: dest.Pin}

	si := slices.Index(source.Node.conns[source.Pin], dstRef)
	if si < 0 {
		return connErr(source, dest, "edge not recorded on source")
	}
	di := slices.Index(dest.Node.conns[dest.Pin], srcRef)
	if di < 0 {
		return connErr(source, dest, "edge not recorded on destination")
	}

	source.Node.conns[source.Pin] = slices.Delete(source.Node.conns[source.Pin], si, si+1)
	dest.Node.conns[dest.Pin] = slices.Delete(dest.Node.conns[dest.Pin], di, di+1)
	return nil
}

func connErr(source, dest Endpoint, reason string) error {
	return &ConnectionError{
		Source: ConnRef{NodeID: source.Node.id, PinID: source.Pin},
		Dest:   ConnRef{NodeID: dest.Node.id, PinID: dest.Pin},
		Reason: reason,
	}
}
