package domain

import "fmt"

// PinCollisionError is returned when a pin generator produces a pin id
// that already exists on the node.
type PinCollisionError struct {
	NodeID string
	PinID  string
}

func (e *PinCollisionError) Error() string {
	return fmt.Sprintf("node %q: pin %q already defined", e.NodeID, e.PinID)
}

// ConnectionError is returned by Connect and Disconnect when an edge
// would violate a connection rule: unknown pin, wrong direction,
// incompatible types, a duplicate edge, or removing an edge that was
// never recorded.
type ConnectionError struct {
	Source ConnRef
	Dest   ConnRef
	Reason string
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection %s -> %s: %s", e.Source, e.Dest, e.Reason)
}

// DuplicateNodeError is returned when a node id is added to a graph
// that already holds it.
type DuplicateNodeError struct {
	ID string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("graph already contains node %q", e.ID)
}
