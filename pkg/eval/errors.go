package eval

import (
	"fmt"
	"strings"

	"github.com/aretw0/graft/pkg/domain"
)

// CycleError reports that the graph admits no evaluation order because
// the remaining nodes all wait on each other. It is returned before
// any calculation has run.
type CycleError struct {
	// Remaining holds the ids of the nodes that could not be
	// scheduled, in graph insertion order.
	Remaining []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("eval: cycle among nodes %s", strings.Join(e.Remaining, ", "))
}

// MissingValueError reports an input edge whose feeding output never
// produced a value. It happens when the source side of the edge is no
// longer part of the graph.
type MissingValueError struct {
	Source domain.ConnRef
	Dest   domain.ConnRef
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("eval: no value at %s feeding %s", e.Source, e.Dest)
}

// NoCalculatorError reports a node whose type has no calculation
// registered.
type NoCalculatorError struct {
	NodeID string
	TypeID string
}

func (e *NoCalculatorError) Error() string {
	return fmt.Sprintf("eval: node %q: no calculation for type %q", e.NodeID, e.TypeID)
}

// OutputArityError reports a calculation that returned the wrong
// number of values for its node's declared output pins.
type OutputArityError struct {
	NodeID string
	Got    int
	Want   int
}

func (e *OutputArityError) Error() string {
	return fmt.Sprintf("eval: node %q produced %d values, want %d", e.NodeID, e.Got, e.Want)
}
