package domain

// Direction tells which way data flows through a pin.
type Direction string

const (
	// In marks a pin that receives values.
	In Direction = "in"
	// Out marks a pin that emits values.
	Out Direction = "out"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == In || d == Out
}

// Pin is a named, directional, typed attachment point on a node.
// A Pin is immutable once created; generators build fresh Pin values
// rather than mutating existing ones.
type Pin struct {
	ID        string
	Name      string
	Direction Direction
	Type      DataType
	Metadata  map[string]any
}
