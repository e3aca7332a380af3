package domain

import (
	"errors"
	"testing"

	"github.com/aretw0/graft/pkg/schema"
)

func numberPin(id, name string, d Direction) Pin {
	return Pin{ID: id, Name: name, Direction: d, Type: NewSimple("number"), Metadata: map[string]any{}}
}

func TestFixedPins(t *testing.T) {
	nt := NewNodeType([]string{"test"}, "fixed", "", nil,
		Fixed(
			numberPin("a", "A", In),
			numberPin("b", "B", In),
			numberPin("res", "Result", Out),
		), nil)

	n, err := nt.Create("n1", nil, nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	pins := n.Pins()
	if len(pins) != 3 {
		t.Fatalf("got %d pins, want 3", len(pins))
	}
	wantOrder := []string{"a", "b", "res"}
	for i, id := range wantOrder {
		if pins[i].ID != id {
			t.Errorf("pin %d = %q, want %q", i, pins[i].ID, id)
		}
	}
}

func TestFixedPinsCollision(t *testing.T) {
	nt := NewNodeType([]string{"test"}, "clash", "", nil,
		Chain(
			Fixed(numberPin("a", "A", In)),
			Fixed(numberPin("a", "A again", In)),
		), nil)

	_, err := nt.Create("n1", nil, nil)
	if err == nil {
		t.Fatal("Create() should fail on duplicate pin id")
	}
	var collision *PinCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("error should be *PinCollisionError, got %T", err)
	}
	if collision.PinID != "a" {
		t.Errorf("PinID = %q, want %q", collision.PinID, "a")
	}
}

func TestChainOrderAcrossGenerators(t *testing.T) {
	nt := NewNodeType([]string{"test"}, "chained", "", nil,
		Chain(
			Fixed(numberPin("first", "First", In)),
			Fixed(numberPin("second", "Second", Out)),
		), nil)

	n, err := nt.Create("n1", nil, nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	pins := n.Pins()
	if pins[0].ID != "first" || pins[1].ID != "second" {
		t.Errorf("pin order = [%s %s], want [first second]", pins[0].ID, pins[1].ID)
	}
}

func TestPropertyDrivenPins(t *testing.T) {
	nt := NewNodeType([]string{"test"}, "variadic", "",
		[]PropertySpec{{Name: "count", Property: schema.NewInt(2).Min(0).Max(8)}},
		Chain(
			Fixed(numberPin("res", "Result", Out)),
			PropertyDriven("count", "in%d", numberPin("", "Input %d", In)),
		), nil)

	n, err := nt.Create("n1", map[string]any{"count": 3}, nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	pins := n.Pins()
	wantIDs := []string{"res", "in0", "in1", "in2"}
	if len(pins) != len(wantIDs) {
		t.Fatalf("got %d pins, want %d", len(pins), len(wantIDs))
	}
	for i, id := range wantIDs {
		if pins[i].ID != id {
			t.Errorf("pin %d = %q, want %q", i, pins[i].ID, id)
		}
	}
	if got, _ := n.Pin("in1"); got.Name != "Input 1" {
		t.Errorf("pin name = %q, want %q", got.Name, "Input 1")
	}
}

func TestPropertyDrivenPinsZeroCount(t *testing.T) {
	nt := NewNodeType([]string{"test"}, "variadic", "",
		[]PropertySpec{{Name: "count", Property: schema.NewInt(2).Min(0)}},
		PropertyDriven("count", "in%d", numberPin("", "Input %d", In)), nil)

	n, err := nt.Create("n1", map[string]any{"count": 0}, nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if len(n.Pins()) != 0 {
		t.Errorf("got %d pins, want 0", len(n.Pins()))
	}
}

func TestPropertyDrivenPinsCollideWithoutIndex(t *testing.T) {
	// An id template with no index verb produces the same id every
	// iteration, which must surface as a collision.
	nt := NewNodeType([]string{"test"}, "broken", "",
		[]PropertySpec{{Name: "count", Property: schema.NewInt(2)}},
		PropertyDriven("count", "in", numberPin("", "Input", In)), nil)

	_, err := nt.Create("n1", nil, nil)
	var collision *PinCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("error should be *PinCollisionError, got %v", err)
	}
}

func TestPropertyDrivenPinsMissingProperty(t *testing.T) {
	nt := NewNodeType([]string{"test"}, "orphan", "", nil,
		PropertyDriven("count", "in%d", numberPin("", "Input", In)), nil)

	if _, err := nt.Create("n1", nil, nil); err == nil {
		t.Fatal("Create() should fail when the driving property does not exist")
	}
}

func TestPropertyDrivenPinsCopyMetadata(t *testing.T) {
	template := numberPin("", "Input %d", In)
	template.Metadata = map[string]any{"hint": "left"}

	nt := NewNodeType([]string{"test"}, "variadic", "",
		[]PropertySpec{{Name: "count", Property: schema.NewInt(2)}},
		PropertyDriven("count", "in%d", template), nil)

	n, err := nt.Create("n1", nil, nil)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	p0, _ := n.Pin("in0")
	p0.Metadata["hint"] = "changed"
	p1, _ := n.Pin("in1")
	if p1.Metadata["hint"] != "left" {
		t.Error("pin metadata must be copied per pin, not shared")
	}
	if template.Metadata["hint"] != "left" {
		t.Error("template metadata must not be mutated")
	}
}
