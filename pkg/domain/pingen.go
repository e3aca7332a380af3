package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Generation tags for the built-in pin generator kinds.
const (
	TagFixedPins    = "pins/fixed"
	TagChainPins    = "pins/chain"
	TagPropertyPins = "pins/property"
)

// PinGenerator builds a node's pin set. BuildPins runs exactly once
// per node, from NodeType.Create, and must fail with a
// PinCollisionError rather than overwrite an existing pin id.
type PinGenerator interface {
	BuildPins(n *Node) error
	// GenTag returns the discriminant used by code generation.
	GenTag() string
}

// FixedPins inserts a pre-declared pin set verbatim, in declaration
// order.
type FixedPins struct {
	pins []Pin
}

// Fixed creates a generator for a literal pin list.
func Fixed(pins ...Pin) *FixedPins {
	return &FixedPins{pins: pins}
}

// Pins returns the declared pins in order.
func (g *FixedPins) Pins() []Pin {
	return slices.Clone(g.pins)
}

func (g *FixedPins) BuildPins(n *Node) error {
	for _, p := range g.pins {
		if _, exists := n.Pin(p.ID); exists {
			return &PinCollisionError{NodeID: n.ID(), PinID: p.ID}
		}
	}
	for _, p := range g.pins {
		p.Metadata = maps.Clone(p.Metadata)
		if err := n.AddPin(p); err != nil {
			return err
		}
	}
	return nil
}

func (g *FixedPins) GenTag() string { return TagFixedPins }

// ChainPins applies sub-generators in declared order. Later generators
// observe the pins added by earlier ones, so collisions are detected
// across the chained pieces.
type ChainPins struct {
	generators []PinGenerator
}

// Chain creates a generator that runs each given generator in order.
func Chain(generators ...PinGenerator) *ChainPins {
	return &ChainPins{generators: generators}
}

// Generators returns the chained generators in order.
func (g *ChainPins) Generators() []PinGenerator {
	return slices.Clone(g.generators)
}

func (g *ChainPins) BuildPins(n *Node) error {
	for _, gen := range g.generators {
		if err := gen.BuildPins(n); err != nil {
			return err
		}
	}
	return nil
}

func (g *ChainPins) GenTag() string { return TagChainPins }

// PropertyPins stamps n copies of a template pin, where n is the value
// of an integer property that must already be assigned on the node.
// Pin ids and display names are derived by formatting the id template
// and the template pin's name with the index; direction, type, and
// metadata are copied from the template.
type PropertyPins struct {
	property   string
	idTemplate string
	template   Pin
}

// PropertyDriven creates a property-driven generator. The templates
// use an integer printf verb for the index (e.g. "in%d"); a template
// without a verb is used as-is, which collides after the first pin.
func PropertyDriven(property, idTemplate string, template Pin) *PropertyPins {
	return &PropertyPins{property: property, idTemplate: idTemplate, template: template}
}

// PropertyName returns the name of the driving integer property.
func (g *PropertyPins) PropertyName() string { return g.property }

// IDTemplate returns the pin id template.
func (g *PropertyPins) IDTemplate() string { return g.idTemplate }

// Template returns the template pin.
func (g *PropertyPins) Template() Pin { return g.template }

func (g *PropertyPins) BuildPins(n *Node) error {
	v, ok := n.Value(g.property)
	if !ok {
		return fmt.Errorf("pin generation: node %q has no value for property %q", n.ID(), g.property)
	}
	count, ok := intValue(v)
	if !ok {
		return fmt.Errorf("pin generation: property %q of node %q is not an integer (got %T)", g.property, n.ID(), v)
	}
	for i := range count {
		p := Pin{
			ID:        formatIndexed(g.idTemplate, i),
			Name:      formatIndexed(g.template.Name, i),
			Direction: g.template.Direction,
			Type:      g.template.Type,
			Metadata:  maps.Clone(g.template.Metadata),
		}
		if err := n.AddPin(p); err != nil {
			return err
		}
	}
	return nil
}

func (g *PropertyPins) GenTag() string { return TagPropertyPins }

func formatIndexed(template string, i int) string {
	if !strings.Contains(template, "%") {
		return template
	}
	return fmt.Sprintf(template, i)
}

func intValue(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case float64:
		if x == float64(int64(x)) {
			return int(x), true
		}
	}
	return 0, false
}
