package domain

import (
	"slices"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/aretw0/graft/pkg/schema"
)

// PropertySpec pairs a property with its name, preserving declaration
// order within a NodeType.
type PropertySpec struct {
	Name     string
	Property schema.Property
}

// NodeType is an immutable template for node instances: a category
// path, an identifier, a display name, ordered property declarations,
// a pin generator, and renderer metadata. Types are built once by a
// catalog and never mutated afterwards.
type NodeType struct {
	category  []string
	id        string
	name      string
	propOrder []string
	props     map[string]schema.Property
	pinGen    PinGenerator
	metadata  map[string]any
}

// NewNodeType builds a template. The id must be a valid identifier in
// the generated runtime (it becomes a function name there). An empty
// display name is derived from the id.
func NewNodeType(category []string, id, name string, props []PropertySpec, gen PinGenerator, metadata map[string]any) *NodeType {
	if name == "" {
		name = inflect.Titleize(id)
	}
	nt := &NodeType{
		category: slices.Clone(category),
		id:       id,
		name:     name,
		props:    make(map[string]schema.Property, len(props)),
		pinGen:   gen,
		metadata: metadata,
	}
	for _, ps := range props {
		if _, exists := nt.props[ps.Name]; !exists {
			nt.propOrder = append(nt.propOrder, ps.Name)
		}
		nt.props[ps.Name] = ps.Property
	}
	return nt
}

// Category returns the category path, e.g. ["math"].
func (t *NodeType) Category() []string { return slices.Clone(t.category) }

// ID returns the type identifier.
func (t *NodeType) ID() string { return t.id }

// Name returns the display name.
func (t *NodeType) Name() string { return t.name }

// Path returns the category path joined with the id, the key the
// generated runtime registers the type under (e.g. "math/constant").
func (t *NodeType) Path() string {
	parts := make([]string, 0, len(t.category)+1)
	parts = append(parts, t.category...)
	parts = append(parts, t.id)
	return strings.Join(parts, "/")
}

// Properties returns the property declarations in declaration order.
func (t *NodeType) Properties() []PropertySpec {
	out := make([]PropertySpec, 0, len(t.propOrder))
	for _, name := range t.propOrder {
		out = append(out, PropertySpec{Name: name, Property: t.props[name]})
	}
	return out
}

// Property returns the declared property with the given name.
func (t *NodeType) Property(name string) (schema.Property, bool) {
	p, ok := t.props[name]
	return p, ok
}

// PinGenerator returns the generator that builds instance pin sets.
func (t *NodeType) PinGenerator() PinGenerator { return t.pinGen }

// Metadata returns the renderer metadata.
func (t *NodeType) Metadata() map[string]any { return t.metadata }

// GenTag returns the discriminant used by code generation. It is
// unique per type, so generated definitions are deduplicated per type.
func (t *NodeType) GenTag() string { return "node/" + t.Path() }

// Create builds an independent node instance. For every declared
// property the caller-supplied override from params is taken, or the
// property's default; the value must pass the property's Validate or
// Create fails with a schema.ValidationError. The pin generator then
// populates the pin set, exactly once. Params not matching a declared
// property are ignored.
func (t *NodeType) Create(id string, params map[string]any, metadata map[string]any) (*Node, error) {
	values := make(map[string]any, len(t.propOrder))
	for _, name := range t.propOrder {
		prop := t.props[name]
		v, ok := params[name]
		if !ok {
			v = prop.Default()
		}
		if !prop.Validate(v) {
			return nil, &schema.ValidationError{Key: name, Reason: "rejected by " + prop.Name(), Value: v}
		}
		values[name] = v
	}

	if metadata == nil {
		metadata = map[string]any{}
	}
	n := &Node{
		id:       id,
		nodeType: t,
		values:   values,
		pins:     make(map[string]Pin),
		conns:    make(map[string][]ConnRef),
		metadata: metadata,
	}
	if t.pinGen != nil {
		if err := t.pinGen.BuildPins(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}
