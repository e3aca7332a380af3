package dsl

import (
	"fmt"

	"github.com/aretw0/graft/pkg/catalog"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/schema"
)

// Builder accumulates node and wire declarations.
type Builder struct {
	types *catalog.Catalog
	nodes []*NodeBuilder
	wires [][2]string
}

// New creates a builder that resolves type ids against the catalog.
func New(types *catalog.Catalog) *Builder {
	return &Builder{types: types}
}

// Add declares a node instance of the given type. Configuration
// continues on the returned NodeBuilder.
func (b *Builder) Add(id, typeID string) *NodeBuilder {
	nb := &NodeBuilder{id: id, typeID: typeID}
	b.nodes = append(b.nodes, nb)
	return nb
}

// Wire declares a connection between two "node.pin" references.
func (b *Builder) Wire(from, to string) *Builder {
	b.wires = append(b.wires, [2]string{from, to})
	return b
}

// Build performs every declared operation: create each node in
// declaration order, add it to a fresh graph, then connect each wire.
// A failure does not stop the build; all failures come back together
// as a schema.AggregateError, and the graph is withheld.
func (b *Builder) Build() (*domain.Graph, error) {
	g := domain.NewGraph()
	var errs []error

	for _, nb := range b.nodes {
		nt, ok := b.types.Type(nb.typeID)
		if !ok {
			errs = append(errs, fmt.Errorf("node %q: unknown type %q", nb.id, nb.typeID))
			continue
		}
		n, err := nt.Create(nb.id, nb.params, nb.metadata)
		if err != nil {
			errs = append(errs, fmt.Errorf("node %q: %w", nb.id, err))
			continue
		}
		if err := g.Add(n); err != nil {
			errs = append(errs, err)
		}
	}

	for _, w := range b.wires {
		src, err := g.Endpoint(w[0])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		dst, err := g.Endpoint(w[1])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := domain.Connect(src, dst); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, &schema.AggregateError{Errors: errs}
	}
	return g, nil
}
