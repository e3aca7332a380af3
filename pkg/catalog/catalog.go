package catalog

import (
	"fmt"

	"github.com/aretw0/graft/pkg/domain"
)

// Catalog is an ordered set of node types, keyed by type id.
type Catalog struct {
	order []string
	types map[string]*domain.NodeType
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{types: make(map[string]*domain.NodeType)}
}

// Of builds a catalog from the given types, in order.
func Of(types ...*domain.NodeType) (*Catalog, error) {
	c := New()
	for _, nt := range types {
		if err := c.Add(nt); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add declares a node type. Declaring an id twice is an error.
func (c *Catalog) Add(nt *domain.NodeType) error {
	if _, exists := c.types[nt.ID()]; exists {
		return fmt.Errorf("catalog: type already declared: %s", nt.ID())
	}
	c.types[nt.ID()] = nt
	c.order = append(c.order, nt.ID())
	return nil
}

// Type returns the node type with the given id.
func (c *Catalog) Type(id string) (*domain.NodeType, bool) {
	nt, ok := c.types[id]
	return nt, ok
}

// Types returns every node type in declaration order.
func (c *Catalog) Types() []*domain.NodeType {
	out := make([]*domain.NodeType, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.types[id])
	}
	return out
}

// Len returns the number of declared types.
func (c *Catalog) Len() int { return len(c.order) }
