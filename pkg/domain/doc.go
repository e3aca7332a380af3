/*
Package domain contains the core graph model for the graft engine.

It defines the typed building blocks of a node graph: data types with
directional compatibility rules, pins, pin generators, immutable node
type templates, connectable node instances, and the graph collection
that owns them. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - DataType: Directional compatibility capability (Any, Simple).
  - Pin: A named, directional, typed attachment point on a node.
  - PinGenerator: Builds a node's pin set at creation (Fixed, Chain, PropertyDriven).
  - NodeType: An immutable template (properties, pin layout, display metadata).
  - Node: A concrete instance with validated values and typed connections.
  - Graph: The insertion-ordered collection owning a set of nodes.
*/
package domain
