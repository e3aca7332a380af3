package dsl

// NodeBuilder provides a fluent API for configuring one declared node
// instance. Values set here are validated when the Builder builds.
type NodeBuilder struct {
	id       string
	typeID   string
	params   map[string]any
	metadata map[string]any
}

// Set overrides a property value for the instance.
func (n *NodeBuilder) Set(name string, value any) *NodeBuilder {
	if n.params == nil {
		n.params = make(map[string]any)
	}
	n.params[name] = value
	return n
}

// Meta attaches renderer metadata to the instance.
func (n *NodeBuilder) Meta(key string, value any) *NodeBuilder {
	if n.metadata == nil {
		n.metadata = make(map[string]any)
	}
	n.metadata[key] = value
	return n
}
