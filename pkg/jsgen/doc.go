/*
Package jsgen assembles JavaScript source for a visual-editor runtime
from a catalog of node types.

The engine is deliberately small: a Registry maps generation tags to a
static fragment (shared boilerplate, emitted at most once per build)
and a dynamic generator (per-instance text). A Context accumulates the
fragments of one run and concatenates them into the final listing.

The engine ships no built-in handlers. Domain modules register the
handlers for their data types, pin generators, and properties before
generation; the only built-in rule is the node-type assembly, which
turns a NodeType into one constructor-function block.

	reg := jsgen.NewRegistry()
	_ = reg.Register(domain.TagFixedPins, "", fixedPinsJS)

	ctx := jsgen.NewContext(reg)
	for _, nt := range catalog.All() {
	    if err := ctx.NodeType(nt); err != nil {
	        return err
	    }
	}
	script := ctx.Build()

Registry and Context carry no hidden global state; each generation run
owns its context and must not share it across goroutines.
*/
package jsgen
