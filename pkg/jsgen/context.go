package jsgen

import "strings"

// Context accumulates the fragments of one generation run, keyed and
// ordered by tag. It is owned by the caller that runs the generation
// and must not be shared across concurrent runs.
type Context struct {
	reg    *Registry
	order  []string
	blocks map[string]string
}

// NewContext creates an empty accumulator over the given registry.
func NewContext(reg *Registry) *Context {
	return &Context{reg: reg, blocks: make(map[string]string)}
}

// Generate looks up the handler for v's tag, records the tag's static
// fragment, and returns the dynamic generator's output. The dynamic
// generator runs on every call; recording the static fragment is
// idempotent, so repeated calls keep a single copy.
func (c *Context) Generate(v Value) (string, error) {
	tag := v.GenTag()
	h, ok := c.reg.lookup(tag)
	if !ok {
		return "", &UnregisteredTypeError{Tag: tag}
	}
	c.record(tag, h.static)
	if h.dynamic == nil {
		return "", nil
	}
	return h.dynamic(c, v)
}

func (c *Context) record(tag, text string) {
	if _, seen := c.blocks[tag]; !seen {
		c.order = append(c.order, tag)
	}
	c.blocks[tag] = text
}

// Build concatenates the accumulated fragments in recording order,
// skipping empty ones, with a blank line between blocks. It reads the
// accumulator without changing it, so it may be called repeatedly.
func (c *Context) Build() string {
	parts := make([]string, 0, len(c.order))
	for _, tag := range c.order {
		if b := strings.TrimSpace(c.blocks[tag]); b != "" {
			parts = append(parts, b)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}
