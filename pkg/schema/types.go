package schema

import (
	"fmt"
	"slices"
	"strings"
)

// Generation tags for the built-in property kinds.
const (
	TagFloat   = "property/float"
	TagInt     = "property/int"
	TagChoices = "property/choices"
)

// Property defines the contract for a single node parameter.
// Implementations determine the default, how values are validated, and
// how values cross the boundary to external representations.
type Property interface {
	// Name returns the human-readable shape of the property
	// (e.g. "float", "int[0..8]", "choice(add|sub)").
	Name() string
	// Default returns the value used when a caller supplies no override.
	Default() any
	// Metadata returns renderer hints attached to the property.
	Metadata() map[string]any
	// Validate reports whether value is acceptable. It is pure: no
	// coercion, no mutation, no side effects.
	Validate(value any) bool
	// FromExternal converts a plain interchange representation (command
	// text, decoded JSON) to the in-memory value. It never validates;
	// callers validate the result themselves.
	FromExternal(repr any) (any, error)
	// ToExternal converts an in-memory value to its interchange
	// representation. It never validates.
	ToExternal(value any) any
	// GenTag returns the discriminant used by code generation.
	GenTag() string
}

// --- Float ---

// FloatProperty is a floating-point parameter with optional inclusive
// bounds.
type FloatProperty struct {
	def  float64
	low  *float64
	high *float64
	meta map[string]any
}

// NewFloat creates an unbounded float property with the given default.
func NewFloat(def float64) *FloatProperty {
	return &FloatProperty{def: def}
}

// Min sets the inclusive lower bound and returns the property.
func (p *FloatProperty) Min(low float64) *FloatProperty {
	p.low = &low
	return p
}

// Max sets the inclusive upper bound and returns the property.
func (p *FloatProperty) Max(high float64) *FloatProperty {
	p.high = &high
	return p
}

// WithMetadata attaches renderer metadata and returns the property.
func (p *FloatProperty) WithMetadata(meta map[string]any) *FloatProperty {
	p.meta = meta
	return p
}

func (p *FloatProperty) Name() string {
	return boundedName("float", p.low, p.high)
}

func (p *FloatProperty) Default() any { return p.def }

func (p *FloatProperty) Metadata() map[string]any { return p.meta }

func (p *FloatProperty) GenTag() string { return TagFloat }

func (p *FloatProperty) Validate(value any) bool {
	f, ok := asFloat(value)
	if !ok {
		return false
	}
	if p.low != nil && f < *p.low {
		return false
	}
	if p.high != nil && f > *p.high {
		return false
	}
	return true
}

// --- Int ---

// IntProperty is an integer parameter with optional inclusive bounds.
// Whole-valued floats are accepted (they are what JSON decoding
// produces for every number).
type IntProperty struct {
	def  int
	low  *int
	high *int
	meta map[string]any
}

// NewInt creates an unbounded integer property with the given default.
func NewInt(def int) *IntProperty {
	return &IntProperty{def: def}
}

// Min sets the inclusive lower bound and returns the property.
func (p *IntProperty) Min(low int) *IntProperty {
	p.low = &low
	return p
}

// Max sets the inclusive upper bound and returns the property.
func (p *IntProperty) Max(high int) *IntProperty {
	p.high = &high
	return p
}

// WithMetadata attaches renderer metadata and returns the property.
func (p *IntProperty) WithMetadata(meta map[string]any) *IntProperty {
	p.meta = meta
	return p
}

func (p *IntProperty) Name() string {
	return boundedName("int", p.low, p.high)
}

func (p *IntProperty) Default() any { return p.def }

func (p *IntProperty) Metadata() map[string]any { return p.meta }

func (p *IntProperty) GenTag() string { return TagInt }

func (p *IntProperty) Validate(value any) bool {
	i, ok := asInt(value)
	if !ok {
		return false
	}
	if p.low != nil && i < *p.low {
		return false
	}
	if p.high != nil && i > *p.high {
		return false
	}
	return true
}

// --- Choices ---

// ChoicesProperty is a string parameter constrained to an ordered set
// of allowed values.
type ChoicesProperty struct {
	def     string
	choices []string
	meta    map[string]any
}

// NewChoices creates a choices property. The declared order of choices
// is preserved and observable (listings, generated code).
func NewChoices(def string, choices ...string) *ChoicesProperty {
	return &ChoicesProperty{def: def, choices: choices}
}

// WithMetadata attaches renderer metadata and returns the property.
func (p *ChoicesProperty) WithMetadata(meta map[string]any) *ChoicesProperty {
	p.meta = meta
	return p
}

// Choices returns the allowed values in declaration order.
func (p *ChoicesProperty) Choices() []string {
	return slices.Clone(p.choices)
}

func (p *ChoicesProperty) Name() string {
	return fmt.Sprintf("choice(%s)", strings.Join(p.choices, "|"))
}

func (p *ChoicesProperty) Default() any { return p.def }

func (p *ChoicesProperty) Metadata() map[string]any { return p.meta }

func (p *ChoicesProperty) GenTag() string { return TagChoices }

func (p *ChoicesProperty) Validate(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return slices.Contains(p.choices, s)
}

func boundedName[T int | float64](kind string, low, high *T) string {
	if low == nil && high == nil {
		return kind
	}
	var b strings.Builder
	b.WriteString(kind)
	b.WriteByte('[')
	if low != nil {
		fmt.Fprintf(&b, "%v", *low)
	}
	b.WriteString("..")
	if high != nil {
		fmt.Fprintf(&b, "%v", *high)
	}
	b.WriteByte(']')
	return b.String()
}
