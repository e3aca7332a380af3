// Package math bundles the arithmetic node set: typed constants, the
// printer sink, binary operations, and a variadic sum.
package math

import (
	"io"
	"os"

	"github.com/aretw0/graft/pkg/catalog"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/jsgen"
	"github.com/aretw0/graft/pkg/jsgen/litegraph"
	"github.com/aretw0/graft/pkg/schema"
)

// Number is the data type every math pin carries.
var Number = domain.NewSimple("number")

// Module implements catalog.Module for the arithmetic node set.
type Module struct {
	out io.Writer
}

// Option configures the module.
type Option func(*Module)

// WithOutput redirects printer output, which otherwise goes to
// standard output.
func WithOutput(w io.Writer) Option {
	return func(m *Module) {
		m.out = w
	}
}

// New creates the math module.
func New(opts ...Option) *Module {
	m := &Module{out: os.Stdout}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the module identifier.
func (m *Module) Name() string { return "math" }

// Title returns the display name.
func (m *Module) Title() string { return "Math" }

// Catalog returns the module's node types.
func (m *Module) Catalog() (*catalog.Catalog, error) {
	return catalog.Of(
		ConstantType(),
		PrinterType(),
		BinopType(),
		SumType(),
	)
}

// RegisterGenerators installs the default LiteGraph handlers. The
// module introduces no building blocks of its own, so the defaults
// cover every tag its types reach.
func (m *Module) RegisterGenerators(r *jsgen.Registry) error {
	return litegraph.Register(r)
}

// ConstantType emits a configured value on its single output.
func ConstantType() *domain.NodeType {
	return domain.NewNodeType([]string{"math"}, "constant", "Constant",
		[]domain.PropertySpec{{Name: "value", Property: schema.NewFloat(1)}},
		domain.Fixed(domain.Pin{ID: "out", Name: "Output", Direction: domain.Out, Type: Number}),
		nil)
}

// PrinterType prints every value wired into its input.
func PrinterType() *domain.NodeType {
	return domain.NewNodeType([]string{"math"}, "printer", "Printer",
		nil,
		domain.Fixed(domain.Pin{ID: "in", Name: "Input", Direction: domain.In, Type: Number}),
		nil)
}

// BinopType applies the selected operator to its two inputs.
func BinopType() *domain.NodeType {
	return domain.NewNodeType([]string{"math"}, "binop", "Binary Operation",
		[]domain.PropertySpec{{Name: "operator_name", Property: schema.NewChoices("add", "add", "sub", "mul", "div")}},
		domain.Fixed(
			domain.Pin{ID: "a", Name: "A", Direction: domain.In, Type: Number},
			domain.Pin{ID: "b", Name: "B", Direction: domain.In, Type: Number},
			domain.Pin{ID: "res", Name: "Result", Direction: domain.Out, Type: Number},
		), nil)
}

// SumType adds a property-driven number of inputs.
func SumType() *domain.NodeType {
	return domain.NewNodeType([]string{"math"}, "sum", "Sum",
		[]domain.PropertySpec{{Name: "count", Property: schema.NewInt(2).Min(0)}},
		domain.Chain(
			domain.Fixed(domain.Pin{ID: "res", Name: "Result", Direction: domain.Out, Type: Number}),
			domain.PropertyDriven("count", "in%d",
				domain.Pin{Name: "Input %d", Direction: domain.In, Type: Number}),
		), nil)
}
