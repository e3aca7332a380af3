// Package testutils provides shared fixtures for adapter and shell tests.
package testutils

import (
	"bytes"
	"testing"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/modules/math"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/stretchr/testify/require"
)

// NewMathEngine returns an engine with the math module installed, its
// printer writing to the returned buffer.
func NewMathEngine(t *testing.T) (*graft.Engine, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	engine, err := graft.New(graft.WithModules(math.New(math.WithOutput(&out))))
	require.NoError(t, err, "failed to build engine")
	return engine, &out
}

// BuildArithmeticGraph assembles the five-node demo graph: two constants
// feeding an adder and a subtractor, both results wired into the printer.
func BuildArithmeticGraph(t *testing.T, engine *graft.Engine, module string) *domain.Graph {
	t.Helper()

	b, err := engine.NewBuilder(module)
	require.NoError(t, err, "failed to get builder")

	b.Add("v1", "constant").Set("value", 5.0)
	b.Add("v2", "constant").Set("value", 7.0)
	b.Add("a1", "binop")
	b.Add("s1", "binop").Set("operator_name", "sub")
	b.Add("p1", "printer")
	b.Wire("v1.out", "a1.a").Wire("v2.out", "a1.b")
	b.Wire("v1.out", "s1.a").Wire("v2.out", "s1.b")
	b.Wire("a1.res", "p1.in").Wire("s1.res", "p1.in")

	g, err := b.Build()
	require.NoError(t, err, "failed to build demo graph")
	return g
}
