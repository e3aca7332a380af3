package dsl

import (
	"errors"
	"testing"

	"github.com/aretw0/graft/pkg/catalog"
	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/schema"
)

var number = domain.NewSimple("number")

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	constant := domain.NewNodeType([]string{"math"}, "constant", "",
		[]domain.PropertySpec{{Name: "value", Property: schema.NewFloat(1)}},
		domain.Fixed(domain.Pin{ID: "out", Name: "Output", Direction: domain.Out, Type: number}),
		nil)
	binop := domain.NewNodeType([]string{"math"}, "binop", "",
		[]domain.PropertySpec{{Name: "operator_name", Property: schema.NewChoices("add", "add", "sub")}},
		domain.Fixed(
			domain.Pin{ID: "a", Name: "A", Direction: domain.In, Type: number},
			domain.Pin{ID: "b", Name: "B", Direction: domain.In, Type: number},
			domain.Pin{ID: "res", Name: "Result", Direction: domain.Out, Type: number},
		), nil)
	printer := domain.NewNodeType([]string{"math"}, "printer", "", nil,
		domain.Fixed(domain.Pin{ID: "in", Name: "Input", Direction: domain.In, Type: number}),
		nil)

	c, err := catalog.Of(constant, binop, printer)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func TestBuilderArithmeticGraph(t *testing.T) {
	// 1. Declare the graph
	b := New(testCatalog(t))

	b.Add("v1", "constant").Set("value", 5.0)
	b.Add("v2", "constant").Set("value", 7.0)
	b.Add("a1", "binop")
	b.Add("s1", "binop").Set("operator_name", "sub")
	b.Add("p1", "printer").Meta("pos", []int{40, 80})

	b.Wire("v1.out", "a1.a").
		Wire("v2.out", "a1.b").
		Wire("v1.out", "s1.a").
		Wire("v2.out", "s1.b").
		Wire("a1.res", "p1.in").
		Wire("s1.res", "p1.in")

	// 2. Build everything at once
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	// 3. Verify the resulting graph
	if g.Len() != 5 {
		t.Fatalf("graph has %d nodes, want 5", g.Len())
	}
	v1, _ := g.Node("v1")
	if got, _ := v1.Value("value"); got != 5.0 {
		t.Errorf("v1 value = %v, want 5", got)
	}
	if conns := v1.Connections("out"); len(conns) != 2 {
		t.Errorf("v1.out has %d edges, want 2", len(conns))
	}
	p1, _ := g.Node("p1")
	conns := p1.Connections("in")
	if len(conns) != 2 {
		t.Fatalf("p1.in has %d edges, want 2", len(conns))
	}
	if conns[0].NodeID != "a1" || conns[1].NodeID != "s1" {
		t.Errorf("p1.in edges = %v, want a1 then s1", conns)
	}
	if got := p1.Metadata()["pos"]; got == nil {
		t.Error("p1 metadata not carried through")
	}
}

func TestBuilderCollectsAllFailures(t *testing.T) {
	b := New(testCatalog(t))

	b.Add("v1", "constant").Set("value", "not a number")
	b.Add("x1", "mystery")
	b.Add("p1", "printer")
	b.Wire("v1.out", "p1.in")
	b.Wire("ghost.out", "p1.in")

	g, err := b.Build()
	if g != nil {
		t.Fatal("Build() returned a graph alongside errors")
	}

	// v1 fails validation, x1 has no type, and both wires fail:
	// v1 never made it into the graph, ghost never existed.
	errs := schema.ValidationErrors(err)
	if len(errs) != 4 {
		t.Fatalf("got %d collected errors (%v), want 4", len(errs), err)
	}

	var vErr *schema.ValidationError
	if !errors.As(errs[0], &vErr) || vErr.Key != "value" {
		t.Errorf("first error = %v, want validation failure for value", errs[0])
	}
}

func TestBuilderDuplicateNode(t *testing.T) {
	b := New(testCatalog(t))
	b.Add("v1", "constant")
	b.Add("v1", "constant")

	_, err := b.Build()
	var dup *domain.DuplicateNodeError
	if !errors.As(err, &dup) {
		t.Fatalf("Build() error = %v, want DuplicateNodeError", err)
	}
}

func TestBuilderRejectsBadWire(t *testing.T) {
	b := New(testCatalog(t))
	b.Add("v1", "constant")
	b.Add("v2", "constant")
	b.Wire("v1.out", "v2.out")

	_, err := b.Build()
	var connErr *domain.ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("Build() error = %v, want ConnectionError", err)
	}
}
