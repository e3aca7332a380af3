package validator

import (
	"strings"
	"testing"

	"github.com/aretw0/graft/pkg/domain"
)

var number = domain.NewSimple("number")

func buildGraph(t *testing.T) *domain.Graph {
	t.Helper()
	source := domain.NewNodeType([]string{"calc"}, "constant", "Constant", nil,
		domain.Fixed(domain.Pin{ID: "out", Name: "Output", Direction: domain.Out, Type: number}), nil)
	sink := domain.NewNodeType([]string{"calc"}, "printer", "Printer", nil,
		domain.Fixed(domain.Pin{ID: "in", Name: "Input", Direction: domain.In, Type: number}), nil)

	g := domain.NewGraph()
	for id, nt := range map[string]*domain.NodeType{"v1": source, "p1": sink} {
		n, err := nt.Create(id, nil, nil)
		if err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
		if err := g.Add(n); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	v1, _ := g.Node("v1")
	p1, _ := g.Node("p1")
	if err := domain.Connect(domain.Endpoint{Node: v1, Pin: "out"}, domain.Endpoint{Node: p1, Pin: "in"}); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return g
}

func TestCheckClosedGraph(t *testing.T) {
	g := buildGraph(t)

	if problems := Check(g); len(problems) != 0 {
		t.Errorf("closed graph reported problems: %v", problems)
	}
	if err := ValidateGraph(g); err != nil {
		t.Errorf("closed graph failed validation: %v", err)
	}
}

func TestCheckDanglingAfterRemove(t *testing.T) {
	g := buildGraph(t)
	g.Remove("v1")

	problems := Check(g)
	if len(problems) != 1 {
		t.Fatalf("want 1 problem, got %v", problems)
	}
	p := problems[0]
	if p.Node != "p1" || p.Pin != "in" || p.Target != "v1.out" {
		t.Errorf("unexpected problem: %+v", p)
	}
	if p.Reason != "node not in graph" {
		t.Errorf("unexpected reason: %q", p.Reason)
	}

	err := ValidateGraph(g)
	if err == nil {
		t.Fatal("dangling graph should have failed, but got nil")
	}
	if !strings.Contains(err.Error(), "found 1 errors") || !strings.Contains(err.Error(), "node not in graph") {
		t.Errorf("unexpected error text: %v", err)
	}

	if got := BrokenNodes(problems); len(got) != 1 || got[0] != "p1" {
		t.Errorf("BrokenNodes = %v, want [p1]", got)
	}
}

func TestCheckEmptyGraph(t *testing.T) {
	if problems := Check(domain.NewGraph()); problems != nil {
		t.Errorf("empty graph reported problems: %v", problems)
	}
}
