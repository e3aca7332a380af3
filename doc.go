/*
Package graft is a typed node-graph toolkit for building visual
programming surfaces: catalogs of validated node types, instance
graphs with direction- and type-checked wiring, JavaScript generation
for browser editors, and topological evaluation.

# Concept

A node type is a template: a category path, validated properties, and
a pin generator that stamps out the type's inputs and outputs. Types
are grouped into modules, and a module carries everything its types
need to run: code generation handlers for the browser editor and
calculations for evaluation. The Engine installs modules and serves
graphs, scripts, and evaluation on top of them; your application
decides the surface (CLI, HTTP editor, MCP).

# Key Features

  - Validated construction: property values are checked at node
    creation, connections at wiring time. A graph that builds is a
    graph the evaluator accepts.
  - Directional type system: data types declare which peers they can
    feed and be fed by; either endpoint may vouch for a connection.
  - Deterministic evaluation: nodes run in dependency order with ties
    broken by insertion order, and cycles are reported before any
    calculation runs.
  - Editor scripts from the same catalog: the LiteGraph definitions a
    browser needs are generated from the node types themselves, so the
    editor and the engine cannot drift apart.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/graft"
		"github.com/aretw0/graft/modules/math"
		"github.com/aretw0/graft/pkg/eval"
	)

	func main() {
		eng, err := graft.New(graft.WithModules(math.New()))
		if err != nil {
			log.Fatal(err)
		}

		b, err := eng.NewBuilder("math")
		if err != nil {
			log.Fatal(err)
		}
		b.Add("v1", "constant").Set("value", 5.0)
		b.Add("v2", "constant").Set("value", 7.0)
		b.Add("a1", "binop")
		b.Wire("v1.out", "a1.a").Wire("v2.out", "a1.b")

		g, err := b.Build()
		if err != nil {
			log.Fatal(err)
		}

		values, err := eng.Evaluate("math", g)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(values[eval.ValueRef{Node: "a1", Pin: "res"}])
	}
*/
package graft
