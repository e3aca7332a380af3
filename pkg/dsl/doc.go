/*
Package dsl provides a fluent Go builder for constructing node graphs.

It trades the step-by-step create/add/connect error handling for a
declarative chain: nodes and wires are described first, and Build then
performs every operation at once, collecting all failures into a
single error.

Example usage:

	b := dsl.New(mathCatalog)

	b.Add("v1", "constant").Set("value", 5.0)
	b.Add("v2", "constant").Set("value", 7.0)
	b.Add("a1", "binop")
	b.Add("p1", "printer")

	b.Wire("v1.out", "a1.a").
		Wire("v2.out", "a1.b").
		Wire("a1.res", "p1.in")

	graph, err := b.Build()
	// graph is ready for evaluation or code generation
*/
package dsl
