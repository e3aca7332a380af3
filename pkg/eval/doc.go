/*
Package eval executes a node graph by topological evaluation.

A Calculator maps node type identifiers to calculation functions,
resolved once when the calculator is populated. Evaluate orders the
graph's nodes so every node runs after the nodes feeding its inputs,
invokes each node's calculation with its gathered input values, and
collects one value per output pin.

	calc := eval.NewCalculator()
	_ = calc.Register("constant", constantCalc)

	values, err := eval.Evaluate(graph, calc)
	if err != nil {
	    // CycleError, MissingValueError, NoCalculatorError, or a
	    // calculation failure
	}
	res := values[eval.ValueRef{Node: "a1", Pin: "res"}]

Evaluation is single-threaded and synchronous. A graph is assumed
closed: every node referenced by a connection must be present. Callers
must not mutate the graph's connections while evaluation is running.
*/
package eval
