// Package schema provides typed, validated node parameters.
//
// A Property describes one named parameter of a node type: a default
// value, optional renderer metadata, a pure validation predicate, and a
// pair of conversions between the in-memory value and the plain
// interchange representation produced by shells and decoded JSON.
//
// Basic usage:
//
//	value := schema.NewFloat(1.0).Min(0).Max(10)
//	op := schema.NewChoices("add", "add", "sub", "mul", "div")
//
//	value.Validate(5.0)  // true
//	value.Validate(-1.0) // false
//	op.Validate("pow")   // false
//
// Conversions never validate, and validation never converts. Callers
// that accept external input convert first, then validate:
//
//	v, err := value.FromExternal("7")
//	if err != nil {
//	    // not a number at all
//	}
//	if !value.Validate(v) {
//	    // a number, but outside the declared bounds
//	}
//
// This package is designed to be library-agnostic, with zero external
// dependencies beyond the Go standard library. It can be embedded in
// larger systems or extracted as a standalone library.
package schema
