/*
Package litegraph provides jsgen handlers for the built-in building
blocks, emitting LiteGraph runtime calls: addInput/addOutput for pin
generators, addProperty for properties, and quoted type ids (or the
wildcard 0) for data types.

The handlers are an explicit opt-in: modules install them with
Register and layer handlers for their own types on top.
*/
package litegraph
