/*
Package ports defines the driven ports (interfaces) for the graft engine.

These interfaces decouple the engine from the surfaces that host it, so the
same graph-editing core can sit behind an MCP server, an HTTP handler, or a
test harness without caring where sessions live.

# Key Types

  - Session: one instance graph under construction, bound to a module.
  - GraphStore: holds live sessions keyed by ID.
*/
package ports
