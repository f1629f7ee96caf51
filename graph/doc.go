// Package graph defines the read-only contract between the inspection engine
// and whatever parser produced the in-memory object graph of a data file.
//
// A parser exposes its hierarchy as Node values: each node has a runtime type
// name, an object name, and an ordered list of named child edges. The engine
// never mutates a node; it only walks the graph and hands objects to checks.
//
// The package also provides:
//
//   - Schema, the explicit type-ancestry table used by the rule registry to
//     decide which checks apply to which node types. Subtyping is declared,
//     not reflected: a parser states "ElectricalSeries is a Series" once and
//     every check registered against Series picks it up.
//   - Walk, the deterministic depth-first traversal that yields every object
//     exactly once together with its dot-joined path from the root.
//   - Object, a ready-made Node implementation for parsers and tests.
package graph
