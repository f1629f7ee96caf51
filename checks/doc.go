// Package checks contributes the stock best-practice checks for
// hierarchical scientific data files.
//
// The engine does not depend on this package; it is a contributor like any
// other, registering its rules and its type hierarchy into registry.Default
// at load time. Import it for its side effects:
//
//	import _ "github.com/scidata-tools/inspect/checks"
//
// Checks read objects through the generic attribute contract
// (graph.Attributed); the attribute names they look at ("data",
// "timestamps", "unit", "resolution", "description", "shape") are the
// conventions the reference parser emits.
package checks
