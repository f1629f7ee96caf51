// Package yamlgraph is the reference parser for the inspection engine: it
// reads a YAML document describing a hierarchical data file and produces the
// graph.Node tree the engine traverses.
//
// The document convention is simple: every mapping is an object. The
// reserved key "_type" names the object's type (default "Group"); a value
// that is itself a mapping becomes a named child; a sequence of mappings
// becomes indexed children; every other value becomes an attribute.
//
//	_type: Group
//	acquisition:
//	  response:
//	    _type: Series
//	    unit: volts
//	    timestamps: [0.0, 0.1, 0.2]
//	    data: [1.0, 2.0, 3.0]
//
// YAML anchors and aliases are resolved, so a shared subtree parses into a
// shared node; the engine's traversal visits it once. Alias cycles are
// rejected at parse time.
package yamlgraph
