// Package registry holds the table of checks keyed by the object type they
// apply to.
//
// Checks are contributed independently: a module declares a Rule against a
// target type name and registers it, either into its own Registry or into
// the package-level Default at load time. Adding a check never touches
// existing code; the engine discovers applicable checks by resolving a
// node's declared ancestor chain against the table.
//
// Lookup order is deterministic: checks targeting the most specific type
// first, ties broken by registration order. Rule names are unique within a
// registry; registering a duplicate fails with ErrDuplicateRule and leaves
// the registry unchanged.
//
// A Registry is populated once at process start and is read-only during
// execution, so a single instance is safely shared by concurrent runs.
package registry
