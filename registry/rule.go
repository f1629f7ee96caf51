package registry

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/scidata-tools/inspect/graph"
	"github.com/scidata-tools/inspect/message"
)

// CheckFunc is the body of a check: a pure function over one object that
// returns zero or more messages. Returning an error (or panicking) marks the
// check as failed for that object; the driver records the failure and moves
// on.
type CheckFunc func(n graph.Node) ([]message.Message, error)

// Rule describes one registered check. Rules are immutable once registered;
// the registry keeps its own copy.
type Rule struct {
	// Name uniquely identifies the check within a registry, e.g.
	// "check_missing_unit". Used in reports and in select/ignore lists.
	Name string

	// Target is the type name the check applies to. The check also runs
	// against every declared subtype of Target.
	Target string

	// Importance is the declared importance of the check's findings.
	// Reserved levels (error, format_validation) are rejected.
	Importance message.Importance

	// Summary is a one-line human-readable description for listings.
	Summary string

	// Check is the check body. Required.
	Check CheckFunc

	// When optionally restricts the check to objects satisfying a Go
	// predicate. A false result skips the object silently.
	When func(n graph.Node) bool

	// Predicate optionally restricts the check with a CEL expression over
	// the variables "object" (the node's attribute map), "type", and
	// "name". Compiled at registration; a compile failure is a
	// registration error. Example: `"timestamps" in object && type != "Table"`.
	Predicate string

	// prg is the compiled form of Predicate, populated by Register.
	prg cel.Program
}

// Applies reports whether the rule's optional predicates admit the object.
// An evaluation error is returned so the driver can surface it as a check
// execution failure rather than silently skipping.
func (r *Rule) Applies(n graph.Node) (bool, error) {
	if r.When != nil && !r.When(n) {
		return false, nil
	}
	if r.prg == nil {
		return true, nil
	}
	attrs := graph.AttrsOf(n)
	if attrs == nil {
		attrs = map[string]any{}
	}
	out, _, err := r.prg.Eval(map[string]any{
		"object": attrs,
		"type":   n.TypeName(),
		"name":   n.Name(),
	})
	if err != nil {
		return false, fmt.Errorf("predicate %q: %w", r.Predicate, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("predicate %q: non-boolean result %v", r.Predicate, out.Value())
	}
	return b, nil
}

func (r *Rule) validate() error {
	if r.Name == "" {
		return fmt.Errorf("rule has no name")
	}
	if r.Target == "" {
		return fmt.Errorf("rule %q has no target type", r.Name)
	}
	if r.Check == nil {
		return fmt.Errorf("rule %q has no check body", r.Name)
	}
	if !r.Importance.IsValid() {
		return fmt.Errorf("rule %q: invalid importance %q", r.Name, r.Importance)
	}
	if r.Importance.IsReserved() {
		return fmt.Errorf("rule %q: importance %q is reserved for the engine", r.Name, r.Importance)
	}
	return nil
}
