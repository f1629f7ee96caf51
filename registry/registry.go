package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/scidata-tools/inspect/graph"
)

// ErrDuplicateRule reports an attempt to register a second rule under an
// already-taken name. Registration errors are fatal at startup: the process
// must not run against an inconsistent registry.
var ErrDuplicateRule = errors.New("duplicate rule name")

// Registry maps target type names to the rules registered against them.
// It is populated at load time and read-only afterwards; all methods are
// safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	schema   *graph.Schema
	rules    []*Rule
	byName   map[string]*Rule
	byTarget map[string][]*Rule
}

// New returns an empty Registry resolving subtypes through schema.
// A nil schema gets a fresh empty one, in which every type stands alone.
func New(schema *graph.Schema) *Registry {
	if schema == nil {
		schema = graph.NewSchema()
	}
	return &Registry{
		schema:   schema,
		byName:   make(map[string]*Rule),
		byTarget: make(map[string][]*Rule),
	}
}

// Default is the process-wide registry that contributed check packages
// register into from their init functions.
var Default = New(graph.NewSchema())

// Register adds a copy of r to the Default registry. See Registry.Register.
func Register(r Rule) error { return Default.Register(r) }

// MustRegister is Register that panics on error, for load-time use.
func MustRegister(r Rule) { Default.MustRegister(r) }

// Schema returns the type-ancestry table the registry resolves against,
// so contributor packages can declare their type hierarchies alongside
// their rules.
func (reg *Registry) Schema() *graph.Schema {
	return reg.schema
}

// Register adds a copy of r. The rule is validated and its CEL predicate
// compiled before the table is touched, so a failed registration leaves the
// registry exactly as it was. A name collision fails with ErrDuplicateRule.
func (reg *Registry) Register(r Rule) error {
	if err := r.validate(); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if r.Predicate != "" {
		prg, err := compilePredicate(r.Predicate)
		if err != nil {
			return fmt.Errorf("register %q: %w", r.Name, err)
		}
		r.prg = prg
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.byName[r.Name]; ok {
		return fmt.Errorf("register %q: %w", r.Name, ErrDuplicateRule)
	}
	rule := r
	reg.rules = append(reg.rules, &rule)
	reg.byName[rule.Name] = &rule
	reg.byTarget[rule.Target] = append(reg.byTarget[rule.Target], &rule)
	return nil
}

// MustRegister is Register that panics on error, for load-time use.
func (reg *Registry) MustRegister(r Rule) {
	if err := reg.Register(r); err != nil {
		panic(err)
	}
}

// Lookup returns the rules applicable to an object of the given type: every
// rule whose target is typeName or one of its declared ancestors. Rules
// targeting the most specific type come first; within one target, rules keep
// registration order. Each rule appears at most once.
func (reg *Registry) Lookup(typeName string) []*Rule {
	ancestors := reg.schema.Ancestors(typeName)
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	var out []*Rule
	seen := make(map[string]struct{})
	for _, t := range ancestors {
		for _, r := range reg.byTarget[t] {
			if _, ok := seen[r.Name]; ok {
				continue
			}
			seen[r.Name] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}

// Get returns the rule registered under name, if any.
func (reg *Registry) Get(name string) (*Rule, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.byName[name]
	return r, ok
}

// Rules returns every registered rule in registration order.
func (reg *Registry) Rules() []*Rule {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]*Rule, len(reg.rules))
	copy(out, reg.rules)
	return out
}

// Len returns the number of registered rules.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rules)
}
