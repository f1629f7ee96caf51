package graph

import (
	"fmt"
	"sync"
)

// Schema is the explicit type-ancestry table: a mapping from a type name to
// its parent type name. The rule registry resolves it to decide which checks
// apply to a node, so "is a subtype of" is always a declared fact, never an
// inference over an object's attributes.
//
// A Schema is safe for concurrent use. Like the registry it is expected to be
// populated at load time and read-only afterwards.
type Schema struct {
	mu      sync.RWMutex
	parents map[string]string
}

// NewSchema returns an empty Schema.
func NewSchema() *Schema {
	return &Schema{parents: make(map[string]string)}
}

// RegisterType declares that name is a subtype of parent. A type with no
// supertype is declared with an empty parent, or simply never registered.
//
// Re-declaring a type with a different parent is an error, as is a
// declaration that would make a type its own ancestor.
func (s *Schema) RegisterType(name, parent string) error {
	if name == "" {
		return fmt.Errorf("register type: empty type name")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.parents[name]; ok && existing != parent {
		return fmt.Errorf("register type %q: already declared with parent %q", name, existing)
	}
	// Walk up from the proposed parent; reaching name again would create
	// an ancestry loop.
	for p := parent; p != ""; p = s.parents[p] {
		if p == name {
			return fmt.Errorf("register type %q: ancestry cycle through %q", name, parent)
		}
	}
	s.parents[name] = parent
	return nil
}

// MustRegisterType is RegisterType that panics on error, for use in package
// init functions that declare a fixed hierarchy.
func (s *Schema) MustRegisterType(name, parent string) {
	if err := s.RegisterType(name, parent); err != nil {
		panic(err)
	}
}

// Ancestors returns the ancestor chain of name, starting with name itself
// and ending at the root of its hierarchy. A type the schema has never seen
// has only itself in the chain.
func (s *Schema) Ancestors(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chain := []string{name}
	for p := s.parents[name]; p != ""; p = s.parents[p] {
		chain = append(chain, p)
	}
	return chain
}

// IsSubtype reports whether name is ancestor or a declared subtype of it.
func (s *Schema) IsSubtype(name, ancestor string) bool {
	for _, a := range s.Ancestors(name) {
		if a == ancestor {
			return true
		}
	}
	return false
}
