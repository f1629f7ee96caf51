package graph

// Node is one object in a parsed data file. Implementations are owned by the
// parser; the engine only reads them. Implementations must be comparable
// (pointer receivers are the norm) because traversal tracks visited objects
// by identity.
type Node interface {
	// TypeName returns the declared type of the object, resolved against
	// a Schema for ancestor-aware check lookup.
	TypeName() string

	// Name returns the object's own name, used in reports.
	Name() string

	// Children returns the object's child edges in a stable, deterministic
	// order. The order is whatever the parser exposes; the engine preserves
	// it. Indexed children conventionally use their decimal index as the
	// edge name.
	Children() []Child
}

// Child is one named edge from a container to a child object.
type Child struct {
	Name string
	Node Node
}

// Attributed is an optional interface for nodes that expose scalar and array
// attributes. Checks and CEL predicates read attributes through it; nodes
// without attributes simply don't implement it.
type Attributed interface {
	// Attrs returns the object's attributes. Callers must not mutate the
	// returned map.
	Attrs() map[string]any
}

// Object is a concrete Node with attributes, usable by parsers that build
// graphs directly and by tests. The zero value is not usable; construct with
// NewObject.
type Object struct {
	typeName string
	name     string
	attrs    map[string]any
	children []Child
}

// NewObject returns an Object of the given type and name with no children.
func NewObject(typeName, name string) *Object {
	return &Object{typeName: typeName, name: name}
}

// TypeName implements Node.
func (o *Object) TypeName() string { return o.typeName }

// Name implements Node.
func (o *Object) Name() string { return o.name }

// Children implements Node.
func (o *Object) Children() []Child { return o.children }

// Attrs implements Attributed.
func (o *Object) Attrs() map[string]any { return o.attrs }

// SetAttr sets an attribute and returns the object for chaining.
func (o *Object) SetAttr(key string, value any) *Object {
	if o.attrs == nil {
		o.attrs = make(map[string]any)
	}
	o.attrs[key] = value
	return o
}

// AddChild appends a child edge and returns the object for chaining.
// Edges keep insertion order.
func (o *Object) AddChild(name string, child Node) *Object {
	o.children = append(o.children, Child{Name: name, Node: child})
	return o
}

// AttrsOf returns the attributes of n if it implements Attributed, or nil.
func AttrsOf(n Node) map[string]any {
	if a, ok := n.(Attributed); ok {
		return a.Attrs()
	}
	return nil
}
