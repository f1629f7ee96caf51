package graph

import (
	"errors"
	"fmt"
)

// ErrCycle reports that the graph reached an object through one of its own
// descendants. The parser contract promises an acyclic graph, so traversal
// treats this as fatal rather than guessing at a safe partial walk.
var ErrCycle = errors.New("cycle in container graph")

// VisitFunc is called once per object with its dot-joined path from the
// root. Returning a non-nil error stops the walk and propagates the error.
type VisitFunc func(n Node, path string) error

// Walk traverses the graph depth-first from root, visiting a parent before
// its children and children in their declared order. Paths join edge names
// with "."; the root's path is "".
//
// Every object is visited exactly once by identity, so a graph that shares a
// node through several named references reports it only at the first path
// encountered. A true cycle returns an error wrapping ErrCycle.
func Walk(root Node, fn VisitFunc) error {
	if root == nil {
		return fmt.Errorf("walk: nil root")
	}
	w := walker{
		visited: make(map[Node]struct{}),
		onStack: make(map[Node]struct{}),
	}
	return w.walk(root, "", fn)
}

type walker struct {
	visited map[Node]struct{}
	onStack map[Node]struct{}
}

func (w *walker) walk(n Node, path string, fn VisitFunc) error {
	if _, ok := w.visited[n]; ok {
		return nil
	}
	w.visited[n] = struct{}{}
	w.onStack[n] = struct{}{}
	defer delete(w.onStack, n)

	if err := fn(n, path); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if c.Node == nil {
			return fmt.Errorf("walk: nil child %q under %q", c.Name, path)
		}
		childPath := JoinPath(path, c.Name)
		if _, ok := w.onStack[c.Node]; ok {
			return fmt.Errorf("%w: %q reaches its ancestor", ErrCycle, childPath)
		}
		if err := w.walk(c.Node, childPath, fn); err != nil {
			return err
		}
	}
	return nil
}

// JoinPath appends an edge name to a parent path. The root path is "".
func JoinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
