package inspect

import (
	"errors"
	"fmt"
)

// Sentinel errors for common engine error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrConflictingFilters indicates that select and ignore lists were
	// both supplied; they are mutually exclusive.
	ErrConflictingFilters = errors.New("select and ignore cannot both be used")

	// ErrUnknownRule indicates a select or ignore list named a rule that
	// is not present in the registry.
	ErrUnknownRule = errors.New("unknown rule name")

	// ErrNoRegistry indicates Run was called without a registry.
	ErrNoRegistry = errors.New("nil registry")

	// ErrNoParser indicates InspectAll was called without a parser.
	ErrNoParser = errors.New("nil parser")

	// ErrNoFiles indicates the batch path expanded to no data files.
	ErrNoFiles = errors.New("no data files found")
)

// Error kinds categorize errors by their type.
const (
	// KindConfiguration represents invalid filter or option configuration,
	// detected before any traversal begins.
	KindConfiguration = "configuration"

	// KindTraversal represents a graph that violates the acyclic contract
	// or is otherwise not walkable; fatal for that file.
	KindTraversal = "traversal"

	// KindParse represents a failure to parse a data file into a graph.
	KindParse = "parse"

	// KindInternal represents internal engine errors.
	KindInternal = "internal"
)

// Error is a structured error wrapping an underlying cause with the
// operation that failed and the category of failure. It supports errors.Is
// and errors.As through Unwrap.
type Error struct {
	// Op is the operation that failed (e.g., "inspect.Run").
	Op string

	// Kind categorizes the error (e.g., KindConfiguration).
	Kind string

	// Err is the underlying error.
	Err error

	// File is the data file being validated when the error occurred,
	// if any.
	File string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("inspect: %s: %s", e.Op, e.Kind)
	case e.File != "":
		return fmt.Sprintf("inspect: %s (%s) %s: %v", e.Op, e.Kind, e.File, e.Err)
	default:
		return fmt.Sprintf("inspect: %s (%s): %v", e.Op, e.Kind, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func configErr(op string, err error) *Error {
	return &Error{Op: op, Kind: KindConfiguration, Err: err}
}

func traversalErr(op string, err error) *Error {
	return &Error{Op: op, Kind: KindTraversal, Err: err}
}
