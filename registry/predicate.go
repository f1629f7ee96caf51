package registry

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

// predicateEnv is the shared CEL environment for rule predicates. Every
// predicate sees the same three variables, so one environment serves all
// compilations.
var predicateEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("object", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("type", cel.StringType),
		cel.Variable("name", cel.StringType),
	)
})

// compilePredicate compiles a CEL predicate expression, enforcing a boolean
// result type.
func compilePredicate(expr string) (cel.Program, error) {
	env, err := predicateEnv()
	if err != nil {
		return nil, fmt.Errorf("predicate environment: %w", err)
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compile predicate %q: %w", expr, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("predicate %q must evaluate to bool, got %s", expr, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program predicate %q: %w", expr, err)
	}
	return prg, nil
}
