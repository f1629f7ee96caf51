package inspect

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/scidata-tools/inspect/graph"
	"github.com/scidata-tools/inspect/message"
	"github.com/scidata-tools/inspect/registry"
)

// Run validates a single parsed graph against a registry and returns the
// accumulated messages.
//
// Configuration problems (conflicting or unknown select/ignore names, bad
// threshold) are reported before any traversal begins. A graph that cannot
// be traversed aborts the run with a traversal error. A check that fails
// never aborts the run: the failure becomes a message at the reserved error
// importance and the run continues.
//
// The context is consulted between objects; cancellation aborts the run
// with the context's error. The engine never interrupts a check body that
// is already executing.
func Run(ctx context.Context, root graph.Node, reg *registry.Registry, opts ...Option) (*Result, error) {
	const op = "inspect.Run"
	cfg := newRunConfig(opts)
	admit, err := cfg.admission(reg)
	if err != nil {
		return nil, configErr(op, err)
	}
	if root == nil {
		return nil, traversalErr(op, errors.New("nil root"))
	}

	res := &Result{RunID: uuid.New().String(), File: cfg.file}
	ctx, span := cfg.tracer.Start(ctx, "inspect.run", trace.WithAttributes(
		attribute.String("inspect.run_id", res.RunID),
		attribute.String("inspect.file", cfg.file),
	))
	defer span.End()

	err = graph.Walk(root, func(n graph.Node, path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, rule := range reg.Lookup(n.TypeName()) {
			if !admit(rule.Name) {
				continue
			}
			ok, applyErr := rule.Applies(n)
			if applyErr != nil {
				cfg.logger.Error("check predicate failed",
					"check", rule.Name, "path", path, "error", applyErr)
				cfg.retain(res, executionFailure(rule, n, path, cfg.file, applyErr))
				continue
			}
			if !ok {
				continue
			}
			msgs, checkErr := invoke(rule, n)
			if checkErr != nil {
				cfg.logger.Error("check failed",
					"check", rule.Name, "path", path, "error", checkErr)
				cfg.retain(res, executionFailure(rule, n, path, cfg.file, checkErr))
				continue
			}
			for _, m := range msgs {
				cfg.retain(res, stamp(m, rule, n, path, cfg.file))
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, traversalErr(op, err)
	}
	cfg.logger.Info("run complete",
		"run_id", res.RunID, "file", cfg.file, "messages", len(res.Messages))
	return res, nil
}

// admission validates the filter configuration against the registry and
// returns the predicate deciding which checks execute.
func (c *runConfig) admission(reg *registry.Registry) (func(name string) bool, error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}
	if len(c.selected) > 0 && len(c.ignored) > 0 {
		return nil, ErrConflictingFilters
	}
	if !c.threshold.IsValid() {
		return nil, fmt.Errorf("invalid threshold %q", c.threshold)
	}
	for _, name := range append(append([]string{}, c.selected...), c.ignored...) {
		if _, ok := reg.Get(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
	}
	if len(c.selected) > 0 {
		set := toSet(c.selected)
		return func(name string) bool { _, ok := set[name]; return ok }, nil
	}
	if len(c.ignored) > 0 {
		set := toSet(c.ignored)
		return func(name string) bool { _, ok := set[name]; return !ok }, nil
	}
	return func(string) bool { return true }, nil
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// retain appends m to the result unless the threshold or an ignored path
// drops it. Retention never affects whether a check executed.
func (c *runConfig) retain(res *Result, m message.Message) {
	if _, ok := c.ignorePaths[m.Location]; ok {
		return
	}
	if m.Importance.Rank() < c.threshold.Rank() {
		return
	}
	res.Messages = append(res.Messages, m)
}

// invoke runs a check body, converting a panic into an error.
func invoke(r *registry.Rule, n graph.Node) (msgs []message.Message, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("check panicked: %v", rec)
		}
	}()
	return r.Check(n)
}

// stamp fills in the fields a check left blank: the driver knows the rule,
// the object, and the traversal path; the check only has to describe what
// it saw.
func stamp(m message.Message, r *registry.Rule, n graph.Node, path, file string) message.Message {
	if m.CheckName == "" {
		m.CheckName = r.Name
	}
	if m.Importance == "" {
		m.Importance = r.Importance
	}
	if m.Location == "" {
		m.Location = path
	}
	if m.ObjectType == "" {
		m.ObjectType = n.TypeName()
	}
	if m.ObjectName == "" {
		m.ObjectName = n.Name()
	}
	if m.File == "" {
		m.File = file
	}
	return m
}

// executionFailure synthesizes the message recording a failed check.
func executionFailure(r *registry.Rule, n graph.Node, path, file string, err error) message.Message {
	return message.Message{
		CheckName:  r.Name,
		Text:       fmt.Sprintf("check execution failed: %v", err),
		Importance: message.ImportanceError,
		ObjectType: n.TypeName(),
		ObjectName: n.Name(),
		Location:   path,
		File:       file,
	}
}
