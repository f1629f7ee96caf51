package inspect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/scidata-tools/inspect/graph"
	"github.com/scidata-tools/inspect/message"
	"github.com/scidata-tools/inspect/registry"
)

// Parser turns an on-disk data file into an in-memory object graph. Parsers
// are external to the engine; see package yamlgraph for a reference
// implementation.
type Parser interface {
	Parse(ctx context.Context, path string) (graph.Node, error)
}

// FormatValidator is an optional interface a Parser may implement to report
// format-level findings (schema violations, malformed sections) discovered
// while reading the file. Its messages are surfaced at the reserved
// format-validation importance ahead of the check results for that file.
type FormatValidator interface {
	ValidateFormat(ctx context.Context, path string) ([]message.Message, error)
}

// InspectAll validates every data file under path: the file itself, or every
// matching regular file directly inside it if path is a directory. Each file
// gets its own Result, in deterministic (lexical) file order.
//
// Failures are isolated per file: a file that cannot be parsed or traversed
// yields a Result holding a single error-importance message, and the batch
// continues. Only invalid configuration, an unusable path, or context
// cancellation abort the whole batch.
//
// Files are processed concurrently up to the WithWorkers limit; the registry
// is shared read-only across workers.
func InspectAll(ctx context.Context, path string, parser Parser, reg *registry.Registry, opts ...Option) ([]*Result, error) {
	const op = "inspect.InspectAll"
	cfg := newRunConfig(opts)
	if parser == nil {
		return nil, configErr(op, ErrNoParser)
	}
	// Reject bad filter configuration before any file is touched.
	if _, err := cfg.admission(reg); err != nil {
		return nil, configErr(op, err)
	}
	files, err := expandPath(path, cfg.extensions)
	if err != nil {
		return nil, configErr(op, err)
	}
	if len(files) == 0 {
		return nil, configErr(op, fmt.Errorf("%w under %q", ErrNoFiles, path))
	}

	results := make([]*Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, file := range files {
		g.Go(func() error {
			res, err := inspectFile(gctx, file, parser, reg, cfg, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// inspectFile validates one file. The returned error is non-nil only for
// context cancellation; every other failure is folded into the Result.
func inspectFile(ctx context.Context, file string, parser Parser, reg *registry.Registry, cfg *runConfig, opts []Option) (*Result, error) {
	ctx, span := cfg.tracer.Start(ctx, "inspect.file",
		trace.WithAttributes(attribute.String("inspect.file", file)))
	defer span.End()

	var pre []message.Message
	if fv, ok := parser.(FormatValidator); ok {
		msgs, err := fv.ValidateFormat(ctx, file)
		if err != nil {
			pre = append(pre, fileFailure(file, "validate_format", err))
		}
		for _, m := range msgs {
			if m.Importance == "" {
				m.Importance = message.ImportanceFormatValidation
			}
			if m.File == "" {
				m.File = file
			}
			pre = append(pre, m)
		}
	}

	root, err := parser.Parse(ctx, file)
	if err != nil {
		cfg.logger.Error("parse failed", "file", file, "error", err)
		return failedResult(file, pre, fileFailure(file, "parse_file", err)), ctx.Err()
	}

	fileOpts := append(slices.Clone(opts), WithFile(file))
	res, err := Run(ctx, root, reg, fileOpts...)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		cfg.logger.Error("traversal failed", "file", file, "error", err)
		return failedResult(file, pre, fileFailure(file, "traverse_graph", err)), nil
	}
	res.Messages = append(pre, res.Messages...)
	return res, nil
}

func failedResult(file string, pre []message.Message, failure message.Message) *Result {
	return &Result{
		RunID:    uuid.New().String(),
		File:     file,
		Messages: append(pre, failure),
	}
}

// fileFailure records a file-level failure (parse, format validation,
// traversal) as a message so batch reporting can present it alongside
// ordinary findings.
func fileFailure(file, op string, err error) message.Message {
	return message.Message{
		CheckName:  op,
		Text:       err.Error(),
		Importance: message.ImportanceError,
		File:       file,
	}
}

// expandPath resolves the batch target to a deterministic list of files.
func expandPath(path string, exts []string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	// ReadDir sorts by filename, so the batch order is stable.
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if len(exts) > 0 && !slices.Contains(exts, filepath.Ext(e.Name())) {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	return files, nil
}
