package inspect

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/scidata-tools/inspect/message"
)

// Option configures a Run or InspectAll call.
type Option func(*runConfig)

// runConfig holds the resolved configuration of one run.
type runConfig struct {
	threshold   message.Importance
	selected    []string
	ignored     []string
	ignorePaths map[string]struct{}
	file        string
	extensions  []string
	workers     int
	logger      *slog.Logger
	tracer      trace.Tracer
}

func newRunConfig(opts []Option) *runConfig {
	cfg := &runConfig{
		threshold: message.ImportanceBestPracticeSuggestion,
		workers:   1,
		logger:    slog.New(slog.DiscardHandler),
		tracer:    noop.NewTracerProvider().Tracer("github.com/scidata-tools/inspect"),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithThreshold keeps only messages at or above the given importance
// (inclusive). The default is ImportanceBestPracticeSuggestion, i.e. keep
// everything. The threshold is a retention filter: it never prevents a check
// from executing.
func WithThreshold(threshold message.Importance) Option {
	return func(c *runConfig) {
		c.threshold = threshold
	}
}

// WithSelect restricts the run to the named checks. Checks outside the list
// are not executed at all. Mutually exclusive with WithIgnore; naming a
// check the registry does not know is a configuration error.
func WithSelect(names ...string) Option {
	return func(c *runConfig) {
		c.selected = append(c.selected, names...)
	}
}

// WithIgnore excludes the named checks from the run. Excluded checks are not
// executed at all. Mutually exclusive with WithSelect; naming a check the
// registry does not know is a configuration error.
func WithIgnore(names ...string) Option {
	return func(c *runConfig) {
		c.ignored = append(c.ignored, names...)
	}
}

// WithIgnorePaths drops messages located at the given object paths. Checks
// still execute against those objects; only their output is discarded.
func WithIgnorePaths(paths ...string) Option {
	return func(c *runConfig) {
		if c.ignorePaths == nil {
			c.ignorePaths = make(map[string]struct{})
		}
		for _, p := range paths {
			c.ignorePaths[p] = struct{}{}
		}
	}
}

// WithFile stamps every message of the run with a file identifier.
// InspectAll sets this automatically for each file it visits.
func WithFile(file string) Option {
	return func(c *runConfig) {
		c.file = file
	}
}

// WithExtensions restricts which files InspectAll picks up when expanding a
// directory (e.g. ".yaml", ".yml"). By default every regular file in the
// directory is considered.
func WithExtensions(exts ...string) Option {
	return func(c *runConfig) {
		c.extensions = append(c.extensions, exts...)
	}
}

// WithWorkers bounds how many files InspectAll validates concurrently.
// The default is 1. Each file gets its own Result; the shared registry is
// read-only during execution, so no synchronization is needed between
// workers.
func WithWorkers(n int) Option {
	return func(c *runConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets a structured logger for the run. If not provided, logging
// is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *runConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer sets an OpenTelemetry tracer; Run and InspectAll open a span
// per run and per file. If not provided, tracing is a no-op.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *runConfig) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}
