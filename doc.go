// Package inspect is the execution engine for best-practice validation of
// hierarchical scientific data files.
//
// The engine itself knows nothing about any particular file format or any
// particular best practice. An external parser turns a file into a
// graph.Node tree; contributor packages register named checks against object
// type names in a registry.Registry; Run walks the graph, executes every
// applicable check on every object, and accumulates the resulting messages
// into a Result.
//
// # Core Concepts
//
//   - Checks: independently contributed validation rules, keyed by the
//     object type they target (see package registry)
//   - Graph: the read-only contract with the external parser, plus the
//     deterministic traversal (see package graph)
//   - Messages: immutable findings ranked by importance (see package message)
//   - Result: the ordered outcome of one validation pass, consumed by the
//     filtering and rendering helpers in package report
//
// # Running an inspection
//
//	root, err := parser.Parse(ctx, "session.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := inspect.Run(ctx, root, registry.Default,
//		inspect.WithThreshold(message.ImportanceBestPracticeViolation),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, m := range res.Messages {
//		fmt.Println(m.Location, m.Text)
//	}
//
// # Failure isolation
//
// A check that returns an error or panics never aborts a run: the driver
// converts the failure into a message at the reserved error importance and
// continues with the next check. InspectAll extends the same guarantee
// across files: a file that cannot be parsed or traversed yields an
// error-level result for that file and the batch carries on.
//
// # Concurrency
//
// A registry is populated at load time and read-only afterwards, so one
// registry instance may serve any number of concurrent runs. Within a single
// run everything is sequential and deterministic: the same graph and
// registry always produce the same message sequence.
package inspect
