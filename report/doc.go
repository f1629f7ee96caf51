// Package report turns run results into something a human or a pipeline can
// consume: severity filtering, deduplication, grouping, a formatted text
// report, JSON export, and the exit-code decision for CLI use.
//
// Every transform here is read-side: results and messages are copied, never
// mutated.
package report
