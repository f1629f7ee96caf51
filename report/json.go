package report

import (
	"encoding/json"
	"io"

	"github.com/scidata-tools/inspect"
)

// WriteJSON writes results as indented JSON, for machine consumption by
// archive tooling. The shape is the Result/Message JSON encoding: an array
// of runs, each with its run_id, file, and messages.
func WriteJSON(w io.Writer, results ...*inspect.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
