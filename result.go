package inspect

import "github.com/scidata-tools/inspect/message"

// Result is the outcome of one validation pass over one graph: the ordered
// message sequence plus run metadata. Messages appear in traversal order,
// which is deterministic for a given graph and registry.
type Result struct {
	// RunID uniquely identifies this run.
	RunID string `json:"run_id"`

	// File identifies the data file that was validated, if any.
	File string `json:"file,omitempty"`

	// Messages holds every retained finding in traversal order.
	Messages []message.Message `json:"messages"`
}

// Counts returns the number of messages per importance level. Levels with
// no messages are absent from the map.
func (r *Result) Counts() map[message.Importance]int {
	counts := make(map[message.Importance]int)
	for _, m := range r.Messages {
		counts[m.Importance]++
	}
	return counts
}

// HasFindings reports whether the run produced any messages.
func (r *Result) HasFindings() bool {
	return len(r.Messages) > 0
}
