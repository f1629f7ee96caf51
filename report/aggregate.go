package report

import (
	"sort"

	"github.com/scidata-tools/inspect"
	"github.com/scidata-tools/inspect/message"
)

// Filter returns a copy of res keeping only messages at or above threshold.
// The boundary is inclusive: a message exactly at the threshold stays.
func Filter(res *inspect.Result, threshold message.Importance) *inspect.Result {
	out := &inspect.Result{RunID: res.RunID, File: res.File}
	for _, m := range res.Messages {
		if m.Importance.Rank() >= threshold.Rank() {
			out.Messages = append(out.Messages, m)
		}
	}
	return out
}

// Deduplicate returns a copy of res with exact duplicate messages (same
// check, same location, same text) collapsed to their first occurrence.
// Duplicates can arise when a check is legitimately applicable to an object
// through more than one subtype path.
func Deduplicate(res *inspect.Result) *inspect.Result {
	out := &inspect.Result{RunID: res.RunID, File: res.File}
	seen := make(map[string]struct{}, len(res.Messages))
	for _, m := range res.Messages {
		key := m.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out.Messages = append(out.Messages, m)
	}
	return out
}

// SortMessages returns the messages ordered for presentation: importance
// descending, then severity descending, then file, location, and check name
// ascending. The input is not modified.
func SortMessages(msgs []message.Message) []message.Message {
	out := make([]message.Message, len(msgs))
	copy(out, msgs)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := message.CompareImportance(a.Importance, b.Importance); c != 0 {
			return c > 0
		}
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Location != b.Location {
			return a.Location < b.Location
		}
		return a.CheckName < b.CheckName
	})
	return out
}

// ByImportance groups the result's messages by importance level.
func ByImportance(res *inspect.Result) map[message.Importance][]message.Message {
	out := make(map[message.Importance][]message.Message)
	for _, m := range res.Messages {
		out[m.Importance] = append(out[m.Importance], m)
	}
	return out
}

// ByCheck groups the result's messages by originating check name.
func ByCheck(res *inspect.Result) map[string][]message.Message {
	out := make(map[string][]message.Message)
	for _, m := range res.Messages {
		out[m.CheckName] = append(out[m.CheckName], m)
	}
	return out
}

// ExitCode maps results to a process exit code: non-zero if any message sits
// at or above the best-practice-violation level (including the reserved
// error and format-validation levels), zero if only suggestions or nothing
// was found.
func ExitCode(results ...*inspect.Result) int {
	for _, res := range results {
		for _, m := range res.Messages {
			if m.Importance.Rank() >= message.ImportanceBestPracticeViolation.Rank() {
				return 1
			}
		}
	}
	return 0
}
