package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scidata-tools/inspect"
	"github.com/scidata-tools/inspect/message"
)

func sampleResult() *inspect.Result {
	return &inspect.Result{
		RunID: "run-1",
		File:  "session.yaml",
		Messages: []message.Message{
			{CheckName: "check_description", Importance: message.ImportanceBestPracticeSuggestion,
				Location: "acquisition", Text: "description is missing"},
			{CheckName: "check_missing_unit", Importance: message.ImportanceBestPracticeViolation,
				Location: "acquisition.response", Text: "missing unit"},
			{CheckName: "check_data_orientation", Importance: message.ImportanceCritical,
				Location: "acquisition.response", Text: "wrong orientation"},
		},
	}
}

func TestFilter_InclusiveBoundary(t *testing.T) {
	res := sampleResult()
	got := Filter(res, message.ImportanceBestPracticeViolation)

	require.Len(t, got.Messages, 2)
	for _, m := range got.Messages {
		assert.GreaterOrEqual(t, m.Importance.Rank(), message.ImportanceBestPracticeViolation.Rank())
	}
	assert.Len(t, res.Messages, 3, "input result is not mutated")
	assert.Equal(t, res.RunID, got.RunID)
}

func TestDeduplicate(t *testing.T) {
	dup := message.Message{CheckName: "check_missing_unit", Location: "a.b", Text: "missing unit",
		Importance: message.ImportanceBestPracticeViolation}
	res := &inspect.Result{Messages: []message.Message{dup, dup,
		{CheckName: "check_missing_unit", Location: "a.c", Text: "missing unit",
			Importance: message.ImportanceBestPracticeViolation},
	}}

	got := Deduplicate(res)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "a.b", got.Messages[0].Location)
	assert.Equal(t, "a.c", got.Messages[1].Location)
}

func TestSortMessages(t *testing.T) {
	msgs := []message.Message{
		{CheckName: "b", Importance: message.ImportanceBestPracticeSuggestion, Location: "z"},
		{CheckName: "a", Importance: message.ImportanceCritical, Location: "m", Severity: message.SeverityLow},
		{CheckName: "c", Importance: message.ImportanceCritical, Location: "m", Severity: message.SeverityHigh},
		{CheckName: "d", Importance: message.ImportanceError, Location: "q"},
	}

	got := SortMessages(msgs)
	var names []string
	for _, m := range got {
		names = append(names, m.CheckName)
	}
	assert.Equal(t, []string{"d", "c", "a", "b"}, names)
	assert.Equal(t, "b", msgs[0].CheckName, "input order untouched")
}

func TestGrouping(t *testing.T) {
	res := sampleResult()

	byImp := ByImportance(res)
	assert.Len(t, byImp[message.ImportanceCritical], 1)
	assert.Len(t, byImp[message.ImportanceBestPracticeViolation], 1)

	byCheck := ByCheck(res)
	assert.Len(t, byCheck["check_missing_unit"], 1)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		msgs []message.Message
		want int
	}{
		{"no findings", nil, 0},
		{"suggestions only",
			[]message.Message{{Importance: message.ImportanceBestPracticeSuggestion}}, 0},
		{"violation",
			[]message.Message{{Importance: message.ImportanceBestPracticeViolation}}, 1},
		{"engine error",
			[]message.Message{{Importance: message.ImportanceError}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(&inspect.Result{Messages: tt.msgs}))
		})
	}
}
