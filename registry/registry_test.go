package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scidata-tools/inspect/graph"
	"github.com/scidata-tools/inspect/message"
)

func noopCheck(graph.Node) ([]message.Message, error) { return nil, nil }

func testSchema(t *testing.T) *graph.Schema {
	t.Helper()
	s := graph.NewSchema()
	require.NoError(t, s.RegisterType("Dataset", "Container"))
	require.NoError(t, s.RegisterType("Series", "Dataset"))
	return s
}

func rule(name, target string) Rule {
	return Rule{
		Name:       name,
		Target:     target,
		Importance: message.ImportanceBestPracticeViolation,
		Check:      noopCheck,
	}
}

func TestRegistry_Lookup_AncestorAware(t *testing.T) {
	reg := New(testSchema(t))
	require.NoError(t, reg.Register(rule("on_container", "Container")))
	require.NoError(t, reg.Register(rule("on_series", "Series")))
	require.NoError(t, reg.Register(rule("on_dataset", "Dataset")))
	require.NoError(t, reg.Register(rule("on_table", "Table")))

	names := func(rules []*Rule) []string {
		out := make([]string, len(rules))
		for i, r := range rules {
			out[i] = r.Name
		}
		return out
	}

	// Most specific target first, then up the ancestor chain.
	assert.Equal(t, []string{"on_series", "on_dataset", "on_container"},
		names(reg.Lookup("Series")))
	assert.Equal(t, []string{"on_dataset", "on_container"}, names(reg.Lookup("Dataset")))
	assert.Equal(t, []string{"on_container"}, names(reg.Lookup("Container")))
	// A type outside the schema matches only rules targeting it exactly.
	assert.Equal(t, []string{"on_table"}, names(reg.Lookup("Table")))
	assert.Empty(t, reg.Lookup("Unrelated"))
}

func TestRegistry_Lookup_RegistrationOrderWithinTarget(t *testing.T) {
	reg := New(testSchema(t))
	require.NoError(t, reg.Register(rule("first", "Dataset")))
	require.NoError(t, reg.Register(rule("second", "Dataset")))
	require.NoError(t, reg.Register(rule("third", "Dataset")))

	got := reg.Lookup("Dataset")
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
	assert.Equal(t, "third", got[2].Name)
}

func TestRegistry_Register_DuplicateNameAtomic(t *testing.T) {
	reg := New(testSchema(t))
	require.NoError(t, reg.Register(rule("check_positive", "Dataset")))

	err := reg.Register(rule("check_positive", "Series"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateRule)

	// The failed registration left the table untouched.
	assert.Equal(t, 1, reg.Len())
	assert.Empty(t, reg.Lookup("Series"), "rejected rule must not be reachable via its target")
}

func TestRegistry_Register_Validation(t *testing.T) {
	reg := New(nil)

	tests := []struct {
		name string
		r    Rule
	}{
		{"missing name", Rule{Target: "Dataset", Importance: message.ImportanceCritical, Check: noopCheck}},
		{"missing target", Rule{Name: "x", Importance: message.ImportanceCritical, Check: noopCheck}},
		{"missing check", Rule{Name: "x", Target: "Dataset", Importance: message.ImportanceCritical}},
		{"invalid importance", Rule{Name: "x", Target: "Dataset", Importance: "nope", Check: noopCheck}},
		{"reserved importance", Rule{Name: "x", Target: "Dataset", Importance: message.ImportanceError, Check: noopCheck}},
		{"bad predicate", Rule{Name: "x", Target: "Dataset", Importance: message.ImportanceCritical,
			Check: noopCheck, Predicate: "this is not CEL ((("}},
		{"non-bool predicate", Rule{Name: "x", Target: "Dataset", Importance: message.ImportanceCritical,
			Check: noopCheck, Predicate: `"a" + "b"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, reg.Register(tt.r))
			assert.Equal(t, 0, reg.Len())
		})
	}
}

func TestRule_Applies_CELPredicate(t *testing.T) {
	reg := New(testSchema(t))
	r := rule("needs_timestamps", "Series")
	r.Predicate = `"timestamps" in object && type == "Series"`
	require.NoError(t, reg.Register(r))

	registered, ok := reg.Get("needs_timestamps")
	require.True(t, ok)

	with := graph.NewObject("Series", "s").SetAttr("timestamps", []float64{0, 1})
	without := graph.NewObject("Series", "s").SetAttr("unit", "volts")

	got, err := registered.Applies(with)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = registered.Applies(without)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestRule_Applies_GoPredicate(t *testing.T) {
	r := rule("named_only", "Dataset")
	r.When = func(n graph.Node) bool { return n.Name() != "" }

	got, err := r.Applies(graph.NewObject("Dataset", "d"))
	require.NoError(t, err)
	assert.True(t, got)

	got, err = r.Applies(graph.NewObject("Dataset", ""))
	require.NoError(t, err)
	assert.False(t, got)
}

func TestRegistry_Rules_RegistrationOrder(t *testing.T) {
	reg := New(nil)
	require.NoError(t, reg.Register(rule("b", "T")))
	require.NoError(t, reg.Register(rule("a", "T")))

	all := reg.Rules()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Name)
	assert.Equal(t, "a", all[1].Name)
}
