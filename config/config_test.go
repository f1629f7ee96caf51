package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scidata-tools/inspect/graph"
	"github.com/scidata-tools/inspect/message"
	"github.com/scidata-tools/inspect/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New(nil)
	for _, name := range []string{"check_missing_unit", "check_description", "check_resolution"} {
		require.NoError(t, reg.Register(registry.Rule{
			Name:       name,
			Target:     "Dataset",
			Importance: message.ImportanceBestPracticeSuggestion,
			Check:      func(graph.Node) ([]message.Message, error) { return nil, nil },
		}))
	}
	return reg
}

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
critical:
  - check_missing_unit
skip:
  - check_description
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"check_missing_unit"}, cfg["critical"])
	assert.Equal(t, []string{"check_description"}, cfg["skip"])
}

func TestApply(t *testing.T) {
	cfg := Config{
		"critical": {"check_missing_unit"},
		"skip":     {"check_description"},
	}
	derived, err := cfg.Apply(testRegistry(t))
	require.NoError(t, err)

	promoted, ok := derived.Get("check_missing_unit")
	require.True(t, ok)
	assert.Equal(t, message.ImportanceCritical, promoted.Importance)

	_, ok = derived.Get("check_description")
	assert.False(t, ok, "skipped check is absent from the derived registry")

	untouched, ok := derived.Get("check_resolution")
	require.True(t, ok)
	assert.Equal(t, message.ImportanceBestPracticeSuggestion, untouched.Importance)
}

func TestApply_SourceRegistryUnchanged(t *testing.T) {
	reg := testRegistry(t)
	cfg := Config{"critical": {"check_missing_unit"}}
	_, err := cfg.Apply(reg)
	require.NoError(t, err)

	original, ok := reg.Get("check_missing_unit")
	require.True(t, ok)
	assert.Equal(t, message.ImportanceBestPracticeSuggestion, original.Importance)
}

func TestApply_CaseInsensitiveKeys(t *testing.T) {
	cfg := Config{"CRITICAL": {"check_missing_unit"}}
	derived, err := cfg.Apply(testRegistry(t))
	require.NoError(t, err)

	promoted, ok := derived.Get("check_missing_unit")
	require.True(t, ok)
	assert.Equal(t, message.ImportanceCritical, promoted.Importance)
}

func TestValidate_Errors(t *testing.T) {
	reg := testRegistry(t)
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown check name", Config{"critical": {"no_such_check"}}},
		{"unknown key", Config{"urgent": {"check_missing_unit"}}},
		{"reserved level", Config{"error": {"check_missing_unit"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate(reg))
			_, err := tt.cfg.Apply(reg)
			assert.Error(t, err)
		})
	}
}
