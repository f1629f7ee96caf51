package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Ancestors(t *testing.T) {
	s := NewSchema()
	require.NoError(t, s.RegisterType("Dataset", "Container"))
	require.NoError(t, s.RegisterType("Series", "Dataset"))
	require.NoError(t, s.RegisterType("ElectricalSeries", "Series"))

	assert.Equal(t, []string{"ElectricalSeries", "Series", "Dataset", "Container"},
		s.Ancestors("ElectricalSeries"))
	assert.Equal(t, []string{"Dataset", "Container"}, s.Ancestors("Dataset"))
	assert.Equal(t, []string{"Unknown"}, s.Ancestors("Unknown"),
		"an undeclared type stands alone")
}

func TestSchema_IsSubtype(t *testing.T) {
	s := NewSchema()
	require.NoError(t, s.RegisterType("Series", "Dataset"))

	assert.True(t, s.IsSubtype("Series", "Dataset"))
	assert.True(t, s.IsSubtype("Series", "Series"))
	assert.False(t, s.IsSubtype("Dataset", "Series"))
	assert.False(t, s.IsSubtype("Series", "Table"))
}

func TestSchema_RegisterType_Errors(t *testing.T) {
	s := NewSchema()
	require.NoError(t, s.RegisterType("Series", "Dataset"))

	assert.Error(t, s.RegisterType("", "Dataset"), "empty name")
	assert.Error(t, s.RegisterType("Series", "Container"), "conflicting redeclaration")
	assert.NoError(t, s.RegisterType("Series", "Dataset"), "identical redeclaration is a no-op")
	assert.Error(t, s.RegisterType("Dataset", "Series"), "ancestry cycle")
}
