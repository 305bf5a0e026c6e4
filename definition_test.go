package chartpath

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinition_LoadFile(t *testing.T) {
	f, err := os.Open("testdata/editor.yaml")
	require.NoError(t, err)
	defer f.Close()

	def, err := LoadDefinition(f)
	require.NoError(t, err)
	assert.Equal(t, "editor", def.Name)

	tree, err := def.Build()
	require.NoError(t, err)

	assert.Equal(t, "editor", tree.TreeName())
	assert.Equal(t, 13, tree.Len())
	assert.Equal(t, []string{"Root", "Crashed"}, names(tree, tree.Roots()))
	assert.Equal(t, KindParallel, tree.Kind(tree.MustLookup("Open")))
	assert.Equal(t, KindInitial, tree.Kind(tree.MustLookup("Start")))
	assert.Equal(t, KindFinal, tree.Kind(tree.MustLookup("Exit")))
	assert.True(t, tree.IsDeepHistory(tree.MustLookup("FormatHistory")))
	assert.True(t, tree.IsRegion(tree.MustLookup("Format")))
	assert.True(t, tree.IsRegion(tree.MustLookup("Mode")))
	assert.False(t, tree.IsRegion(tree.MustLookup("Bold")))

	p := tree.ComputePath(tree.MustLookup("Bold"), tree.MustLookup("Overwrite"))
	assert.Equal(t, "exit [Bold Format] scope Open enter [Mode Overwrite] crosses-region", p.String())
}

func TestDefinition_Parse(t *testing.T) {
	def, err := ParseDefinition([]byte(`
name: small
states:
  - id: S
    states:
      - id: T
      - id: H
        type: history
`))
	require.NoError(t, err)

	tree, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, KindHistory, tree.Kind(tree.MustLookup("H")))
	assert.False(t, tree.IsDeepHistory(tree.MustLookup("H")))
}

func TestDefinition_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"malformed yaml", "states: [", "decode yaml"},
		{"no states", "name: empty\n", "no states"},
		{"unknown type", "states:\n  - id: S\n    type: choice\n", "unknown node kind"},
		{"unknown nested type", "states:\n  - id: S\n    states:\n      - id: T\n        type: fork\n", "unknown node kind"},
		{"top-level history", "states:\n  - id: H\n    type: history\n", "must have a parent"},
		{"duplicate ids", "states:\n  - id: S\n  - id: S\n", "declared more than once"},
		{"children under final", "states:\n  - id: F\n    type: final\n    states:\n      - id: G\n", "cannot have children"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ParseDefinition([]byte(tt.yaml))
			if err == nil {
				_, err = def.Build()
			}
			require.Error(t, err)
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestDefinition_ErrorsAreTyped(t *testing.T) {
	def, err := ParseDefinition([]byte("name: empty\n"))
	require.NoError(t, err)

	_, err = def.Build()
	assert.True(t, IsConfigurationError(err))
	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.Equal(t, ErrCodeInvalidConfiguration, GetErrorCode(err))
}
