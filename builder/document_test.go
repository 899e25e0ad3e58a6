// SPDX-License-Identifier: MIT

package builder_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ugraph/builder"
)

const scenarioYAML = `
start: 0
nodes:
  - id: 0
    value: {a: 1, b: 2}
  - id: 1
    value: {a: 3, b: 4}
  - id: 2
    value: {a: 5, b: 6}
  - id: 3
    value: {a: 7, b: 8}
edges:
  - [0, 2]
  - [0, 3]
  - [1, 2]
  - [2, 3]
`

// TestDocument_DecodeAndBuild walks the reference scenario loaded from YAML.
func TestDocument_DecodeAndBuild(t *testing.T) {
	doc, err := builder.DecodeDocument(strings.NewReader(scenarioYAML))
	require.NoError(t, err)

	id, ok := doc.StartID()
	require.True(t, ok)
	assert.Equal(t, 0, id)

	g, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, nodeIDs(g))

	start, ok := g.Lookup(id)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, start.Value())

	var order []int
	for _, n := range g.BFS(start, quiet) {
		order = append(order, n.ID())
	}
	assert.Equal(t, []int{0, 2, 3, 1}, order)
}

// TestDocument_Errors asserts decode and validation failures.
func TestDocument_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"duplicate id", "nodes: [{id: 1}, {id: 1}]", builder.ErrDuplicateID},
		{"unknown endpoint", "nodes: [{id: 1}]\nedges: [[1, 2]]", builder.ErrUnknownNode},
		{"unknown start", "start: 9\nnodes: [{id: 1}]", builder.ErrUnknownNode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := builder.DecodeDocument(strings.NewReader(tc.input))
			require.NoError(t, err)
			g, err := doc.Build()
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}

	_, err := builder.DecodeDocument(strings.NewReader(""))
	assert.ErrorIs(t, err, builder.ErrEmptyDocument)

	_, err = builder.DecodeDocument(strings.NewReader("nodes: []\nweights: [1]"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = builder.DecodeDocument(strings.NewReader("nodes: [{id: 0}, {id: 1}]\nedges: [[0, 1, 2]]"))
	assert.Error(t, err, "edges must have exactly two endpoints")
}

// TestDocument_StartDefaults covers the implicit start.
func TestDocument_StartDefaults(t *testing.T) {
	doc := &builder.Document{Nodes: []builder.NodeSpec{{ID: 4}, {ID: 2}}}
	id, ok := doc.StartID()
	assert.True(t, ok)
	assert.Equal(t, 4, id)

	_, ok = (&builder.Document{}).StartID()
	assert.False(t, ok)
}

// TestDocument_EncodeRoundTrip encodes a generated topology and decodes it back.
func TestDocument_EncodeRoundTrip(t *testing.T) {
	topo := builder.NewTopology()
	require.NoError(t, builder.Apply(topo, nil, builder.Path(3)))
	doc := builder.FromTopology(topo, func(id int) any { return id * id })

	var buf bytes.Buffer
	require.NoError(t, doc.Encode(&buf))
	assert.Equal(t, `nodes:
  - id: 0
    value: 0
  - id: 1
    value: 1
  - id: 2
    value: 4
edges:
  - [0, 1]
  - [1, 2]
`, buf.String())

	back, err := builder.DecodeDocument(&buf)
	require.NoError(t, err)
	g, err := back.Build()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, nodeIDs(g))
	assert.Equal(t, []int{0, 2}, neighborIDs(t, g, 1))
}
