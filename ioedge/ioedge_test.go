package ioedge_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supbub/ioedge"
	"github.com/katalvlaran/supbub/superbubble"
)

func TestReadParsesVertexCountAndEdges(t *testing.T) {
	in := "4\n0 1\n0 2\n1 3\n2 3\n"
	g, err := ioedge.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 4, g.NumEdges())
	assert.Equal(t, []int{1, 2}, g.Children(0))
}

func TestReadToleratesArbitraryWhitespace(t *testing.T) {
	in := "  3 \t\n 0\t1\n\n1  2\n"
	g, err := ioedge.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 2, g.NumEdges())
}

func TestReadEmptyGraphHasNoEdges(t *testing.T) {
	g, err := ioedge.Read(strings.NewReader("0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
}

func TestReadMissingVertexCountErrors(t *testing.T) {
	_, err := ioedge.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ioedge.ErrMissingVertexCount)
}

func TestReadDanglingEdgeSourceErrors(t *testing.T) {
	_, err := ioedge.Read(strings.NewReader("2\n0"))
	assert.Error(t, err)
}

func TestWriteFormatsReport(t *testing.T) {
	var buf strings.Builder
	results := []superbubble.Result{{Entrance: 0, Exit: 3}, {Entrance: 4, Exit: 6}}

	err := ioedge.Write(&buf, 4, 4, 1500*time.Millisecond, results)
	require.NoError(t, err)

	want := "Vertices: 4\n" +
		"Edges: 4\n" +
		"Elapsed time for processing: 1.5 secs.\n" +
		"Number of superbubbles found: 2.\n" +
		"<0,3>\n" +
		"<4,6>\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteWithNoResultsOmitsLines(t *testing.T) {
	var buf strings.Builder
	err := ioedge.Write(&buf, 2, 1, 0, nil)
	require.NoError(t, err)

	want := "Vertices: 2\n" +
		"Edges: 1\n" +
		"Elapsed time for processing: 0 secs.\n" +
		"Number of superbubbles found: 0.\n"
	assert.Equal(t, want, buf.String())
}
