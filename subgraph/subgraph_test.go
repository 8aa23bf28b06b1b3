package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supbub/subgraph"
)

func TestAccessors(t *testing.T) {
	sg := subgraph.New(6) // offset = 4
	assert.Equal(t, 4, sg.SourceID())
	assert.Equal(t, 5, sg.TerminalID())
	assert.Equal(t, 4, sg.Offset())

	sg.SetGlobalID(0, 100)
	assert.Equal(t, 100, sg.GlobalID(0))
	assert.Equal(t, -1, sg.GlobalID(1)) // never set
}

func TestDuplicateAndOriginalID(t *testing.T) {
	sg := subgraph.New(6) // offset = 4
	assert.Equal(t, 5, sg.DuplicateID(1))
	assert.Equal(t, 1, sg.OriginalID(5))

	assert.Equal(t, -1, sg.DuplicateID(-1))
	assert.Equal(t, -1, sg.OriginalID(2)) // 2 < offset, not a duplicate id
}

func TestIsDuplicateID(t *testing.T) {
	sg := subgraph.New(6) // offset = 4, real ids [0,4), duplicates [4,8)
	assert.False(t, sg.IsDuplicateID(0))
	assert.False(t, sg.IsDuplicateID(3))
	assert.True(t, sg.IsDuplicateID(4))
	assert.True(t, sg.IsDuplicateID(5))
	assert.False(t, sg.IsDuplicateID(-1))
}

func TestIsAncestorBeforeBuildDAGIsFalse(t *testing.T) {
	sg := subgraph.New(4)
	assert.False(t, sg.IsAncestor(0, 1))
}

func TestBuildDirectDAGCopiesEdges(t *testing.T) {
	sg := subgraph.New(4)
	sg.AddEdge(2, 0) // source -> 0
	sg.AddEdge(0, 1)
	sg.AddEdge(1, 3) // 1 -> terminal

	d := sg.BuildDirectDAG()
	require.Equal(t, 4, d.NumVertices())
	assert.Equal(t, []int{0}, d.Children(2))
	assert.Equal(t, []int{1}, d.Children(0))
	assert.Equal(t, []int{3}, d.Children(1))
	assert.Same(t, d, sg.DAG())
}

func TestBuildDAGDuplicatesCycleViaBackEdge(t *testing.T) {
	// source(2) -> 0 -> 1 -> 0 (cycle), 1 -> terminal(3). offset = 2.
	sg := subgraph.New(4)
	sg.AddEdge(2, 0)
	sg.AddEdge(0, 1)
	sg.AddEdge(1, 0)
	sg.AddEdge(1, 3)

	d := sg.BuildDAG()
	require.Equal(t, 6, d.NumVertices()) // 2*offset + 2
	assert.Equal(t, 4, d.SourceID())
	assert.Equal(t, 5, d.TerminalID())

	// r -> 0'
	assert.Contains(t, d.Children(4), 0)
	// 1'' -> r'
	assert.Contains(t, d.Parents(5), sg.DuplicateID(1))
	// tree edge 0' -> 1' and its duplicate 0'' -> 1''
	assert.Contains(t, d.Children(0), 1)
	assert.Contains(t, d.Children(sg.DuplicateID(0)), sg.DuplicateID(1))
	// back edge 1 -> 0 routed as 1' -> 0''
	assert.Contains(t, d.Children(1), sg.DuplicateID(0))
	assert.NotContains(t, d.Children(1), 0)

	assert.True(t, sg.IsAncestor(2, 1))
	assert.True(t, sg.IsAncestor(0, 1))
	assert.False(t, sg.IsAncestor(1, 0))
}

func TestBuildDAGFallsBackToVertexZeroWithoutSource(t *testing.T) {
	// No edges out of r: DFS root falls back to local vertex 0.
	sg := subgraph.New(4) // real vertices 0,1; source=2,terminal=3
	sg.AddEdge(0, 1)
	sg.AddEdge(1, 3)

	d := sg.BuildDAG()
	// Since r has no out-edges, every vertex with no incoming edge in G'
	// gets wired directly from the new source.
	assert.Contains(t, d.Children(d.SourceID()), 0)
}
