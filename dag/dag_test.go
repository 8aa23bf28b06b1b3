package dag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/supbub/dag"
)

// buildDiamond returns a 4-vertex DAG shaped like the textbook smallest
// superbubble: source(2) fans out to 0 and 1, both of which fan back into
// terminal(3).
func buildDiamond() *dag.DAG {
	d := dag.New(4)
	d.AddEdge(2, 0)
	d.AddEdge(2, 1)
	d.AddEdge(0, 3)
	d.AddEdge(1, 3)

	return d
}

func TestSourceAndTerminalID(t *testing.T) {
	d := dag.New(4)
	assert.Equal(t, 2, d.SourceID())
	assert.Equal(t, 3, d.TerminalID())
}

func TestPrepareForSuperbubblesTopologicalOrder(t *testing.T) {
	d := buildDiamond()
	d.PrepareForSuperbubbles()

	assert.Equal(t, d.SourceID(), d.VertexAtOrder(0))
	assert.Equal(t, d.TerminalID(), d.VertexAtOrder(3))
}

func TestDetectSimpleBubble(t *testing.T) {
	d := buildDiamond()
	result := dag.Detect(d)

	assert.Equal(t, d.TerminalID(), result[d.SourceID()])
	assert.Equal(t, -1, result[0])
	assert.Equal(t, -1, result[1])
}

func TestDetectSeriesBubbles(t *testing.T) {
	// Two bubbles chained in series through a shared midpoint x=2:
	// <source, x> and <x, terminal>.
	d := dag.New(7)
	source, terminal := 5, 6
	a, b, x, c, e := 0, 1, 2, 3, 4

	d.AddEdge(source, a)
	d.AddEdge(source, b)
	d.AddEdge(a, x)
	d.AddEdge(b, x)
	d.AddEdge(x, c)
	d.AddEdge(x, e)
	d.AddEdge(c, terminal)
	d.AddEdge(e, terminal)

	result := dag.Detect(d)

	assert.Equal(t, x, result[source])
	assert.Equal(t, terminal, result[x])
	assert.Equal(t, -1, result[a])
	assert.Equal(t, -1, result[b])
	assert.Equal(t, -1, result[c])
	assert.Equal(t, -1, result[e])
}

func TestDetectLinearChainHasNoBubble(t *testing.T) {
	// source -> 0 -> 1 -> 2 -> terminal: a plain path has no branching, and
	// its single-edge superbubbles are trivial, so nothing is recorded.
	d := dag.New(5)
	source, terminal := 3, 4
	d.AddEdge(source, 0)
	d.AddEdge(0, 1)
	d.AddEdge(1, 2)
	d.AddEdge(2, terminal)

	result := dag.Detect(d)
	assert.Equal(t, -1, result[source])
	assert.Equal(t, -1, result[0])
	assert.Equal(t, -1, result[1])
	assert.Equal(t, -1, result[2])
}
