package dag

import (
	"log"

	"github.com/katalvlaran/supbub/graph"
	"github.com/katalvlaran/supbub/rmq"
)

// DAG is a single-source, single-sink directed acyclic graph prepared for
// superbubble detection. It embeds graph.Graph directly, so every DAG is
// also a graph.Graph: vertex ids, degrees, and adjacency are inherited
// unchanged, and DAG only adds the detector's own bookkeeping.
type DAG struct {
	*graph.Graph

	candidates *CandidateList

	ord    []int // ord[v] = topological order of v
	invOrd []int // invOrd[order] = v

	outParent []int
	outChild  []int

	prevEntrance []int // per-vertex handle of its nearest preceding entrance

	rmqOutParent *rmq.Table
	rmqOutChild  *rmq.Table
}

// New returns a DAG over n vertices with no edges. Edges are added via the
// embedded Graph's AddEdge before PrepareForSuperbubbles is called.
func New(n int) *DAG {
	return &DAG{
		Graph:      graph.NewGraph(n),
		candidates: NewCandidateList(),
	}
}

// SourceID returns the local id of the synthetic source r: the second-last
// vertex.
func (d *DAG) SourceID() int { return d.NumVertices() - 2 }

// TerminalID returns the local id of the synthetic sink r': the last
// vertex.
func (d *DAG) TerminalID() int { return d.NumVertices() - 1 }

// PrepareForSuperbubbles builds the topological order, candidate list, and
// RMQ indices this DAG's Detect call needs. It assumes the DAG has exactly
// one source and one sink, reachable from / reaching every other vertex.
func (d *DAG) PrepareForSuperbubbles() {
	d.fillTopologicalOrder()

	d.ord = make([]int, d.NumVertices())
	for order, v := range d.invOrd {
		d.ord[v] = order
	}

	d.prepareCandidatesAndPrevEntrance()
	d.prepareOutParentOutChildRMQ()
}

// PreviousEntrance returns the handle of the nearest entrance candidate at
// or before v in topological order, or None if v is out of range.
func (d *DAG) PreviousEntrance(v int) int {
	if v < 0 || v >= d.NumVertices() {
		log.Printf("dag: invalid vertex %d for previous entrance", v)

		return None
	}

	return d.prevEntrance[v]
}

// VertexAtOrder returns the vertex holding the given topological order, or
// -1 if order is out of range.
func (d *DAG) VertexAtOrder(order int) int {
	if order < 0 || order >= d.NumVertices() {
		log.Printf("dag: invalid topological order %d", order)

		return -1
	}

	return d.invOrd[order]
}

// RangeMaxOutChild returns the furthest (in topological order) child
// reachable from any vertex whose order lies in [start, end]. Bounds may be
// given in either order.
func (d *DAG) RangeMaxOutChild(start, end int) int {
	return d.outChild[d.rmqOutChild.Query(start, end)]
}

// RangeMinOutParent returns the furthest (in topological order) parent of
// any vertex whose order lies in [start, end]. Bounds may be given in
// either order.
func (d *DAG) RangeMinOutParent(start, end int) int {
	return d.outParent[d.rmqOutParent.Query(start, end)]
}

// Candidates exposes the prepared candidate list for the detector.
func (d *DAG) Candidates() *CandidateList { return d.candidates }

// fillTopologicalOrder performs an iterative post-order DFS from SourceID
// and reverses it into invOrd, so invOrd[0] is the source. Iterative to
// avoid native recursion depth on large DAGs.
//
// A well-formed DAG has every vertex reachable from the source, but an
// empty partition (no members, isolated r/r') is a legitimate input with
// nothing reachable at all; any vertex the DFS doesn't reach is appended
// afterwards in id order, so invOrd always ends up a valid permutation
// rather than silently colliding on a repeated index.
func (d *DAG) fillTopologicalOrder() {
	n := d.NumVertices()
	d.invOrd = make([]int, n)

	if n == 0 {
		return
	}

	visited := make([]bool, n)

	type frame struct {
		v        int
		childIdx int
	}

	order := make([]int, 0, n)
	root := d.SourceID()
	stack := []frame{{v: root}}
	visited[root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := d.Children(top.v)
		if top.childIdx < len(children) {
			child := children[top.childIdx]
			top.childIdx++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{v: child})
			}

			continue
		}

		order = append(order, top.v)
		stack = stack[:len(stack)-1]
	}

	idx := 0
	for i := len(order) - 1; i >= 0; i-- {
		d.invOrd[idx] = order[i]
		idx++
	}
	for v := 0; v < n; v++ {
		if !visited[v] {
			d.invOrd[idx] = v
			idx++
		}
	}
}

// prepareCandidatesAndPrevEntrance builds the candidate list in strict
// topological order: each vertex may contribute at most one exit candidate
// (if some parent has out-degree 1) and at most one entrance candidate (if
// some child has in-degree 1). prevEntrance[v] records the most recent
// entrance candidate seen at or before v.
func (d *DAG) prepareCandidatesAndPrevEntrance() {
	n := d.NumVertices()
	d.candidates = NewCandidateList()
	d.prevEntrance = make([]int, n)

	prevEnt := None
	for _, v := range d.invOrd {
		exitDone := false
		for _, p := range d.Parents(v) {
			if exitDone {
				break
			}
			if d.OutDegree(p) == 1 {
				d.candidates.Insert(v, false, prevEnt)
				exitDone = true
			}
		}

		entranceDone := false
		for _, c := range d.Children(v) {
			if entranceDone {
				break
			}
			if d.InDegree(c) == 1 {
				prevEnt = d.candidates.Insert(v, true, None)
				entranceDone = true
			}
		}

		d.prevEntrance[v] = prevEnt
	}
}

// prepareOutParentOutChildRMQ computes, per vertex (indexed by topological
// order), the furthest parent and furthest child in topological order, then
// builds the RMQ indices validate uses.
func (d *DAG) prepareOutParentOutChildRMQ() {
	n := d.NumVertices()
	d.outParent = make([]int, n)
	d.outChild = make([]int, n)

	for v := 0; v < n; v++ {
		minOrd := n
		for _, p := range d.Parents(v) {
			if d.ord[p] < minOrd {
				minOrd = d.ord[p]
			}
		}
		d.outParent[d.ord[v]] = minOrd

		maxOrd := -1
		for _, c := range d.Children(v) {
			if d.ord[c] > maxOrd {
				maxOrd = d.ord[c]
			}
		}
		d.outChild[d.ord[v]] = maxOrd
	}

	if n == 0 {
		return
	}

	d.rmqOutParent = rmq.NewMin(d.outParent)
	d.rmqOutChild = rmq.NewMax(d.outChild)
}
