package subgraph

import "github.com/katalvlaran/supbub/dag"

// vertex colors for the three-color DFS used to classify edges.
const (
	white = iota
	gray
	black
)

// BuildDirectDAG copies this subgraph's edges into a DAG of the same size,
// unchanged. Only valid for the singleton bucket (SCC id 0): every trivial
// SCC subgraph is already acyclic, so no duplication is needed.
func (s *Subgraph) BuildDirectDAG() *dag.DAG {
	n := s.NumVertices()
	d := dag.New(n)

	for v := 0; v < n; v++ {
		for _, c := range s.Children(v) {
			d.AddEdge(v, c)
		}
	}

	s.d = d

	return d
}

// BuildDAG runs the GraphToDAG duplication transform of Sung et al.,
// producing a 2*Offset()+2 vertex DAG with one source and one sink. A
// three-color DFS classifies each edge (u, v): tree, forward, and cross
// edges are copied as both (u', v') and (u'', v''); back edges are routed
// as (u', v'') only, since v' -> ... -> u' -> v' would otherwise still be a
// cycle in the duplicated graph.
//
// The DFS root is the subgraph's own source r, unless r has no out-edges
// (this subgraph was never reached via a cross-SCC in-edge), in which case
// local vertex 0 is used.
func (s *Subgraph) BuildDAG() *dag.DAG {
	d := dag.New(2*s.offset + 2)
	s.d = d
	s.discovery = make([]int, s.NumVertices())
	s.finish = make([]int, s.NumVertices())

	newSource := d.SourceID()
	thisSource := s.SourceID()
	newTerminal := d.TerminalID()
	thisTerminal := s.TerminalID()

	// {(r, v') | (r, v) in E(G)}
	for _, v := range s.Children(thisSource) {
		if v != thisTerminal {
			d.AddEdge(newSource, v)
		}
	}

	// {(v'', r') | (v, r') in E(G)}
	for _, v := range s.Parents(thisTerminal) {
		if v != thisSource {
			d.AddEdge(s.DuplicateID(v), newTerminal)
		}
	}

	root := thisSource
	if s.OutDegree(thisSource) == 0 {
		root = 0
	}
	s.dfsVisit(root, d, thisSource, thisTerminal)

	// If G had no r (resp. no r'), every vertex left without an incoming
	// (resp. outgoing) edge in G' is wired directly to the new source
	// (resp. sink).
	lastDAGID := d.NumVertices() - 2
	if s.OutDegree(thisSource) == 0 {
		for u := 0; u < lastDAGID; u++ {
			if d.InDegree(u) == 0 {
				d.AddEdge(newSource, u)
			}
		}
	}
	if s.InDegree(thisTerminal) == 0 {
		for u := 0; u < lastDAGID; u++ {
			if d.OutDegree(u) == 0 {
				d.AddEdge(u, newTerminal)
			}
		}
	}

	return d
}

// dfsVisit walks the subgraph from root with an explicit stack (avoiding
// native recursion depth on large components), classifying every edge by
// the color of its head at the time it's examined and filling discovery /
// finish timestamps as it goes.
func (s *Subgraph) dfsVisit(root int, d *dag.DAG, thisSource, thisTerminal int) {
	n := s.NumVertices()
	color := make([]int, n)
	tick := 0

	type frame struct {
		v        int
		childIdx int
	}

	mark := func(v int) {
		color[v] = gray
		tick++
		s.discovery[v] = tick
	}

	stack := []frame{{v: root}}
	mark(root)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := s.Children(top.v)
		if top.childIdx < len(children) {
			child := children[top.childIdx]
			top.childIdx++

			// Edges touching r or r' are never duplicated; they're
			// already handled by the two loops above BuildDAG.
			skip := child == thisTerminal || top.v == thisTerminal ||
				child == thisSource || top.v == thisSource

			switch color[child] {
			case white:
				if !skip {
					d.AddEdge(top.v, child)
					d.AddEdge(s.DuplicateID(top.v), s.DuplicateID(child))
				}
				mark(child)
				stack = append(stack, frame{v: child})
			case gray: // back edge
				if !skip {
					d.AddEdge(top.v, s.DuplicateID(child))
				}
			default: // black: forward or cross edge
				if !skip {
					d.AddEdge(top.v, child)
					d.AddEdge(s.DuplicateID(top.v), s.DuplicateID(child))
				}
			}

			continue
		}

		color[top.v] = black
		tick++
		s.finish[top.v] = tick
		stack = stack[:len(stack)-1]
	}
}
