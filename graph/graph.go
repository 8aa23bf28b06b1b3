package graph

import "log"

// Graph is a fixed-size directed multigraph over vertex ids [0, NumVertices).
//
// children[v] and parents[v] are insertion-ordered; parallel edges and
// self-loops are kept exactly as inserted. inDegree[v]/outDegree[v] always
// equal the number of times v occurs as a target/source across the
// adjacency lists of the whole graph.
type Graph struct {
	n int
	m int

	children [][]int
	parents  [][]int

	inDegree  []int
	outDegree []int
}

// NewGraph allocates an empty Graph over n vertices (ids 0..n-1).
//
// Complexity: O(n).
func NewGraph(n int) *Graph {
	g := &Graph{
		n:         n,
		children:  make([][]int, n),
		parents:   make([][]int, n),
		inDegree:  make([]int, n),
		outDegree: make([]int, n),
	}

	return g
}

// NumVertices returns the number of vertices this Graph was constructed with.
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns the total number of edges added via AddEdge.
func (g *Graph) NumEdges() int { return g.m }

// validVertex reports whether v lies in the valid range [0, n).
//
// The reference implementation used a strict "u > n" check, which admits
// u == n as valid; this is the corrected [0, n) range per spec.
func (g *Graph) validVertex(v int) bool {
	return v >= 0 && v < g.n
}

// AddEdge appends a directed edge u->v, bumping both degree counters and
// the child/parent adjacency lists. Parallel edges and self-loops are both
// permitted and retained.
//
// An out-of-range u or v logs a diagnostic and leaves the graph untouched;
// AddEdge never panics and never returns an error.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) {
	if !g.validVertex(u) || !g.validVertex(v) {
		log.Printf("graph: invalid edge (%d, %d) for graph of size %d", u, v, g.n)
		return
	}

	g.children[u] = append(g.children[u], v)
	g.parents[v] = append(g.parents[v], u)
	g.outDegree[u]++
	g.inDegree[v]++
	g.m++
}

// Children returns the (insertion-ordered, possibly-duplicated) list of v's
// out-neighbors. An out-of-range v logs and returns nil.
func (g *Graph) Children(v int) []int {
	if !g.validVertex(v) {
		log.Printf("graph: invalid vertex %d for Children", v)
		return nil
	}

	return g.children[v]
}

// Parents returns the (insertion-ordered, possibly-duplicated) list of v's
// in-neighbors. An out-of-range v logs and returns nil.
func (g *Graph) Parents(v int) []int {
	if !g.validVertex(v) {
		log.Printf("graph: invalid vertex %d for Parents", v)
		return nil
	}

	return g.parents[v]
}

// InDegree returns the in-degree of v, or -1 and a log line if v is
// out-of-range.
func (g *Graph) InDegree(v int) int {
	if !g.validVertex(v) {
		log.Printf("graph: invalid vertex %d for InDegree", v)
		return -1
	}

	return g.inDegree[v]
}

// OutDegree returns the out-degree of v, or -1 and a log line if v is
// out-of-range.
func (g *Graph) OutDegree(v int) int {
	if !g.validVertex(v) {
		log.Printf("graph: invalid vertex %d for OutDegree", v)
		return -1
	}

	return g.outDegree[v]
}
