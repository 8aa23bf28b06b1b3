package subgraph

import (
	"log"

	"github.com/katalvlaran/supbub/dag"
	"github.com/katalvlaran/supbub/graph"
)

// Subgraph is one partition of the input graph: a graph.Graph over local
// vertex ids, plus the map back to the global ids the caller cares about.
// Every Subgraph reserves its last two local ids for a synthetic source r
// (NumVertices()-2) and sink r' (NumVertices()-1).
type Subgraph struct {
	*graph.Graph

	globalID []int
	offset   int

	d *dag.DAG

	discovery []int
	finish    []int
}

// New returns a Subgraph over n local vertices (including the reserved r
// and r'), with every global id initialized to -1 until SetGlobalID is
// called.
func New(n int) *Subgraph {
	globalID := make([]int, n)
	for i := range globalID {
		globalID[i] = -1
	}

	return &Subgraph{
		Graph:    graph.NewGraph(n),
		globalID: globalID,
		offset:   n - 2,
	}
}

// SourceID returns the local id of r: the second-last vertex.
func (s *Subgraph) SourceID() int { return s.NumVertices() - 2 }

// TerminalID returns the local id of r': the last vertex.
func (s *Subgraph) TerminalID() int { return s.NumVertices() - 1 }

// Offset is the number of real vertices in this subgraph (everything but r
// and r'). In the duplicated DAG, local ids [0, Offset) are primed vertices
// and [Offset, 2*Offset) are their double-primed duplicates.
func (s *Subgraph) Offset() int { return s.offset }

// GlobalID returns the global vertex id a local id maps back to, or -1 if v
// is out of range.
func (s *Subgraph) GlobalID(v int) int {
	if v < 0 || v >= s.NumVertices() {
		log.Printf("subgraph: invalid local id %d", v)

		return -1
	}

	return s.globalID[v]
}

// SetGlobalID records the global id a local id maps back to.
func (s *Subgraph) SetGlobalID(localID, globalID int) {
	if localID < 0 || localID >= s.NumVertices() {
		log.Printf("subgraph: invalid local id %d", localID)

		return
	}

	s.globalID[localID] = globalID
}

// DuplicateID returns the double-primed id of a primed local id v.
func (s *Subgraph) DuplicateID(v int) int {
	if v < 0 || v >= s.NumVertices() {
		log.Printf("subgraph: invalid local id %d", v)

		return -1
	}

	return v + s.offset
}

// OriginalID returns the primed id a double-primed id v was duplicated
// from, or -1 if v isn't a valid duplicate id.
func (s *Subgraph) OriginalID(v int) int {
	if v < s.offset || v >= 2*s.offset {
		log.Printf("subgraph: invalid duplicate id %d", v)

		return -1
	}

	return v - s.offset
}

// IsDuplicateID reports whether a local id in the duplicated DAG is a
// double-primed vertex (true) or a primed one (false).
func (s *Subgraph) IsDuplicateID(v int) bool {
	if v < 0 || v >= 2*s.offset {
		log.Printf("subgraph: invalid duplicated-DAG id %d", v)

		return false
	}

	return v >= s.offset
}

// IsAncestor reports whether anc is an ancestor of des in the DFS tree
// BuildDAG constructed. BuildDAG must have been called first; otherwise
// IsAncestor always reports false.
func (s *Subgraph) IsAncestor(anc, des int) bool {
	if anc < 0 || anc >= s.NumVertices() || des < 0 || des >= s.NumVertices() {
		log.Printf("subgraph: invalid ancestor/descendant id %d/%d", anc, des)

		return false
	}
	if s.d == nil {
		log.Printf("subgraph: BuildDAG has not been called yet")

		return false
	}

	return s.discovery[des] > s.discovery[anc] && s.finish[des] < s.finish[anc]
}

// DAG returns the DAG built by the most recent BuildDAG or BuildDirectDAG
// call, or nil if neither has run yet.
func (s *Subgraph) DAG() *dag.DAG { return s.d }
