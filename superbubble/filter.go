package superbubble

import (
	"github.com/katalvlaran/supbub/dag"
	"github.com/katalvlaran/supbub/subgraph"
)

// filterSingletonBucket accepts every detected (s, t) with t reported and
// not the dummy sink: the singleton bucket's DAG is a direct, unduplicated
// copy of its subgraph, so nothing further needs validating.
func filterSingletonBucket(sg *subgraph.Subgraph, d *dag.DAG, result []int) []Result {
	var out []Result

	dummyTerminal := d.TerminalID()
	lastPossibleS := d.NumVertices() - 2

	for s := 0; s < lastPossibleS; s++ {
		t := result[s]
		if t == -1 || t == dummyTerminal {
			continue
		}

		out = append(out, Result{Entrance: sg.GlobalID(s), Exit: sg.GlobalID(t)})
	}

	return out
}

// filterDuplicatedBucket accepts a detected (s, t) on a duplicated DAG only
// when it corresponds to a real superbubble of the original subgraph: s
// ranges only over primed vertices (a result at a double-primed entrance is
// only read by the symmetric check below). A double-primed exit is accepted iff its original
// vertex is a genuine DFS ancestor of s; a primed exit is accepted iff the
// symmetric bubble on the double-primed copies was also detected.
func filterDuplicatedBucket(sg *subgraph.Subgraph, d *dag.DAG, result []int) []Result {
	var out []Result

	offset := sg.Offset()
	dummyTerminal := d.TerminalID()

	for s := 0; s < offset; s++ {
		t := result[s]
		if t == -1 || t == dummyTerminal {
			continue
		}

		if sg.IsDuplicateID(t) {
			realT := sg.OriginalID(t)
			if sg.IsAncestor(realT, s) {
				out = append(out, Result{Entrance: sg.GlobalID(s), Exit: sg.GlobalID(realT)})
			}

			continue
		}

		s2 := sg.DuplicateID(s)
		t2 := sg.DuplicateID(t)
		if result[s2] == t2 {
			out = append(out, Result{Entrance: sg.GlobalID(s), Exit: sg.GlobalID(t)})
		}
	}

	return out
}
