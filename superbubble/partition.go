package superbubble

import (
	"github.com/katalvlaran/supbub/graph"
	"github.com/katalvlaran/supbub/subgraph"
)

// partition splits g into one Subgraph per SCC id in scc (bucket 0 holds
// every singleton vertex), assigning local ids in global-traversal order
// and wiring each Subgraph's own r/r' per the cross-SCC edge rules: a
// same-SCC edge stays local; every cross-SCC out-edge from v collapses
// into a single v -> r'; every cross-SCC in-edge collapses into a single
// r -> v. The singleton bucket additionally wires r/r' directly to any
// vertex with zero in-degree / zero out-degree, since such a vertex has no
// cross-SCC edge to trigger the rule above.
func partition(g *graph.Graph, scc []int, numSubgraphs int) []*subgraph.Subgraph {
	n := g.NumVertices()

	sizes := make([]int, numSubgraphs)
	localID := make([]int, n)
	for v := 0; v < n; v++ {
		k := scc[v]
		localID[v] = sizes[k]
		sizes[k]++
	}

	subgraphs := make([]*subgraph.Subgraph, numSubgraphs)
	for k := 0; k < numSubgraphs; k++ {
		subgraphs[k] = subgraph.New(sizes[k] + 2)
	}

	for v := 0; v < n; v++ {
		k := scc[v]
		sg := subgraphs[k]
		lv := localID[v]
		sg.SetGlobalID(lv, v)

		children := g.Children(v)
		if len(children) > 0 {
			mergedCrossOut := false
			for _, u := range children {
				if scc[u] == k {
					sg.AddEdge(lv, localID[u])
				} else if !mergedCrossOut {
					mergedCrossOut = true
					sg.AddEdge(lv, sg.TerminalID())
				}
			}
		} else if k == 0 {
			sg.AddEdge(lv, sg.TerminalID())
		}

		parents := g.Parents(v)
		hasCrossIn := false
		for _, u := range parents {
			if scc[u] != k {
				hasCrossIn = true

				break
			}
		}
		if hasCrossIn {
			sg.AddEdge(sg.SourceID(), lv)
		} else if len(parents) == 0 && k == 0 {
			sg.AddEdge(sg.SourceID(), lv)
		}
	}

	return subgraphs
}
