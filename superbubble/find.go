package superbubble

import (
	"github.com/katalvlaran/supbub/dag"
	"github.com/katalvlaran/supbub/graph"
)

// Find enumerates every superbubble in g. It partitions g by strongly
// connected component, builds one DAG per partition — a direct copy for the
// singleton bucket, a duplicated acyclic transform for every non-singleton
// SCC — runs the linear-time detector over each, and filters the results
// back to superbubbles named by g's own vertex ids.
//
// Find never errors: an empty graph, or a graph with no superbubbles,
// simply yields a nil/empty result.
func Find(g *graph.Graph) []Result {
	scc, numSubgraphs := g.FillSCC()
	subgraphs := partition(g, scc, numSubgraphs)

	var results []Result

	sg0 := subgraphs[0]
	dag0 := sg0.BuildDirectDAG()
	result0 := dag.Detect(dag0)
	results = append(results, filterSingletonBucket(sg0, dag0, result0)...)

	for k := 1; k < numSubgraphs; k++ {
		sg := subgraphs[k]
		d := sg.BuildDAG()
		result := dag.Detect(d)
		results = append(results, filterDuplicatedBucket(sg, d, result)...)
	}

	return results
}
