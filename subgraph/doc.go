// Package subgraph turns one strongly-connected component of the input
// graph into the single-source, single-sink DAG the dag package detects
// superbubbles over.
//
// What: a Subgraph is a graph.Graph carrying the local-to-global vertex id
// map for one partition. Its non-singleton partitions are cyclic in
// general, so BuildDAG applies the vertex-duplication transform of Sung et
// al. (GraphToDAG): every vertex u gets a primed copy u' and a
// double-primed copy u'', with back edges (found via a three-color DFS)
// routed u' -> v'' instead of u' -> v'. The singleton partition (every
// trivial SCC) is already acyclic, so BuildDirectDAG copies its edges
// across unchanged.
//
// Why: duplication can introduce superbubbles that don't correspond to any
// real structure in the original partition ("unreal" ones); Subgraph also
// keeps the DFS discovery/finish timestamps needed to tell them apart
// (IsAncestor) once detection reports candidates back in duplicated-id
// space.
package subgraph
