// Package superbubble orchestrates the whole detection pipeline: partition
// the input graph by strongly connected component, build one DAG per
// partition (direct copy for the singleton bucket, GraphToDAG duplication
// for every non-singleton SCC), run the linear-time detector over each, and
// filter the results back to superbubbles of the original graph.
//
// Find is the single entry point a caller needs; partition.go and
// filter.go hold the two halves of the pipeline that are specific to this
// package rather than owned by graph, subgraph, or dag.
package superbubble
