// Command-free module root: supbub is a library plus a small CLI for
// finding superbubbles — single-entrance, single-exit regions — in a
// directed graph, the structure genome assemblers use to spot simple
// variation bubbles in an assembly graph.
//
// The pipeline lives in five packages, each a stage of the same
// algorithm (Sung et al.'s SCC-partition-and-duplicate approach, run
// over Brankovic et al.'s linear-time detector):
//
//	graph      — the base directed multigraph and its Tarjan SCC pass.
//	subgraph   — one SCC's induced subgraph, and its acyclic double-cover.
//	rmq        — the O(1) range-min/range-max index the detector queries.
//	dag        — candidate-list construction and the detector itself.
//	superbubble — orchestrates the above; Find is the library's entry point.
//
// ioedge and cmd/supbub are the text-format reader/writer and the CLI
// built on top of superbubble.Find.
//
//	go get github.com/katalvlaran/supbub
package supbub
