// Package graph defines the base directed multigraph used throughout
// supbub: a fixed-size, integer-keyed vertex set with insertion-ordered
// adjacency and reverse-adjacency lists, plus an iterative Tarjan SCC pass.
//
// What:
//
//   - Graph: directed multigraph over vertex ids [0, n). Parallel edges and
//     self-loops are retained verbatim (no dedup, no normalization).
//   - FillSCC: partitions the vertex set into strongly connected components,
//     using Tarjan's algorithm with an explicit stack (no recursion).
//
// Why:
//
//   - Graph is the common base embedded by both subgraph.Subgraph and
//     dag.DAG: all three share the same adjacency representation and the
//     same out-of-range argument-error policy.
//   - SCCs are the entry point of superbubble detection: every non-singleton
//     SCC becomes its own working subgraph, and every singleton vertex is
//     folded into one shared bucket (id 0).
//
// Complexity:
//
//	AddEdge:  O(1) amortized.
//	FillSCC:  O(V+E) time, O(V) extra memory.
//
// Errors:
//
//   - Out-of-range vertex ids passed to AddEdge, InDegree, OutDegree,
//     Children, or Parents are logged via the standard log package and
//     answered with a sentinel (-1, nil, or a silent no-op) rather than a
//     panic or an error return — supbub never aborts on malformed-but-in-
//     range-size graphs.
package graph
