// Package dag implements the linear-time superbubble detector of Brankovic
// et al. over a single-source, single-sink directed acyclic graph.
//
// What: a DAG embeds graph.Graph and adds the bookkeeping the detector
// needs on top of raw adjacency — a topological order, a candidate list of
// entrance/exit vertices, and two range-query indices (outParent, outChild).
// Detect walks the candidate list tail-to-front, reporting the innermost
// superbubble ending at each exit candidate and recursing into nested ones.
//
// Why: the candidate list is modelled as an arena of Candidate records
// addressed by integer handle rather than as a pointer-linked list — a
// handle is just an index into a slice, so there is no manual memory
// management and no use-after-free risk, while still giving handle equality
// the same meaning the reference gives pointer equality.
//
// Complexity: O(n log n) per DAG, dominated by RMQ preprocessing; detection
// itself is linear in the number of candidates.
package dag
