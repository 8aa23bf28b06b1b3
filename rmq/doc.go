// Package rmq answers range-minimum and range-maximum queries over a fixed
// integer array in O(1) after an O(n log n) sparse-table preprocessing
// pass.
//
// It stands in for the succinct RMQ structures the original superbubble
// reference builds on (sdsl::rmq_succinct_sct<>), which have no equivalent
// in the retrieved Go corpus; a sparse table is the standard O(1)-query
// alternative and is simpler to reason about at the sizes this package is
// ever used at (one array per DAG).
package rmq
