package ioedge

import "errors"

// ErrMissingVertexCount indicates the input stream ended before the
// leading vertex-count line could be parsed.
var ErrMissingVertexCount = errors.New("ioedge: missing vertex count")
