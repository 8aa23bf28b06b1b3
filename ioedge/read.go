package ioedge

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/supbub/graph"
)

// Read parses the vertex-count-then-edge-list format: the first token is
// the number of vertices N, followed by any number of whitespace-separated
// "u v" pairs, one directed edge each. Newlines are not significant; any
// run of whitespace separates tokens.
//
// Complexity: O(N + M) in the size of the input.
func Read(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		return nil, ErrMissingVertexCount
	}

	var n int
	if _, err := fmt.Sscanf(sc.Text(), "%d", &n); err != nil {
		return nil, fmt.Errorf("ioedge: parsing vertex count %q: %w", sc.Text(), err)
	}

	g := graph.NewGraph(n)

	for {
		if !sc.Scan() {
			break
		}
		uTok := sc.Text()

		var u, v int
		if _, err := fmt.Sscanf(uTok, "%d", &u); err != nil {
			return nil, fmt.Errorf("ioedge: parsing edge source %q: %w", uTok, err)
		}

		if !sc.Scan() {
			return nil, fmt.Errorf("ioedge: edge %q has no matching target vertex", uTok)
		}
		vTok := sc.Text()
		if _, err := fmt.Sscanf(vTok, "%d", &v); err != nil {
			return nil, fmt.Errorf("ioedge: parsing edge target %q: %w", vTok, err)
		}

		g.AddEdge(u, v)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioedge: reading input: %w", err)
	}

	return g, nil
}
