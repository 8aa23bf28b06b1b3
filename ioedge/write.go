package ioedge

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/supbub/superbubble"
)

// Write renders a detection run's report in the reference tool's exact
// shape:
//
//	Vertices: <n>
//	Edges: <m>
//	Elapsed time for processing: <seconds> secs.
//	Number of superbubbles found: <k>.
//	<<entrance>,<exit>>
//	... one line per result, in results' order
func Write(w io.Writer, n, m int, elapsed time.Duration, results []superbubble.Result) error {
	if _, err := fmt.Fprintf(w, "Vertices: %d\n", n); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Edges: %d\n", m); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Elapsed time for processing: %g secs.\n", elapsed.Seconds()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Number of superbubbles found: %d.\n", len(results)); err != nil {
		return err
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(w, "<%d,%d>\n", r.Entrance, r.Exit); err != nil {
			return err
		}
	}

	return nil
}
