// Package ioedge reads and writes the line-oriented edge-list format used
// by the supbub command: Read parses "N" followed by whitespace-separated
// "u v" edge lines into a *graph.Graph, and Write renders a run's results
// in the same report shape the reference tool produces.
//
// What: a thin, allocation-light text codec over graph.Graph and
// superbubble.Result — no binary formats, no streaming protocol, just the
// two functions a CLI needs to go from a file to a report.
//
// Why: kept separate from cmd/supbub so the format can be tested without
// spawning a process, and separate from graph/superbubble so neither
// package needs to know how its values get serialized.
package ioedge
