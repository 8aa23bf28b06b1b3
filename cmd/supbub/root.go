package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/supbub/ioedge"
	"github.com/katalvlaran/supbub/superbubble"
)

var (
	inputFilename  string
	outputFilename string
)

var rootCmd = &cobra.Command{
	Use:   "supbub",
	Short: "Detect superbubbles in a directed graph",
	Long: `supbub reads a directed graph from a text file - a vertex count
followed by "u v" edge lines - and reports every superbubble found in it:
a single-entrance, single-exit region that every path leaving the
entrance is guaranteed to pass through on its way to the exit, with no
way back in from the outside once inside.`,
	RunE: runDetect,
}

func init() {
	rootCmd.Flags().StringVarP(&inputFilename, "input", "i", "", "input file (required)")
	rootCmd.Flags().StringVarP(&outputFilename, "output", "o", "", "output file (required)")
	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("output")
}

func runDetect(cmd *cobra.Command, args []string) error {
	inFile, err := os.Open(filepath.Clean(inputFilename))
	if err != nil {
		return fmt.Errorf("cannot open input file: %w", err)
	}
	defer inFile.Close()

	g, err := ioedge.Read(inFile)
	if err != nil {
		return fmt.Errorf("reading graph: %w", err)
	}

	start := time.Now()
	results := superbubble.Find(g)
	elapsed := time.Since(start)

	outFile, err := os.Create(filepath.Clean(outputFilename))
	if err != nil {
		return fmt.Errorf("cannot open output file: %w", err)
	}
	defer outFile.Close()

	if err := ioedge.Write(outFile, g.NumVertices(), g.NumEdges(), elapsed, results); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
