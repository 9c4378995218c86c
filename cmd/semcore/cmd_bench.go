package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/knowgraph/semcore/internal/bench"
	"github.com/knowgraph/semcore/pkg/graph"
)

var (
	benchSubjects   int
	benchPredicates int
	benchFanOut     int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Generate a synthetic corpus and report ingest throughput.",
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus := bench.Generate(benchSubjects, benchPredicates, benchFanOut)
		s := graph.CreateStore(1<<20, 1<<14, 1<<20)

		start := time.Now()
		n, err := bench.Load(s, corpus)
		if err != nil {
			return fmt.Errorf("bench: %w", err)
		}
		elapsed := time.Since(start)

		th := bench.Throughput{Operations: n, Elapsed: elapsed}
		fmt.Println(th.String())
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchSubjects, "subjects", 10_000, "number of distinct subjects")
	benchCmd.Flags().IntVar(&benchPredicates, "predicates", 20, "number of distinct predicates")
	benchCmd.Flags().IntVar(&benchFanOut, "fanout", 5, "triples per (subject, predicate) pair")
	rootCmd.AddCommand(benchCmd)
}
