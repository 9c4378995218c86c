package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsFile string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print triple and interned-string counts for a file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(statsFile, "")
		if err != nil {
			return err
		}
		stats := s.Stats()
		fmt.Printf("triples: %d\ninterned strings: %d\n", stats.Triples, stats.InternedStrings)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsFile, "file", "", "N-Triples-style file to load")
	statsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(statsCmd)
}
