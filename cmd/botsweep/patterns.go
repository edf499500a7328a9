package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"botsweep/pkg/patterns"
)

var (
	listPatterns   []string
	listMaxSuffix  int
	listRangeWidth int
)

// patternsCmd prints the queries a sweep would issue, without running it
var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Print the search queries generated for the given patterns",
	Example: `  botsweep patterns --patterns=---TAKE --max-suffix 40 --range-width 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(listPatterns) == 0 {
			return fmt.Errorf("--patterns is required")
		}

		generator := patterns.NewGenerator(listPatterns, listMaxSuffix, listRangeWidth)
		for _, query := range generator.Queries() {
			fmt.Println(query.Term())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)

	patternsCmd.Flags().StringSliceVar(&listPatterns, "patterns", nil, "bot nickname patterns")
	patternsCmd.Flags().IntVar(&listMaxSuffix, "max-suffix", patterns.DefaultMaxSuffix, "highest numeric suffix covered by range shards")
	patternsCmd.Flags().IntVar(&listRangeWidth, "range-width", patterns.DefaultRangeWidth, "span of each numeric range shard")
}
