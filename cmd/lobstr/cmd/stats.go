package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/f3rmion/lobstr/internal/collection"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var statsCmd = &cobra.Command{
	Use:   "stats [summary.json]",
	Short: "Show rarity statistics of a generated collection",
	Long: `Show the rarest tokens and the most common options per category from a
collection_summary.json written by 'lobstr generate'.

Without an argument the summary in the configured output directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

var (
	statsTop     int
	statsOptions int
)

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsTop, "top", 5, "Number of rarest tokens to show")
	statsCmd.Flags().IntVar(&statsOptions, "options", 3, "Options to show per category")
}

func runStats(cmd *cobra.Command, args []string) error {
	path := filepath.Join(viper.GetString("output"), collection.SummaryFile)
	if len(args) > 0 {
		path = args[0]
	}

	s, err := collection.ReadSummary(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", s.CollectionName)
	fmt.Printf("Total lobsters: %d\n", s.TotalSupply)

	order := categoryOrder(s)
	top := s.Top10Rarest[:min(statsTop, len(s.Top10Rarest))]
	fmt.Printf("\nTop %d rarest:\n", len(top))
	for _, e := range top {
		rec := s.RarityDistribution[strconv.Itoa(e.TokenID)]
		fmt.Printf("  #%d. Lobster #%d - score %.2f (top %.2f%%)\n", e.Rank, e.TokenID, e.Score, 100-rec.Percentile)
		for _, category := range order {
			if v, ok := e.Traits[category]; ok {
				fmt.Printf("      %s: %s\n", category, v)
			}
		}
	}

	printDistribution(order, s.TraitDistribution, s.TotalSupply, statsOptions)
	return nil
}

// categoryOrder prefers the loaded catalog's order and falls back to the
// summary's own categories.
func categoryOrder(s *collection.Summary) []string {
	cat, err := loadCatalog()
	if err == nil {
		order := make([]string, 0, len(s.Traits))
		for _, name := range cat.CategoryNames() {
			if _, ok := s.Traits[name]; ok {
				order = append(order, name)
			}
		}
		if len(order) == len(s.Traits) {
			return order
		}
	}
	order := make([]string, 0, len(s.Traits))
	for name := range s.Traits {
		order = append(order, name)
	}
	sort.Strings(order)
	return order
}
