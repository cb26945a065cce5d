package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/collection"
	"github.com/f3rmion/lobstr/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a ranked lobster collection",
	Long: `Generate a collection of lobsters, rank them by rarity and write:
  - images/<id>.png            one image per token
  - metadata/<id>.json         marketplace metadata with rarity rank
  - collection_summary.json    trait and rarity distributions
  - collection.db              SQLite copy used by 'lobstr browse'

Every flag can also be set in lobstr.yaml or with an LOBSTR_ variable.

Examples:
  lobstr generate
  lobstr generate -n 100 --seed 42
  lobstr generate -n 5000 --workers 8 -o pod`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	f := generateCmd.Flags()
	f.IntP("size", "n", 1000, "Number of lobsters to generate")
	f.Int64("seed", 0, "Seed for a reproducible collection (default random)")
	f.IntP("workers", "w", 0, "Parallel workers (0 = number of CPUs)")
	f.Int("width", 1400, "Image width in pixels")
	f.Int("height", 1400, "Image height in pixels")
	f.StringP("output", "o", "lobster_collection", "Output directory")
	f.Int("top-k", 10, "Number of rarest tokens listed in the summary")
	f.String("name", collection.DefaultName, "Collection name")
	f.Bool("no-db", false, "Skip writing collection.db")

	for key, flag := range map[string]string{
		"size": "size", "seed": "seed", "workers": "workers", "width": "width",
		"height": "height", "output": "output", "top_k": "top-k", "name": "name",
	} {
		viper.BindPFlag(key, f.Lookup(flag))
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	out := viper.GetString("output")
	opts := collection.Options{
		Size:      viper.GetInt("size"),
		Workers:   viper.GetInt("workers"),
		Width:     viper.GetInt("width"),
		Height:    viper.GetInt("height"),
		TopK:      viper.GetInt("top_k"),
		OutputDir: out,
		Name:      viper.GetString("name"),
	}
	if viper.IsSet("seed") {
		seed := viper.GetInt64("seed")
		opts.Seed = &seed
	}

	if noDB, _ := cmd.Flags().GetBool("no-db"); !noDB {
		if err := os.MkdirAll(out, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		db, err := store.Open(filepath.Join(out, store.DefaultFile), cat.CategoryNames())
		if err != nil {
			return err
		}
		defer db.Close()
		opts.Store = db
	}

	gen, err := collection.NewGenerator(cat, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Generating %d lobsters into %s\n", opts.Size, out)
	res, err := gen.Run(ctx)
	if err != nil {
		return err
	}

	printHighlights(cat, res.Ranking, 5)
	fmt.Println()
	fmt.Printf("Images:   %s\n", filepath.Join(out, collection.ImagesDir))
	fmt.Printf("Metadata: %s\n", filepath.Join(out, collection.MetadataDir))
	fmt.Printf("Summary:  %s\n", res.SummaryPath)

	if len(res.Failed) > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d lobsters failed:\n", len(res.Failed), opts.Size)
		for _, e := range res.Failed {
			fmt.Fprintf(os.Stderr, "  %v\n", e)
		}
		return fmt.Errorf("%d tokens failed", len(res.Failed))
	}
	return nil
}

// printHighlights prints the rarest tokens and the most common options per
// category.
func printHighlights(cat *catalog.Catalog, r *collection.Ranking, top int) {
	fmt.Println()
	fmt.Printf("Total lobsters: %d\n", r.Len())
	fmt.Printf("\nTop %d rarest:\n", min(top, r.Len()))
	for _, e := range r.Entries[:min(top, r.Len())] {
		fmt.Printf("  #%d. Lobster #%d - score %.2f\n", e.Rank, e.TokenID, e.Score)
		for _, a := range e.Traits.Attributes(cat.CategoryNames()) {
			fmt.Printf("      %s: %s\n", a.TraitType, a.Value)
		}
	}
	printDistribution(cat.CategoryNames(), r.Distribution, r.Len(), 3)
}

func printDistribution(order []string, dist collection.Distribution, total, top int) {
	fmt.Println("\nTrait distribution:")
	for _, category := range order {
		counts, ok := dist[category]
		if !ok {
			continue
		}
		type row struct {
			name  string
			count int
		}
		rows := make([]row, 0, len(counts))
		for name, n := range counts {
			rows = append(rows, row{name, n})
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].count != rows[j].count {
				return rows[i].count > rows[j].count
			}
			return rows[i].name < rows[j].name
		})

		fmt.Printf("\n  %s:\n", category)
		for _, r := range rows[:min(top, len(rows))] {
			fmt.Printf("    • %s: %d (%.1f%%)\n", r.name, r.count, float64(r.count)/float64(total)*100)
		}
	}
}
