package cmd

import (
	"fmt"

	"github.com/f3rmion/lobstr/internal/lobster"
	"github.com/f3rmion/lobstr/internal/showcase"
	"github.com/spf13/cobra"
)

var showcaseCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Render every option of a category side by side",
	Long: `Render a labeled grid with one lobster per option of a category.

All other traits are fixed to Ocean Blue / Classic Red / Medium / Normal /
Plain so only the showcased category changes.

Examples:
  lobstr showcase
  lobstr showcase --category Eyes --columns 3 -o eyes.png`,
	Args: cobra.NoArgs,
	RunE: runShowcase,
}

var (
	showcaseCategory string
	showcaseColumns  int
	showcaseCell     int
	showcaseOutput   string
)

func init() {
	rootCmd.AddCommand(showcaseCmd)
	showcaseCmd.Flags().StringVarP(&showcaseCategory, "category", "c", lobster.CategoryAccessory, "Category to showcase")
	showcaseCmd.Flags().IntVar(&showcaseColumns, "columns", 5, "Grid columns")
	showcaseCmd.Flags().IntVar(&showcaseCell, "cell", 700, "Cell size in pixels")
	showcaseCmd.Flags().StringVarP(&showcaseOutput, "output", "o", "lobster_showcase.png", "Output PNG file")
}

func runShowcase(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	grid, err := showcase.Render(cat, showcase.Options{
		Category: showcaseCategory,
		Columns:  showcaseColumns,
		Cell:     showcaseCell,
	})
	if err != nil {
		return err
	}
	if err := grid.Save(showcaseOutput); err != nil {
		return err
	}

	for i, c := range grid.Cells {
		fmt.Printf("  %2d. %s\n", i+1, c.Option)
	}
	b := grid.Image.Bounds()
	fmt.Printf("\nSaved %s (%dx%d, %d cells)\n", showcaseOutput, b.Dx(), b.Dy(), len(grid.Cells))
	return nil
}
