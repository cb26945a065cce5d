package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/lobstr/internal/config"
	"github.com/f3rmion/lobstr/internal/lobster"
	"github.com/f3rmion/lobstr/internal/rarity"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [category]",
	Short: "List trait categories, options and odds",
	Long: `List the active trait catalog: every option with its weight, the chance
of being drawn and the rarity score it contributes.

Examples:
  lobstr catalog
  lobstr catalog Accessory
  lobstr catalog --yaml > catalog.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

var catalogYAML bool

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolVar(&catalogYAML, "yaml", false, "Print the catalog as YAML")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	if catalogYAML {
		out, err := config.MarshalCatalog(cat)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	categories := cat.CategoryNames()
	if len(args) > 0 {
		if cat.Names(args[0]) == nil {
			return &lobster.ConfigError{Category: args[0], Reason: "unknown category"}
		}
		categories = args[:1]
	}

	for i, name := range categories {
		if i > 0 {
			fmt.Println()
		}
		total, _ := cat.TotalWeight(name)
		opts, _ := cat.Options(name)
		fmt.Printf("%s (%d options, total weight %g)\n", name, len(opts), total)
		for _, o := range opts {
			detail := describePayload(o.Payload)
			fmt.Printf("  %-18s %6g  %6.2f%%  +%6.2f  %s\n", o.Name, o.Weight, o.Weight/total*100, rarity.Ceiling-o.Weight, detail)
		}
	}
	return nil
}

func describePayload(p lobster.Payload) string {
	switch {
	case p.Family != lobster.FamilyNone:
		return fmt.Sprintf("%s (%s)", p.Style, p.Family)
	case p.Style != "":
		return p.Style
	case p.Scale != 0:
		return fmt.Sprintf("x%g", p.Scale)
	default:
		return p.Color.String()
	}
}
