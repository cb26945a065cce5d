package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/f3rmion/lobstr/internal/collection"
	"github.com/f3rmion/lobstr/internal/lobster"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <metadata|summary|catalog>",
	Short: "Print the JSON Schema of a generated document",
	Long: `Print the JSON Schema describing one of the documents lobstr writes:
  - metadata   metadata/<id>.json
  - summary    collection_summary.json
  - catalog    the trait catalog layout`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"metadata", "summary", "catalog"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// catalogDocument mirrors the catalog.yaml layout.
type catalogDocument struct {
	Categories []lobster.Category `json:"categories"`
}

// Schema reflects the JSON Schema for a named document.
func Schema(name string) (*jsonschema.Schema, error) {
	r := &jsonschema.Reflector{AllowAdditionalProperties: true}

	var s *jsonschema.Schema
	switch name {
	case "metadata":
		s = r.Reflect(&collection.Metadata{})
		s.Title = "Lobster token metadata"
		s.Description = "Per-token document written to metadata/<id>.json"
	case "summary":
		s = r.Reflect(&collection.Summary{})
		s.Title = "Lobster collection summary"
		s.Description = "Collection-wide trait and rarity distributions"
	case "catalog":
		s = r.Reflect(&catalogDocument{})
		s.Title = "Lobster trait catalog"
		s.Description = "Trait categories in sampling order with weighted options"
	default:
		return nil, fmt.Errorf("unknown document %q: want metadata, summary or catalog", name)
	}
	return s, nil
}

func runSchema(cmd *cobra.Command, args []string) error {
	s, err := Schema(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
