package collection

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/lobster"
)

// Defaults for the descriptive fields of generated documents.
const (
	DefaultName        = "Lobster NFT Collection"
	DefaultDescription = "A unique generative lobster from the Lobster NFT collection. Each lobster is algorithmically generated with randomized traits and varying rarity."
	DefaultExternalURL = "https://your-project-url.com"
)

// Metadata is the per-token document written to metadata/<id>.json, in the
// common NFT marketplace layout.
type Metadata struct {
	Name             string              `json:"name" jsonschema:"description=Display name such as Lobster #12"`
	Description      string              `json:"description"`
	Image            string              `json:"image" jsonschema:"description=Image file name relative to the images directory"`
	ExternalURL      string              `json:"external_url,omitempty"`
	Attributes       []lobster.Attribute `json:"attributes"`
	RarityScore      float64             `json:"rarity_score" jsonschema:"minimum=0"`
	RarityRank       int                 `json:"rarity_rank,omitempty" jsonschema:"minimum=1"`
	RarityPercentile float64             `json:"rarity_percentile" jsonschema:"minimum=0,maximum=100"`
}

// RarityRecord is one token's standing in the summary.
type RarityRecord struct {
	Rank       int     `json:"rank"`
	Score      float64 `json:"score"`
	Percentile float64 `json:"percentile"`
}

// RareEntry is one of the rarest tokens listed in the summary.
type RareEntry struct {
	TokenID int            `json:"token_id"`
	Rank    int            `json:"rank"`
	Score   float64        `json:"score"`
	Traits  lobster.Traits `json:"traits"`
}

// Summary is the collection-wide document written to
// collection_summary.json.
type Summary struct {
	CollectionName     string                  `json:"collection_name"`
	TotalSupply        int                     `json:"total_supply" jsonschema:"minimum=1"`
	Traits             map[string][]string     `json:"traits" jsonschema:"description=Known option names per category"`
	TraitDistribution  Distribution            `json:"trait_distribution"`
	RarityDistribution map[string]RarityRecord `json:"rarity_distribution" jsonschema:"description=Rank and score keyed by token id"`
	Top10Rarest        []RareEntry             `json:"top_10_rarest"`
}

// NewMetadata builds the metadata document for a ranked entry.
func NewMetadata(cat *catalog.Catalog, e lobster.Entry, description, externalURL string) Metadata {
	return Metadata{
		Name:             fmt.Sprintf("Lobster #%d", e.TokenID),
		Description:      description,
		Image:            ImageName(e.TokenID),
		ExternalURL:      externalURL,
		Attributes:       e.Traits.Attributes(cat.CategoryNames()),
		RarityScore:      e.Score,
		RarityRank:       e.Rank,
		RarityPercentile: e.Percentile,
	}
}

// NewSummary builds the summary document for a ranking.
func NewSummary(cat *catalog.Catalog, name string, r *Ranking) Summary {
	traits := make(map[string][]string)
	for _, c := range cat.CategoryNames() {
		traits[c] = cat.Names(c)
	}

	records := make(map[string]RarityRecord, r.Len())
	for _, e := range r.Entries {
		records[strconv.Itoa(e.TokenID)] = RarityRecord{Rank: e.Rank, Score: e.Score, Percentile: e.Percentile}
	}

	top := make([]RareEntry, 0, len(r.Top))
	for _, e := range r.Top {
		top = append(top, RareEntry{TokenID: e.TokenID, Rank: e.Rank, Score: e.Score, Traits: e.Traits})
	}

	return Summary{
		CollectionName:     name,
		TotalSupply:        r.Len(),
		Traits:             traits,
		TraitDistribution:  r.Distribution,
		RarityDistribution: records,
		Top10Rarest:        top,
	}
}

// ImageName returns the image file name for a token.
func ImageName(id int) string {
	return strconv.Itoa(id) + ".png"
}

// WriteJSON writes v to path as indented JSON.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadSummary loads a summary written by a previous run.
func ReadSummary(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading summary: %w", err)
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing summary: %w", err)
	}
	return &s, nil
}

// ReadMetadata loads one token's metadata document.
func ReadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing metadata: %w", err)
	}
	return &m, nil
}
