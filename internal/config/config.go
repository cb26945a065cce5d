// Package config handles loading and saving lobstr configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/lobster"
)

// File names inside the config directory.
const (
	CatalogFile  = "catalog.yaml"
	SettingsFile = "lobstr.yaml"
)

// catalogDoc is the on-disk layout of a catalog file.
type catalogDoc struct {
	Categories []lobster.Category `yaml:"categories"`
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*catalog.Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	cat, err := catalog.New(doc.Categories)
	if err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return cat, nil
}

// LoadCatalog loads a catalog from a YAML file.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// MarshalCatalog encodes cat as YAML.
func MarshalCatalog(cat *catalog.Catalog) ([]byte, error) {
	out, err := yaml.Marshal(&catalogDoc{Categories: cat.Categories()})
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}
	return out, nil
}

// SaveCatalog writes cat to a YAML file.
func SaveCatalog(path string, cat *catalog.Catalog) error {
	out, err := MarshalCatalog(cat)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append([]byte(catalogHeader), out...), 0644); err != nil {
		return fmt.Errorf("writing catalog file: %w", err)
	}
	return nil
}

// LoadOrDefault loads dir/catalog.yaml when present and falls back to the
// built-in catalog otherwise. The returned string names the source.
func LoadOrDefault(dir string) (*catalog.Catalog, string, error) {
	path := filepath.Join(dir, CatalogFile)
	cat, err := LoadCatalog(path)
	if errors.Is(err, fs.ErrNotExist) {
		return catalog.Default(), "built-in", nil
	}
	if err != nil {
		return nil, "", err
	}
	return cat, path, nil
}

// WriteSettingsTemplate writes a commented settings file for viper to pick up.
func WriteSettingsTemplate(path string) error {
	if err := os.WriteFile(path, []byte(settingsTemplate), 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lobstr"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

const catalogHeader = `# lobstr trait catalog
#
# Categories are sampled in the order listed. Each option needs a unique
# name and a positive weight; higher weight means more common.
#
# Payload fields by category:
#   color   Background, Shell Color   {r, g, b}
#   scale   Claw Size                 pincer size multiplier
#   style   Eyes, Tail, Accessory     drawing recipe
#   family  Accessory                 head, face, neck, antenna, special

`

const settingsTemplate = `# lobstr settings
# Every key can also be set with an LOBSTR_ environment variable,
# e.g. LOBSTR_WORKERS=4.

# Number of tokens to generate
size: 1000

# Fixed seed for a reproducible collection; remove for a random one
# seed: 42

# Parallel render workers (0 = number of CPUs)
workers: 0

# Image size in pixels
width: 1400
height: 1400

# Output directory for images, metadata and the summary
output: lobster_collection

# Rarest tokens listed in the summary
top_k: 10

# Collection name written to the summary
name: Lobster NFT Collection
`
