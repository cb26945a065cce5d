package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lobstr configuration",
	Long: `Initialize lobstr configuration files in your config directory.

This creates:
  - catalog.yaml   (trait categories, options, weights and drawing payloads)
  - lobstr.yaml    (defaults for 'lobstr generate')

Edit catalog.yaml to rebalance weights or recolor options. Every catalog is
validated when loaded.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	catalogPath := filepath.Join(configDir, config.CatalogFile)
	if _, err := os.Stat(catalogPath); err == nil && !force {
		return fmt.Errorf("configuration already exists: %s\nUse --force to overwrite", catalogPath)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	fmt.Printf("Initializing lobstr configuration in %s\n\n", configDir)

	if err := config.SaveCatalog(catalogPath, catalog.Default()); err != nil {
		return err
	}
	fmt.Printf("  Created %s\n", config.CatalogFile)

	if err := config.WriteSettingsTemplate(filepath.Join(configDir, config.SettingsFile)); err != nil {
		return err
	}
	fmt.Printf("  Created %s\n", config.SettingsFile)

	fmt.Println()
	fmt.Println("Configuration initialized!")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit catalog.yaml to tune trait weights and colors")
	fmt.Println("  2. Run 'lobstr showcase' to preview every accessory")
	fmt.Println("  3. Run 'lobstr generate' to build a collection")

	return nil
}
