// Package cmd contains all CLI commands for the lobstr tool.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/collection"
	"github.com/f3rmion/lobstr/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lobstr",
	Short: "Generative lobster collections",
	Long: `lobstr generates collections of procedurally drawn lobsters.

Every lobster is built from six weighted trait categories:
  - Background  → canvas color
  - Shell Color → body, head, claws and tail
  - Claw Size   → pincer scale
  - Eyes        → eye style on the stalks
  - Tail        → segment pattern
  - Accessory   → hats, eyewear, neckwear, antennae and rarer items

Rarer traits raise a token's rarity score. After a batch is generated the
collection is ranked and summarized.

Running 'lobstr' without arguments browses the last generated collection.`,
	SilenceUsage: true,
	RunE:         runBrowse,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			collection.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/lobstr)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetDefault("size", 1000)
	viper.SetDefault("workers", 0)
	viper.SetDefault("width", 1400)
	viper.SetDefault("height", 1400)
	viper.SetDefault("output", "lobster_collection")
	viper.SetDefault("top_k", 10)
	viper.SetDefault("name", collection.DefaultName)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("LOBSTR")
	viper.AutomaticEnv()

	viper.SetConfigFile(filepath.Join(getConfigDir(), config.SettingsFile))
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", config.SettingsFile, err)
		}
	}
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadCatalog returns the user catalog when one exists, else the built-in one.
func loadCatalog() (*catalog.Catalog, error) {
	cat, source, err := config.LoadOrDefault(getConfigDir())
	if err != nil {
		return nil, err
	}
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Using %s catalog\n", source)
	}
	return cat, nil
}
