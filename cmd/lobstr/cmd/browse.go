package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/lobstr/internal/store"
	"github.com/f3rmion/lobstr/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var browseCmd = &cobra.Command{
	Use:   "browse [collection.db]",
	Short: "Browse a generated collection in the TUI",
	Long: `Open the SQLite copy of a generated collection and browse its tokens
in rank order in an interactive terminal UI.

Without an argument the database in the configured output directory is used.

Controls:
  ↑/↓ or j/k    Navigate tokens
  g/G           First / last token
  /             Filter by trait value or #id
  c             Clear filter
  y             Copy the token's metadata JSON
  q             Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	path := filepath.Join(viper.GetString("output"), store.DefaultFile)
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("no collection at %s (run 'lobstr generate' first): %w", path, err)
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	st, err := store.Open(path, cat.CategoryNames())
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	name, err := st.Name(ctx)
	if err != nil {
		return err
	}
	entries, err := st.Entries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%s holds no tokens", path)
	}

	fmt.Fprintf(os.Stderr, "Loaded: %s (%d tokens)\n", path, len(entries))

	p := tea.NewProgram(tui.NewBrowser(name, cat, entries), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
