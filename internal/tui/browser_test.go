package tui

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/collection"
	"github.com/f3rmion/lobstr/internal/lobster"
)

func traits(shell, accessory string) lobster.Traits {
	return lobster.Traits{
		lobster.CategoryBackground: "Ocean Blue",
		lobster.CategoryShell:      shell,
		lobster.CategoryClaw:       "Medium",
		lobster.CategoryEyes:       "Normal",
		lobster.CategoryTail:       "Plain",
		lobster.CategoryAccessory:  accessory,
	}
}

func testEntries(t *testing.T) []lobster.Entry {
	dir := t.TempDir()
	return []lobster.Entry{
		{TokenID: 3, Traits: traits("Black Pearl", "Angel Wings"), Score: 498, Rank: 1, Percentile: 75,
			ImagePath: writePNG(t, dir, "3.png", split(40))},
		{TokenID: 1, Traits: traits("Golden", "Gold Chain"), Score: 441, Rank: 2, Percentile: 50,
			ImagePath: filepath.Join(dir, "1.png")},
		{TokenID: 4, Traits: traits("Classic Red", "Crown"), Score: 430, Rank: 3, Percentile: 25},
		{TokenID: 2, Traits: traits("Classic Red", "None"), Score: 405, Rank: 4, Percentile: 0},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Browser, msgs ...tea.Msg) Browser {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Browser)
		require.True(t, ok)
	}
	return m
}

func selectedID(t *testing.T, m Browser) int {
	t.Helper()
	e, ok := m.Selected()
	require.True(t, ok)
	return e.TokenID
}

func TestBrowserNavigation(t *testing.T) {
	m := NewBrowser("Test", catalog.Default(), testEntries(t))
	assert.Equal(t, 4, m.Visible())
	assert.Equal(t, 3, selectedID(t, m))

	m = send(t, m, key("down"), key("j"))
	assert.Equal(t, 4, selectedID(t, m))

	m = send(t, m, key("down"), key("down"), key("down"))
	assert.Equal(t, 2, selectedID(t, m), "cursor stops at the last entry")

	m = send(t, m, key("up"))
	assert.Equal(t, 4, selectedID(t, m))

	m = send(t, m, key("g"))
	assert.Equal(t, 3, selectedID(t, m))
	m = send(t, m, key("G"))
	assert.Equal(t, 2, selectedID(t, m))
}

func TestBrowserFilter(t *testing.T) {
	m := NewBrowser("Test", catalog.Default(), testEntries(t))

	m = send(t, m, key("/"), key("classic red"), key("enter"))
	assert.Equal(t, 2, m.Visible())
	assert.Equal(t, 4, selectedID(t, m))
	assert.Contains(t, m.View(), `Filter: "classic red"`)

	m = send(t, m, key("c"))
	assert.Equal(t, 4, m.Visible())

	m = send(t, m, key("/"), key("#1"), key("enter"))
	assert.Equal(t, 1, m.Visible())
	assert.Equal(t, 1, selectedID(t, m))

	m = send(t, m, key("c"), key("/"), key("gold"), key("enter"))
	assert.Equal(t, 1, m.Visible(), "Gold Chain and Golden are the same token")

	m = send(t, m, key("c"), key("/"), key("sombrero"), key("enter"))
	assert.Zero(t, m.Visible())
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No tokens match")
}

func TestBrowserFilterEscKeepsQuery(t *testing.T) {
	m := NewBrowser("Test", catalog.Default(), testEntries(t))
	m = send(t, m, key("/"), key("crown"), key("esc"))
	assert.Equal(t, 4, m.Visible())
	assert.NotContains(t, m.View(), "Filter:")
}

func TestBrowserQuit(t *testing.T) {
	m := NewBrowser("Test", catalog.Default(), testEntries(t))
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBrowserCopiesMetadata(t *testing.T) {
	var copied string
	m := NewBrowser("Test", catalog.Default(), testEntries(t))
	m.SetClipboard(func(s string) error {
		copied = s
		return nil
	})

	next, cmd := m.Update(key("y"))
	m = next.(Browser)
	assert.NotNil(t, cmd)
	assert.True(t, m.copied)
	assert.Contains(t, m.View(), "Copied!")

	var md collection.Metadata
	require.NoError(t, json.Unmarshal([]byte(copied), &md))
	assert.Equal(t, "Lobster #3", md.Name)
	assert.Equal(t, 1, md.RarityRank)
	assert.Equal(t, "3.png", md.Image)
	require.Len(t, md.Attributes, 6)
	assert.Equal(t, lobster.CategoryBackground, md.Attributes[0].TraitType)

	m = send(t, m, clearCopiedMsg{})
	assert.False(t, m.copied)
}

func TestBrowserCopyFailure(t *testing.T) {
	m := NewBrowser("Test", catalog.Default(), testEntries(t))
	m.SetClipboard(func(string) error { return errors.New("no clipboard tool found") })

	m = send(t, m, key("y"))
	assert.False(t, m.copied)
	assert.Contains(t, m.View(), "copying metadata: no clipboard tool found")

	m = send(t, m, key("down"))
	assert.NotContains(t, m.View(), "copying metadata")
}

func TestBrowserPreviews(t *testing.T) {
	m := NewBrowser("Test", catalog.Default(), testEntries(t))
	p, ok := m.previews[3]
	require.True(t, ok)
	require.NoError(t, p.err)
	assert.Contains(t, m.View(), "▀")

	m = send(t, m, key("down"))
	p, ok = m.previews[1]
	require.True(t, ok)
	assert.Error(t, p.err)
	assert.Contains(t, m.View(), "No preview")

	m = send(t, m, key("down"))
	_, ok = m.previews[4]
	assert.False(t, ok, "entries without an image have no preview")
}

func TestBrowserScrollsWithWindow(t *testing.T) {
	m := NewBrowser("Test", catalog.Default(), testEntries(t))
	m = send(t, m, tea.WindowSizeMsg{Width: 200, Height: chromeLines + 2})
	m = send(t, m, key("down"), key("down"), key("down"))
	assert.Equal(t, 2, m.offset)
	assert.Equal(t, 3, m.cursor)

	m = send(t, m, key("g"))
	assert.Zero(t, m.offset)
}

func TestBrowserViewShowsDetail(t *testing.T) {
	m := NewBrowser("My Lobsters", catalog.Default(), testEntries(t))
	v := m.View()
	assert.Contains(t, v, "My Lobsters")
	assert.Contains(t, v, "4 of 4 tokens")
	assert.Contains(t, v, "Lobster #3")
	assert.Contains(t, v, "498.00")
	assert.Contains(t, v, "Angel Wings")
	assert.Contains(t, v, "1 / 4")
}
