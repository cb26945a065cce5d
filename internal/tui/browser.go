package tui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/lobstr/internal/catalog"
	"github.com/f3rmion/lobstr/internal/clipboard"
	"github.com/f3rmion/lobstr/internal/collection"
	"github.com/f3rmion/lobstr/internal/lobster"
)

const (
	listWidth   = 30
	previewCols = 36
	previewRows = 18
	chromeLines = 6
)

// clearCopiedMsg is sent to clear the copied indicator.
type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

type preview struct {
	art string
	err error
}

// Browser is the Bubble Tea model for browsing a ranked collection.
type Browser struct {
	name    string
	cat     *catalog.Catalog
	entries []lobster.Entry

	// Navigation over entries, by index
	filtered []int
	cursor   int
	offset   int

	// Search
	filterInput textinput.Model
	filtering   bool
	query       string

	// Clipboard
	write  func(string) error
	copied bool
	err    error

	previews map[int]preview
	width    int
	height   int
}

// NewBrowser creates a browser over entries, which are expected in rank
// order.
func NewBrowser(name string, cat *catalog.Catalog, entries []lobster.Entry) Browser {
	fi := textinput.New()
	fi.Placeholder = "trait, #id..."
	fi.CharLimit = 50
	fi.Width = 30

	m := Browser{
		name:        name,
		cat:         cat,
		entries:     entries,
		filterInput: fi,
		write:       clipboard.Write,
		previews:    make(map[int]preview),
	}
	m.applyFilter()
	return m
}

// SetClipboard replaces the function used to copy metadata.
func (m *Browser) SetClipboard(fn func(string) error) {
	m.write = fn
}

// SetSize updates the view dimensions.
func (m *Browser) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scroll()
}

// Selected returns the entry under the cursor.
func (m Browser) Selected() (lobster.Entry, bool) {
	if m.cursor >= len(m.filtered) {
		return lobster.Entry{}, false
	}
	return m.entries[m.filtered[m.cursor]], true
}

// Visible returns how many entries match the current filter.
func (m Browser) Visible() int {
	return len(m.filtered)
}

// Init implements tea.Model.
func (m Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter":
				m.filtering = false
				m.filterInput.Blur()
				m.query = m.filterInput.Value()
				m.applyFilter()
				return m, nil
			case "esc":
				m.filtering = false
				m.filterInput.Blur()
				m.filterInput.SetValue(m.query)
				return m, nil
			default:
				var cmd tea.Cmd
				m.filterInput, cmd = m.filterInput.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.pageSize())
		case "pgdown":
			m.move(m.pageSize())
		case "home", "g":
			m.move(-len(m.filtered))
		case "end", "G":
			m.move(len(m.filtered))
		case "/":
			m.filtering = true
			m.filterInput.Focus()
			return m, textinput.Blink
		case "c":
			m.query = ""
			m.filterInput.SetValue("")
			m.applyFilter()
		case "y":
			return m.copySelected()
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

func (m *Browser) move(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.filtered)-1, m.cursor+delta))
	m.err = nil
	m.scroll()
	m.loadPreview()
}

func (m *Browser) pageSize() int {
	if m.height <= chromeLines {
		return 10
	}
	return m.height - chromeLines
}

// scroll keeps the cursor inside the visible window.
func (m *Browser) scroll() {
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
}

func (m *Browser) applyFilter() {
	m.filtered = nil
	terms := strings.Fields(strings.ToLower(m.query))
	for i, e := range m.entries {
		if matches(e, terms) {
			m.filtered = append(m.filtered, i)
		}
	}
	m.cursor = 0
	m.offset = 0
	m.loadPreview()
}

// matches reports whether every term names the token id ("7" or "#7") or
// occurs in one of its trait values.
func matches(e lobster.Entry, terms []string) bool {
	for _, term := range terms {
		if id, err := strconv.Atoi(strings.TrimPrefix(term, "#")); err == nil && id == e.TokenID {
			continue
		}
		found := false
		for _, v := range e.Traits {
			if strings.Contains(strings.ToLower(v), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (m *Browser) loadPreview() {
	e, ok := m.Selected()
	if !ok || e.ImagePath == "" {
		return
	}
	if _, done := m.previews[e.TokenID]; done {
		return
	}
	art, err := LoadPreview(e.ImagePath, previewCols, previewRows)
	m.previews[e.TokenID] = preview{art: art, err: err}
}

func (m Browser) copySelected() (tea.Model, tea.Cmd) {
	e, ok := m.Selected()
	if !ok {
		return m, nil
	}
	md := collection.NewMetadata(m.cat, e, collection.DefaultDescription, collection.DefaultExternalURL)
	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		m.err = err
		return m, nil
	}
	if err := m.write(string(data)); err != nil {
		m.err = fmt.Errorf("copying metadata: %w", err)
		return m, nil
	}
	m.copied = true
	return m, clearCopiedAfter(2 * time.Second)
}

// View implements tea.Model.
func (m Browser) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.name))
	b.WriteString(CountStyle.Render(fmt.Sprintf("%d of %d tokens", len(m.filtered), len(m.entries))))
	b.WriteString("\n\n")

	if m.filtering {
		b.WriteString(SearchBoxStyle.Render("Filter: " + m.filterInput.View()))
		b.WriteString("\n\n")
	} else if m.query != "" {
		b.WriteString(HelpStyle.Render(fmt.Sprintf("Filter: %q (press 'c' to clear)", m.query)))
		b.WriteString("\n\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(HelpStyle.Render("No tokens match your filter"))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), "  ", m.renderDetail()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓: tokens • /: filter • c: clear • y: copy metadata • q: quit"))
	return b.String()
}

func (m Browser) renderList() string {
	end := min(len(m.filtered), m.offset+m.pageSize())
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		e := m.entries[m.filtered[i]]
		line := fmt.Sprintf("%4d  #%-5d %7.2f", e.Rank, e.TokenID, e.Score)
		line = runewidth.FillRight(runewidth.Truncate(line, listWidth, "…"), listWidth)
		if i == m.cursor {
			lines = append(lines, ItemActiveStyle.Render(line))
		} else {
			lines = append(lines, ItemStyle.Render(line))
		}
	}
	return ListStyle.Render(strings.Join(lines, "\n"))
}

func (m Browser) renderDetail() string {
	e, ok := m.Selected()
	if !ok {
		return ""
	}

	var lines []string
	header := SubtitleStyle.Render(fmt.Sprintf("Lobster #%d", e.TokenID))
	if m.copied {
		header += "  " + CopiedStyle.Render("✓ Copied!")
	}
	lines = append(lines, header, "")
	lines = append(lines,
		LabelStyle.Render("Rank:")+RankStyle.Render(fmt.Sprintf("%d / %d", e.Rank, len(m.entries))),
		LabelStyle.Render("Score:")+ScoreStyle.Render(fmt.Sprintf("%.2f", e.Score)),
		LabelStyle.Render("Percentile:")+ValueStyle.Render(fmt.Sprintf("%.2f%%", e.Percentile)),
		"",
	)
	for _, a := range e.Traits.Attributes(m.cat.CategoryNames()) {
		lines = append(lines, LabelStyle.Render(a.TraitType+":")+ValueStyle.Render(a.Value))
	}
	if e.ImagePath != "" {
		lines = append(lines, "", LabelStyle.Render("Image:")+HelpStyle.Render(e.ImagePath))
	}
	if m.err != nil {
		lines = append(lines, "", ErrorStyle.Render(m.err.Error()))
	}

	detail := BoxStyle.Render(strings.Join(lines, "\n"))

	p, ok := m.previews[e.TokenID]
	switch {
	case !ok:
		return detail
	case p.err != nil:
		return detail + "\n" + HelpStyle.Render("No preview: "+p.err.Error())
	case m.width > 0 && m.width < listWidth+previewCols+lipgloss.Width(detail)+8:
		return detail
	default:
		return lipgloss.JoinHorizontal(lipgloss.Top, detail, "  ", p.art)
	}
}
