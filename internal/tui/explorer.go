// Package tui provides the interactive PDGID explorer.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/joss/pdgid/pkg/pdgid"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	trueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	undefinedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 7
)

// resultNames implements fuzzy.Source over a listing.
type resultNames []pdgid.Result

func (r resultNames) String(i int) string { return r[i].Name }
func (r resultNames) Len() int            { return len(r) }

// Model is the explorer state.
type Model struct {
	input    textinput.Model
	viewport viewport.Model
	current  pdgid.PDGID
	parsed   bool
	filter   string
	err      error
	width    int
	height   int
	quitting bool
}

// New creates an explorer, optionally pre-filled with a query such as
// "2212" or "2212/charge".
func New(initial string) Model {
	ti := textinput.New()
	ti.Placeholder = "code, optionally /filter (e.g. 2212/spin)"
	ti.Prompt = "pdgid> "
	ti.CharLimit = 64
	ti.Width = 50
	ti.Focus()
	ti.SetValue(initial)

	m := Model{
		input:    ti,
		viewport: viewport.New(defaultWidth-4, defaultHeight-chromeHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.refresh()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		case "ctrl+n":
			if m.parsed {
				m.input.SetValue(joinInput(m.current.Negate().Int(), m.filter))
				m.input.CursorEnd()
				m.refresh()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if m.input.Value() != before {
		m.refresh()
	}

	return m, tea.Batch(cmds...)
}

// refresh re-parses the input and rebuilds the listing.
func (m *Model) refresh() {
	code, filter := splitInput(m.input.Value())
	m.filter = filter
	m.err = nil
	m.parsed = false

	if code == "" {
		m.viewport.SetContent(infoStyle.Render("type a PDG code"))
		return
	}
	id, err := pdgid.Parse(code)
	if err != nil {
		m.err = err
		m.viewport.SetContent(errorStyle.Render(err.Error()))
		return
	}
	m.current = id
	m.parsed = true
	m.viewport.SetContent(listing(FilterResults(id.Describe(), filter)))
	m.viewport.GotoTop()
}

// splitInput separates "code/filter" into its parts.
func splitInput(s string) (code, filter string) {
	code, filter, _ = strings.Cut(s, "/")
	return strings.TrimSpace(code), strings.TrimSpace(filter)
}

func joinInput(code int64, filter string) string {
	if filter == "" {
		return fmt.Sprint(code)
	}
	return fmt.Sprintf("%d/%s", code, filter)
}

// FilterResults keeps results whose name fuzzy-matches filter, best match
// first. An empty filter keeps the table order.
func FilterResults(results []pdgid.Result, filter string) []pdgid.Result {
	if filter == "" {
		return results
	}
	matches := fuzzy.FindFrom(filter, resultNames(results))
	out := make([]pdgid.Result, 0, len(matches))
	for _, match := range matches {
		out = append(out, results[match.Index])
	}
	return out
}

func styleValue(v pdgid.Value) string {
	s := v.String()
	switch {
	case !v.Defined:
		return undefinedStyle.Render(s)
	case v.Kind == pdgid.KindBool && v.Bool:
		return trueStyle.Render(s)
	case v.Kind == pdgid.KindBool:
		return infoStyle.Render(s)
	}
	return numberStyle.Render(s)
}

func listing(results []pdgid.Result) string {
	if len(results) == 0 {
		return infoStyle.Render("no queries match")
	}
	width := 0
	for _, r := range results {
		width = max(width, len(r.Name))
	}
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = fmt.Sprintf("%-*s  %s", width, r.Name, styleValue(r.Value))
	}
	return strings.Join(lines, "\n")
}

// View renders the explorer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := titleStyle.Render("PDGID explorer")
	if m.parsed {
		header += "  " + infoStyle.Render(m.current.String())
		if cats := m.current.Categories(); len(cats) > 0 {
			header += "  " + trueStyle.Render(strings.Join(cats, " "))
		}
	}
	b.WriteString(header + "\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(boxStyle.Render(m.viewport.View()))
	b.WriteString(helpStyle.Render("↑/↓ scroll • ctrl+n antiparticle • esc quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts the explorer until the user quits or ctx is cancelled.
func Run(ctx context.Context, initial string) error {
	p := tea.NewProgram(New(initial), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
