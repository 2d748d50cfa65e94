package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// RunsKeyMap defines the key bindings for the run journal view.
type RunsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel browses journal entries in a table.
type RunsModel struct {
	runs     []storage.RunEntry
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunsModel creates a table over the given entries.
func NewRunsModel(runs []storage.RunEntry, width, height int) RunsModel {
	m := RunsModel{
		runs:   runs,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Jumps", Width: 7},
		{Title: "Cause", Width: 10},
		{Title: "Ended", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-6, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = RunRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// RunRow formats one journal entry as table cells.
func RunRow(r storage.RunEntry) table.Row {
	return table.Row{
		fmt.Sprintf("%d", r.ID),
		r.Player,
		fmt.Sprintf("%d", r.Score),
		fmt.Sprintf("%d", r.Ticks),
		fmt.Sprintf("%d", len(r.Jumps)),
		r.Cause.String(),
		r.EndedAt.Format("Jan 02 15:04"),
	}
}

// Init initializes the model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("RUN JOURNAL (%d)", len(m.runs))))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("No runs recorded yet."))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunRunsTable shows the journal browser until the user quits.
func RunRunsTable(runs []storage.RunEntry, width, height int) error {
	p := tea.NewProgram(NewRunsModel(runs, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
