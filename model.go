package main

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type statusMsg struct {
	message string
	color   string
}

type tickMsg time.Time

// prompt kinds for the single-line input bar
const (
	promptNone = iota
	promptNewList
	promptRenameList
	promptFocusMinutes
)

// Terminal dimension constants
const (
	minTerminalWidth  = 60
	minTerminalHeight = 20
	uiOverhead        = 9 // header (3) + tabs (1) + progress (2) + status (2) + padding (1)
)

// Model
type model struct {
	cfg  Config
	sess *Session

	table table.Model

	// add/edit form
	editing      bool
	editingRow   int // -1 means new task
	editingField int
	inputs       []textinput.Model

	// single-line prompts (new list, rename list, focus minutes)
	prompting   int
	promptInput textinput.Model

	confirmDelete bool
	deleteTarget  string
	deletingList  bool // the pending confirm targets the whole list

	// focus timer
	focusActive bool
	focusTask   string
	focusEnd    time.Time
	focusTotal  time.Duration

	showHelp bool

	statusMsg    string
	statusColor  string
	statusExpiry time.Time

	width  int
	height int
}

func initialModel(cfg Config, sess *Session) model {
	m := model{
		cfg:         cfg,
		sess:        sess,
		editingRow:  -1,
		statusColor: "86",
	}
	m.promptInput = textinput.New()
	m.promptInput.CharLimit = 40
	m.setupTable()
	return m
}

func (m *model) setupTable() {
	tableHeight := m.height - uiOverhead
	if tableHeight < 10 {
		tableHeight = 10
	}

	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "Pri", Width: 4},
		{Title: "Task", Width: 38},
		{Title: "Due", Width: 16},
		{Title: "Repeat", Width: 7},
	}
	if m.sess.Aggregate() {
		columns = append(columns, table.Column{Title: "List", Width: 14})
	}

	cursor := 0
	if m.table.Rows() != nil {
		cursor = m.table.Cursor()
	}

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(m.taskRows()),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("255"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	m.table.SetStyles(s)

	if cursor < len(m.sess.Tasks()) {
		m.table.SetCursor(cursor)
	}
}

func (m *model) refreshRows() {
	m.table.SetRows(m.taskRows())
	if c := m.table.Cursor(); c >= len(m.sess.Tasks()) && len(m.sess.Tasks()) > 0 {
		m.table.SetCursor(len(m.sess.Tasks()) - 1)
	}
}

func (m *model) adjustLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	tableHeight := m.height - uiOverhead
	if tableHeight < 10 {
		tableHeight = 10
	}
	m.table.SetHeight(tableHeight)
}

func (m *model) getSafeWidth() int {
	if m.width < minTerminalWidth {
		return minTerminalWidth
	}
	return m.width
}

func (m *model) getSafeHeight() int {
	if m.height < minTerminalHeight {
		return minTerminalHeight
	}
	return m.height
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}
