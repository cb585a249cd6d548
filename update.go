package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.statusMsg = msg.message
		m.statusColor = msg.color
		m.statusExpiry = time.Now().Add(3 * time.Second)
		return m, nil

	case tickMsg:
		if m.focusActive && time.Until(m.focusEnd) <= 0 {
			m.focusActive = false
			if m.cfg.Notifications {
				sendNotification("Focus done!", fmt.Sprintf("Well done: %s", m.focusTask))
			}
			m.statusMsg = fmt.Sprintf("⏰ Focus finished: %s", m.focusTask)
			m.statusColor = "82"
			m.statusExpiry = time.Now().Add(5 * time.Second)
		}
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustLayout()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditingKeys(msg)
		}
		if m.prompting != promptNone {
			return m.handlePromptKeys(msg)
		}
		if m.focusActive {
			switch msg.String() {
			case "q", "f", "esc":
				m.focusActive = false
				return m, showStatus("Focus cancelled", "226")
			}
			return m, nil
		}
		if m.showHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.showHelp = false
			}
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

func (m model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cursor := m.table.Cursor()
	tasks := m.sess.Tasks()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "up", "k", "down", "j":
		m.table, _ = m.table.Update(msg)
	case " ", "t":
		if cursor < len(tasks) {
			wasDone := tasks[cursor].Done
			m.sess.Toggle(cursor)
			m.refreshRows()
			if !wasDone {
				return m, showStatus("✅ Task done!", "82")
			}
			return m, showStatus("Task reopened", "226")
		}
	case "1", "2", "3":
		if cursor < len(tasks) {
			p, _ := strconv.Atoi(msg.String())
			m.sess.SetPriority(cursor, p)
			m.refreshRows()
		}
	case "a":
		m.startAdding()
	case "e":
		if cursor < len(tasks) {
			m.startEditing(cursor)
		}
	case "d", "delete":
		if cursor < len(tasks) && !m.confirmDelete {
			m.confirmDelete = true
			m.deletingList = false
			m.deleteTarget = tasks[cursor].Title
		}
	case "y":
		if m.confirmDelete {
			m.confirmDelete = false
			if m.deletingList {
				name := m.sess.Active()
				m.sess.DeleteList(name)
				m.setupTable()
				return m, showStatus(fmt.Sprintf("🗑️ Deleted list: %s", name), "196")
			}
			if cursor < len(tasks) {
				title := tasks[cursor].Title
				m.sess.Delete(cursor)
				m.refreshRows()
				return m, showStatus(fmt.Sprintf("🗑️ Deleted: %s (u = undo)", title), "196")
			}
		}
	case "n":
		if m.confirmDelete {
			m.confirmDelete = false
			m.deleteTarget = ""
			return m, showStatus("Delete cancelled", "86")
		}
		m.prompting = promptNewList
		m.promptInput.SetValue("")
		m.promptInput.Placeholder = "new list name"
		m.promptInput.Focus()
	case "u":
		if m.sess.Undo() {
			m.refreshRows()
			return m, showStatus("↩️ Restored last deleted task", "82")
		}
		return m, showStatus("Nothing to undo", "226")
	case "f":
		if cursor < len(tasks) {
			m.prompting = promptFocusMinutes
			m.promptInput.SetValue("")
			m.promptInput.Placeholder = fmt.Sprintf("minutes (default %d)", m.cfg.FocusMinutes)
			m.promptInput.Focus()
		}
	case "tab", "shift+tab":
		lists := m.sess.Lists()
		idx := 0
		for i, name := range lists {
			if name == m.sess.Active() {
				idx = i
				break
			}
		}
		if msg.String() == "tab" {
			idx = (idx + 1) % len(lists)
		} else {
			idx = (idx - 1 + len(lists)) % len(lists)
		}
		m.sess.SwitchList(lists[idx])
		m.setupTable()
		return m, showStatus(fmt.Sprintf("List: %s", m.sess.Active()), "86")
	case "r":
		if !m.sess.Aggregate() {
			m.prompting = promptRenameList
			m.promptInput.SetValue(m.sess.Active())
			m.promptInput.Placeholder = "new name"
			m.promptInput.Focus()
		}
	case "X":
		if !m.sess.Aggregate() && m.sess.Active() != defaultList && !m.confirmDelete {
			m.confirmDelete = true
			m.deletingList = true
			m.deleteTarget = m.sess.Active()
		}
	case "x":
		all := m.sess.store.loadAll()
		if err := exportCalendar(m.sess.store.icsPath(), all); err == nil {
			return m, showStatus(fmt.Sprintf("📆 Exported %s", m.sess.store.icsPath()), "82")
		}
		return m, showStatus("Export failed", "196")
	case "c":
		if cursor < len(tasks) {
			if err := clipboard.WriteAll(tasks[cursor].Title); err == nil {
				return m, showStatus("📋 Copied title", "86")
			}
		}
	}

	return m, nil
}

func (m model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.inputs = nil
		return m, showStatus("❌ Edit cancelled", "196")
	case "enter":
		m.saveEdit()
		m.editing = false
		m.inputs = nil
		m.refreshRows()
		return m, showStatus("✅ Changes saved", "82")
	case "tab":
		if len(m.inputs) > 0 {
			m.editingField = (m.editingField + 1) % len(m.inputs)
			for i := range m.inputs {
				m.inputs[i].Blur()
			}
			m.inputs[m.editingField].Focus()
		}
	case "shift+tab":
		if len(m.inputs) > 0 {
			m.editingField = (m.editingField - 1 + len(m.inputs)) % len(m.inputs)
			for i := range m.inputs {
				m.inputs[i].Blur()
			}
			m.inputs[m.editingField].Focus()
		}
	default:
		if len(m.inputs) > 0 {
			var cmd tea.Cmd
			m.inputs[m.editingField], cmd = m.inputs[m.editingField].Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompting = promptNone
		m.promptInput.Blur()
		return m, nil
	case "enter":
		value := m.promptInput.Value()
		kind := m.prompting
		m.prompting = promptNone
		m.promptInput.Blur()
		return m.applyPrompt(kind, value)
	default:
		var cmd tea.Cmd
		m.promptInput, cmd = m.promptInput.Update(msg)
		return m, cmd
	}
}

func (m model) applyPrompt(kind int, value string) (tea.Model, tea.Cmd) {
	switch kind {
	case promptNewList:
		if strings.TrimSpace(value) == "" {
			return m, nil
		}
		m.sess.SwitchList(value)
		m.setupTable()
		return m, showStatus(fmt.Sprintf("List: %s", m.sess.Active()), "86")
	case promptRenameList:
		if value == "" {
			return m, nil
		}
		old := m.sess.Active()
		m.sess.RenameList(old, value)
		m.setupTable()
		return m, showStatus(fmt.Sprintf("Renamed %s → %s", old, m.sess.Active()), "82")
	case promptFocusMinutes:
		minutes := m.cfg.FocusMinutes
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			minutes = v
		}
		cursor := m.table.Cursor()
		if cursor < len(m.sess.Tasks()) {
			m.focusActive = true
			m.focusTask = m.sess.Tasks()[cursor].Title
			m.focusTotal = time.Duration(minutes) * time.Minute
			m.focusEnd = time.Now().Add(m.focusTotal)
		}
	}
	return m, nil
}

func (m *model) startAdding() {
	m.editing = true
	m.editingRow = -1
	m.editingField = 0
	m.inputs = make([]textinput.Model, 4)
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
	}
	m.inputs[1].Placeholder = "1-3"
	m.inputs[2].Placeholder = "D.M, D.M.Y or YYYY-MM-DD"
	m.inputs[3].Placeholder = "e.g. 3d or 2w"
	m.inputs[0].Focus()
}

func (m *model) startEditing(row int) {
	t := m.sess.Tasks()[row]
	m.editing = true
	m.editingRow = row
	m.editingField = 0
	m.inputs = make([]textinput.Model, 4)
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
	}
	m.inputs[0].SetValue(t.Title)
	m.inputs[1].SetValue(strconv.Itoa(t.Priority))
	m.inputs[2].SetValue(t.Due)
	m.inputs[3].SetValue(t.Recurrence)
	m.inputs[0].Focus()
}

func (m *model) saveEdit() {
	title := m.inputs[0].Value()
	priority, err := strconv.Atoi(m.inputs[1].Value())
	if err != nil {
		priority = 0
	}
	due := m.inputs[2].Value()
	recurrence := m.inputs[3].Value()

	if m.editingRow == -1 {
		if title == "" {
			return
		}
		if priority < 1 || priority > 3 {
			priority = 1
		}
		m.sess.Add(title, priority, due, recurrence)
		return
	}
	m.sess.Edit(m.editingRow, title, priority, due, recurrence)
}
