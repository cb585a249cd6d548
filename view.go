package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func (m *model) taskRows() []table.Row {
	rows := []table.Row{}
	for _, t := range m.sess.Tasks() {
		checkbox := "[ ]"
		if t.Done {
			checkbox = "[✔]"
		}

		due := formatDueDate(t.Due)
		switch {
		case strings.HasPrefix(due, "Overdue"):
			due = overdueStyle.Render(due)
		case due == "TODAY" || due == "Tomorrow":
			due = dueSoonStyle.Render(due)
		}

		marker := priorityMarker(t.Priority)
		switch t.Priority {
		case 3:
			marker = priorityHighStyle.Render(marker)
		case 2:
			marker = priorityMedStyle.Render(marker)
		}

		row := table.Row{checkbox, marker, t.Title, due, t.Recurrence}
		if m.sess.Aggregate() {
			row = append(row, t.Origin)
		}
		rows = append(rows, row)
	}
	return rows
}

func (m model) View() string {
	if m.focusActive {
		return m.focusView()
	}
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("  TERMINAL TASKS") + "\n")
	b.WriteString(m.listTabs() + "\n\n")

	tasks := m.sess.Tasks()
	done := 0
	for _, t := range tasks {
		if t.Done {
			done++
		}
	}
	if len(tasks) > 0 {
		b.WriteString(fmt.Sprintf("  Progress: %s\n\n", progressBar(done, len(tasks), 30)))
	} else {
		b.WriteString(dimStyle.Render("  (list is empty - press 'a')") + "\n\n")
	}

	b.WriteString(m.table.View() + "\n")

	if m.editing {
		b.WriteString("\n" + m.formView())
	} else if m.prompting != promptNone {
		label := map[int]string{
			promptNewList:      "New list:",
			promptRenameList:   "Rename list to:",
			promptFocusMinutes: "Focus minutes:",
		}[m.prompting]
		b.WriteString(fmt.Sprintf("\n  %s %s\n", label, m.promptInput.View()))
	} else if m.confirmDelete {
		what := m.deleteTarget
		if m.deletingList {
			what = "list '" + what + "' and all its tasks"
		}
		b.WriteString("\n" + overdueStyle.Render(fmt.Sprintf("  Delete %s? (y/n)", what)) + "\n")
	}

	if m.statusMsg != "" && time.Now().Before(m.statusExpiry) {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.statusColor))
		b.WriteString("\n" + style.Render("  "+m.statusMsg))
	}

	b.WriteString("\n" + helpStyle.Render("  [space] toggle  [a]dd  [e]dit  [d]elete  [u]ndo  [f]ocus  [tab] lists  [?] help  [q]uit"))
	return b.String()
}

func (m model) listTabs() string {
	var tabs []string
	for _, name := range m.sess.Lists() {
		if name == m.sess.Active() {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	return "  " + strings.Join(tabs, " ")
}

func (m model) formView() string {
	labels := []string{"Title:", "Priority:", "Due:", "Repeat:"}
	var b strings.Builder
	if m.editingRow == -1 {
		b.WriteString(headerStyle.Render("  New task") + "\n")
	} else {
		b.WriteString(headerStyle.Render("  Edit task") + "\n")
	}
	for i, in := range m.inputs {
		b.WriteString(fmt.Sprintf("  %-9s %s\n", labels[i], in.View()))
	}
	b.WriteString(helpStyle.Render("  [tab] next field  [enter] save  [esc] cancel") + "\n")
	return b.String()
}

func (m model) focusView() string {
	remaining := time.Until(m.focusEnd)
	if remaining < 0 {
		remaining = 0
	}
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60

	timer := fmt.Sprintf("[ %02d:%02d ]", mins, secs)
	if remaining > time.Minute {
		timer = focusTimerStyle.Render(timer)
	} else {
		timer = focusLowStyle.Render(timer)
	}

	width := m.getSafeWidth()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n\n")
	b.WriteString(center.Render(headerStyle.Render(fmt.Sprintf("F O C U S   M O D E   (%d min)", int(m.focusTotal.Minutes())))) + "\n\n\n")
	b.WriteString(center.Render(focusTitleStyle.Render(m.focusTask)) + "\n\n")
	b.WriteString(center.Render(timer) + "\n\n\n")
	b.WriteString(center.Render(dimStyle.Render("press 'q' or 'f' to stop")))
	return b.String()
}

func (m model) helpView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("  Keybindings") + "\n\n")
	keys := [][2]string{
		{"↑/↓, j/k", "navigate"},
		{"space, t", "toggle done"},
		{"1-3", "set priority (3 = highest)"},
		{"a", "add task"},
		{"e", "edit task"},
		{"d", "delete task (y/n to confirm)"},
		{"u", "undo last delete"},
		{"f", "focus timer for selected task"},
		{"tab / shift+tab", "cycle lists (ALL = every list)"},
		{"n", "new list"},
		{"r", "rename current list"},
		{"X", "delete current list"},
		{"x", "export calendar (.ics)"},
		{"c", "copy task title"},
		{"q", "quit"},
	}
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %-18s %s\n", k[0], k[1]))
	}
	b.WriteString("\n" + helpStyle.Render("  [?] or [esc] to close"))
	return b.String()
}
