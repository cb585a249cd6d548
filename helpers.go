package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	tabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("236")).
			PaddingLeft(1).
			PaddingRight(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			PaddingLeft(1).
			PaddingRight(1)

	priorityHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // Red
	priorityMedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true) // Yellow

	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dueSoonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))

	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	focusTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	focusTimerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	focusLowStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

func showStatus(msg string, color string) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{message: msg, color: color}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// priorityMarker renders the !!/!!! urgency column.
func priorityMarker(p int) string {
	switch p {
	case 3:
		return "!!!"
	case 2:
		return " !!"
	default:
		return "   "
	}
}

// progressBar renders the done/total bar from the header.
func progressBar(done, total, width int) string {
	if total == 0 {
		return ""
	}
	percent := float64(done) / float64(total)
	filled := int(float64(width) * percent)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := overdueStyle
	if percent >= 0.5 {
		style = focusTimerStyle
	}
	return fmt.Sprintf("%s %d%%", style.Render("["+bar+"]"), int(percent*100))
}
