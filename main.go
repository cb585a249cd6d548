package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	addPriority int
	addDue      string
)

var rootCmd = &cobra.Command{
	Use:   "task-app",
	Short: "A terminal task tracker with lists, due dates and recurring tasks",
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

var addCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a task to the default list without opening the UI",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sess := openSession()
		sess.Add(args[0], addPriority, addDue, "")

		due := "never"
		if d, ok := parseDueDate(addDue); ok {
			due = d
		}
		fmt.Printf("Task '%s' saved (due: %s).\n", args[0], due)
	},
}

var listShortCmd = &cobra.Command{
	Use:   "list-short",
	Short: "Print the open tasks of the default list",
	Run: func(cmd *cobra.Command, args []string) {
		sess := openSession()
		open := sess.OpenTasks()
		if len(open) == 0 {
			fmt.Println("All done! No open tasks.")
			return
		}
		fmt.Println("Open tasks:")
		for i, t := range open {
			fmt.Printf(" %d. %s %s %s\n", i+1, priorityMarker(t.Priority), t.Title, formatDueDate(t.Due))
		}
	},
}

func init() {
	addCmd.Flags().IntVarP(&addPriority, "priority", "p", 1, "priority 1-3 (3 = highest)")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "due date: D.M, D.M.Y or YYYY-MM-DD")
	rootCmd.AddCommand(addCmd, listShortCmd)
}

func openSession() *Session {
	cfg := loadConfig()
	return newSession(openStore(cfg.dataDir()))
}

func runTUI() {
	cfg := loadConfig()
	sess := newSession(openStore(cfg.dataDir()))

	p := tea.NewProgram(initialModel(cfg, sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func main() {
	log.SetOutput(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
