package main

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Data structures
type Task struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Done       bool   `json:"done"`
	Priority   int    `json:"priority"`
	Due        string `json:"due,omitempty"`
	Recurrence string `json:"recurrence,omitempty"`

	// Origin is the list a task came from. It is only meaningful while the
	// ALL view is active and is regenerated from file membership on every
	// load, never stored.
	Origin string `json:"-"`
}

func newTask(title string, priority int, due, recurrence string) Task {
	if priority < 1 || priority > 3 {
		priority = 1
	}
	if !validRecurrence(recurrence) {
		recurrence = ""
	}
	return Task{
		ID:         uuid.NewString(),
		Title:      title,
		Priority:   priority,
		Due:        due,
		Recurrence: recurrence,
	}
}

// sanitizeTask fills in defaults for records written by older versions and
// normalizes legacy dot-format due dates to the canonical form. Reports
// whether anything had to change.
func sanitizeTask(t *Task) bool {
	dirty := false
	if t.ID == "" {
		t.ID = uuid.NewString()
		dirty = true
	}
	if t.Priority < 1 || t.Priority > 3 {
		t.Priority = 1
		dirty = true
	}
	if t.Due != "" && strings.Contains(t.Due, ".") {
		if clean, ok := parseDueDate(t.Due); ok {
			t.Due = clean
			dirty = true
		}
	}
	return dirty
}

// sortTasks applies the display order after every mutation:
// open before done, earliest due first (no due date sorts last),
// then highest priority first. Ties keep their insertion order.
func sortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Done != b.Done {
			return !a.Done
		}
		da, db := a.Due, b.Due
		if da == "" {
			da = "9999-12-31"
		}
		if db == "" {
			db = "9999-12-31"
		}
		if da != db {
			return da < db
		}
		return a.Priority > b.Priority
	})
}
