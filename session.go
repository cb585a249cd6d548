package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session holds everything one interactive run (or one CLI invocation)
// mutates: the active context, its working set, and the single-slot undo
// buffer. There is exactly one of these per process, passed explicitly.
type Session struct {
	store  *Store
	active string // list name, or aggregateList for the ALL view
	tasks  []Task

	lastDeleted *Task  // most recently deleted task, nil once consumed
	lastLogLine string // the exact log line written for it
}

func newSession(store *Store) *Session {
	s := &Session{store: store, active: defaultList}
	s.Reload()
	return s
}

func (s *Session) Active() string { return s.active }
func (s *Session) Tasks() []Task  { return s.tasks }
func (s *Session) Aggregate() bool {
	return s.active == aggregateList
}

// Lists returns every selectable context: the real lists plus the ALL view.
func (s *Session) Lists() []string {
	return append(s.store.listNames(), aggregateList)
}

// Reload re-reads the active context from disk.
func (s *Session) Reload() {
	if s.Aggregate() {
		s.tasks = s.store.loadAll()
	} else {
		s.tasks, _ = s.store.loadList(s.active)
	}
	sortTasks(s.tasks)
}

// Persist writes the working set back, splitting the ALL view into its
// per-list files.
func (s *Session) Persist() {
	if s.Aggregate() {
		s.store.saveAll(s.tasks)
	} else {
		s.store.saveList(s.active, s.tasks)
	}
}

// Add creates a task with defaults, parses the due input (failure means no
// due date, never an error) and persists.
func (s *Session) Add(title string, priority int, dueInput, recurrence string) {
	due, _ := parseDueDate(dueInput)
	t := newTask(title, priority, due, recurrence)
	if s.Aggregate() {
		t.Origin = defaultList
	}
	s.tasks = append(s.tasks, t)
	sortTasks(s.tasks)
	s.Persist()
}

// Edit rewrites the editable fields of the task at idx.
func (s *Session) Edit(idx int, title string, priority int, dueInput, recurrence string) {
	if idx < 0 || idx >= len(s.tasks) {
		return
	}
	t := &s.tasks[idx]
	if title != "" {
		t.Title = title
	}
	if priority >= 1 && priority <= 3 {
		t.Priority = priority
	}
	if due, ok := parseDueDate(dueInput); ok {
		t.Due = due
	} else if dueInput == "" {
		t.Due = ""
	}
	if validRecurrence(recurrence) {
		t.Recurrence = recurrence
	} else {
		t.Recurrence = ""
	}
	sortTasks(s.tasks)
	s.Persist()
}

// SetPriority reprioritizes the task at idx (1..3, 3 highest).
func (s *Session) SetPriority(idx, priority int) {
	if idx < 0 || idx >= len(s.tasks) || priority < 1 || priority > 3 {
		return
	}
	s.tasks[idx].Priority = priority
	sortTasks(s.tasks)
	s.Persist()
}

// Toggle flips done on the task at idx. Completing a task that carries both
// a due date and a recurrence code spawns its next occurrence; the completed
// original is kept. An unresolvable code spawns nothing, silently.
func (s *Session) Toggle(idx int) {
	if idx < 0 || idx >= len(s.tasks) {
		return
	}
	t := &s.tasks[idx]
	t.Done = !t.Done

	if t.Done {
		s.store.appendLog(logLine(*t, s.originOf(*t)))
		if t.Due != "" && t.Recurrence != "" {
			if next, ok := nextOccurrence(t.Due, t.Recurrence); ok {
				spawn := *t
				spawn.ID = uuid.NewString()
				spawn.Done = false
				spawn.Due = next
				s.tasks = append(s.tasks, spawn)
			}
		}
	}
	sortTasks(s.tasks)
	s.Persist()
}

// Delete removes the task at idx, logs it, and parks it in the undo buffer
// (overwriting whatever was there).
func (s *Session) Delete(idx int) {
	if idx < 0 || idx >= len(s.tasks) {
		return
	}
	t := s.tasks[idx]
	if t.Origin == "" {
		// Remember where it lived so Undo can put it back even after the
		// active context changes.
		t.Origin = s.originOf(t)
	}
	line := logLine(t, t.Origin)
	s.store.appendLog(line)

	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.lastDeleted = &t
	s.lastLogLine = line
	s.Persist()
}

// Undo restores the last deleted task into its original backing file and,
// if the completion log still ends with the line written for it, trims that
// line. Reports whether anything was restored.
func (s *Session) Undo() bool {
	if s.lastDeleted == nil {
		return false
	}
	t := *s.lastDeleted

	switch {
	case s.Aggregate():
		if t.Origin == "" {
			t.Origin = defaultList
		}
		s.tasks = append(s.tasks, t)
		sortTasks(s.tasks)
		s.Persist()
	case t.Origin == "" || t.Origin == s.active:
		t.Origin = ""
		s.tasks = append(s.tasks, t)
		sortTasks(s.tasks)
		s.Persist()
	default:
		// Deleted from a different context; put it straight back into its
		// origin's file.
		target, _ := s.store.loadList(t.Origin)
		restored := t
		restored.Origin = ""
		target = append(target, restored)
		sortTasks(target)
		s.store.saveList(t.Origin, target)
	}

	s.store.trimLastLog(s.lastLogLine)
	s.lastDeleted = nil
	s.lastLogLine = ""
	return true
}

// SwitchList changes the active context, creating the backing store for a
// brand-new list name.
func (s *Session) SwitchList(name string) {
	if name != aggregateList {
		s.store.createList(name)
		name = storageID(name)
	}
	s.active = name
	s.Reload()
}

// RenameList moves every task of oldName to newName and repoints the active
// context. The working set is reloaded, so origin tags in the ALL view pick
// up the new membership too.
func (s *Session) RenameList(oldName, newName string) {
	if oldName == aggregateList || strings.TrimSpace(newName) == "" {
		return
	}
	newName = storageID(newName)
	s.store.renameList(oldName, newName)
	if s.active == oldName {
		s.active = newName
	}
	s.Reload()
}

// DeleteList discards a list with all its tasks and falls back to the
// default list.
func (s *Session) DeleteList(name string) {
	if name == aggregateList || name == defaultList {
		return
	}
	s.store.deleteList(name)
	if s.Aggregate() {
		kept := s.tasks[:0]
		for _, t := range s.tasks {
			if t.Origin != name {
				kept = append(kept, t)
			}
		}
		s.tasks = kept
		return
	}
	if s.active == name {
		s.active = defaultList
		s.Reload()
	}
}

// OpenTasks returns the not-done part of the working set, in display order.
func (s *Session) OpenTasks() []Task {
	var open []Task
	for _, t := range s.tasks {
		if !t.Done {
			open = append(open, t)
		}
	}
	return open
}

// originOf resolves which list a task belongs to in the current context.
func (s *Session) originOf(t Task) string {
	if t.Origin != "" {
		return t.Origin
	}
	if s.Aggregate() {
		return defaultList
	}
	return s.active
}

// logLine renders a task's completion-log entry. The exact string is also
// what Undo later matches against.
func logLine(t Task, origin string) string {
	return fmt.Sprintf("[%s] [%s] %s", time.Now().Format("2006-01-02 15:04"), origin, t.Title)
}
