package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

const (
	defaultList   = "tasks"
	aggregateList = "ALL" // virtual view over every list, never stored
	listExt       = ".json"
	logFileName   = "done_log.txt"
	icsFileName   = "tasks.ics"
)

// loadStatus tags how a list file was read. The TUI never surfaces the
// difference (a broken file just shows as an empty list), but the tag keeps
// the silent-degrade paths testable.
type loadStatus int

const (
	loadOK loadStatus = iota
	loadMissing
	loadMalformed
)

// Store owns the per-list storage files under a single data directory.
type Store struct {
	dir string // e.g. ~/.config/task-app
}

func openStore(dir string) *Store {
	s := &Store{dir: dir}
	if err := os.MkdirAll(s.listDir(), 0755); err != nil {
		log.Printf("Warning: cannot create data dir %s: %v", s.listDir(), err)
	}
	s.migrateLegacy()
	return s
}

func (s *Store) listDir() string { return filepath.Join(s.dir, "lists") }
func (s *Store) logPath() string { return filepath.Join(s.dir, logFileName) }
func (s *Store) icsPath() string { return filepath.Join(s.dir, icsFileName) }

func (s *Store) listPath(name string) string {
	return filepath.Join(s.listDir(), storageID(name)+listExt)
}

// storageID derives the filesystem-safe identifier for a list name:
// alphanumerics, space, hyphen and underscore survive, everything else is
// stripped. An empty result falls back to the default list id. Two names
// that sanitize identically share a file; that collision is accepted.
func storageID(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	id := strings.TrimSpace(b.String())
	if id == "" {
		return defaultList
	}
	return id
}

// migrateLegacy moves a pre-lists tasks.json into the per-list layout. The
// rename is verbatim; field repair happens uniformly at load time.
func (s *Store) migrateLegacy() {
	legacy := filepath.Join(s.dir, defaultList+listExt)
	target := s.listPath(defaultList)
	if _, err := os.Stat(legacy); err != nil {
		return
	}
	if _, err := os.Stat(target); err == nil {
		return
	}
	if err := os.Rename(legacy, target); err != nil {
		log.Printf("Warning: legacy store migration failed: %v", err)
	}
}

// listNames enumerates the known lists from their backing files. The default
// list is always present even before its file exists, so there is always a
// place to put new tasks.
func (s *Store) listNames() []string {
	names := []string{defaultList}
	seen := map[string]bool{defaultList: true}

	entries, err := os.ReadDir(s.listDir())
	if err != nil {
		return names
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), listExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), listExt)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names[1:])
	return names
}

// loadList reads one list's tasks. A missing file is an empty list, and so
// is a file that doesn't parse; neither is an error to the caller.
func (s *Store) loadList(name string) ([]Task, loadStatus) {
	data, err := os.ReadFile(s.listPath(name))
	if os.IsNotExist(err) {
		return []Task{}, loadMissing
	}
	if err != nil {
		log.Printf("Warning: cannot read list %s: %v", name, err)
		return []Task{}, loadMalformed
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		log.Printf("Warning: list %s is malformed, treating as empty: %v", name, err)
		return []Task{}, loadMalformed
	}

	dirty := false
	for i := range tasks {
		if sanitizeTask(&tasks[i]) {
			dirty = true
		}
	}
	if dirty {
		s.saveList(name, tasks)
	}
	return tasks, loadOK
}

// saveList rewrites one list's file with the full collection. Origin is a
// view-only annotation and is excluded by its json tag.
func (s *Store) saveList(name string, tasks []Task) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		log.Printf("Warning: cannot encode list %s: %v", name, err)
		return
	}
	if err := os.WriteFile(s.listPath(name), data, 0644); err != nil {
		log.Printf("Warning: cannot write list %s: %v", name, err)
	}
}

// loadAll materializes the ALL view: every list's tasks in one collection,
// each stamped with the list it came from.
func (s *Store) loadAll() []Task {
	var all []Task
	for _, name := range s.listNames() {
		tasks, _ := s.loadList(name)
		for i := range tasks {
			tasks[i].Origin = name
		}
		all = append(all, tasks...)
	}
	return all
}

// saveAll decomposes the ALL view back into per-list files, partitioning by
// origin. Tasks without an origin land in the default list. Every known list
// is rewritten, so a list emptied in the ALL view stays as an empty file
// rather than silently disappearing.
func (s *Store) saveAll(tasks []Task) {
	parts := make(map[string][]Task)
	for _, name := range s.listNames() {
		parts[name] = []Task{}
	}
	for _, t := range tasks {
		origin := t.Origin
		if origin == "" {
			origin = defaultList
		}
		parts[origin] = append(parts[origin], t)
	}
	for name, part := range parts {
		s.saveList(name, part)
	}
}

// createList makes a list selectable by writing its (empty) backing file.
// Adding to an unknown name goes through here too.
func (s *Store) createList(name string) {
	if _, err := os.Stat(s.listPath(name)); err == nil {
		return
	}
	s.saveList(name, []Task{})
}

// renameList moves every task of one list to another name and drops the old
// backing file.
func (s *Store) renameList(oldName, newName string) {
	tasks, _ := s.loadList(oldName)
	s.saveList(newName, tasks)
	if storageID(oldName) != storageID(newName) {
		if err := os.Remove(s.listPath(oldName)); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: cannot remove old list %s: %v", oldName, err)
		}
	}
}

// deleteList discards a list's entire backing store.
func (s *Store) deleteList(name string) {
	if err := os.Remove(s.listPath(name)); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: cannot delete list %s: %v", name, err)
	}
}

// appendLog adds one line to the append-only completion log.
func (s *Store) appendLog(line string) {
	f, err := os.OpenFile(s.logPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("Warning: cannot open completion log: %v", err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		log.Printf("Warning: cannot append to completion log: %v", err)
	}
}

// trimLastLog removes the final log line, but only if it is exactly the line
// the caller expects. Anything else (interleaved completions, hand-edited
// log) is a no-op rather than a corruption.
func (s *Store) trimLastLog(expect string) bool {
	data, err := os.ReadFile(s.logPath())
	if err != nil {
		return false
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 0 || lines[len(lines)-1] != expect {
		return false
	}
	lines = lines[:len(lines)-1]
	out := ""
	if len(lines) > 0 {
		out = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(s.logPath(), []byte(out), 0644); err != nil {
		log.Printf("Warning: cannot rewrite completion log: %v", err)
		return false
	}
	return true
}
