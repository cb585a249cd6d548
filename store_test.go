package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStorageID(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Work Stuff", "Work Stuff"},
		{"a_b-c 1", "a_b-c 1"},
		{"house/garden", "housegarden"},
		{"!!!", "tasks"}, // nothing survives, fall back to the default
		{"", "tasks"},
		{"Bücher", "Bücher"},
	}
	for _, c := range cases {
		if got := storageID(c.name); got != c.want {
			t.Errorf("storageID(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestLoadListMissingAndMalformed(t *testing.T) {
	s := openStore(t.TempDir())

	tasks, status := s.loadList("nope")
	if status != loadMissing || len(tasks) != 0 {
		t.Errorf("Missing file should load empty, got %d tasks status %d", len(tasks), status)
	}

	if err := os.WriteFile(s.listPath("broken"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	tasks, status = s.loadList("broken")
	if status != loadMalformed || len(tasks) != 0 {
		t.Errorf("Malformed file should load empty, got %d tasks status %d", len(tasks), status)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openStore(t.TempDir())
	in := []Task{
		{ID: "id-1", Title: "buy milk", Priority: 2, Due: "2025-03-01", Recurrence: "1w", Origin: "view-only"},
		{ID: "id-2", Title: "call mom", Done: true, Priority: 1},
	}
	s.saveList("errands", in)

	out, status := s.loadList("errands")
	if status != loadOK {
		t.Fatalf("Expected clean load, got status %d", status)
	}
	if len(out) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(out))
	}
	if out[0].Origin != "" {
		t.Error("Origin must not survive persist; it is view-only")
	}
	in[0].Origin = ""
	if !reflect.DeepEqual(out, in) {
		t.Errorf("Round trip changed fields:\n got %+v\nwant %+v", out, in)
	}
}

func TestLoadListDefaultsMissingFields(t *testing.T) {
	s := openStore(t.TempDir())
	raw := `[{"id":"a","title":"bare","done":false}]`
	if err := os.WriteFile(s.listPath("old"), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	tasks, status := s.loadList("old")
	if status != loadOK || len(tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d status %d", len(tasks), status)
	}
	task := tasks[0]
	if task.Priority != 1 || task.Due != "" || task.Recurrence != "" {
		t.Errorf("Missing fields not defaulted: %+v", task)
	}
}

func TestListNamesAlwaysIncludesDefault(t *testing.T) {
	s := openStore(t.TempDir())
	names := s.listNames()
	if len(names) == 0 || names[0] != defaultList {
		t.Errorf("Default list missing from %v", names)
	}

	s.saveList("work", []Task{})
	s.saveList("home", []Task{})
	names = s.listNames()
	want := []string{defaultList, "home", "work"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("listNames() = %v, want %v", names, want)
	}
}

func TestLoadAllStampsOrigin(t *testing.T) {
	s := openStore(t.TempDir())
	s.saveList("work", []Task{{ID: "w1", Title: "report", Priority: 1}})
	s.saveList(defaultList, []Task{{ID: "t1", Title: "dishes", Priority: 1}})

	all := s.loadAll()
	if len(all) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(all))
	}
	origins := map[string]string{}
	for _, task := range all {
		origins[task.ID] = task.Origin
	}
	if origins["w1"] != "work" || origins["t1"] != defaultList {
		t.Errorf("Origins wrong: %v", origins)
	}
}

func TestSaveAllPartitionsByOrigin(t *testing.T) {
	s := openStore(t.TempDir())
	s.saveList("work", []Task{{ID: "w1", Title: "report", Priority: 1}})

	all := []Task{
		{ID: "w1", Title: "report", Priority: 1, Origin: "work"},
		{ID: "n1", Title: "orphan", Priority: 1}, // no origin -> default list
	}
	s.saveAll(all)

	work, _ := s.loadList("work")
	if len(work) != 1 || work[0].ID != "w1" {
		t.Errorf("work list wrong: %+v", work)
	}
	def, _ := s.loadList(defaultList)
	if len(def) != 1 || def[0].ID != "n1" {
		t.Errorf("Orphan should land in the default list: %+v", def)
	}
}

func TestSaveAllRewritesEmptiedListsAsEmpty(t *testing.T) {
	s := openStore(t.TempDir())
	s.saveList("work", []Task{{ID: "w1", Title: "report", Priority: 1}})

	s.saveAll([]Task{}) // every task removed in the ALL view

	if _, err := os.Stat(s.listPath("work")); err != nil {
		t.Fatalf("Emptied list file should still exist: %v", err)
	}
	work, status := s.loadList("work")
	if status != loadOK || len(work) != 0 {
		t.Errorf("Emptied list should load as empty, got %d status %d", len(work), status)
	}
}

func TestMigrateLegacySingleFile(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "tasks.json")
	if err := os.WriteFile(legacy, []byte(`[{"title":"old","done":false}]`), 0644); err != nil {
		t.Fatal(err)
	}

	s := openStore(dir)
	if _, err := os.Stat(legacy); !os.IsNotExist(err) {
		t.Error("Legacy file should be gone after migration")
	}
	tasks, status := s.loadList(defaultList)
	if status != loadOK || len(tasks) != 1 || tasks[0].Title != "old" {
		t.Errorf("Migrated tasks wrong: %+v status %d", tasks, status)
	}
}

func TestMigrateLegacyKeepsExistingTarget(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "lists"), 0755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "lists", "tasks.json")
	if err := os.WriteFile(target, []byte(`[{"title":"new","done":false}]`), 0644); err != nil {
		t.Fatal(err)
	}
	legacy := filepath.Join(dir, "tasks.json")
	if err := os.WriteFile(legacy, []byte(`[{"title":"old","done":false}]`), 0644); err != nil {
		t.Fatal(err)
	}

	s := openStore(dir)
	tasks, _ := s.loadList(defaultList)
	if len(tasks) != 1 || tasks[0].Title != "new" {
		t.Errorf("Migration must not clobber an existing per-list file: %+v", tasks)
	}
	if _, err := os.Stat(legacy); err != nil {
		t.Error("Legacy file should be left in place when the target exists")
	}
}

func TestRenameList(t *testing.T) {
	s := openStore(t.TempDir())
	s.saveList("A", []Task{{ID: "1", Title: "one", Priority: 1}})

	s.renameList("A", "B")

	if _, err := os.Stat(s.listPath("A")); !os.IsNotExist(err) {
		t.Error("Old backing file should be removed")
	}
	tasks, _ := s.loadList("B")
	if len(tasks) != 1 || tasks[0].Title != "one" {
		t.Errorf("Tasks did not move: %+v", tasks)
	}
}

func TestTrimLastLog(t *testing.T) {
	s := openStore(t.TempDir())
	s.appendLog("[2025-01-01 10:00] [tasks] first")
	s.appendLog("[2025-01-01 10:05] [tasks] second")

	if s.trimLastLog("[2025-01-01 10:00] [tasks] first") {
		t.Error("Trim must refuse a line that is not the last one")
	}
	if !s.trimLastLog("[2025-01-01 10:05] [tasks] second") {
		t.Error("Trim should remove the matching last line")
	}

	data, err := os.ReadFile(s.logPath())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[2025-01-01 10:00] [tasks] first\n" {
		t.Errorf("Log content wrong: %q", string(data))
	}
}
