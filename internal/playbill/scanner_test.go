package playbill

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

func TestScanListsPlaysInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "zeta.json", "Act1.JSON", "notes.txt", ".hidden.json")
	if err := os.Mkdir(filepath.Join(dir, "drafts.json"), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	plays, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(plays) != 2 {
		t.Fatalf("Expected 2 plays, got %d: %+v", len(plays), plays)
	}
	if plays[0].Name != "Act1" || plays[1].Name != "zeta" {
		t.Errorf("Expected [Act1 zeta], got %+v", plays)
	}
	if plays[1].Path != filepath.Join(dir, "zeta.json") {
		t.Errorf("Unexpected path %s", plays[1].Path)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("Expected error for missing directory")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.json", "a.json")

	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != filepath.Join(dir, "a.json") {
		t.Errorf("Expected first play a.json, got %s", got)
	}

	file := filepath.Join(dir, "b.json")
	if got, _ := Resolve(file); got != file {
		t.Errorf("Expected file path unchanged, got %s", got)
	}

	if _, err := Resolve(t.TempDir()); err == nil {
		t.Error("Expected error for a directory without plays")
	}
}
