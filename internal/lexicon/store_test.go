package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "approved.txt")

	if err := Save(path, []string{"VALVE", "STOP", "VALVE", "  ", "BOX"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "BOX\nSTOP\nVALVE\n" {
		t.Errorf("Expected sorted deduplicated output, got %q", string(data))
	}

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if lex.Len() != 3 {
		t.Errorf("Expected 3 entries, got %d", lex.Len())
	}
	if !lex.Contains("valve") || !lex.Contains("VALVE") {
		t.Error("Lookup must be case-insensitive")
	}
}

func TestSave_Idempotent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")

	words := []string{"ZOO", "ALPHA", "MID"}
	if err := Save(a, words); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Save(b, []string{"MID", "ZOO", "ALPHA", "ZOO"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	da, _ := os.ReadFile(a)
	db, _ := os.ReadFile(b)
	if string(da) != string(db) {
		t.Errorf("Same word set must produce byte-identical files: %q vs %q", da, db)
	}
}

func TestLoad_ToleratesMessyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messy.txt")
	if err := os.WriteFile(path, []byte("zulu\n\n  alpha  \nzulu\nalpha\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if lex.Len() != 2 {
		t.Errorf("Expected 2 entries after dedup, got %d", lex.Len())
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, ErrMissingLexicon) {
		t.Errorf("Expected ErrMissingLexicon, got %v", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(present, []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if !Exists(present) {
		t.Error("Exists should report present file")
	}
	if Exists(present, filepath.Join(dir, "absent.txt")) {
		t.Error("Exists should fail when any path is missing")
	}
}
