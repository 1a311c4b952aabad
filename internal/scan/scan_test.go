package scan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func paths(files []FileInfo) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestScanMatchesPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.log"), "aaa")
	writeFile(t, filepath.Join(dir, "b.log"), "bb")
	writeFile(t, filepath.Join(dir, "notes.txt"), "x")

	files, warnings, err := Scan(dir, "*.log", false)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %d, want 0", len(warnings))
	}
	if len(files) != 2 {
		t.Fatalf("matched = %v, want 2 files", paths(files))
	}
	for _, f := range files {
		if filepath.Ext(f.Path) != ".log" {
			t.Errorf("matched non-log file %s", f.Path)
		}
	}
}

func TestScanCapturesSizeAndModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	writeFile(t, path, "12345")

	mod := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatal(err)
	}

	files, _, err := Scan(dir, "*.log", false)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("matched = %d, want 1", len(files))
	}
	if files[0].Size != 5 {
		t.Errorf("size = %d, want 5", files[0].Size)
	}
	if files[0].ModTime.Sub(mod).Abs() > time.Second {
		t.Errorf("modtime = %v, want ~%v", files[0].ModTime, mod)
	}
}

func TestScanNonRecursiveSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "top.log"), "t")
	writeFile(t, filepath.Join(sub, "nested.log"), "n")

	files, _, err := Scan(dir, "*.log", false)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if got := paths(files); len(got) != 1 || got[0] != filepath.Join(dir, "top.log") {
		t.Errorf("matched = %v, want only top.log", got)
	}
}

func TestScanRecursiveIncludesDescendants(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "top.log"), "t")
	writeFile(t, filepath.Join(sub, "nested.log"), "n")

	files, _, err := Scan(dir, "*.log", true)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("matched = %v, want 2 files", paths(files))
	}
}

func TestScanMissingDirectory(t *testing.T) {
	_, _, err := Scan("/nonexistent/yalc-test-dir", "*.log", false)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	var scanErr *Error
	if !errors.As(err, &scanErr) {
		t.Fatalf("error type = %T, want *scan.Error", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap not-exist: %v", err)
	}
}

func TestScanRootNotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.log")
	writeFile(t, path, "x")

	_, _, err := Scan(path, "*.log", false)
	var scanErr *Error
	if !errors.As(err, &scanErr) {
		t.Fatalf("error = %v, want *scan.Error", err)
	}
}

func TestScanNeverSelectsDirectories(t *testing.T) {
	dir := t.TempDir()
	// A directory whose name matches the pattern must not be selected.
	if err := os.Mkdir(filepath.Join(dir, "archive.log"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "real.log"), "x")

	files, _, err := Scan(dir, "*.log", true)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if got := paths(files); len(got) != 1 || got[0] != filepath.Join(dir, "real.log") {
		t.Errorf("matched = %v, want only real.log", got)
	}
}

func TestScanDoesNotFollowSymlinks(t *testing.T) {
	dir := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "target.log"), "x")

	if err := os.Symlink(filepath.Join(outside, "target.log"), filepath.Join(dir, "link.log")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(dir, "linkdir")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files, _, err := Scan(dir, "*.log", true)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("matched = %v, want none (symlinks must not be selected)", paths(files))
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	files, warnings, err := Scan(t.TempDir(), "*.log", false)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 0 || len(warnings) != 0 {
		t.Errorf("files = %d, warnings = %d, want 0/0", len(files), len(warnings))
	}
}
