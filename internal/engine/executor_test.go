package engine

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/Henrik-Peters/Yalc/internal/scan"
)

func descriptor(t *testing.T, dir, name, content string) scan.FileInfo {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return scan.FileInfo{Path: path, Size: int64(len(content)), ModTime: time.Now()}
}

func TestSimulateTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	selected := []scan.FileInfo{
		descriptor(t, dir, "a.log", "aaa"),
		descriptor(t, dir, "b.log", "bbb"),
	}

	res := Simulate{}.Execute(dir, selected)

	if len(res.Removed) != 0 || len(res.Failures) != 0 || len(res.Warnings) != 0 {
		t.Errorf("simulate result = %+v, want empty", res)
	}
	for _, f := range selected {
		if _, err := os.Stat(f.Path); err != nil {
			t.Errorf("simulate must not touch %s: %v", f.Path, err)
		}
	}
}

func TestApplyRemovesSelectedFiles(t *testing.T) {
	dir := t.TempDir()
	selected := []scan.FileInfo{
		descriptor(t, dir, "a.log", "aaa"),
		descriptor(t, dir, "b.log", "bbb"),
	}

	res := Apply{}.Execute(dir, selected)

	want := []string{filepath.Join(dir, "a.log"), filepath.Join(dir, "b.log")}
	if !reflect.DeepEqual(res.Removed, want) {
		t.Errorf("removed = %v, want %v", res.Removed, want)
	}
	if len(res.Failures) != 0 {
		t.Errorf("failures = %v, want none", res.Failures)
	}
	for _, path := range want {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("%s should be gone", path)
		}
	}
}

func TestApplyVanishedFileIsWarningNotFailure(t *testing.T) {
	dir := t.TempDir()
	gone := scan.FileInfo{Path: filepath.Join(dir, "gone.log"), Size: 1, ModTime: time.Now()}
	kept := descriptor(t, dir, "real.log", "x")

	res := Apply{}.Execute(dir, []scan.FileInfo{gone, kept})

	if len(res.Failures) != 0 {
		t.Errorf("failures = %v, want none (vanished file is a warning)", res.Failures)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Path != gone.Path {
		t.Errorf("warnings = %v, want one for %s", res.Warnings, gone.Path)
	}
	if !reflect.DeepEqual(res.Removed, []string{kept.Path}) {
		t.Errorf("removed = %v, want %v", res.Removed, []string{kept.Path})
	}
}

func TestApplyFailureDoesNotStopRemainingFiles(t *testing.T) {
	dir := t.TempDir()
	outside := t.TempDir()
	escape := descriptor(t, outside, "escape.log", "x")
	inside := descriptor(t, dir, "inside.log", "y")

	res := Apply{}.Execute(dir, []scan.FileInfo{escape, inside})

	if len(res.Failures) != 1 || res.Failures[0].Path != escape.Path {
		t.Fatalf("failures = %v, want one for %s", res.Failures, escape.Path)
	}
	if !reflect.DeepEqual(res.Removed, []string{inside.Path}) {
		t.Errorf("removed = %v, want the remaining file", res.Removed)
	}
	// The out-of-root file must still exist.
	if _, err := os.Stat(escape.Path); err != nil {
		t.Errorf("out-of-root file should be untouched: %v", err)
	}
}

func TestApplyConfinesRemovalsToTaskDirectory(t *testing.T) {
	dir := t.TempDir()
	victim := descriptor(t, t.TempDir(), "victim.log", "precious")

	res := Apply{}.Execute(dir, []scan.FileInfo{victim})

	if len(res.Removed) != 0 {
		t.Errorf("removed = %v, want none", res.Removed)
	}
	if len(res.Failures) != 1 {
		t.Fatalf("failures = %v, want one", res.Failures)
	}
	if _, err := os.Stat(victim.Path); err != nil {
		t.Errorf("file outside the task directory must survive: %v", err)
	}
}
