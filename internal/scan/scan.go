// Package scan enumerates candidate log files for a cleanup task.
//
// A scan walks one task directory and produces a descriptor for every
// regular file whose name matches the task's selection pattern. Matching
// is against the base name only; directories are never selected and
// symlinks are not followed.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/IGLOU-EU/go-wildcard"
)

// FileInfo describes one matched file at scan time. It is a point-in-time
// snapshot; the file may change or vanish before it is acted on.
type FileInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Warning records an entry that was skipped during a scan, typically
// because it could not be stat-ed. Warnings are never fatal.
type Warning struct {
	Path string
	Err  error
}

// Error is returned when the scan root itself is unusable: missing, not a
// directory, or unreadable. It fails the owning task only.
type Error struct {
	Dir string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("scanning %s: %v", e.Dir, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Scan walks dir and returns descriptors for all files whose base name
// matches pattern. With recursive false only direct children are
// considered. Entries that cannot be stat-ed are skipped and reported as
// warnings.
func Scan(dir, pattern string, recursive bool) ([]FileInfo, []Warning, error) {
	info, err := os.Lstat(dir)
	if err != nil {
		return nil, nil, &Error{Dir: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, nil, &Error{Dir: dir, Err: fmt.Errorf("not a directory")}
	}

	var files []FileInfo
	var warnings []Warning

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			warnings = append(warnings, Warning{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		// WalkDir does not follow symlinks; skip the links themselves too,
		// so a link to a file elsewhere is never selected for removal.
		if !d.Type().IsRegular() {
			return nil
		}
		if !wildcard.Match(pattern, d.Name()) {
			return nil
		}

		fi, statErr := d.Info()
		if statErr != nil {
			warnings = append(warnings, Warning{Path: path, Err: statErr})
			return nil
		}

		files = append(files, FileInfo{
			Path:    path,
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
		return nil
	})
	if walkErr != nil {
		return nil, warnings, &Error{Dir: dir, Err: walkErr}
	}

	return files, warnings, nil
}
