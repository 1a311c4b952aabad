package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Henrik-Peters/Yalc/internal/scan"
)

// ExecResult is what an execution mode did with a deletion plan.
type ExecResult struct {
	Removed  []string
	Failures []FileFailure
	Warnings []scan.Warning
}

// Executor is the execution mode for a task's deletion plan. Simulate and
// Apply share the same plan input, which is what guarantees dry-run/apply
// parity: the decision is made before either mode sees it.
type Executor interface {
	Execute(root string, selected []scan.FileInfo) ExecResult
}

// Simulate records the plan without touching the filesystem.
type Simulate struct{}

func (Simulate) Execute(root string, selected []scan.FileInfo) ExecResult {
	return ExecResult{}
}

// Apply removes each selected file. A failure on one file is recorded and
// does not stop the remaining files. A file that vanished between scan and
// removal is a warning, not a failure: another process got there first.
type Apply struct {
	Log *zap.Logger
}

func (a Apply) Execute(root string, selected []scan.FileInfo) ExecResult {
	log := a.Log
	if log == nil {
		log = zap.NewNop()
	}

	var res ExecResult
	for _, f := range selected {
		if err := confine(root, f.Path); err != nil {
			res.Failures = append(res.Failures, FileFailure{Path: f.Path, Err: err})
			continue
		}
		err := os.Remove(f.Path)
		switch {
		case err == nil:
			log.Debug("removed file", zap.String("path", f.Path), zap.Int64("size", f.Size))
			res.Removed = append(res.Removed, f.Path)
		case os.IsNotExist(err):
			log.Debug("file already gone", zap.String("path", f.Path))
			res.Warnings = append(res.Warnings, scan.Warning{Path: f.Path, Err: err})
		default:
			log.Warn("removal failed", zap.String("path", f.Path), zap.Error(err))
			res.Failures = append(res.Failures, FileFailure{Path: f.Path, Err: err})
		}
	}
	return res
}

// confine verifies that path lives under the task directory, so a removal
// can never reach outside it even if a descriptor was somehow tampered
// with.
func confine(root, path string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving task directory: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	// Trailing separator avoids prefix-matching "/var/log2" for "/var/log".
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return fmt.Errorf("path '%s' is outside task directory '%s'", path, root)
	}
	return nil
}
