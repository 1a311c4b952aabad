// Package engine runs cleanup tasks: scan, evaluate, then simulate or
// apply the resulting deletion plan. One bad task never prevents the
// others from running; every error ends up as data in the run report.
package engine

import (
	"github.com/Henrik-Peters/Yalc/internal/scan"
)

// FileFailure records a failed removal of one selected file.
type FileFailure struct {
	Path string
	Err  error
}

func (f FileFailure) Error() string {
	return f.Path + ": " + f.Err.Error()
}

func (f FileFailure) Unwrap() error {
	return f.Err
}

// TaskOutcome holds the result of one task. Selected is what the policies
// chose; Removed is what Apply actually deleted (equal to the selected
// paths unless a removal failed or the mode was simulate).
type TaskOutcome struct {
	Task     string
	Selected []scan.FileInfo
	Removed  []string
	Failures []FileFailure
	Warnings []scan.Warning

	// Err is a task-level failure (unreadable directory, malformed
	// policy). When set, Selected and Removed are empty.
	Err error

	// DryRun is true when the task ran in simulate mode.
	DryRun bool
}

// Failed reports whether the task recorded any task-level or per-file
// failure. Warnings alone do not fail a task.
func (o *TaskOutcome) Failed() bool {
	return o.Err != nil || len(o.Failures) > 0
}

// BytesSelected sums the sizes of all selected files.
func (o *TaskOutcome) BytesSelected() int64 {
	var total int64
	for _, f := range o.Selected {
		total += f.Size
	}
	return total
}

// RunReport aggregates the outcomes of one full pass, in configuration
// order.
type RunReport struct {
	Outcomes []TaskOutcome
}

// Failed reports whether any task in the run failed.
func (r *RunReport) Failed() bool {
	for i := range r.Outcomes {
		if r.Outcomes[i].Failed() {
			return true
		}
	}
	return false
}
