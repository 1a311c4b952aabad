package engine

import (
	"errors"
	"io/fs"
	"time"

	"go.uber.org/zap"

	"github.com/Henrik-Peters/Yalc/internal/config"
	"github.com/Henrik-Peters/Yalc/internal/retention"
	"github.com/Henrik-Peters/Yalc/internal/scan"
)

// Runner executes a single cleanup task: scan, evaluate, execute.
type Runner struct {
	Log *zap.Logger

	// Now supplies the evaluation timestamp; defaults to time.Now.
	// Tests pin it for deterministic age checks.
	Now func() time.Time
}

// Run performs one task and returns its outcome. It never returns an
// error: anything that goes wrong is captured in the outcome so sibling
// tasks still run.
func (r *Runner) Run(task config.Task, dryRun bool) TaskOutcome {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}

	outcome := TaskOutcome{Task: task.Name, DryRun: dryRun}

	files, warnings, err := scan.Scan(task.Directory, task.Pattern, task.Recursive)
	outcome.Warnings = warnings
	if err != nil {
		if task.MissingOK && errors.Is(err, fs.ErrNotExist) {
			log.Debug("task directory missing, configured as okay",
				zap.String("task", task.Name), zap.String("directory", task.Directory))
			return outcome
		}
		log.Warn("scan failed",
			zap.String("task", task.Name), zap.String("directory", task.Directory), zap.Error(err))
		outcome.Err = err
		return outcome
	}

	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}

	sel, err := retention.Evaluate(files, task.Policies, now)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Selected = sel.Eligible

	log.Debug("task evaluated",
		zap.String("task", task.Name),
		zap.Int("matched", len(files)),
		zap.Int("eligible", len(sel.Eligible)),
		zap.Int("kept", len(sel.Kept)))

	var exec Executor = Apply{Log: log}
	if dryRun {
		exec = Simulate{}
	}

	res := exec.Execute(task.Directory, sel.Eligible)
	outcome.Removed = res.Removed
	outcome.Failures = res.Failures
	outcome.Warnings = append(outcome.Warnings, res.Warnings...)
	return outcome
}
