package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/Henrik-Peters/Yalc/internal/config"
)

// Coordinator runs all configured tasks in order and aggregates their
// outcomes. Tasks are assumed to target disjoint directories; the engine
// does not detect overlap.
type Coordinator struct {
	Log *zap.Logger
	Now func() time.Time
}

// Run performs one full pass. The effective mode for each task is
// simulate when either the global flag or the task's own override asks
// for it; dry-run is sticky and can never be downgraded back to apply.
// A failing task never short-circuits the rest.
func (c *Coordinator) Run(tasks []config.Task, globalDryRun bool) *RunReport {
	runner := &Runner{Log: c.Log, Now: c.Now}

	report := &RunReport{Outcomes: make([]TaskOutcome, 0, len(tasks))}
	for _, task := range tasks {
		dryRun := globalDryRun || task.DryRun
		report.Outcomes = append(report.Outcomes, runner.Run(task, dryRun))
	}
	return report
}

// Preview scans and evaluates every task with simulate forced, regardless
// of any flag or per-task setting. It is the risk-free entry point for
// check mode and shares the selection logic with Run, so what it reports
// is exactly what an apply run would delete.
func (c *Coordinator) Preview(tasks []config.Task) *RunReport {
	runner := &Runner{Log: c.Log, Now: c.Now}

	report := &RunReport{Outcomes: make([]TaskOutcome, 0, len(tasks))}
	for _, task := range tasks {
		report.Outcomes = append(report.Outcomes, runner.Run(task, true))
	}
	return report
}
