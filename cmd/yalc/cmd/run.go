package cmd

import (
	"fmt"

	"github.com/Henrik-Peters/Yalc/internal/engine"
	"github.com/spf13/cobra"
)

var runDryRun bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute one cleanup pass over all configured tasks",
	Long: `Runs every task from the configuration in order: scans the task
directory, evaluates the retention thresholds, and removes the eligible
files. A failing task is reported and does not stop the remaining tasks.

With --dry-run (or dry_run: true in the config) the selection is computed
and printed but nothing is removed. A per-task dry_run override can force
simulate for that task; it can never force apply when the global flag
requests simulate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return &exitError{code: exitCannotStart, msg: err.Error()}
		}

		log := newLogger(cfg)
		defer log.Sync()

		coord := &engine.Coordinator{Log: log}
		report := coord.Run(cfg.Materialize(), runDryRun || cfg.DryRun)

		printReport(report)

		if report.Failed() {
			return &exitError{code: exitRunFailed, msg: fmt.Sprintf("%d task(s) recorded failures", failedCount(report))}
		}
		return nil
	},
}

func failedCount(report *engine.RunReport) int {
	var n int
	for i := range report.Outcomes {
		if report.Outcomes[i].Failed() {
			n++
		}
	}
	return n
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "compute and print the selection without removing files")
	rootCmd.AddCommand(runCmd)
}
