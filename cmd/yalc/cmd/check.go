package cmd

import (
	"fmt"

	"github.com/Henrik-Peters/Yalc/internal/engine"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and preview what a run would remove",
	Long: `Loads and validates the configuration, then scans and evaluates every
task with simulate forced. Regardless of any flag or config value, no
file is ever removed by check. The preview uses the same selection logic
as a real run, so against an unchanged directory tree it lists exactly
the files an apply run would delete.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return &exitError{code: exitCannotStart, msg: err.Error()}
		}

		info("Config %s: valid, %d task(s).", configPath, len(cfg.Tasks))
		info("")

		log := newLogger(cfg)
		defer log.Sync()

		coord := &engine.Coordinator{Log: log}
		report := coord.Preview(cfg.Materialize())

		printReport(report)

		if report.Failed() {
			return &exitError{code: exitRunFailed, msg: fmt.Sprintf("%d task(s) recorded failures", failedCount(report))}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
