package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/Henrik-Peters/Yalc/internal/config"
	"github.com/Henrik-Peters/Yalc/internal/engine"
	"github.com/Henrik-Peters/Yalc/internal/logging"
)

// Exit codes. A run that recorded any failure exits distinctly from one
// that could not start at all, so schedulers can tell the two apart.
const (
	exitOK          = 0
	exitRunFailed   = 1
	exitCannotStart = 2
)

// exitError carries a process exit code through cobra's error return.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitCannotStart
}

// loadConfig reads and validates the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", configPath, err)
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger from the global flags and config.
func newLogger(cfg *config.Config) *zap.Logger {
	return logging.New(verbose, quiet, cfg.LogFile)
}

// printReport writes the per-task outcomes and the run summary to stdout.
func printReport(report *engine.RunReport) {
	var succeeded, failed int
	var bytesSelected int64

	for i := range report.Outcomes {
		o := &report.Outcomes[i]

		mode := ""
		if o.DryRun {
			mode = " (dry run)"
		}
		info("[%s]%s", o.Task, mode)

		if o.Err != nil {
			errorf("%s: %s", o.Task, o.Err)
			failed++
			continue
		}

		for _, f := range o.Selected {
			if o.DryRun {
				info("  would remove  %s (%s)", f.Path, humanize.IBytes(uint64(f.Size)))
			} else {
				detail("selected  %s (%s)", f.Path, humanize.IBytes(uint64(f.Size)))
			}
		}
		for _, path := range o.Removed {
			info("  removed  %s", path)
		}
		for _, w := range o.Warnings {
			detail("warning: %s: %s", w.Path, w.Err)
		}
		for _, f := range o.Failures {
			errorf("%s: removing %s: %s", o.Task, f.Path, f.Err)
		}

		bytesSelected += o.BytesSelected()
		if o.Failed() {
			failed++
		} else {
			succeeded++
		}
	}

	info("")
	info("Run complete: %d task(s) succeeded, %d failed, %s selected for removal.",
		succeeded, failed, humanize.IBytes(uint64(bytesSelected)))
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
