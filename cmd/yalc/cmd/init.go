package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initForce bool

// initTemplate is the default yalc.yaml scaffold.
const initTemplate = `# yalc configuration
version: 1

# Simulate every run: compute and print the selection, remove nothing.
# The --dry-run flag has the same effect for a single invocation.
dry_run: false

# Optional: write yalc's own diagnostics to a rotating log file.
# log_file: /var/log/yalc/yalc.log

tasks:
  - name: app-logs
    directory: /var/log/app
    pattern: "*.log"
    # recursive: true        # also scan subdirectories
    # dry_run: true          # simulate this task only
    # missing_ok: true       # absent directory is fine, not an error
    retention:
      # A file is removed when ANY threshold marks it (OR, not AND).
      max_age: 30d           # accepts Go durations ("72h") and a day suffix
      max_count: 10          # keep only the 10 newest matching files
      max_total_size: 500MB  # keep newest files up to this total size
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter yalc.yaml configuration",
	Long: `Creates a yalc.yaml file with a commented template describing one task
and all three retention thresholds.

Use --force to overwrite an existing configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath := configPath
		if !filepath.IsAbs(outPath) {
			abs, err := filepath.Abs(outPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			outPath = abs
		}

		if !initForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}
		}

		if err := os.WriteFile(outPath, []byte(initTemplate), 0644); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		info("Created %s", outPath)
		info("")
		info("Next steps:")
		info("  1. Edit the file to point at your log directories")
		info("  2. Run 'yalc check' to preview what would be removed")
		info("  3. Run 'yalc run' from a scheduler (cron, systemd timer)")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
