package config

import "github.com/Henrik-Peters/Yalc/internal/retention"

// Config represents the yalc.yaml configuration file.
type Config struct {
	Version int        `yaml:"version"`
	DryRun  bool       `yaml:"dry_run,omitempty"`
	LogFile string     `yaml:"log_file,omitempty"`
	Tasks   []TaskSpec `yaml:"tasks"`
}

// TaskSpec is the yaml shape of one cleanup task.
type TaskSpec struct {
	Name      string        `yaml:"name"`
	Directory string        `yaml:"directory"`
	Pattern   string        `yaml:"pattern"`
	Recursive bool          `yaml:"recursive,omitempty"`
	DryRun    bool          `yaml:"dry_run,omitempty"`
	MissingOK bool          `yaml:"missing_ok,omitempty"`
	Retention RetentionSpec `yaml:"retention"`
}

// RetentionSpec holds the raw threshold values. Any subset may be set, but
// validation requires at least one. MaxCount is a pointer so an explicit
// "max_count: 0" (keep nothing) is distinguishable from the key being
// absent.
type RetentionSpec struct {
	MaxAge       string `yaml:"max_age,omitempty"`
	MaxCount     *int   `yaml:"max_count,omitempty"`
	MaxTotalSize string `yaml:"max_total_size,omitempty"`
}

// Task is one validated, materialized cleanup unit, the form the engine
// consumes. Immutable once built; the run coordinator owns it for the
// duration of one run.
type Task struct {
	Name      string
	Directory string
	Pattern   string
	Recursive bool
	DryRun    bool
	MissingOK bool
	Policies  []retention.Policy
}

// Materialize converts the validated config into the engine-facing task
// list, parsing thresholds into tagged policy variants. It must only be
// called after Validate has passed; values that fail to parse here were
// already rejected there.
func (c *Config) Materialize() []Task {
	tasks := make([]Task, 0, len(c.Tasks))
	for _, spec := range c.Tasks {
		tasks = append(tasks, Task{
			Name:      spec.Name,
			Directory: spec.Directory,
			Pattern:   spec.Pattern,
			Recursive: spec.Recursive,
			DryRun:    spec.DryRun,
			MissingOK: spec.MissingOK,
			Policies:  spec.Retention.policies(),
		})
	}
	return tasks
}

func (r RetentionSpec) policies() []retention.Policy {
	var ps []retention.Policy
	if r.MaxAge != "" {
		if d, err := ParseDuration(r.MaxAge); err == nil {
			ps = append(ps, retention.Policy{Kind: retention.MaxAge, Age: d})
		}
	}
	if r.MaxCount != nil {
		ps = append(ps, retention.Policy{Kind: retention.MaxCount, Count: *r.MaxCount})
	}
	if r.MaxTotalSize != "" {
		if b, err := ParseSize(r.MaxTotalSize); err == nil {
			ps = append(ps, retention.Policy{Kind: retention.MaxTotalSize, Bytes: b})
		}
	}
	return ps
}
