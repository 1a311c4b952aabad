package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a yalc.yaml configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", cfg.Version))
	}

	if len(cfg.Tasks) == 0 {
		errs = append(errs, "at least one task is required")
	}

	taskNames := make(map[string]bool)
	for i, spec := range cfg.Tasks {
		prefix := fmt.Sprintf("task[%d]", i)
		if spec.Name != "" {
			prefix = fmt.Sprintf("task '%s'", spec.Name)
		}

		if spec.Name == "" {
			errs = append(errs, fmt.Sprintf("%s: 'name' is required", prefix))
		} else if taskNames[spec.Name] {
			errs = append(errs, fmt.Sprintf("%s: duplicate task name '%s'", prefix, spec.Name))
		} else {
			taskNames[spec.Name] = true
		}

		if spec.Directory == "" {
			errs = append(errs, fmt.Sprintf("%s: 'directory' is required", prefix))
		} else if !filepath.IsAbs(spec.Directory) {
			errs = append(errs, fmt.Sprintf("%s: 'directory' must be an absolute path, got '%s'", prefix, spec.Directory))
		}

		if spec.Pattern == "" {
			errs = append(errs, fmt.Sprintf("%s: 'pattern' is required", prefix))
		}

		errs = append(errs, validateRetention(spec.Retention, prefix)...)
	}

	return errs
}

func validateRetention(r RetentionSpec, prefix string) []string {
	var errs []string

	if r.MaxAge == "" && r.MaxCount == nil && r.MaxTotalSize == "" {
		errs = append(errs, fmt.Sprintf("%s: at least one of 'max_age', 'max_count', 'max_total_size' is required", prefix))
	}

	if r.MaxAge != "" {
		d, err := ParseDuration(r.MaxAge)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("%s: invalid max_age '%s': %v", prefix, r.MaxAge, err))
		case d <= 0:
			errs = append(errs, fmt.Sprintf("%s: max_age must be positive, got '%s'", prefix, r.MaxAge))
		}
	}

	if r.MaxCount != nil && *r.MaxCount < 0 {
		errs = append(errs, fmt.Sprintf("%s: max_count must not be negative, got %d", prefix, *r.MaxCount))
	}

	if r.MaxTotalSize != "" {
		if _, err := ParseSize(r.MaxTotalSize); err != nil {
			errs = append(errs, fmt.Sprintf("%s: invalid max_total_size '%s': %v", prefix, r.MaxTotalSize, err))
		}
	}

	return errs
}

// ParseDuration parses a retention age. It accepts the Go duration syntax
// ("72h", "90m") plus a day suffix ("30d"), since log retention is usually
// thought of in days and time.ParseDuration stops at hours.
func ParseDuration(s string) (time.Duration, error) {
	if n, ok := strings.CutSuffix(s, "d"); ok {
		days, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid day count '%s'", n)
		}
		return time.Duration(days * 24 * float64(time.Hour)), nil
	}
	return time.ParseDuration(s)
}

// ParseSize parses a human-readable byte size ("500MB", "1.5GiB", "1024").
func ParseSize(s string) (int64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("size '%s' is too large", s)
	}
	return int64(n), nil
}
