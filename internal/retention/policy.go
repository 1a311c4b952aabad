// Package retention decides which matched files a cleanup task may remove.
//
// A task carries one or more policies. A file is eligible for removal as
// soon as ANY attached policy marks it eligible (union semantics): "delete
// it if it is too old OR too many OR too big", never the intersection.
package retention

import (
	"fmt"
	"time"
)

// Kind identifies which variant of a Policy is active.
type Kind int

const (
	// MaxAge marks files strictly older than a duration as eligible.
	MaxAge Kind = iota

	// MaxCount keeps only the n most recently modified files.
	MaxCount

	// MaxTotalSize keeps files newest-first until the cumulative kept
	// size would exceed a byte budget.
	MaxTotalSize
)

func (k Kind) String() string {
	switch k {
	case MaxAge:
		return "max_age"
	case MaxCount:
		return "max_count"
	case MaxTotalSize:
		return "max_total_size"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Policy is a tagged variant: exactly one threshold field is meaningful,
// selected by Kind.
type Policy struct {
	Kind Kind

	Age   time.Duration // MaxAge
	Count int           // MaxCount; 0 is legal and keeps nothing
	Bytes int64         // MaxTotalSize; 0 is legal and keeps nothing
}

// PolicyConfigError reports a malformed policy reaching the evaluator.
// Validation should have caught it earlier; rather than guess intent, the
// evaluator fails the owning task.
type PolicyConfigError struct {
	Policy Policy
	Reason string
}

func (e *PolicyConfigError) Error() string {
	return fmt.Sprintf("invalid %s policy: %s", e.Policy.Kind, e.Reason)
}

// validate rejects thresholds that no validated config can produce.
func (p Policy) validate() error {
	switch p.Kind {
	case MaxAge:
		if p.Age <= 0 {
			return &PolicyConfigError{Policy: p, Reason: "duration must be positive"}
		}
	case MaxCount:
		if p.Count < 0 {
			return &PolicyConfigError{Policy: p, Reason: "count must not be negative"}
		}
	case MaxTotalSize:
		if p.Bytes < 0 {
			return &PolicyConfigError{Policy: p, Reason: "byte budget must not be negative"}
		}
	default:
		return &PolicyConfigError{Policy: p, Reason: "unknown policy kind"}
	}
	return nil
}
