package retention

import (
	"sort"
	"time"

	"github.com/Henrik-Peters/Yalc/internal/scan"
)

// Selection is the outcome of evaluating policies over a matched file set.
// Eligible and Kept partition the matched set; both preserve the canonical
// newest-first order, so identical inputs always produce identical lists.
type Selection struct {
	Eligible []scan.FileInfo
	Kept     []scan.FileInfo

	// Provenance maps an eligible path to the policy kinds that marked it.
	Provenance map[string][]Kind
}

// Evaluate computes the set of files eligible for removal under the given
// policies. It is a pure function of its inputs: no filesystem access, no
// hidden state. Running it twice over the same descriptors yields the same
// selection, which is what makes dry-run and apply agree.
func Evaluate(files []scan.FileInfo, policies []Policy, now time.Time) (*Selection, error) {
	for _, p := range policies {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}

	sorted := sortNewestFirst(files)

	sel := &Selection{Provenance: make(map[string][]Kind)}
	eligible := make(map[string]bool, len(sorted))

	for _, p := range policies {
		for _, path := range evaluateOne(sorted, p, now) {
			if !eligible[path] {
				eligible[path] = true
			}
			sel.Provenance[path] = append(sel.Provenance[path], p.Kind)
		}
	}

	for _, f := range sorted {
		if eligible[f.Path] {
			sel.Eligible = append(sel.Eligible, f)
		} else {
			sel.Kept = append(sel.Kept, f)
		}
	}
	return sel, nil
}

// evaluateOne returns the paths a single policy marks eligible. Input must
// already be in canonical newest-first order.
func evaluateOne(sorted []scan.FileInfo, p Policy, now time.Time) []string {
	var paths []string

	switch p.Kind {
	case MaxAge:
		// Strictly older than the threshold; a file exactly at the
		// boundary is kept.
		for _, f := range sorted {
			if now.Sub(f.ModTime) > p.Age {
				paths = append(paths, f.Path)
			}
		}

	case MaxCount:
		for i := p.Count; i < len(sorted); i++ {
			paths = append(paths, sorted[i].Path)
		}

	case MaxTotalSize:
		// Once one file breaks the budget, every older file is eligible
		// too: the cumulative threshold is monotonic in age.
		var kept int64
		exceeded := false
		for _, f := range sorted {
			if !exceeded && kept+f.Size > p.Bytes {
				exceeded = true
			}
			if exceeded {
				paths = append(paths, f.Path)
			} else {
				kept += f.Size
			}
		}
	}
	return paths
}

// sortNewestFirst returns a copy ordered by modification time descending,
// with the path as tie-break so equal timestamps still order stably.
func sortNewestFirst(files []scan.FileInfo) []scan.FileInfo {
	sorted := make([]scan.FileInfo, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].ModTime.Equal(sorted[j].ModTime) {
			return sorted[i].ModTime.After(sorted[j].ModTime)
		}
		return sorted[i].Path < sorted[j].Path
	})
	return sorted
}
