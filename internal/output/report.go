// Package output renders audit results as console, JSON or markdown
// reports. It is the presentation boundary: everything user-visible
// about a score passes through here.
package output

import (
	"time"

	"github.com/dotcommander/bizlens/internal/schema"
	"github.com/dotcommander/bizlens/internal/scoring"
)

// Report is the audit outcome for a single snapshot file. A file that
// failed boundary validation carries Errors and no score.
type Report struct {
	File   string
	Scored bool
	Result scoring.OverallResult
	Errors []schema.ValidationError
}

// Summary aggregates the reports of one audit run.
type Summary struct {
	Root      string
	StartTime time.Time
	Reports   []Report
}

// ScoredCount returns how many snapshots were scored.
func (s *Summary) ScoredCount() int {
	count := 0
	for _, r := range s.Reports {
		if r.Scored {
			count++
		}
	}
	return count
}

// FailedCount returns how many snapshots failed boundary validation.
func (s *Summary) FailedCount() int {
	return len(s.Reports) - s.ScoredCount()
}

// AverageOverall returns the mean overall score across scored
// snapshots, 0 when none were scored.
func (s *Summary) AverageOverall() int {
	sum, count := 0, 0
	for _, r := range s.Reports {
		if r.Scored {
			sum += r.Result.Overall
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / count
}
