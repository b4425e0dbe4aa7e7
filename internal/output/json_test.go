package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dotcommander/bizlens/internal/scoring"
)

func TestJSONFormatterWritesFile(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "report.json")

	summary := &Summary{
		Root:      "/data/snapshots",
		StartTime: time.Now(),
		Reports: []Report{
			scoredReport("cafe.profile.json", 72),
			failedReport("broken.profile.json"),
		},
	}

	formatter := NewJSONFormatter(true, outFile)
	if err := formatter.Format(summary); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}

	var report JSONReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	if report.Header.Tool != "bizlens" {
		t.Errorf("Header.Tool = %q, want bizlens", report.Header.Tool)
	}
	if report.Summary.TotalProfiles != 2 {
		t.Errorf("TotalProfiles = %d, want 2", report.Summary.TotalProfiles)
	}
	if report.Summary.ScoredProfiles != 1 || report.Summary.FailedProfiles != 1 {
		t.Errorf("scored/failed = %d/%d, want 1/1",
			report.Summary.ScoredProfiles, report.Summary.FailedProfiles)
	}
	if len(report.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(report.Results))
	}

	scored := report.Results[0]
	if !scored.Scored || scored.Overall != 72 || scored.Status != scoring.StatusGood {
		t.Errorf("scored result = %+v, want 72/good", scored)
	}
	cs, ok := scored.Categories[scoring.CategoryProfileInfo]
	if !ok {
		t.Fatal("profileInfo category missing from JSON result")
	}
	if cs.Score != 3 || cs.MaxScore != 6 {
		t.Errorf("profileInfo = %d/%d, want 3/6", cs.Score, cs.MaxScore)
	}
	if cs.Issues == nil {
		t.Error("Issues decoded as nil, want empty array in JSON")
	}

	failed := report.Results[1]
	if failed.Scored || len(failed.Errors) != 1 {
		t.Errorf("failed result = %+v, want unscored with one error", failed)
	}
}

func TestJSONFormatterCompactOutput(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "report.json")

	summary := &Summary{StartTime: time.Now(), Reports: []Report{scoredReport("a.json", 50)}}
	if err := NewJSONFormatter(false, outFile).Format(summary); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	var report JSONReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("compact report is not valid JSON: %v", err)
	}
}
