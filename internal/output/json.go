package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/bizlens/internal/scoring"
)

// JSONFormatter formats audit output as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter. An empty outputFile
// writes to stdout.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{indent: indent, outputFile: outputFile}
}

// JSONReport is the complete JSON report structure.
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Results []JSONResult `json:"results"`
}

// JSONHeader contains report metadata.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	TotalProfiles  int    `json:"total_profiles"`
	ScoredProfiles int    `json:"scored_profiles"`
	FailedProfiles int    `json:"failed_profiles"`
	AverageOverall int    `json:"average_overall"`
	Duration       string `json:"duration"`
}

// JSONResult is a single snapshot's audit result.
type JSONResult struct {
	File       string                           `json:"file"`
	Scored     bool                             `json:"scored"`
	Overall    int                              `json:"overall,omitempty"`
	Status     string                           `json:"status,omitempty"`
	Categories map[string]scoring.CategoryScore `json:"categories,omitempty"`
	Errors     []string                         `json:"errors,omitempty"`
}

// Format renders the audit summary as JSON.
func (f *JSONFormatter) Format(summary *Summary) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      "bizlens",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			TotalProfiles:  len(summary.Reports),
			ScoredProfiles: summary.ScoredCount(),
			FailedProfiles: summary.FailedCount(),
			AverageOverall: summary.AverageOverall(),
			Duration:       time.Since(summary.StartTime).Round(time.Millisecond).String(),
		},
		Results: make([]JSONResult, len(summary.Reports)),
	}

	for i, r := range summary.Reports {
		result := JSONResult{
			File:   r.File,
			Scored: r.Scored,
		}
		if r.Scored {
			result.Overall = r.Result.Overall
			result.Status = r.Result.Status
			result.Categories = r.Result.Categories
		}
		for _, err := range r.Errors {
			result.Errors = append(result.Errors, err.Message)
		}
		report.Results[i] = result
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
	} else {
		fmt.Println(string(jsonBytes))
	}

	return nil
}
