package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/bizlens/internal/scoring"
)

// MarkdownFormatter formats audit output as Markdown.
type MarkdownFormatter struct {
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter. An empty
// outputFile writes to stdout.
func NewMarkdownFormatter(verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{verbose: verbose, outputFile: outputFile}
}

// Format renders the audit summary as Markdown.
func (f *MarkdownFormatter) Format(summary *Summary) error {
	var builder strings.Builder

	builder.WriteString("# Profile Health Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	if summary.Root != "" {
		builder.WriteString(fmt.Sprintf("**Root:** %s\n\n", summary.Root))
	}

	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Value |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Profiles Audited | %d |\n", len(summary.Reports)))
	builder.WriteString(fmt.Sprintf("| Scored | %d |\n", summary.ScoredCount()))
	builder.WriteString(fmt.Sprintf("| Failed Validation | %d |\n", summary.FailedCount()))
	builder.WriteString(fmt.Sprintf("| Average Score | %d/100 |\n", summary.AverageOverall()))
	builder.WriteString("\n")

	for _, report := range summary.Reports {
		f.writeReport(&builder, report)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(builder.String()), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
	} else {
		fmt.Print(builder.String())
	}
	return nil
}

func (f *MarkdownFormatter) writeReport(builder *strings.Builder, report Report) {
	builder.WriteString(fmt.Sprintf("## %s\n\n", report.File))

	if !report.Scored {
		builder.WriteString("**Status:** validation failed\n\n")
		for _, err := range report.Errors {
			builder.WriteString(fmt.Sprintf("- %s\n", err.Message))
		}
		builder.WriteString("\n")
		return
	}

	builder.WriteString(fmt.Sprintf("**Score:** %d/100 — `%s`\n\n", report.Result.Overall, report.Result.Status))
	builder.WriteString("| Category | Score | Issues |\n")
	builder.WriteString("|----------|-------|--------|\n")
	for _, name := range scoring.CategoryNames() {
		cs, ok := report.Result.Categories[name]
		if !ok {
			continue
		}
		builder.WriteString(fmt.Sprintf("| %s | %d/%d | %s |\n",
			name, cs.Score, cs.MaxScore, strings.Join(cs.Issues, "; ")))
	}
	builder.WriteString("\n")

	if f.verbose {
		recommendations := collectRecommendations(report.Result)
		if len(recommendations) > 0 {
			builder.WriteString("### Recommendations\n\n")
			for _, rec := range recommendations {
				builder.WriteString(fmt.Sprintf("- %s\n", rec))
			}
			builder.WriteString("\n")
		}
	}
}

func collectRecommendations(result scoring.OverallResult) []string {
	var recommendations []string
	for _, name := range scoring.CategoryNames() {
		cs, ok := result.Categories[name]
		if !ok {
			continue
		}
		recommendations = append(recommendations, cs.Recommendations...)
	}
	return recommendations
}
