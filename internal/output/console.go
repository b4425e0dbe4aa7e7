package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/bizlens/internal/scoring"
)

// ConsoleFormatter formats audit output for console display.
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
	}
}

// statusStyle maps a health status to its display style.
func (f *ConsoleFormatter) statusStyle(status string) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	switch status {
	case scoring.StatusExcellent:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // green
	case scoring.StatusGood:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	case scoring.StatusNeedsWork:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	}
}

// Format renders the audit summary to stdout.
func (f *ConsoleFormatter) Format(summary *Summary) error {
	if f.quiet {
		return nil
	}

	for _, report := range summary.Reports {
		f.printReport(report)
	}

	f.printConclusion(summary)
	return nil
}

func (f *ConsoleFormatter) printReport(report Report) {
	errStyle := lipgloss.NewStyle()
	if f.colorize {
		errStyle = errStyle.Foreground(lipgloss.Color("9"))
	}

	if !report.Scored {
		fmt.Printf("%s %s\n", errStyle.Render("✗"), report.File)
		for _, err := range report.Errors {
			fmt.Printf("    ✘ %s\n", err.Message)
		}
		return
	}

	style := f.statusStyle(report.Result.Status)
	fmt.Printf("%s %s — %d/100 %s\n",
		style.Render("●"), report.File,
		report.Result.Overall, style.Render(report.Result.Status))

	for _, name := range scoring.CategoryNames() {
		cs, ok := report.Result.Categories[name]
		if !ok {
			continue
		}
		if !f.verbose && cs.Score == cs.MaxScore {
			continue
		}
		fmt.Printf("    %-12s %d/%d\n", name, cs.Score, cs.MaxScore)
		for _, issue := range cs.Issues {
			fmt.Printf("      ✘ %s\n", issue)
		}
		if f.verbose {
			for _, rec := range cs.Recommendations {
				fmt.Printf("      💡 %s\n", rec)
			}
		}
	}
}

func (f *ConsoleFormatter) printConclusion(summary *Summary) {
	if len(summary.Reports) == 0 {
		fmt.Println("No snapshots found")
		return
	}

	duration := time.Since(summary.StartTime)
	fmt.Printf("\n%d/%d profiles scored, average %d/100 (%v)\n",
		summary.ScoredCount(), len(summary.Reports),
		summary.AverageOverall(),
		duration.Round(time.Millisecond))
}
