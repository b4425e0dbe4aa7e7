package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/bizlens/internal/config"
	"github.com/dotcommander/bizlens/internal/discovery"
	"github.com/dotcommander/bizlens/internal/output"
	"github.com/dotcommander/bizlens/internal/scoring"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show health summary across all profiles",
	Long: `Scores every discovered snapshot and displays an aggregate report:
status distribution, the weakest categories and the lowest-scoring
profiles.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSummary(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// healthSummary holds aggregated data for the summary report.
type healthSummary struct {
	TotalProfiles int
	StatusCounts  map[string]int
	CategoryPcts  map[string][]float64
	LowestScoring []scoredProfile
}

// scoredProfile pairs a profile with its score for sorting.
type scoredProfile struct {
	File    string
	Overall int
	Status  string
}

func runSummary() error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	fd := discovery.NewFileDiscovery(cfg.Root)
	files, err := fd.DiscoverSnapshots()
	if err != nil {
		return fmt.Errorf("error discovering snapshots: %w", err)
	}

	auditSummary, err := auditFiles(cfg, files)
	if err != nil {
		return err
	}

	printHealthSummary(aggregateHealth(auditSummary))
	return nil
}

func aggregateHealth(auditSummary *output.Summary) *healthSummary {
	summary := &healthSummary{
		StatusCounts: make(map[string]int),
		CategoryPcts: make(map[string][]float64),
	}

	for _, report := range auditSummary.Reports {
		if !report.Scored {
			continue
		}
		summary.TotalProfiles++
		summary.StatusCounts[report.Result.Status]++
		summary.LowestScoring = append(summary.LowestScoring, scoredProfile{
			File:    report.File,
			Overall: report.Result.Overall,
			Status:  report.Result.Status,
		})

		for name, cs := range report.Result.Categories {
			pct := 0.0
			if cs.MaxScore > 0 {
				pct = float64(cs.Score) / float64(cs.MaxScore) * 100
			}
			summary.CategoryPcts[name] = append(summary.CategoryPcts[name], pct)
		}
	}

	sort.Slice(summary.LowestScoring, func(i, j int) bool {
		return summary.LowestScoring[i].Overall < summary.LowestScoring[j].Overall
	})

	return summary
}

// summaryStyles holds the styles used in the summary report.
type summaryStyles struct {
	header    lipgloss.Style
	excellent lipgloss.Style
	good      lipgloss.Style
	needsWork lipgloss.Style
	poor      lipgloss.Style
	dim       lipgloss.Style
}

func newSummaryStyles() summaryStyles {
	return summaryStyles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		excellent: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		good:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		needsWork: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		poor:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func printHealthSummary(summary *healthSummary) {
	styles := newSummaryStyles()

	fmt.Println()
	fmt.Println(styles.header.Render("PROFILE HEALTH SUMMARY"))
	fmt.Printf("Profiles scored: %d\n\n", summary.TotalProfiles)

	printStatusDistribution(summary, styles)
	printWeakestCategories(summary, styles)
	printLowestScoring(summary, styles)
	fmt.Println()
}

func printStatusDistribution(summary *healthSummary, styles summaryStyles) {
	fmt.Println(styles.header.Render("STATUS DISTRIBUTION"))

	rows := []struct {
		label  string
		status string
		style  lipgloss.Style
		color  string
	}{
		{"excellent (85-100)", scoring.StatusExcellent, styles.excellent, "10"},
		{"good      (70-84) ", scoring.StatusGood, styles.good, "12"},
		{"needs_work(50-69) ", scoring.StatusNeedsWork, styles.needsWork, "3"},
		{"poor      (<50)   ", scoring.StatusPoor, styles.poor, "9"},
	}

	for _, row := range rows {
		count := summary.StatusCounts[row.status]
		fmt.Printf("  %s: %-4d %s\n",
			row.style.Render(row.label), count,
			renderBar(count, summary.TotalProfiles, row.color))
	}
	fmt.Println()
}

func printWeakestCategories(summary *healthSummary, styles summaryStyles) {
	fmt.Println(styles.header.Render("WEAKEST CATEGORIES"))

	type categoryAvg struct {
		name string
		avg  float64
	}
	var averages []categoryAvg
	for _, name := range scoring.CategoryNames() {
		pcts := summary.CategoryPcts[name]
		if len(pcts) == 0 {
			continue
		}
		sum := 0.0
		for _, pct := range pcts {
			sum += pct
		}
		averages = append(averages, categoryAvg{name, sum / float64(len(pcts))})
	}
	sort.Slice(averages, func(i, j int) bool { return averages[i].avg < averages[j].avg })

	for i, ca := range averages {
		if i >= 5 {
			break
		}
		fmt.Printf("  %s %-12s %5.1f%%\n", styles.dim.Render(fmt.Sprintf("%d.", i+1)), ca.name, ca.avg)
	}
	fmt.Println()
}

func printLowestScoring(summary *healthSummary, styles summaryStyles) {
	fmt.Println(styles.header.Render("LOWEST SCORING PROFILES"))

	for i, profile := range summary.LowestScoring {
		if i >= 5 {
			break
		}
		style := styles.poor
		switch profile.Status {
		case scoring.StatusExcellent:
			style = styles.excellent
		case scoring.StatusGood:
			style = styles.good
		case scoring.StatusNeedsWork:
			style = styles.needsWork
		}
		truncated := profile.File
		if len(truncated) > 40 {
			truncated = "..." + truncated[len(truncated)-37:]
		}
		fmt.Printf("  %s %-40s %s %3d\n",
			styles.dim.Render(fmt.Sprintf("%d.", i+1)),
			truncated,
			style.Render(fmt.Sprintf("%-10s", profile.Status)),
			profile.Overall)
	}
}

func renderBar(count, total int, color string) string {
	if total == 0 {
		return ""
	}
	barWidth := 10
	filled := (count * barWidth) / total
	if count > 0 && filled == 0 {
		filled = 1
	}
	bar := ""
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	for i := 0; i < filled; i++ {
		bar += style.Render("█")
	}
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	for i := filled; i < barWidth; i++ {
		bar += dimStyle.Render("░")
	}
	return bar
}
