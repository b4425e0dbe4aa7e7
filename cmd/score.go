package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotcommander/bizlens/internal/config"
	"github.com/dotcommander/bizlens/internal/output"
	"github.com/dotcommander/bizlens/internal/schema"
	"github.com/dotcommander/bizlens/internal/scoring"
)

var scoreCategory string

var scoreCmd = &cobra.Command{
	Use:   "score <file>",
	Short: "Score a single profile snapshot",
	Long: `Validates and scores one snapshot file. With --category, prints only
that category's breakdown instead of the full report.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreCategory, "category", "c", "", "Show only one category (profileInfo|reviews|photos|posts|products|services|qAndA|attributes)")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(path string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	if scoreCategory != "" && !slices.Contains(scoring.CategoryNames(), scoreCategory) {
		return fmt.Errorf("unknown category %q: valid categories are %s",
			scoreCategory, strings.Join(scoring.CategoryNames(), ", "))
	}

	validator := schema.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return fmt.Errorf("error loading schemas: %w", err)
	}
	engine := scoring.NewEngine(cfg.ScoringConfig())

	report := auditFile(validator, engine, path, path)

	if scoreCategory != "" {
		return printCategory(report, scoreCategory)
	}

	summary := &output.Summary{Root: cfg.Root, Reports: []output.Report{report}}
	outputter := output.NewOutputter(cfg)
	if err := outputter.Format(summary); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if !report.Scored {
		return fmt.Errorf("snapshot failed validation")
	}
	if cfg.FailUnder > 0 && report.Result.Overall < cfg.FailUnder {
		return fmt.Errorf("profile scored %d, below %d", report.Result.Overall, cfg.FailUnder)
	}
	return nil
}

func printCategory(report output.Report, name string) error {
	if !report.Scored {
		for _, err := range report.Errors {
			fmt.Fprintf(os.Stderr, "✘ %s\n", err.Message)
		}
		return fmt.Errorf("snapshot failed validation")
	}

	cs := report.Result.Categories[name]
	fmt.Printf("%s: %d/%d\n", name, cs.Score, cs.MaxScore)
	for _, issue := range cs.Issues {
		fmt.Printf("  ✘ %s\n", issue)
	}
	for _, rec := range cs.Recommendations {
		fmt.Printf("  💡 %s\n", rec)
	}
	return nil
}
