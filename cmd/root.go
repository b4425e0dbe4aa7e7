package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/bizlens/internal/config"
	"github.com/dotcommander/bizlens/internal/discovery"
	"github.com/dotcommander/bizlens/internal/output"
	"github.com/dotcommander/bizlens/internal/schema"
	"github.com/dotcommander/bizlens/internal/scoring"
	"github.com/dotcommander/bizlens/internal/snapshot"
)

var (
	rootPath     string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	failUnder    int
)

// exitFunc is replaceable in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "bizlens",
	Short: "Bizlens - health scoring for business directory profiles",
	Long: `Bizlens audits business-profile snapshots (JSON or YAML exports of a
directory listing) and scores each one on completeness and health:
profile info, reviews, photos, posts, products, services, Q&A and
attributes, combined into a weighted 0-100 score with issues and
recommendations per category.

By default, bizlens scans the root directory for snapshot files and
reports on all of them. Use 'score' for a single file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAudit(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Directory to scan for snapshot files (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show recommendations and full category breakdowns")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().IntVar(&failUnder, "fail-under", 0, "Exit non-zero when any profile scores below this value")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("failUnder", rootCmd.PersistentFlags().Lookup("fail-under"))
}

func runAudit() error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	fd := discovery.NewFileDiscovery(cfg.Root)
	files, err := fd.DiscoverSnapshots()
	if err != nil {
		return fmt.Errorf("error discovering snapshots: %w", err)
	}

	summary, err := auditFiles(cfg, files)
	if err != nil {
		return err
	}

	outputter := output.NewOutputter(cfg)
	if err := outputter.Format(summary); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if belowThreshold(summary, cfg.FailUnder) {
		return fmt.Errorf("one or more profiles scored below %d", cfg.FailUnder)
	}
	if summary.FailedCount() > 0 {
		return fmt.Errorf("%d snapshots failed validation", summary.FailedCount())
	}
	return nil
}

// auditFiles boundary-validates and scores each discovered snapshot.
func auditFiles(cfg *config.Config, files []discovery.File) (*output.Summary, error) {
	validator := schema.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return nil, fmt.Errorf("error loading schemas: %w", err)
	}
	engine := scoring.NewEngine(cfg.ScoringConfig())

	summary := &output.Summary{Root: cfg.Root}
	for _, file := range files {
		summary.Reports = append(summary.Reports, auditFile(validator, engine, file.Path, file.RelPath))
	}
	return summary, nil
}

func auditFile(validator *schema.Validator, engine *scoring.Engine, path, relPath string) output.Report {
	raw, err := snapshot.LoadRaw(path)
	if err != nil {
		return output.Report{
			File:   relPath,
			Errors: []schema.ValidationError{{File: relPath, Message: err.Error(), Severity: "error"}},
		}
	}

	validationErrors, err := validator.ValidateProfile(raw, relPath)
	if err != nil {
		return output.Report{
			File:   relPath,
			Errors: []schema.ValidationError{{File: relPath, Message: err.Error(), Severity: "error"}},
		}
	}
	if len(validationErrors) > 0 {
		return output.Report{File: relPath, Errors: validationErrors}
	}

	profile, err := snapshot.Load(path)
	if err != nil {
		return output.Report{
			File:   relPath,
			Errors: []schema.ValidationError{{File: relPath, Message: err.Error(), Severity: "error"}},
		}
	}

	return output.Report{
		File:   relPath,
		Scored: true,
		Result: engine.Score(profile),
	}
}

// belowThreshold reports whether any scored profile falls below the
// fail-under threshold. A threshold of 0 disables the gate.
func belowThreshold(summary *output.Summary, threshold int) bool {
	if threshold <= 0 {
		return false
	}
	for _, report := range summary.Reports {
		if report.Scored && report.Result.Overall < threshold {
			return true
		}
	}
	return false
}
