package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/bizlens/internal/schema"
	"github.com/dotcommander/bizlens/internal/snapshot"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate snapshot files against the profile schema",
	Long: `Checks snapshot documents against the embedded CUE schema without
scoring them. Useful for verifying an export pipeline before wiring it
into an audit.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(paths []string) error {
	validator := schema.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return fmt.Errorf("error loading schemas: %w", err)
	}

	failed := 0
	for _, path := range paths {
		raw, err := snapshot.LoadRaw(path)
		if err != nil {
			fmt.Printf("✗ %s\n    ✘ %v\n", path, err)
			failed++
			continue
		}

		validationErrors, err := validator.ValidateProfile(raw, path)
		if err != nil {
			return fmt.Errorf("error validating %s: %w", path, err)
		}
		if len(validationErrors) > 0 {
			fmt.Printf("✗ %s\n", path)
			for _, ve := range validationErrors {
				fmt.Printf("    ✘ %s\n", ve.Message)
			}
			failed++
			continue
		}

		if !quiet {
			fmt.Printf("✓ %s\n", path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d snapshots failed validation", failed, len(paths))
	}
	return nil
}
