package output

import (
	"fmt"
	"time"

	"github.com/dotcommander/bizlens/internal/config"
)

// Formatter renders an audit summary in one output format.
type Formatter interface {
	Format(summary *Summary) error
}

// Outputter selects and runs the formatter for the configured format.
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter.
func NewOutputter(cfg *config.Config) *Outputter {
	return &Outputter{config: cfg}
}

// Format renders the audit summary using the configured format.
func (o *Outputter) Format(summary *Summary) error {
	if summary.StartTime.IsZero() {
		summary.StartTime = time.Now()
	}
	summary.Root = o.config.Root

	var formatter Formatter
	switch o.config.Format {
	case "console":
		formatter = NewConsoleFormatter(o.config.Quiet, o.config.Verbose)
	case "json":
		formatter = NewJSONFormatter(true, o.config.Output)
	case "markdown":
		formatter = NewMarkdownFormatter(o.config.Verbose, o.config.Output)
	default:
		return fmt.Errorf("unsupported format: %s", o.config.Format)
	}

	return formatter.Format(summary)
}
