package scoring

import (
	"fmt"

	"github.com/dotcommander/bizlens/internal/snapshot"
)

const maxServicesScore = 3

// ServicesEvaluator scores the service list: presence plus description
// completeness. Service descriptions resolve through the three
// representations in snapshot.Service.ResolvedDescription.
type ServicesEvaluator struct{}

// NewServicesEvaluator creates a new ServicesEvaluator.
func NewServicesEvaluator() *ServicesEvaluator {
	return &ServicesEvaluator{}
}

// Name returns the category identifier.
func (e *ServicesEvaluator) Name() string { return CategoryServices }

// Evaluate scores the service signals.
func (e *ServicesEvaluator) Evaluate(p *snapshot.Profile) CategoryScore {
	cs := newCategoryScore(maxServicesScore)

	total := p.TotalServices
	if total == 0 {
		total = len(p.Services)
	}

	// Presence tier (max 2).
	switch {
	case total >= 5:
		cs.Score += 2
	case total >= 1:
		cs.Score += 1
	default:
		cs.flag("No services listed", "List the services you offer")
	}

	details := ServiceDetails{TotalServices: total}

	// Description completeness (max 1), only when services exist.
	if total > 0 {
		missing := 0
		for _, service := range p.Services {
			if service.ResolvedDescription() == "" {
				missing++
			}
		}
		if missing == 0 {
			cs.Score++
		} else {
			cs.flag(
				fmt.Sprintf("%d services have no description", missing),
				"Describe every service so customers can compare",
			)
		}
		details.MissingDescriptions = missing
	}

	cs.Details = details
	return cs
}
