package scoring

import (
	"fmt"
	"strings"

	"github.com/dotcommander/bizlens/internal/snapshot"
)

const maxAttributesScore = 4

// attributeMarkers are the attribute-key families that earn the
// specific-attributes point. Directory attribute keys are namespaced
// (pay_credit_card, wheelchair_accessible_entrance), so presence is a
// case-insensitive substring match on the key.
var attributeMarkers = []string{"payment", "accessibility", "amenities"}

// AttributesEvaluator scores hours presence, attribute richness and the
// presence of payment/accessibility/amenity attributes.
type AttributesEvaluator struct{}

// NewAttributesEvaluator creates a new AttributesEvaluator.
func NewAttributesEvaluator() *AttributesEvaluator {
	return &AttributesEvaluator{}
}

// Name returns the category identifier.
func (e *AttributesEvaluator) Name() string { return CategoryAttributes }

// Evaluate scores the attribute signals.
func (e *AttributesEvaluator) Evaluate(p *snapshot.Profile) CategoryScore {
	cs := newCategoryScore(maxAttributesScore)

	// Hours presence (max 1).
	hasHours := p.RegularHours != nil && len(p.RegularHours.Periods) > 0
	if hasHours {
		cs.Score++
	} else {
		cs.flag("Business hours are not set", "Add your opening hours")
	}

	// Attribute richness (max 2).
	count := len(p.Attributes)
	switch {
	case count >= 10:
		cs.Score += 2
	case count >= 5:
		cs.Score += 1
	default:
		cs.flag(
			fmt.Sprintf("Only %d attributes set", count),
			"Fill in more business attributes",
		)
	}

	// Specific attribute families (max 1). Advisory when absent.
	if hasAttributeMarker(p.Attributes) {
		cs.Score++
	} else {
		cs.recommend("Add payment, accessibility and amenity attributes")
	}

	cs.Details = AttributeDetails{HasHours: hasHours, AttributeCount: count}
	return cs
}

// hasAttributeMarker reports whether any attribute key belongs to one of
// the recognized marker families.
func hasAttributeMarker(attributes map[string]any) bool {
	for key := range attributes {
		lower := strings.ToLower(key)
		for _, marker := range attributeMarkers {
			if strings.Contains(lower, marker) {
				return true
			}
		}
	}
	return false
}
