package scoring

import (
	"fmt"
	"strings"

	"github.com/dotcommander/bizlens/internal/snapshot"
)

const (
	maxPhotosScore          = 6
	photoDiversityThreshold = 4
)

// PhotosEvaluator scores photo coverage: volume, cover and logo
// presence, and category diversity. All category checks resolve the
// photo category through snapshot.Photo.ResolvedCategory so the
// primary-then-fallback precedence is applied consistently.
type PhotosEvaluator struct{}

// NewPhotosEvaluator creates a new PhotosEvaluator.
func NewPhotosEvaluator() *PhotosEvaluator {
	return &PhotosEvaluator{}
}

// Name returns the category identifier.
func (e *PhotosEvaluator) Name() string { return CategoryPhotos }

// Evaluate scores the photo signals.
func (e *PhotosEvaluator) Evaluate(p *snapshot.Profile) CategoryScore {
	cs := newCategoryScore(maxPhotosScore)

	total := p.TotalPhotos
	if total == 0 {
		total = len(p.Photos)
	}

	// Volume tier (max 3).
	switch {
	case total >= 25:
		cs.Score += 3
	case total >= 10:
		cs.Score += 2
	case total >= 5:
		cs.Score += 1
	default:
		cs.flag(
			fmt.Sprintf("Only %d photos", total),
			"Upload photos of your storefront, team and work",
		)
	}

	hasCover := false
	hasLogo := false
	distinct := map[string]struct{}{}
	for _, photo := range p.Photos {
		category := photo.ResolvedCategory()
		if category == "" {
			continue
		}
		distinct[strings.ToUpper(category)] = struct{}{}
		switch strings.ToUpper(category) {
		case snapshot.PhotoCategoryCover:
			hasCover = true
		case snapshot.PhotoCategoryLogo, snapshot.PhotoCategoryProfile:
			hasLogo = true
		}
	}

	// Cover photo (max 1).
	if hasCover {
		cs.Score++
	} else {
		cs.flag("No cover photo", "Set a cover photo that shows your business at its best")
	}

	// Logo photo (max 1).
	if hasLogo {
		cs.Score++
	} else {
		cs.flag("No logo photo", "Upload your logo so customers recognize the brand")
	}

	// Category diversity (max 1).
	if len(distinct) >= photoDiversityThreshold {
		cs.Score++
	} else {
		cs.flag(
			fmt.Sprintf("Photos cover only %d categories", len(distinct)),
			"Add photos across exterior, interior, product and team categories",
		)
	}

	cs.Details = PhotoDetails{
		TotalPhotos:        total,
		HasCover:           hasCover,
		HasLogo:            hasLogo,
		DistinctCategories: len(distinct),
	}
	return cs
}
