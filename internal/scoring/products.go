package scoring

import (
	"fmt"

	"github.com/dotcommander/bizlens/internal/snapshot"
)

const maxProductsScore = 4

// ProductsEvaluator scores the product catalog: presence plus photo and
// description completeness. A catalog of 1-2 products scores 0 on the
// presence tier without an issue; only an empty catalog is flagged.
type ProductsEvaluator struct{}

// NewProductsEvaluator creates a new ProductsEvaluator.
func NewProductsEvaluator() *ProductsEvaluator {
	return &ProductsEvaluator{}
}

// Name returns the category identifier.
func (e *ProductsEvaluator) Name() string { return CategoryProducts }

// Evaluate scores the product signals.
func (e *ProductsEvaluator) Evaluate(p *snapshot.Profile) CategoryScore {
	cs := newCategoryScore(maxProductsScore)

	total := p.TotalProducts
	if total == 0 {
		total = len(p.Products)
	}

	// Presence tier (max 2).
	switch {
	case total >= 10:
		cs.Score += 2
	case total >= 3:
		cs.Score += 1
	case total == 0:
		cs.flag("No products listed", "Add your products with photos and prices")
	}

	details := ProductDetails{TotalProducts: total}

	// Completeness checks only apply when products exist.
	if total > 0 {
		missingPhotos := 0
		missingDescriptions := 0
		for _, product := range p.Products {
			if len(product.Media) == 0 {
				missingPhotos++
			}
			if product.Description == "" && product.Name == "" {
				missingDescriptions++
			}
		}

		if missingPhotos == 0 {
			cs.Score++
		} else {
			cs.flag(
				fmt.Sprintf("%d products have no photo", missingPhotos),
				"Add a photo to every product",
			)
		}

		if missingDescriptions == 0 {
			cs.Score++
		} else {
			cs.flag(
				fmt.Sprintf("%d products have no description", missingDescriptions),
				"Describe every product so customers know what they get",
			)
		}

		details.MissingPhotos = missingPhotos
		details.MissingDescriptions = missingDescriptions
	}

	cs.Details = details
	return cs
}
