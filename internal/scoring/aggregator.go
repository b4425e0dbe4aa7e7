package scoring

import "math"

// Aggregate combines the eight category scores into the overall result.
// Each category is normalized to a percentage of its maximum, the
// percentages are combined by the weight table, and the composite is
// rounded to the nearest integer before status classification.
func Aggregate(categories map[string]CategoryScore, weights Weights) OverallResult {
	table := []struct {
		name   string
		weight int
	}{
		{CategoryProfileInfo, weights.ProfileInfo},
		{CategoryReviews, weights.Reviews},
		{CategoryPhotos, weights.Photos},
		{CategoryPosts, weights.Posts},
		{CategoryProducts, weights.Products},
		{CategoryServices, weights.Services},
		{CategoryQAndA, weights.QAndA},
		{CategoryAttributes, weights.Attributes},
	}

	var weightedSum, totalWeight float64
	for _, entry := range table {
		cs := categories[entry.name]
		pct := 0.0
		if cs.MaxScore > 0 {
			pct = float64(cs.Score) / float64(cs.MaxScore) * 100
		}
		weightedSum += pct * float64(entry.weight)
		totalWeight += float64(entry.weight)
	}

	overall := 0
	if totalWeight > 0 {
		overall = int(math.Round(weightedSum / totalWeight))
	}

	return OverallResult{
		Overall:    overall,
		Status:     StatusFromScore(overall),
		Categories: categories,
	}
}
