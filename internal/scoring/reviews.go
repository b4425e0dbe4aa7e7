package scoring

import (
	"fmt"
	"time"

	"github.com/dotcommander/bizlens/internal/snapshot"
)

const maxReviewsScore = 10

// ReviewsEvaluator scores review health across four additive sub-checks:
// average rating, review volume, owner response rate and recency.
type ReviewsEvaluator struct {
	now    func() time.Time
	window time.Duration
}

// NewReviewsEvaluator creates a ReviewsEvaluator with the engine's
// injected clock and recency window.
func NewReviewsEvaluator(cfg Config) *ReviewsEvaluator {
	return &ReviewsEvaluator{now: cfg.Now, window: cfg.RecencyWindow}
}

// Name returns the category identifier.
func (e *ReviewsEvaluator) Name() string { return CategoryReviews }

// Evaluate scores the review signals. The four tiers are independent;
// there is no early exit.
func (e *ReviewsEvaluator) Evaluate(p *snapshot.Profile) CategoryScore {
	cs := newCategoryScore(maxReviewsScore)

	total := p.TotalReviews
	if total == 0 {
		total = len(p.Reviews)
	}
	rating := p.AverageRating
	if rating == 0 {
		rating = averageStarRating(p.Reviews)
	}

	// Rating tier (max 3). A rating of exactly 0 means no reviews at
	// all, which the volume check already flags.
	switch {
	case rating >= 4.5:
		cs.Score += 3
	case rating >= 4.0:
		cs.Score += 2
	case rating >= 3.5:
		cs.Score += 1
	default:
		if rating > 0 {
			cs.flag(
				fmt.Sprintf("Average rating is low (%.1f)", rating),
				"Address the recurring complaints in negative reviews",
			)
		}
	}

	// Volume tier (max 3).
	switch {
	case total >= 50:
		cs.Score += 3
	case total >= 20:
		cs.Score += 2
	case total >= 5:
		cs.Score += 1
	default:
		cs.flag(
			fmt.Sprintf("Only %d reviews", total),
			"Ask happy customers to leave a review",
		)
	}

	// Response-rate tier (max 2).
	responded := 0
	for _, r := range p.Reviews {
		if r.HasOwnerReply() {
			responded++
		}
	}
	rate := percent(responded, total)
	switch {
	case rate >= 90:
		cs.Score += 2
	case rate >= 70:
		cs.Score += 1
	default:
		cs.flag(
			fmt.Sprintf("Review response rate is %d%%", rate),
			"Reply to every review, including negative ones",
		)
	}

	// Recency tier (max 2).
	now := e.now()
	recent := 0
	for _, r := range p.Reviews {
		if withinWindow(r.CreateTime, now, e.window) {
			recent++
		}
	}
	switch {
	case recent >= 5:
		cs.Score += 2
	case recent >= 2:
		cs.Score += 1
	default:
		cs.flag(
			fmt.Sprintf("Only %d reviews in the last %d days", recent, windowDays(e.window)),
			"Keep a steady stream of fresh reviews coming in",
		)
	}

	cs.Details = ReviewDetails{
		AverageRating: rating,
		TotalReviews:  total,
		ResponseRate:  rate,
		RecentReviews: recent,
	}
	return cs
}

// averageStarRating derives a mean rating from the star-rating enums
// when the snapshot carries no precomputed average. Unrecognized enums
// are skipped.
func averageStarRating(reviews []snapshot.Review) float64 {
	var sum float64
	var count int
	for _, r := range reviews {
		if v := r.StarValue(); v > 0 {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
