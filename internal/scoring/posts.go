package scoring

import (
	"fmt"
	"time"

	"github.com/dotcommander/bizlens/internal/snapshot"
)

const maxPostsScore = 5

// PostsEvaluator scores posting cadence and cumulative volume. The
// snapshot contract guarantees posts arrive sorted descending by
// creation time; the evaluator does not re-sort.
type PostsEvaluator struct {
	now    func() time.Time
	window time.Duration
}

// NewPostsEvaluator creates a PostsEvaluator with the engine's injected
// clock and recency window.
func NewPostsEvaluator(cfg Config) *PostsEvaluator {
	return &PostsEvaluator{now: cfg.Now, window: cfg.RecencyWindow}
}

// Name returns the category identifier.
func (e *PostsEvaluator) Name() string { return CategoryPosts }

// Evaluate scores the post signals.
func (e *PostsEvaluator) Evaluate(p *snapshot.Profile) CategoryScore {
	cs := newCategoryScore(maxPostsScore)

	now := e.now()
	recent := 0
	for _, post := range p.Posts {
		if withinWindow(post.CreateTime, now, e.window) {
			recent++
		}
	}

	// Recency tier (max 3): 8+ is roughly twice weekly, 4+ weekly.
	switch {
	case recent >= 8:
		cs.Score += 3
	case recent >= 4:
		cs.Score += 2
	case recent >= 1:
		cs.Score += 1
	default:
		cs.flag(
			fmt.Sprintf("No posts in the last %d days", windowDays(e.window)),
			"Publish a post about an offer, event or update",
		)
	}

	// Total-volume tier (max 2).
	total := len(p.Posts)
	switch {
	case total >= 20:
		cs.Score += 2
	case total >= 5:
		cs.Score += 1
	default:
		cs.flag(
			fmt.Sprintf("Only %d posts published", total),
			"Build a posting habit to grow the archive",
		)
	}

	details := PostDetails{RecentPosts: recent, TotalPosts: total}
	if len(p.Posts) > 0 {
		t := p.Posts[0].CreateTime
		details.LastPostTime = &t
	}
	cs.Details = details
	return cs
}
