// Package scoring converts a profile snapshot into a 0-100 health score
// with a per-category breakdown. Every evaluator is a total function: a
// snapshot with every field absent still produces a complete result.
package scoring

import (
	"time"

	"github.com/dotcommander/bizlens/internal/snapshot"
)

// Category identifiers. These are the keys of OverallResult.Categories
// and the names accepted by `bizlens score --category`.
const (
	CategoryProfileInfo = "profileInfo"
	CategoryReviews     = "reviews"
	CategoryPhotos      = "photos"
	CategoryPosts       = "posts"
	CategoryProducts    = "products"
	CategoryServices    = "services"
	CategoryQAndA       = "qAndA"
	CategoryAttributes  = "attributes"
)

// CategoryNames lists the eight categories in display order.
func CategoryNames() []string {
	return []string{
		CategoryProfileInfo,
		CategoryReviews,
		CategoryPhotos,
		CategoryPosts,
		CategoryProducts,
		CategoryServices,
		CategoryQAndA,
		CategoryAttributes,
	}
}

// Status labels derived from the overall score.
const (
	StatusExcellent = "excellent"
	StatusGood      = "good"
	StatusNeedsWork = "needs_work"
	StatusPoor      = "poor"
)

// StatusFromScore classifies an overall score. The ladder is evaluated
// top-down: >=85 excellent, >=70 good, >=50 needs_work, else poor.
func StatusFromScore(score int) string {
	switch {
	case score >= 85:
		return StatusExcellent
	case score >= 70:
		return StatusGood
	case score >= 50:
		return StatusNeedsWork
	default:
		return StatusPoor
	}
}

// CategoryScore is the result of one category evaluator.
// Invariant: 0 <= Score <= MaxScore, and every flagged deduction
// carries a paired issue/recommendation.
type CategoryScore struct {
	Score           int      `json:"score"`
	MaxScore        int      `json:"maxScore"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
	Details         any      `json:"details,omitempty"`
}

// newCategoryScore returns a zero score with non-nil issue lists so the
// JSON output always carries arrays, never null.
func newCategoryScore(max int) CategoryScore {
	return CategoryScore{
		MaxScore:        max,
		Issues:          []string{},
		Recommendations: []string{},
	}
}

// flag records a failed check as a paired issue and recommendation.
func (cs *CategoryScore) flag(issue, recommendation string) {
	cs.Issues = append(cs.Issues, issue)
	cs.Recommendations = append(cs.Recommendations, recommendation)
}

// recommend records a recommendation without an issue. Used by checks
// that the scoring rules treat as advisory rather than failing.
func (cs *CategoryScore) recommend(recommendation string) {
	cs.Recommendations = append(cs.Recommendations, recommendation)
}

// OverallResult is the composite health score for one snapshot.
type OverallResult struct {
	Overall    int                      `json:"overall"`
	Status     string                   `json:"status"`
	Categories map[string]CategoryScore `json:"categories"`
}

// Evaluator scores one category of a profile snapshot.
type Evaluator interface {
	Name() string
	Evaluate(p *snapshot.Profile) CategoryScore
}

// Per-category detail records surfaced for downstream display.

// ProfileInfoDetails reports which identity fields are present.
type ProfileInfoDetails struct {
	HasName            bool `json:"hasName"`
	HasDescription     bool `json:"hasDescription"`
	HasPrimaryCategory bool `json:"hasPrimaryCategory"`
	HasPhone           bool `json:"hasPhone"`
	HasWebsite         bool `json:"hasWebsite"`
	HasAddress         bool `json:"hasAddress"`
}

// ReviewDetails carries the raw review signals.
type ReviewDetails struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
	ResponseRate  int     `json:"responseRate"`
	RecentReviews int     `json:"recentReviews"`
}

// PhotoDetails carries the raw photo signals.
type PhotoDetails struct {
	TotalPhotos        int  `json:"totalPhotos"`
	HasCover           bool `json:"hasCover"`
	HasLogo            bool `json:"hasLogo"`
	DistinctCategories int  `json:"distinctCategories"`
}

// PostDetails carries the raw post signals. LastPostTime is the first
// element of the snapshot's post sequence (pre-sorted descending).
type PostDetails struct {
	RecentPosts  int        `json:"recentPosts"`
	TotalPosts   int        `json:"totalPosts"`
	LastPostTime *time.Time `json:"lastPostTime,omitempty"`
}

// ProductDetails carries the raw product signals.
type ProductDetails struct {
	TotalProducts       int `json:"totalProducts"`
	MissingPhotos       int `json:"missingPhotos"`
	MissingDescriptions int `json:"missingDescriptions"`
}

// ServiceDetails carries the raw service signals.
type ServiceDetails struct {
	TotalServices       int `json:"totalServices"`
	MissingDescriptions int `json:"missingDescriptions"`
}

// QADetails carries the raw Q&A signals.
type QADetails struct {
	TotalQuestions int `json:"totalQuestions"`
	Answered       int `json:"answered"`
	OwnerAnswered  int `json:"ownerAnswered"`
}

// AttributeDetails carries the raw attribute signals.
type AttributeDetails struct {
	HasHours       bool `json:"hasHours"`
	AttributeCount int  `json:"attributeCount"`
}
