package scoring

import (
	"fmt"
	"math"

	"github.com/dotcommander/bizlens/internal/snapshot"
)

const maxQAndAScore = 4

// QAndAEvaluator scores the Q&A section with fractional partial credit.
// Partials are summed and rounded once at the very end, half away from
// zero, so 1 + 0.5 + 1 = 2.5 rounds to 3. Intermediate sub-scores are
// never rounded.
type QAndAEvaluator struct{}

// NewQAndAEvaluator creates a new QAndAEvaluator.
func NewQAndAEvaluator() *QAndAEvaluator {
	return &QAndAEvaluator{}
}

// Name returns the category identifier.
func (e *QAndAEvaluator) Name() string { return CategoryQAndA }

// Evaluate scores the Q&A signals.
func (e *QAndAEvaluator) Evaluate(p *snapshot.Profile) CategoryScore {
	cs := newCategoryScore(maxQAndAScore)

	total := len(p.Questions)
	var partial float64

	// Volume partial.
	switch {
	case total >= 10:
		partial += 1
	case total >= 3:
		partial += 0.5
	}

	answered := 0
	ownerAnswered := 0

	if total > 0 {
		for _, q := range p.Questions {
			if q.IsAnswered() {
				answered++
			}
			if q.HasOwnerAnswer() {
				ownerAnswered++
			}
		}

		// Answer-rate partial.
		answerRate := float64(answered) / float64(total)
		switch {
		case answerRate >= 0.9:
			partial += 1
		case answerRate >= 0.7:
			partial += 0.5
		default:
			cs.flag(
				fmt.Sprintf("Only %d of %d questions have answers", answered, total),
				"Answer every open customer question",
			)
		}

		// Owner-participation partial.
		ownerRate := float64(ownerAnswered) / float64(total)
		switch {
		case ownerRate >= 0.8:
			partial += 2
		case ownerRate >= 0.5:
			partial += 1
		default:
			cs.flag(
				"The business rarely answers questions itself",
				"Answer questions from the business account, not just customers",
			)
		}
	} else {
		// No questions yet: advisory only, no numeric effect.
		cs.recommend("Seed the Q&A section with common customer questions and answers")
	}

	cs.Score = int(math.Round(partial))
	cs.Details = QADetails{
		TotalQuestions: total,
		Answered:       answered,
		OwnerAnswered:  ownerAnswered,
	}
	return cs
}
