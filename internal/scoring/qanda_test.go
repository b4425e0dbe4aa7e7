package scoring

import (
	"testing"

	"github.com/dotcommander/bizlens/internal/snapshot"
)

// makeQuestions builds total questions of which answered have at least
// one answer and ownerAnswered of those are answered by the merchant.
func makeQuestions(total, answered, ownerAnswered int) []snapshot.Question {
	questions := make([]snapshot.Question, total)
	for i := range questions {
		questions[i].Text = "Do you take walk-ins?"
		if i < ownerAnswered {
			questions[i].Answers = []snapshot.Answer{
				{Author: &snapshot.Author{Type: "MERCHANT"}, Text: "Yes, until 5pm."},
			}
		} else if i < answered {
			questions[i].Answers = []snapshot.Answer{
				{Author: &snapshot.Author{Type: "REGULAR_USER"}, Text: "They did for me."},
			}
		}
	}
	return questions
}

func TestQAndAEvaluator(t *testing.T) {
	e := NewQAndAEvaluator()

	tests := []struct {
		name      string
		profile   snapshot.Profile
		wantScore int
	}{
		{
			name:      "no questions",
			profile:   snapshot.Profile{},
			wantScore: 0,
		},
		{
			name:      "fully engaged section",
			profile:   snapshot.Profile{Questions: makeQuestions(10, 10, 10)},
			wantScore: 4,
		},
		{
			// Volume 1 + answer rate 0.5 + owner rate 1 = 2.5, rounded
			// half away from zero to 3.
			name:      "half point rounds up",
			profile:   snapshot.Profile{Questions: makeQuestions(10, 8, 5)},
			wantScore: 3,
		},
		{
			// Volume 0.5 + answer rate 0 + owner rate 0 = 0.5 rounds
			// to 1.
			name:      "small unanswered section",
			profile:   snapshot.Profile{Questions: makeQuestions(3, 1, 0)},
			wantScore: 1,
		},
		{
			// Volume 0.5 + answer rate 1 + owner rate 2 = 3.5 rounds
			// to 4.
			name:      "small but fully owner answered",
			profile:   snapshot.Profile{Questions: makeQuestions(3, 3, 3)},
			wantScore: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := e.Evaluate(&tt.profile)
			if cs.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d (issues: %v)", cs.Score, tt.wantScore, cs.Issues)
			}
			if cs.MaxScore != 4 {
				t.Errorf("MaxScore = %d, want 4", cs.MaxScore)
			}
		})
	}
}

func TestQAndAEmptySectionIsAdvisoryOnly(t *testing.T) {
	e := NewQAndAEvaluator()
	cs := e.Evaluate(&snapshot.Profile{})

	if len(cs.Issues) != 0 {
		t.Errorf("empty section should produce no issues, got %v", cs.Issues)
	}
	if len(cs.Recommendations) != 1 {
		t.Errorf("expected one seeding recommendation, got %v", cs.Recommendations)
	}
}

func TestQAndADetails(t *testing.T) {
	e := NewQAndAEvaluator()
	cs := e.Evaluate(&snapshot.Profile{Questions: makeQuestions(10, 8, 5)})

	details := cs.Details.(QADetails)
	if details.TotalQuestions != 10 || details.Answered != 8 || details.OwnerAnswered != 5 {
		t.Errorf("details = %+v, want 10/8/5", details)
	}
}

func TestQAndAOwnerAuthorTypeIsCaseInsensitive(t *testing.T) {
	e := NewQAndAEvaluator()

	profile := snapshot.Profile{
		Questions: []snapshot.Question{
			{Answers: []snapshot.Answer{{Author: &snapshot.Author{Type: "merchant"}}}},
		},
	}
	cs := e.Evaluate(&profile)
	if cs.Details.(QADetails).OwnerAnswered != 1 {
		t.Error("lowercase merchant author type not recognized")
	}
}
