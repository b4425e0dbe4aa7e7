package snapshot

import "testing"

func TestReviewStarValue(t *testing.T) {
	tests := []struct {
		rating string
		want   float64
	}{
		{"ONE", 1},
		{"TWO", 2},
		{"THREE", 3},
		{"FOUR", 4},
		{"FIVE", 5},
		{"five", 5},
		{" FIVE ", 5},
		{"SIX", 0},
		{"", 0},
	}

	for _, tt := range tests {
		r := Review{StarRating: tt.rating}
		if got := r.StarValue(); got != tt.want {
			t.Errorf("StarValue(%q) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}

func TestReviewHasOwnerReply(t *testing.T) {
	tests := []struct {
		name   string
		review Review
		want   bool
	}{
		{"no reply", Review{}, false},
		{"empty reply", Review{Reply: &Reply{}}, false},
		{"whitespace reply", Review{Reply: &Reply{Comment: "   "}}, false},
		{"real reply", Review{Reply: &Reply{Comment: "Thank you!"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.review.HasOwnerReply(); got != tt.want {
				t.Errorf("HasOwnerReply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPhotoResolvedCategory(t *testing.T) {
	tests := []struct {
		name  string
		photo Photo
		want  string
	}{
		{"no category", Photo{}, ""},
		{"primary only", Photo{Category: "COVER"}, "COVER"},
		{
			"fallback only",
			Photo{LocationAssociation: &LocationAssociation{Category: "EXTERIOR"}},
			"EXTERIOR",
		},
		{
			"primary wins over fallback",
			Photo{
				Category:            "INTERIOR",
				LocationAssociation: &LocationAssociation{Category: "COVER"},
			},
			"INTERIOR",
		},
		{
			"whitespace primary falls back",
			Photo{
				Category:            "   ",
				LocationAssociation: &LocationAssociation{Category: "COVER"},
			},
			"COVER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.photo.ResolvedCategory(); got != tt.want {
				t.Errorf("ResolvedCategory() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServiceResolvedDescription(t *testing.T) {
	tests := []struct {
		name    string
		service Service
		want    string
	}{
		{"empty", Service{}, ""},
		{"plain", Service{Description: "Plain"}, "Plain"},
		{
			"structured",
			Service{StructuredServiceItem: &StructuredServiceItem{Description: "Structured"}},
			"Structured",
		},
		{
			"free-form label",
			Service{FreeFormServiceItem: &FreeFormServiceItem{
				Label: &ServiceLabel{Description: "FreeForm"},
			}},
			"FreeForm",
		},
		{
			"plain wins over structured",
			Service{
				Description:           "Plain",
				StructuredServiceItem: &StructuredServiceItem{Description: "Structured"},
			},
			"Plain",
		},
		{
			"structured wins over free-form",
			Service{
				StructuredServiceItem: &StructuredServiceItem{Description: "Structured"},
				FreeFormServiceItem: &FreeFormServiceItem{
					Label: &ServiceLabel{Description: "FreeForm"},
				},
			},
			"Structured",
		},
		{"free-form without label", Service{FreeFormServiceItem: &FreeFormServiceItem{}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.service.ResolvedDescription(); got != tt.want {
				t.Errorf("ResolvedDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuestionAnswerChecks(t *testing.T) {
	owner := &Author{Type: "MERCHANT"}
	customer := &Author{Type: "REGULAR_USER"}

	tests := []struct {
		name         string
		question     Question
		wantAnswered bool
		wantOwner    bool
	}{
		{"no answers", Question{}, false, false},
		{
			"customer answer only",
			Question{Answers: []Answer{{Author: customer, Text: "Yes"}}},
			true, false,
		},
		{
			"owner answer",
			Question{Answers: []Answer{{Author: owner, Text: "Yes"}}},
			true, true,
		},
		{
			"owner among customers",
			Question{Answers: []Answer{
				{Author: customer, Text: "Maybe"},
				{Author: owner, Text: "Yes"},
			}},
			true, true,
		},
		{
			"answer without author",
			Question{Answers: []Answer{{Text: "Yes"}}},
			true, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.question.IsAnswered(); got != tt.wantAnswered {
				t.Errorf("IsAnswered() = %v, want %v", got, tt.wantAnswered)
			}
			if got := tt.question.HasOwnerAnswer(); got != tt.wantOwner {
				t.Errorf("HasOwnerAnswer() = %v, want %v", got, tt.wantOwner)
			}
		})
	}
}

func TestProfileResolvedDescription(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    string
	}{
		{"empty", Profile{}, ""},
		{"root field", Profile{Description: "Root"}, "Root"},
		{
			"nested fallback",
			Profile{Attributes: map[string]any{
				"profile": map[string]any{"description": "Nested"},
			}},
			"Nested",
		},
		{
			"root wins over nested",
			Profile{
				Description: "Root",
				Attributes: map[string]any{
					"profile": map[string]any{"description": "Nested"},
				},
			},
			"Root",
		},
		{
			"nested wrong shape",
			Profile{Attributes: map[string]any{"profile": "not a map"}},
			"",
		},
		{
			"nested non-string description",
			Profile{Attributes: map[string]any{
				"profile": map[string]any{"description": 42},
			}},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.ResolvedDescription(); got != tt.want {
				t.Errorf("ResolvedDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}
