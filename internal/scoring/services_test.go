package scoring

import (
	"testing"

	"github.com/dotcommander/bizlens/internal/snapshot"
)

func TestServicesEvaluator(t *testing.T) {
	e := NewServicesEvaluator()

	described := func(n int) []snapshot.Service {
		services := make([]snapshot.Service, n)
		for i := range services {
			services[i] = snapshot.Service{
				DisplayName: "Deep clean",
				Description: "Full interior detail",
			}
		}
		return services
	}

	tests := []struct {
		name      string
		profile   snapshot.Profile
		wantScore int
	}{
		{
			name:      "no services",
			profile:   snapshot.Profile{},
			wantScore: 0,
		},
		{
			name:      "single described service",
			profile:   snapshot.Profile{Services: described(1)},
			wantScore: 2,
		},
		{
			name:      "full service list",
			profile:   snapshot.Profile{Services: described(5)},
			wantScore: 3,
		},
		{
			name: "undescribed services flagged",
			profile: snapshot.Profile{
				Services: []snapshot.Service{{DisplayName: "Oil change"}},
			},
			wantScore: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := e.Evaluate(&tt.profile)
			if cs.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d (issues: %v)", cs.Score, tt.wantScore, cs.Issues)
			}
			if cs.MaxScore != 3 {
				t.Errorf("MaxScore = %d, want 3", cs.MaxScore)
			}
		})
	}
}

func TestServicesDescriptionRepresentations(t *testing.T) {
	e := NewServicesEvaluator()

	// All three representation shapes count as described.
	tests := []struct {
		name    string
		service snapshot.Service
	}{
		{
			name:    "plain description",
			service: snapshot.Service{Description: "Brake inspection"},
		},
		{
			name: "structured service item",
			service: snapshot.Service{
				StructuredServiceItem: &snapshot.StructuredServiceItem{Description: "Brake inspection"},
			},
		},
		{
			name: "free-form label",
			service: snapshot.Service{
				FreeFormServiceItem: &snapshot.FreeFormServiceItem{
					Label: &snapshot.ServiceLabel{Description: "Brake inspection"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := e.Evaluate(&snapshot.Profile{Services: []snapshot.Service{tt.service}})
			details := cs.Details.(ServiceDetails)
			if details.MissingDescriptions != 0 {
				t.Errorf("MissingDescriptions = %d, want 0", details.MissingDescriptions)
			}
		})
	}
}
