package schema

import (
	"testing"
)

func newLoadedValidator(t *testing.T) *Validator {
	t.Helper()
	v := NewValidator()
	if err := v.LoadSchemas(); err != nil {
		t.Fatalf("LoadSchemas() error: %v", err)
	}
	return v
}

func TestLoadSchemas(t *testing.T) {
	v := newLoadedValidator(t)
	if _, ok := v.schemas["profile"]; !ok {
		t.Error("profile schema not loaded")
	}
}

func TestValidateProfileAcceptsValidDocuments(t *testing.T) {
	v := newLoadedValidator(t)

	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"empty document", map[string]any{}},
		{
			"basic fields",
			map[string]any{
				"name":    "Blue Door Cafe",
				"phone":   "+1 555 0100",
				"website": "https://bluedoor.example",
			},
		},
		{
			"reviews with star enum",
			map[string]any{
				"averageRating": 4.5,
				"totalReviews":  12,
				"reviews": []any{
					map[string]any{"starRating": "FIVE", "comment": "Great"},
				},
			},
		},
		{
			"unknown fields are tolerated",
			map[string]any{
				"name":        "Shop",
				"customField": "anything",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, err := v.ValidateProfile(tt.doc, "test.json")
			if err != nil {
				t.Fatalf("ValidateProfile() error: %v", err)
			}
			if len(errs) != 0 {
				t.Errorf("unexpected validation errors: %+v", errs)
			}
		})
	}
}

func TestValidateProfileRejectsInvalidDocuments(t *testing.T) {
	v := newLoadedValidator(t)

	tests := []struct {
		name string
		doc  map[string]any
	}{
		{
			"name has wrong type",
			map[string]any{"name": 42},
		},
		{
			"rating out of range",
			map[string]any{"averageRating": 7.5},
		},
		{
			"negative review total",
			map[string]any{"totalReviews": -3},
		},
		{
			"unknown star enum",
			map[string]any{
				"reviews": []any{map[string]any{"starRating": "SIX"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, err := v.ValidateProfile(tt.doc, "test.json")
			if err != nil {
				t.Fatalf("ValidateProfile() error: %v", err)
			}
			if len(errs) == 0 {
				t.Error("expected validation errors, got none")
			}
			for _, ve := range errs {
				if ve.File != "test.json" {
					t.Errorf("error File = %q, want test.json", ve.File)
				}
				if ve.Severity != "error" {
					t.Errorf("error Severity = %q, want error", ve.Severity)
				}
			}
		})
	}
}
