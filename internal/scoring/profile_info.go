package scoring

import "github.com/dotcommander/bizlens/internal/snapshot"

const maxProfileInfoScore = 6

// ProfileInfoEvaluator checks the core identity fields: one point each
// for name, description, primary category, phone, website and address.
type ProfileInfoEvaluator struct{}

// NewProfileInfoEvaluator creates a new ProfileInfoEvaluator.
func NewProfileInfoEvaluator() *ProfileInfoEvaluator {
	return &ProfileInfoEvaluator{}
}

// Name returns the category identifier.
func (e *ProfileInfoEvaluator) Name() string { return CategoryProfileInfo }

// Evaluate scores the identity fields. Each failing check appends one
// issue and one recommendation.
func (e *ProfileInfoEvaluator) Evaluate(p *snapshot.Profile) CategoryScore {
	cs := newCategoryScore(maxProfileInfoScore)

	details := ProfileInfoDetails{
		HasName:            p.Name != "",
		HasDescription:     p.ResolvedDescription() != "",
		HasPrimaryCategory: p.PrimaryCategory != nil && p.PrimaryCategory.DisplayName != "",
		HasPhone:           p.Phone != "",
		HasWebsite:         p.Website != "",
		HasAddress:         len(p.Address) > 0,
	}

	checks := []struct {
		ok             bool
		issue          string
		recommendation string
	}{
		{details.HasName, "Business name is missing", "Set your business name"},
		{details.HasDescription, "Business description is missing", "Write a description covering what you offer and where"},
		{details.HasPrimaryCategory, "Primary category is not set", "Choose the category that best matches your business"},
		{details.HasPhone, "Phone number is missing", "Add a phone number so customers can reach you"},
		{details.HasWebsite, "Website is missing", "Link your website from the profile"},
		{details.HasAddress, "Address is missing", "Add your business address"},
	}

	for _, c := range checks {
		if c.ok {
			cs.Score++
		} else {
			cs.flag(c.issue, c.recommendation)
		}
	}

	cs.Details = details
	return cs
}
