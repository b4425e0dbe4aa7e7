// Package snapshot defines the business-profile snapshot model that the
// scoring engine consumes. A snapshot is a point-in-time export of a
// directory listing; every field is optional and the engine treats
// absence as a failing check rather than an error. The snapshot is owned
// by the caller and is never mutated by bizlens.
package snapshot

import (
	"strings"
	"time"
)

// Photo category markers used by directory APIs. Two different labels
// are in circulation for the logo concept, so both are recognized.
const (
	PhotoCategoryCover   = "COVER"
	PhotoCategoryLogo    = "LOGO"
	PhotoCategoryProfile = "PROFILE"
)

// AuthorTypeMerchant tags an answer written by the business owner.
const AuthorTypeMerchant = "MERCHANT"

// Profile is the complete snapshot of a business listing.
type Profile struct {
	Name                 string         `json:"name,omitempty" yaml:"name,omitempty"`
	Description          string         `json:"description,omitempty" yaml:"description,omitempty"`
	PrimaryCategory      *Category      `json:"primaryCategory,omitempty" yaml:"primaryCategory,omitempty"`
	AdditionalCategories []Category     `json:"additionalCategories,omitempty" yaml:"additionalCategories,omitempty"`
	Phone                string         `json:"phone,omitempty" yaml:"phone,omitempty"`
	Website              string         `json:"website,omitempty" yaml:"website,omitempty"`
	Address              map[string]any `json:"address,omitempty" yaml:"address,omitempty"`

	Reviews       []Review `json:"reviews,omitempty" yaml:"reviews,omitempty"`
	AverageRating float64  `json:"averageRating,omitempty" yaml:"averageRating,omitempty"`
	TotalReviews  int      `json:"totalReviews,omitempty" yaml:"totalReviews,omitempty"`

	Photos      []Photo `json:"photos,omitempty" yaml:"photos,omitempty"`
	TotalPhotos int     `json:"totalPhotos,omitempty" yaml:"totalPhotos,omitempty"`

	// Posts are pre-sorted descending by creation time; the first
	// element is the most recent post. bizlens does not re-sort.
	Posts []Post `json:"posts,omitempty" yaml:"posts,omitempty"`

	Products      []Product `json:"products,omitempty" yaml:"products,omitempty"`
	TotalProducts int       `json:"totalProducts,omitempty" yaml:"totalProducts,omitempty"`

	Services      []Service `json:"services,omitempty" yaml:"services,omitempty"`
	TotalServices int       `json:"totalServices,omitempty" yaml:"totalServices,omitempty"`

	Questions []Question `json:"questions,omitempty" yaml:"questions,omitempty"`

	Attributes   map[string]any `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	RegularHours *Hours         `json:"regularHours,omitempty" yaml:"regularHours,omitempty"`
}

// Category is a business category reference.
type Category struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
}

// Review is a single customer review.
type Review struct {
	Reviewer   string    `json:"reviewer,omitempty" yaml:"reviewer,omitempty"`
	StarRating string    `json:"starRating,omitempty" yaml:"starRating,omitempty"`
	Comment    string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	CreateTime time.Time `json:"createTime,omitempty" yaml:"createTime,omitempty"`
	Reply      *Reply    `json:"reply,omitempty" yaml:"reply,omitempty"`
}

// Reply is the owner's response to a review.
type Reply struct {
	Comment    string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	UpdateTime time.Time `json:"updateTime,omitempty" yaml:"updateTime,omitempty"`
}

// starValues maps the directory API's string rating enum to numbers.
var starValues = map[string]float64{
	"ONE":   1,
	"TWO":   2,
	"THREE": 3,
	"FOUR":  4,
	"FIVE":  5,
}

// StarValue returns the numeric value of the star-rating enum, or 0 for
// an unrecognized or absent rating.
func (r Review) StarValue() float64 {
	return starValues[strings.ToUpper(strings.TrimSpace(r.StarRating))]
}

// HasOwnerReply reports whether the review carries a non-empty reply.
func (r Review) HasOwnerReply() bool {
	return r.Reply != nil && strings.TrimSpace(r.Reply.Comment) != ""
}

// Photo is a single media item attached to the listing.
type Photo struct {
	Category            string               `json:"category,omitempty" yaml:"category,omitempty"`
	SourceURL           string               `json:"sourceUrl,omitempty" yaml:"sourceUrl,omitempty"`
	LocationAssociation *LocationAssociation `json:"locationAssociation,omitempty" yaml:"locationAssociation,omitempty"`
}

// LocationAssociation carries the fallback category some directory APIs
// nest under the media item instead of setting the primary field.
type LocationAssociation struct {
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// ResolvedCategory returns the photo's category with a fixed precedence:
// the primary category field wins; the nested location-association
// category is the fallback. Every category-dependent check goes through
// this method so the precedence cannot diverge.
func (p Photo) ResolvedCategory() string {
	if c := strings.TrimSpace(p.Category); c != "" {
		return c
	}
	if p.LocationAssociation != nil {
		return strings.TrimSpace(p.LocationAssociation.Category)
	}
	return ""
}

// Post is a published update on the listing.
type Post struct {
	CreateTime   time.Time     `json:"createTime,omitempty" yaml:"createTime,omitempty"`
	TopicType    string        `json:"topicType,omitempty" yaml:"topicType,omitempty"`
	Summary      string        `json:"summary,omitempty" yaml:"summary,omitempty"`
	CallToAction *CallToAction `json:"callToAction,omitempty" yaml:"callToAction,omitempty"`
}

// CallToAction is an optional action button on a post.
type CallToAction struct {
	ActionType string `json:"actionType,omitempty" yaml:"actionType,omitempty"`
	URL        string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Product is a catalog item on the listing.
type Product struct {
	Name        string  `json:"name,omitempty" yaml:"name,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Media       []Media `json:"media,omitempty" yaml:"media,omitempty"`
}

// Media is an image or video attached to a product.
type Media struct {
	SourceURL string `json:"sourceUrl,omitempty" yaml:"sourceUrl,omitempty"`
}

// Service is an offered service. Directory APIs represent the service
// description in one of three shapes.
type Service struct {
	DisplayName           string                 `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description           string                 `json:"description,omitempty" yaml:"description,omitempty"`
	StructuredServiceItem *StructuredServiceItem `json:"structuredServiceItem,omitempty" yaml:"structuredServiceItem,omitempty"`
	FreeFormServiceItem   *FreeFormServiceItem   `json:"freeFormServiceItem,omitempty" yaml:"freeFormServiceItem,omitempty"`
}

// StructuredServiceItem is the structured representation of a service.
type StructuredServiceItem struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// FreeFormServiceItem is the free-form representation of a service.
type FreeFormServiceItem struct {
	Label *ServiceLabel `json:"label,omitempty" yaml:"label,omitempty"`
}

// ServiceLabel names a free-form service.
type ServiceLabel struct {
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ResolvedDescription returns the service description, checking the
// three representations in precedence order: plain description,
// structured-service description, free-form label description.
func (s Service) ResolvedDescription() string {
	if d := strings.TrimSpace(s.Description); d != "" {
		return d
	}
	if s.StructuredServiceItem != nil {
		if d := strings.TrimSpace(s.StructuredServiceItem.Description); d != "" {
			return d
		}
	}
	if s.FreeFormServiceItem != nil && s.FreeFormServiceItem.Label != nil {
		return strings.TrimSpace(s.FreeFormServiceItem.Label.Description)
	}
	return ""
}

// Question is a customer question with its answers.
type Question struct {
	Author  *Author  `json:"author,omitempty" yaml:"author,omitempty"`
	Text    string   `json:"text,omitempty" yaml:"text,omitempty"`
	Answers []Answer `json:"answers,omitempty" yaml:"answers,omitempty"`
}

// Answer is a single answer to a question.
type Answer struct {
	Author *Author `json:"author,omitempty" yaml:"author,omitempty"`
	Text   string  `json:"text,omitempty" yaml:"text,omitempty"`
}

// Author identifies who wrote a question or answer.
type Author struct {
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
}

// IsAnswered reports whether the question has at least one answer.
func (q Question) IsAnswered() bool {
	return len(q.Answers) > 0
}

// HasOwnerAnswer reports whether at least one answer was written by the
// business owner author type.
func (q Question) HasOwnerAnswer() bool {
	for _, a := range q.Answers {
		if a.Author != nil && strings.EqualFold(a.Author.Type, AuthorTypeMerchant) {
			return true
		}
	}
	return false
}

// Hours holds the listing's opening hours. Only presence is scored;
// the periods are not validated for correctness.
type Hours struct {
	Periods []Period `json:"periods,omitempty" yaml:"periods,omitempty"`
}

// Period is a single open/close window.
type Period struct {
	OpenDay   string `json:"openDay,omitempty" yaml:"openDay,omitempty"`
	OpenTime  string `json:"openTime,omitempty" yaml:"openTime,omitempty"`
	CloseDay  string `json:"closeDay,omitempty" yaml:"closeDay,omitempty"`
	CloseTime string `json:"closeTime,omitempty" yaml:"closeTime,omitempty"`
}

// ResolvedDescription returns the profile description, falling back to
// the nested attributes["profile"]["description"] entry that some
// exports use instead of the root field.
func (p *Profile) ResolvedDescription() string {
	if d := strings.TrimSpace(p.Description); d != "" {
		return d
	}
	nested, ok := p.Attributes["profile"].(map[string]any)
	if !ok {
		return ""
	}
	if d, ok := nested["description"].(string); ok {
		return strings.TrimSpace(d)
	}
	return ""
}
