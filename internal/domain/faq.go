package domain

import "time"

// DefaultFAQCategory is used when a FAQ is created without a category.
const DefaultFAQCategory = "General"

// FAQStatus controls public visibility of a FAQ entry.
type FAQStatus string

const (
	FAQStatusActive   FAQStatus = "active"
	FAQStatusInactive FAQStatus = "inactive"
)

// FAQ is a question/answer pair shown on the public site.
// Order sets display sequence within a category.
type FAQ struct {
	ID        string
	Question  string
	Answer    string
	Category  string
	Order     int
	Status    FAQStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FAQPatch carries a partial FAQ update; nil fields are untouched.
type FAQPatch struct {
	Question *string
	Answer   *string
	Category *string
	Order    *int
	Status   *FAQStatus
}

// Apply merges the patch onto f.
func (p FAQPatch) Apply(f *FAQ) {
	if p.Question != nil {
		f.Question = *p.Question
	}
	if p.Answer != nil {
		f.Answer = *p.Answer
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Order != nil {
		f.Order = *p.Order
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
}
