package validation

import (
	"html"
	"strings"

	"github.com/lawfirm/site-api/internal/domain"
)

// FAQInput is the create payload. Order is optional; the service fills it in.
type FAQInput struct {
	Question string  `json:"question" validate:"required,max=500"`
	Answer   string  `json:"answer" validate:"required,max=10000"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Order    *int    `json:"order" validate:"omitempty,min=0"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// FAQUpdate is the partial update payload. Absent fields are untouched.
type FAQUpdate struct {
	Question *string `json:"question" validate:"omitempty,min=1,max=500"`
	Answer   *string `json:"answer" validate:"omitempty,min=1,max=10000"`
	Category *string `json:"category" validate:"omitempty,max=100"`
	Order    *int    `json:"order" validate:"omitempty,min=0"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// FAQDraft is a validated FAQ that still needs its order when HasOrder is false.
type FAQDraft struct {
	FAQ      domain.FAQ
	HasOrder bool
}

// ValidateFAQ normalizes a create payload. Missing category becomes
// "General" and missing status becomes active.
func (v *Validator) ValidateFAQ(in FAQInput) (*FAQDraft, error) {
	normalized := FAQInput{
		Question: strings.TrimSpace(in.Question),
		Answer:   strings.TrimSpace(in.Answer),
		Category: emptyToNil(trimPtr(in.Category)),
		Order:    in.Order,
		Status:   trimPtr(in.Status),
	}
	answer, answerErr := v.answer(normalized.Answer)
	if err := merge(v.check(normalized), answerErr); err != nil {
		return nil, err
	}

	draft := &FAQDraft{FAQ: domain.FAQ{
		Question: normalized.Question,
		Answer:   answer,
		Category: domain.DefaultFAQCategory,
		Status:   domain.FAQStatusActive,
	}}
	if normalized.Category != nil {
		draft.FAQ.Category = *normalized.Category
	}
	if normalized.Order != nil {
		draft.FAQ.Order = *normalized.Order
		draft.HasOrder = true
	}
	if normalized.Status != nil {
		draft.FAQ.Status = domain.FAQStatus(*normalized.Status)
	}
	return draft, nil
}

// ValidateFAQUpdate returns the patch to merge onto a stored FAQ.
// An empty category resets it to "General".
func (v *Validator) ValidateFAQUpdate(in FAQUpdate) (domain.FAQPatch, error) {
	normalized := FAQUpdate{
		Question: trimPtr(in.Question),
		Answer:   trimPtr(in.Answer),
		Category: trimPtr(in.Category),
		Order:    in.Order,
		Status:   trimPtr(in.Status),
	}
	var (
		answer    string
		answerErr *FieldError
	)
	if normalized.Answer != nil {
		answer, answerErr = v.answer(*normalized.Answer)
	}
	if err := merge(v.check(normalized), answerErr); err != nil {
		return domain.FAQPatch{}, err
	}

	patch := domain.FAQPatch{
		Question: normalized.Question,
		Category: normalized.Category,
		Order:    normalized.Order,
	}
	if normalized.Answer != nil {
		patch.Answer = &answer
	}
	if patch.Category != nil && *patch.Category == "" {
		general := domain.DefaultFAQCategory
		patch.Category = &general
	}
	if normalized.Status != nil {
		status := domain.FAQStatus(*normalized.Status)
		patch.Status = &status
	}
	return patch, nil
}

// answer returns the answer to store. Text and allowed markup are kept as
// written; anything the HTML policy strips is replaced by the policy output.
// An empty answer is left to the required tag.
func (v *Validator) answer(raw string) (string, *FieldError) {
	if raw == "" {
		return "", nil
	}
	sanitized := strings.TrimSpace(v.html.Sanitize(raw))
	if strings.TrimSpace(html.UnescapeString(v.text.Sanitize(sanitized))) == "" {
		return "", &FieldError{Field: "answer", Message: "must contain text"}
	}
	if html.UnescapeString(sanitized) == raw {
		return raw, nil
	}
	return sanitized, nil
}
