package dto

import (
	"time"

	"github.com/lawfirm/site-api/internal/domain"
)

// FAQResponse is the public view of an FAQ entry.
type FAQResponse struct {
	ID        string           `json:"id"`
	Question  string           `json:"question"`
	Answer    string           `json:"answer"`
	Category  string           `json:"category"`
	Order     int              `json:"order"`
	Status    domain.FAQStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// FAQEnvelope wraps a single FAQ.
type FAQEnvelope struct {
	FAQ FAQResponse `json:"faq"`
}

// FAQListResponse wraps a listing.
type FAQListResponse struct {
	FAQs []FAQResponse `json:"faqs"`
}

// NewFAQResponse maps a domain FAQ.
func NewFAQResponse(f *domain.FAQ) FAQResponse {
	return FAQResponse{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Category:  f.Category,
		Order:     f.Order,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// NewFAQList maps a slice, never returning nil.
func NewFAQList(faqs []domain.FAQ) FAQListResponse {
	out := make([]FAQResponse, 0, len(faqs))
	for i := range faqs {
		out = append(out, NewFAQResponse(&faqs[i]))
	}
	return FAQListResponse{FAQs: out}
}
