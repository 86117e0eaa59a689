package validation

import (
	"strings"

	"github.com/lawfirm/site-api/internal/domain"
)

// ContactSubmission is the public contact form.
type ContactSubmission struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,max=254,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=40"`
	InquiryType string  `json:"inquiryType" validate:"required,max=100"`
	Message     string  `json:"message" validate:"required,min=10,max=5000"`
}

// ContactUpdate is the admin partial update. Absent fields are untouched.
type ContactUpdate struct {
	Status     *string `json:"status" validate:"omitempty,oneof=new read responded"`
	AdminNotes *string `json:"adminNotes" validate:"omitempty,max=5000"`
}

// ValidateContactSubmission returns a new Contact with status "new".
// An empty or missing phone becomes nil.
func (v *Validator) ValidateContactSubmission(in ContactSubmission) (*domain.Contact, error) {
	normalized := ContactSubmission{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Phone:       emptyToNil(trimPtr(in.Phone)),
		InquiryType: strings.TrimSpace(in.InquiryType),
		Message:     strings.TrimSpace(in.Message),
	}
	if err := v.check(normalized); err != nil {
		return nil, err
	}
	return &domain.Contact{
		Name:        normalized.Name,
		Email:       normalized.Email,
		Phone:       normalized.Phone,
		InquiryType: normalized.InquiryType,
		Message:     normalized.Message,
		Status:      domain.ContactStatusNew,
	}, nil
}

// ValidateContactUpdate returns the patch to merge onto a stored contact.
func (v *Validator) ValidateContactUpdate(in ContactUpdate) (domain.ContactPatch, error) {
	normalized := ContactUpdate{
		Status:     trimPtr(in.Status),
		AdminNotes: trimPtr(in.AdminNotes),
	}
	if err := v.check(normalized); err != nil {
		return domain.ContactPatch{}, err
	}

	var patch domain.ContactPatch
	if normalized.Status != nil {
		status := domain.ContactStatus(*normalized.Status)
		patch.Status = &status
	}
	patch.AdminNotes = normalized.AdminNotes
	return patch, nil
}
