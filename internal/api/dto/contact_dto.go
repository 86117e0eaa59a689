package dto

import (
	"time"

	"github.com/lawfirm/site-api/internal/domain"
)

// ContactResponse is the admin view of a contact submission.
type ContactResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Phone       *string              `json:"phone"`
	InquiryType string               `json:"inquiryType"`
	Message     string               `json:"message"`
	Status      domain.ContactStatus `json:"status"`
	AdminNotes  *string              `json:"adminNotes"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ContactSubmittedResponse acknowledges a public submission.
type ContactSubmittedResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ContactListResponse wraps the admin inbox.
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

// ContactUpdatedResponse is returned after an admin patch.
type ContactUpdatedResponse struct {
	Success bool            `json:"success"`
	Contact ContactResponse `json:"contact"`
}

// NewContactResponse maps a domain contact.
func NewContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		InquiryType: c.InquiryType,
		Message:     c.Message,
		Status:      c.Status,
		AdminNotes:  c.AdminNotes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// NewContactList maps a slice, never returning nil.
func NewContactList(contacts []domain.Contact) ContactListResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, NewContactResponse(&contacts[i]))
	}
	return ContactListResponse{Contacts: out}
}
