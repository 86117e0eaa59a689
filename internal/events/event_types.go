package events

import (
	"time"

	"github.com/lawfirm/site-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventContactSubmitted     EventType = "contact_submitted"
	EventContactStatusChanged EventType = "contact_status_changed"
	EventContactDeleted       EventType = "contact_deleted"
	EventFAQChanged           EventType = "faq_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	ResourceID string    `json:"resource_id"`
	Actor      string    `json:"actor,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Payload    any       `json:"payload"`
}

// ContactSubmittedPayload payload.
type ContactSubmittedPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	InquiryType string `json:"inquiry_type"`
	Preview     string `json:"preview"`
}

// ContactStatusChangedPayload payload.
type ContactStatusChangedPayload struct {
	OldStatus domain.ContactStatus `json:"old_status"`
	NewStatus domain.ContactStatus `json:"new_status"`
}

// FAQChange names what happened to an FAQ entry.
type FAQChange string

const (
	FAQCreated FAQChange = "created"
	FAQUpdated FAQChange = "updated"
	FAQDeleted FAQChange = "deleted"
)

// FAQChangedPayload payload.
type FAQChangedPayload struct {
	Change   FAQChange `json:"change"`
	Category string    `json:"category,omitempty"`
}
