package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/lawfirm/site-api/internal/domain"
	"github.com/lawfirm/site-api/internal/events"
	"github.com/lawfirm/site-api/internal/repository"
	"github.com/lawfirm/site-api/internal/validation"
	apperrors "github.com/lawfirm/site-api/pkg/util/errorutil"
)

const previewRunes = 120

// ContactService coordinates contact-form intake and the admin inbox.
type ContactService struct {
	contacts   repository.ContactRepository
	validator  *validation.Validator
	dispatcher events.Dispatcher
}

// ContactDependencies bundles collaborators for the contact service.
type ContactDependencies struct {
	ContactRepo repository.ContactRepository
	Validator   *validation.Validator
	Dispatcher  events.Dispatcher
}

// NewContactService creates the service.
func NewContactService(deps ContactDependencies) *ContactService {
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}
	return &ContactService{contacts: deps.ContactRepo, validator: v, dispatcher: deps.Dispatcher}
}

// Submit validates a public submission and stores it with status "new".
// Nothing is stored when validation fails.
func (s *ContactService) Submit(ctx context.Context, in validation.ContactSubmission) (*domain.Contact, error) {
	contact, err := s.validator.ValidateContactSubmission(in)
	if err != nil {
		return nil, validationError(err)
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.publish(ctx, events.EventContactSubmitted, contact.ID, "", events.ContactSubmittedPayload{
		Name:        contact.Name,
		Email:       contact.Email,
		InquiryType: contact.InquiryType,
		Preview:     preview(contact.Message),
	})
	return contact, nil
}

// List returns contacts newest first, optionally only those with status.
func (s *ContactService) List(ctx context.Context, status string) ([]domain.Contact, error) {
	var want domain.ContactStatus
	if status != "" {
		want = domain.ContactStatus(status)
		if !want.Valid() {
			return nil, apperrors.NewValidationError("Validation failed", validation.Errors{
				{Field: "status", Message: "must be one of: new, read, responded"},
			})
		}
	}

	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if want == "" {
		return contacts, nil
	}
	filtered := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Status == want {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// Get returns a single contact.
func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if contact == nil {
		return nil, apperrors.NewNotFound("Contact")
	}
	return contact, nil
}

// Update applies an admin patch. Only the fields present in the input change.
func (s *ContactService) Update(ctx context.Context, actor *domain.AdminIdentity, id string, in validation.ContactUpdate) (*domain.Contact, error) {
	patch, err := s.validator.ValidateContactUpdate(in)
	if err != nil {
		return nil, validationError(err)
	}

	before, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if before == nil {
		return nil, apperrors.NewNotFound("Contact")
	}

	updated, err := s.contacts.Update(ctx, id, patch)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if updated == nil {
		return nil, apperrors.NewNotFound("Contact")
	}
	if updated.Status != before.Status {
		s.publish(ctx, events.EventContactStatusChanged, id, actorEmail(actor), events.ContactStatusChangedPayload{
			OldStatus: before.Status,
			NewStatus: updated.Status,
		})
	}
	return updated, nil
}

// Delete removes a contact.
func (s *ContactService) Delete(ctx context.Context, actor *domain.AdminIdentity, id string) error {
	removed, err := s.contacts.Delete(ctx, id)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if !removed {
		return apperrors.NewNotFound("Contact")
	}
	s.publish(ctx, events.EventContactDeleted, id, actorEmail(actor), nil)
	return nil
}

func (s *ContactService) publish(ctx context.Context, eventType events.EventType, resourceID, actor string, payload any) {
	publish(ctx, s.dispatcher, eventType, resourceID, actor, payload)
}

func publish(ctx context.Context, dispatcher events.Dispatcher, eventType events.EventType, resourceID, actor string, payload any) {
	if dispatcher == nil {
		return
	}
	_ = dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		ResourceID: resourceID,
		Actor:      actor,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	})
}

// validationError wraps a validation result for the transport layer.
// Anything other than field errors is treated as an internal fault.
func validationError(err error) error {
	if fieldErrs, ok := err.(validation.Errors); ok {
		return apperrors.NewValidationError("Validation failed", fieldErrs)
	}
	return apperrors.NewInternalError(err)
}

func actorEmail(actor *domain.AdminIdentity) string {
	if actor == nil {
		return ""
	}
	return actor.Email
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewRunes {
		return s
	}
	return string([]rune(s)[:previewRunes]) + "..."
}
