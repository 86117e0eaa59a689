package service

import (
	"context"

	"github.com/lawfirm/site-api/internal/domain"
	"github.com/lawfirm/site-api/internal/events"
	"github.com/lawfirm/site-api/internal/repository"
	"github.com/lawfirm/site-api/internal/validation"
	apperrors "github.com/lawfirm/site-api/pkg/util/errorutil"
)

// FAQService manages the public FAQ content.
type FAQService struct {
	faqs       repository.FAQRepository
	validator  *validation.Validator
	dispatcher events.Dispatcher
}

// FAQDependencies bundles collaborators for the FAQ service.
type FAQDependencies struct {
	FAQRepo    repository.FAQRepository
	Validator  *validation.Validator
	Dispatcher events.Dispatcher
}

// FAQFilter narrows the public listing.
type FAQFilter struct {
	Category        string
	IncludeInactive bool
}

// NewFAQService creates the service.
func NewFAQService(deps FAQDependencies) *FAQService {
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}
	return &FAQService{faqs: deps.FAQRepo, validator: v, dispatcher: deps.Dispatcher}
}

// List returns active FAQs unless IncludeInactive is set, optionally
// restricted to one category.
func (s *FAQService) List(ctx context.Context, filter FAQFilter) ([]domain.FAQ, error) {
	var (
		faqs []domain.FAQ
		err  error
	)
	if filter.IncludeInactive {
		faqs, err = s.faqs.List(ctx)
	} else {
		faqs, err = s.faqs.ListActive(ctx)
	}
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if filter.Category == "" {
		return faqs, nil
	}
	filtered := make([]domain.FAQ, 0, len(faqs))
	for _, f := range faqs {
		if f.Category == filter.Category {
			filtered = append(filtered, f)
		}
	}
	return filtered, nil
}

// Get returns a single FAQ regardless of status.
func (s *FAQService) Get(ctx context.Context, id string) (*domain.FAQ, error) {
	faq, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if faq == nil {
		return nil, apperrors.NewNotFound("FAQ")
	}
	return faq, nil
}

// Create stores a new FAQ. Without an explicit order it is placed after
// every existing FAQ, counted across all categories.
func (s *FAQService) Create(ctx context.Context, actor *domain.AdminIdentity, in validation.FAQInput) (*domain.FAQ, error) {
	draft, err := s.validator.ValidateFAQ(in)
	if err != nil {
		return nil, validationError(err)
	}
	faq := draft.FAQ
	create := s.faqs.Create
	if !draft.HasOrder {
		create = s.faqs.CreateAtEnd
	}
	if err := create(ctx, &faq); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.changed(ctx, actor, faq.ID, events.FAQCreated, faq.Category)
	return &faq, nil
}

// Update merges the provided fields onto an existing FAQ.
func (s *FAQService) Update(ctx context.Context, actor *domain.AdminIdentity, id string, in validation.FAQUpdate) (*domain.FAQ, error) {
	patch, err := s.validator.ValidateFAQUpdate(in)
	if err != nil {
		return nil, validationError(err)
	}
	faq, err := s.faqs.Update(ctx, id, patch)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if faq == nil {
		return nil, apperrors.NewNotFound("FAQ")
	}
	s.changed(ctx, actor, faq.ID, events.FAQUpdated, faq.Category)
	return faq, nil
}

// Delete removes an FAQ.
func (s *FAQService) Delete(ctx context.Context, actor *domain.AdminIdentity, id string) error {
	removed, err := s.faqs.Delete(ctx, id)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if !removed {
		return apperrors.NewNotFound("FAQ")
	}
	s.changed(ctx, actor, id, events.FAQDeleted, "")
	return nil
}

func (s *FAQService) changed(ctx context.Context, actor *domain.AdminIdentity, id string, change events.FAQChange, category string) {
	publish(ctx, s.dispatcher, events.EventFAQChanged, id, actorEmail(actor), events.FAQChangedPayload{
		Change:   change,
		Category: category,
	})
}
