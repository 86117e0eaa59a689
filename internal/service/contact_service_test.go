package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawfirm/site-api/internal/domain"
	"github.com/lawfirm/site-api/internal/events"
	"github.com/lawfirm/site-api/internal/repository"
	"github.com/lawfirm/site-api/internal/validation"
	apperrors "github.com/lawfirm/site-api/pkg/util/errorutil"
)

type countingContacts struct {
	repository.ContactRepository
	creates int
}

func (c *countingContacts) Create(ctx context.Context, record *domain.Contact) error {
	c.creates++
	return c.ContactRepository.Create(ctx, record)
}

func newContactService(t *testing.T) (*ContactService, *countingContacts, *[]events.Event) {
	t.Helper()
	repo := &countingContacts{ContactRepository: repository.NewMemoryContactRepository()}
	dispatcher := events.NewInMemoryDispatcher(nil)
	var published []events.Event
	for _, et := range []events.EventType{events.EventContactSubmitted, events.EventContactStatusChanged, events.EventContactDeleted} {
		dispatcher.Subscribe(et, func(_ context.Context, e events.Event) error {
			published = append(published, e)
			return nil
		})
	}
	svc := NewContactService(ContactDependencies{ContactRepo: repo, Dispatcher: dispatcher})
	return svc, repo, &published
}

func validSubmission() validation.ContactSubmission {
	return validation.ContactSubmission{
		Name:        "Jane",
		Email:       "jane@x.com",
		InquiryType: "civil",
		Message:     "I need help with a dispute",
	}
}

func strPtr(s string) *string { return &s }

func TestContactSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores new contact without phone", func(t *testing.T) {
		svc, repo, published := newContactService(t)
		contact, err := svc.Submit(ctx, validSubmission())
		require.NoError(t, err)
		assert.NotEmpty(t, contact.ID)
		assert.Equal(t, domain.ContactStatusNew, contact.Status)
		assert.Nil(t, contact.Phone)
		assert.Equal(t, 1, repo.creates)

		require.Len(t, *published, 1)
		assert.Equal(t, events.EventContactSubmitted, (*published)[0].Type)
		assert.Equal(t, contact.ID, (*published)[0].ResourceID)
	})

	t.Run("empty phone becomes nil", func(t *testing.T) {
		svc, _, _ := newContactService(t)
		in := validSubmission()
		in.Phone = strPtr("  ")
		contact, err := svc.Submit(ctx, in)
		require.NoError(t, err)
		assert.Nil(t, contact.Phone)
	})

	t.Run("short message creates nothing", func(t *testing.T) {
		svc, repo, published := newContactService(t)
		in := validSubmission()
		in.Message = "too short"
		_, err := svc.Submit(ctx, in)
		require.Error(t, err)

		de := apperrors.ToDomainError(err)
		assert.Equal(t, 400, de.HTTPStatus)
		assert.Equal(t, "Validation failed", de.Message)
		assert.Equal(t, 0, repo.creates)
		assert.Empty(t, *published)

		all, err := svc.List(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestContactUpdateChangesOnlyStatus(t *testing.T) {
	ctx := context.Background()
	svc, _, published := newContactService(t)
	in := validSubmission()
	in.Phone = strPtr("555-0100")
	created, err := svc.Submit(ctx, in)
	require.NoError(t, err)

	actor := &domain.AdminIdentity{Email: "partner@firm.test"}
	updated, err := svc.Update(ctx, actor, created.ID, validation.ContactUpdate{Status: strPtr("read")})
	require.NoError(t, err)

	assert.Equal(t, domain.ContactStatusRead, updated.Status)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Phone, updated.Phone)
	assert.Equal(t, created.InquiryType, updated.InquiryType)
	assert.Equal(t, created.Message, updated.Message)
	assert.Nil(t, updated.AdminNotes)

	last := (*published)[len(*published)-1]
	assert.Equal(t, events.EventContactStatusChanged, last.Type)
	assert.Equal(t, actor.Email, last.Actor)
}

func TestContactUpdateErrors(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newContactService(t)

	_, err := svc.Update(ctx, nil, "missing", validation.ContactUpdate{Status: strPtr("read")})
	assert.True(t, apperrors.IsNotFound(err))

	created, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)
	_, err = svc.Update(ctx, nil, created.ID, validation.ContactUpdate{Status: strPtr("archived")})
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)

	stored, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusNew, stored.Status)
}

func TestContactListFilter(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newContactService(t)
	a, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)
	_, err = svc.Submit(ctx, validSubmission())
	require.NoError(t, err)
	_, err = svc.Update(ctx, nil, a.ID, validation.ContactUpdate{Status: strPtr("responded")})
	require.NoError(t, err)

	responded, err := svc.List(ctx, "responded")
	require.NoError(t, err)
	require.Len(t, responded, 1)
	assert.Equal(t, a.ID, responded[0].ID)

	_, err = svc.List(ctx, "bogus")
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestContactDelete(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newContactService(t)
	created, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	err = svc.Delete(ctx, nil, "nope")
	assert.True(t, apperrors.IsNotFound(err))
	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(ctx, nil, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
