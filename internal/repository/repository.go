package repository

import (
	"context"

	"github.com/lawfirm/site-api/internal/domain"
)

// Repository is the persistence contract shared by every resource type.
//
// Not-found is never an error: GetByID and Update return a nil record and
// Delete returns false. Errors are reserved for store faults.
type Repository[T any, P any] interface {
	// Create assigns a fresh id and timestamps to record and persists it.
	Create(ctx context.Context, record *T) error
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	// Update merges the non-nil fields of patch onto the stored record.
	Update(ctx context.Context, id string, patch P) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ContactRepository persists contact-form submissions, newest first.
type ContactRepository interface {
	Repository[domain.Contact, domain.ContactPatch]
}

// FAQRepository persists FAQ entries ordered by category then order.
type FAQRepository interface {
	Repository[domain.FAQ, domain.FAQPatch]
	ListActive(ctx context.Context) ([]domain.FAQ, error)
	// CreateAtEnd persists faq with its order set to the number of FAQs
	// already stored. Concurrent calls never hand out the same order.
	CreateAtEnd(ctx context.Context, faq *domain.FAQ) error
}

// AdminCredentialRepository stores the admin login.
type AdminCredentialRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminCredential, error)
	Upsert(ctx context.Context, cred *domain.AdminCredential) error
}
