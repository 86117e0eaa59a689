package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lawfirm/site-api/internal/domain"
)

// memoryOps adapts the generic store to a concrete record type.
type memoryOps[T any, P any] struct {
	stamp func(record *T, id string, now time.Time)
	apply func(record *T, patch P, now time.Time)
	less  func(a, b *T) bool
}

// memoryStore keeps records in process. It stands in for Postgres in tests
// and when no DSN is configured; the mutex makes every mutation atomic.
type memoryStore[T any, P any] struct {
	mu      sync.RWMutex
	records map[string]T
	ops     memoryOps[T, P]
	now     func() time.Time
	newID   func() string
}

func newMemoryStore[T any, P any](ops memoryOps[T, P]) *memoryStore[T, P] {
	return &memoryStore[T, P]{
		records: make(map[string]T),
		ops:     ops,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func (s *memoryStore[T, P]) Create(_ context.Context, record *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(record)
}

// insert must be called with the write lock held.
func (s *memoryStore[T, P]) insert(record *T) error {
	id := s.newID()
	if _, exists := s.records[id]; exists {
		return fmt.Errorf("duplicate id %q", id)
	}
	s.ops.stamp(record, id, s.now())
	s.records[id] = *record
	return nil
}

func (s *memoryStore[T, P]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(*T) bool { return true }), nil
}

func (s *memoryStore[T, P]) GetByID(_ context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *memoryStore[T, P]) Update(_ context.Context, id string, patch P) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	s.ops.apply(&record, patch, s.now())
	s.records[id] = record
	return &record, nil
}

func (s *memoryStore[T, P]) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false, nil
	}
	delete(s.records, id)
	return true, nil
}

// sorted must be called with the lock held.
func (s *memoryStore[T, P]) sorted(keep func(*T) bool) []T {
	result := make([]T, 0, len(s.records))
	for _, record := range s.records {
		if keep(&record) {
			result = append(result, record)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return s.ops.less(&result[i], &result[j])
	})
	return result
}

type memoryContactRepository struct {
	*memoryStore[domain.Contact, domain.ContactPatch]
}

// NewMemoryContactRepository returns an in-process ContactRepository.
func NewMemoryContactRepository() ContactRepository {
	return &memoryContactRepository{newMemoryStore(memoryOps[domain.Contact, domain.ContactPatch]{
		stamp: func(c *domain.Contact, id string, now time.Time) {
			c.ID = id
			c.CreatedAt = now
			c.UpdatedAt = now
		},
		apply: func(c *domain.Contact, patch domain.ContactPatch, now time.Time) {
			patch.Apply(c)
			c.UpdatedAt = now
		},
		less: func(a, b *domain.Contact) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID < b.ID
		},
	})}
}

type memoryFAQRepository struct {
	*memoryStore[domain.FAQ, domain.FAQPatch]
}

// NewMemoryFAQRepository returns an in-process FAQRepository.
func NewMemoryFAQRepository() FAQRepository {
	return &memoryFAQRepository{newMemoryStore(memoryOps[domain.FAQ, domain.FAQPatch]{
		stamp: func(f *domain.FAQ, id string, now time.Time) {
			f.ID = id
			f.CreatedAt = now
			f.UpdatedAt = now
		},
		apply: func(f *domain.FAQ, patch domain.FAQPatch, now time.Time) {
			patch.Apply(f)
			f.UpdatedAt = now
		},
		less: func(a, b *domain.FAQ) bool {
			if c := strings.Compare(a.Category, b.Category); c != 0 {
				return c < 0
			}
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		},
	})}
}

func (r *memoryFAQRepository) ListActive(_ context.Context) ([]domain.FAQ, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted(func(f *domain.FAQ) bool { return f.Status == domain.FAQStatusActive }), nil
}

func (r *memoryFAQRepository) CreateAtEnd(_ context.Context, faq *domain.FAQ) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	faq.Order = len(r.records)
	return r.insert(faq)
}

type memoryAdminCredentialRepository struct {
	mu    sync.RWMutex
	creds map[string]domain.AdminCredential
}

// NewMemoryAdminCredentialRepository returns an in-process credential store.
func NewMemoryAdminCredentialRepository() AdminCredentialRepository {
	return &memoryAdminCredentialRepository{creds: make(map[string]domain.AdminCredential)}
}

func (r *memoryAdminCredentialRepository) GetByEmail(_ context.Context, email string) (*domain.AdminCredential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.creds[normalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	return &cred, nil
}

func (r *memoryAdminCredentialRepository) Upsert(_ context.Context, cred *domain.AdminCredential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	cred.Email = normalizeEmail(cred.Email)
	if existing, ok := r.creds[cred.Email]; ok {
		cred.CreatedAt = existing.CreatedAt
	} else {
		cred.CreatedAt = now
	}
	cred.UpdatedAt = now
	r.creds[cred.Email] = *cred
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
