package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lawfirm/site-api/internal/domain"
	"github.com/lawfirm/site-api/internal/repository"
	apperrors "github.com/lawfirm/site-api/pkg/util/errorutil"
)

const adminEmail = "partner@firm.test"

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

type fixture struct {
	clock    *clock
	tokens   *TokenManager
	sessions SessionStore
	creds    repository.AdminCredentialRepository
	verifier *SessionVerifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := &clock{t: time.Now()}
	tokens := NewTokenManager("test-secret")
	tokens.now = clk.now
	sessions := NewMemorySessionStore(clk.now)
	creds := repository.NewMemoryAdminCredentialRepository()

	hash, err := HashPassword("correct horse", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, creds.Upsert(context.Background(), &domain.AdminCredential{Email: adminEmail, PasswordHash: hash}))

	return &fixture{
		clock:    clk,
		tokens:   tokens,
		sessions: sessions,
		creds:    creds,
		verifier: NewSessionVerifier(tokens, sessions, creds, zap.NewNop()),
	}
}

func (f *fixture) issue(t *testing.T, ttl time.Duration) string {
	t.Helper()
	session, err := f.sessions.Create(context.Background(), adminEmail, ttl)
	require.NoError(t, err)
	token, err := f.tokens.Seal(session.ID, session.ExpiresAt)
	require.NoError(t, err)
	return token
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "s3cret"))
	assert.Error(t, ComparePassword(hash, "guess"))
	assert.NoError(t, CheckHash(hash))
	assert.Error(t, CheckHash("plaintext"))
}

func TestTokenManager(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, err := tm.Seal("session-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	id, err := tm.Open(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)

	_, err = NewTokenManager("other-secret").Open(token)
	assert.Error(t, err)

	expired, err := tm.Seal("session-2", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = tm.Open(expired)
	assert.Error(t, err)

	_, err = tm.Open("not-a-token")
	assert.Error(t, err)
}

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()
	clk := &clock{t: time.Now()}
	store := NewMemorySessionStore(clk.now)

	session, err := store.Create(ctx, adminEmail, time.Hour)
	require.NoError(t, err)

	email, err := store.Lookup(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, adminEmail, email)

	_, err = store.Lookup(ctx, "unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	clk.t = clk.t.Add(time.Hour)
	_, err = store.Lookup(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	other, err := store.Create(ctx, adminEmail, time.Hour)
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, other.ID))
	_, err = store.Lookup(ctx, other.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

type failingSessions struct{ SessionStore }

func (failingSessions) Lookup(context.Context, string) (string, error) {
	return "", errors.New("redis: connection refused")
}

func TestSessionVerifier(t *testing.T) {
	ctx := context.Background()

	t.Run("issued token within ttl resolves", func(t *testing.T) {
		f := newFixture(t)
		identity := f.verifier.Verify(ctx, f.issue(t, time.Hour))
		require.NotNil(t, identity)
		assert.Equal(t, adminEmail, identity.Email)
	})

	t.Run("empty token", func(t *testing.T) {
		f := newFixture(t)
		assert.Nil(t, f.verifier.Verify(ctx, ""))
	})

	t.Run("unknown session id", func(t *testing.T) {
		f := newFixture(t)
		token, err := f.tokens.Seal("never-issued", f.clock.t.Add(time.Hour))
		require.NoError(t, err)
		assert.Nil(t, f.verifier.Verify(ctx, token))
	})

	t.Run("expired session", func(t *testing.T) {
		f := newFixture(t)
		token := f.issue(t, time.Minute)
		f.clock.t = f.clock.t.Add(2 * time.Minute)
		assert.Nil(t, f.verifier.Verify(ctx, token))
	})

	t.Run("revoked session", func(t *testing.T) {
		f := newFixture(t)
		token := f.issue(t, time.Hour)
		id, err := f.tokens.Open(token)
		require.NoError(t, err)
		require.NoError(t, f.sessions.Delete(ctx, id))
		assert.Nil(t, f.verifier.Verify(ctx, token))
	})

	t.Run("credential removed", func(t *testing.T) {
		f := newFixture(t)
		token := f.issue(t, time.Hour)
		f.verifier.creds = repository.NewMemoryAdminCredentialRepository()
		assert.Nil(t, f.verifier.Verify(ctx, token))
	})

	t.Run("store fault reads as unauthenticated", func(t *testing.T) {
		f := newFixture(t)
		token := f.issue(t, time.Hour)
		f.verifier.sessions = failingSessions{f.sessions}
		assert.Nil(t, f.verifier.Verify(ctx, token))
	})
}

func TestGate(t *testing.T) {
	f := newFixture(t)
	gate := NewGate(f.verifier, "admin_session")
	valid := f.issue(t, time.Hour)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": de.Message})
		},
	})
	app.Get("/private", gate.Require, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return errors.New("identity missing")
		}
		return c.SendString(identity.Email)
	})

	tests := []struct {
		name       string
		setup      func(*http.Request)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "cookie",
			setup:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "admin_session", Value: valid}) },
			wantStatus: http.StatusOK,
			wantBody:   adminEmail,
		},
		{
			name:       "bearer header",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			wantStatus: http.StatusOK,
			wantBody:   adminEmail,
		},
		{
			name:       "no session",
			setup:      func(*http.Request) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:       "garbage cookie",
			setup:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "admin_session", Value: "garbage"}) },
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			tt.setup(req)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}
