package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/lawfirm/site-api/internal/domain"
	"github.com/lawfirm/site-api/internal/repository"
)

// SessionVerifier resolves a session cookie to the admin behind it.
type SessionVerifier struct {
	tokens   *TokenManager
	sessions SessionStore
	creds    repository.AdminCredentialRepository
	logger   *zap.Logger
}

// NewSessionVerifier constructs a verifier.
func NewSessionVerifier(tokens *TokenManager, sessions SessionStore, creds repository.AdminCredentialRepository, logger *zap.Logger) *SessionVerifier {
	return &SessionVerifier{tokens: tokens, sessions: sessions, creds: creds, logger: logger}
}

// Verify returns the identity for token, or nil when the token is missing,
// forged, expired, unknown, or cannot be checked. Store faults are logged
// and reported as nil so callers answer 401 rather than 500.
func (v *SessionVerifier) Verify(ctx context.Context, token string) *domain.AdminIdentity {
	if token == "" {
		return nil
	}

	sessionID, err := v.tokens.Open(token)
	if err != nil {
		v.logger.Debug("session envelope rejected", zap.Error(err))
		return nil
	}

	email, err := v.sessions.Lookup(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			v.logger.Warn("session lookup failed", zap.Error(err))
		}
		return nil
	}

	cred, err := v.creds.GetByEmail(ctx, email)
	if err != nil {
		v.logger.Warn("credential lookup failed", zap.Error(err))
		return nil
	}
	if cred == nil {
		return nil
	}
	return &domain.AdminIdentity{Email: cred.Email}
}
