package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lawfirm/site-api/internal/auth"
	"github.com/lawfirm/site-api/internal/config"
	"github.com/lawfirm/site-api/internal/domain"
	"github.com/lawfirm/site-api/internal/repository"
	"github.com/lawfirm/site-api/internal/validation"
	apperrors "github.com/lawfirm/site-api/pkg/util/errorutil"
)

// LoginResult is a freshly issued admin session.
type LoginResult struct {
	Identity  domain.AdminIdentity
	Token     string
	ExpiresAt time.Time
}

// AuthService coordinates admin login, logout and credential seeding.
type AuthService struct {
	creds      repository.AdminCredentialRepository
	sessions   auth.SessionStore
	tokens     *auth.TokenManager
	validator  *validation.Validator
	logger     *zap.Logger
	ttl        time.Duration
	bcryptCost int

	dummyOnce sync.Once
	dummyHash string
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	CredentialRepo repository.AdminCredentialRepository
	Sessions       auth.SessionStore
	Tokens         *auth.TokenManager
	Validator      *validation.Validator
	Logger         *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		creds:      deps.CredentialRepo,
		sessions:   deps.Sessions,
		tokens:     deps.Tokens,
		validator:  v,
		logger:     logger,
		ttl:        cfg.SessionTTL(),
		bcryptCost: cfg.BcryptCost,
	}
}

// Login checks the admin credential and opens a session. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in validation.LoginInput) (*LoginResult, error) {
	input, err := s.validator.ValidateLogin(in)
	if err != nil {
		return nil, validationError(err)
	}

	cred, err := s.creds.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if cred == nil {
		// burn the same bcrypt time as a real comparison
		_ = auth.ComparePassword(s.fallbackHash(), input.Password)
		return nil, apperrors.NewUnauthorized("Invalid credentials")
	}
	if err := auth.ComparePassword(cred.PasswordHash, input.Password); err != nil {
		return nil, apperrors.NewUnauthorized("Invalid credentials")
	}

	session, err := s.sessions.Create(ctx, cred.Email, s.ttl)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	token, err := s.tokens.Seal(session.ID, session.ExpiresAt)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.logger.Info("admin login", zap.String("email", cred.Email))
	return &LoginResult{
		Identity:  domain.AdminIdentity{Email: cred.Email},
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout revokes the session behind token. Unknown or forged tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	id, err := s.tokens.Open(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// SeedAdmin upserts the configured admin credential. An empty email skips
// seeding; a hash that is not bcrypt is rejected.
func (s *AuthService) SeedAdmin(ctx context.Context, admin config.AdminConfig) error {
	email := strings.ToLower(strings.TrimSpace(admin.Email))
	if email == "" {
		s.logger.Warn("ADMIN_EMAIL not set; no admin can log in until a credential exists")
		return nil
	}
	if err := auth.CheckHash(admin.PasswordHash); err != nil {
		return err
	}
	if err := s.creds.Upsert(ctx, &domain.AdminCredential{Email: email, PasswordHash: admin.PasswordHash}); err != nil {
		return err
	}
	s.logger.Info("admin credential seeded", zap.String("email", email))
	return nil
}

func (s *AuthService) fallbackHash() string {
	s.dummyOnce.Do(func() {
		hash, err := auth.HashPassword("not-a-real-password", s.bcryptCost)
		if err != nil {
			s.logger.Warn("dummy hash generation failed", zap.Error(err))
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
