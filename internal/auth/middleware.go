package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lawfirm/site-api/internal/domain"
	apperrors "github.com/lawfirm/site-api/pkg/util/errorutil"
)

const identityKey = "admin_identity"

// Gate guards admin-only routes behind a valid session.
type Gate struct {
	verifier   *SessionVerifier
	cookieName string
}

// NewGate constructs the middleware.
func NewGate(verifier *SessionVerifier, cookieName string) *Gate {
	return &Gate{verifier: verifier, cookieName: cookieName}
}

// Require stops the request with 401 unless the caller has a valid session.
func (g *Gate) Require(c *fiber.Ctx) error {
	identity := g.Identify(c)
	if identity == nil {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	c.Locals(identityKey, identity)
	return c.Next()
}

// Identify runs the verifier against the request without enforcing anything.
func (g *Gate) Identify(c *fiber.Ctx) *domain.AdminIdentity {
	return g.verifier.Verify(c.UserContext(), g.Token(c))
}

// Token reads the session cookie, falling back to a bearer header for API clients.
func (g *Gate) Token(c *fiber.Ctx) string {
	if token := c.Cookies(g.cookieName); token != "" {
		return token
	}
	if token, found := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "); found {
		return strings.TrimSpace(token)
	}
	return ""
}

// CookieName is the name of the session cookie.
func (g *Gate) CookieName() string {
	return g.cookieName
}

// IdentityFromContext retrieves the admin placed by Require.
func IdentityFromContext(c *fiber.Ctx) (*domain.AdminIdentity, bool) {
	identity, ok := c.Locals(identityKey).(*domain.AdminIdentity)
	return identity, ok && identity != nil
}
