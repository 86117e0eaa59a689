package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lawfirm/site-api/internal/api/dto"
	"github.com/lawfirm/site-api/internal/auth"
	"github.com/lawfirm/site-api/internal/service"
	"github.com/lawfirm/site-api/internal/validation"
)

// AuthHandler serves admin login, logout and the session check.
type AuthHandler struct {
	service       *service.AuthService
	gate          *auth.Gate
	secureCookies bool
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, gate *auth.Gate, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: authService, gate: gate, secureCookies: secureCookies}
}

// Session GET /api/auth/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	identity := h.gate.Identify(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.SessionResponse{Authenticated: false})
	}
	return c.JSON(dto.SessionResponse{Authenticated: true, User: &dto.UserResponse{Email: identity.Email}})
}

// Login POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req validation.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return malformedBody()
	}
	result, err := h.service.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	c.Cookie(h.cookie(result.Token, result.ExpiresAt))
	return c.JSON(dto.LoginResponse{Success: true, User: dto.UserResponse{Email: result.Identity.Email}})
}

// Logout POST /api/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.UserContext(), h.gate.Token(c)); err != nil {
		return err
	}
	c.Cookie(h.cookie("", time.Unix(0, 0)))
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *AuthHandler) cookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     h.gate.CookieName(),
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}
