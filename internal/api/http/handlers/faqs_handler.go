package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lawfirm/site-api/internal/api/dto"
	"github.com/lawfirm/site-api/internal/auth"
	"github.com/lawfirm/site-api/internal/service"
	"github.com/lawfirm/site-api/internal/validation"
)

// FAQsHandler serves the FAQ endpoints.
type FAQsHandler struct {
	service *service.FAQService
}

// NewFAQsHandler constructs handler.
func NewFAQsHandler(faqService *service.FAQService) *FAQsHandler {
	return &FAQsHandler{service: faqService}
}

// List GET /api/faqs.
func (h *FAQsHandler) List(c *fiber.Ctx) error {
	includeInactive, _ := strconv.ParseBool(c.Query("includeInactive"))
	faqs, err := h.service.List(c.UserContext(), service.FAQFilter{
		Category:        c.Query("category"),
		IncludeInactive: includeInactive,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFAQList(faqs))
}

// Get GET /api/faqs/:id.
func (h *FAQsHandler) Get(c *fiber.Ctx) error {
	faq, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FAQEnvelope{FAQ: dto.NewFAQResponse(faq)})
}

// Create POST /api/faqs.
func (h *FAQsHandler) Create(c *fiber.Ctx) error {
	identity, _ := auth.IdentityFromContext(c)
	var req validation.FAQInput
	if err := c.BodyParser(&req); err != nil {
		return malformedBody()
	}
	faq, err := h.service.Create(c.UserContext(), identity, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FAQEnvelope{FAQ: dto.NewFAQResponse(faq)})
}

// Update PUT /api/faqs/:id.
func (h *FAQsHandler) Update(c *fiber.Ctx) error {
	identity, _ := auth.IdentityFromContext(c)
	var req validation.FAQUpdate
	if err := c.BodyParser(&req); err != nil {
		return malformedBody()
	}
	faq, err := h.service.Update(c.UserContext(), identity, c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.FAQEnvelope{FAQ: dto.NewFAQResponse(faq)})
}

// Delete DELETE /api/faqs/:id.
func (h *FAQsHandler) Delete(c *fiber.Ctx) error {
	identity, _ := auth.IdentityFromContext(c)
	if err := h.service.Delete(c.UserContext(), identity, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
