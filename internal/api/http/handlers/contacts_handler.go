package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawfirm/site-api/internal/api/dto"
	"github.com/lawfirm/site-api/internal/auth"
	"github.com/lawfirm/site-api/internal/service"
	"github.com/lawfirm/site-api/internal/validation"
)

// ContactsHandler serves the public contact form and the admin inbox.
type ContactsHandler struct {
	service *service.ContactService
}

// NewContactsHandler constructs handler.
func NewContactsHandler(contactService *service.ContactService) *ContactsHandler {
	return &ContactsHandler{service: contactService}
}

// Submit POST /api/contact.
func (h *ContactsHandler) Submit(c *fiber.Ctx) error {
	var req validation.ContactSubmission
	if err := c.BodyParser(&req); err != nil {
		return malformedBody()
	}
	contact, err := h.service.Submit(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.ContactSubmittedResponse{Success: true, ID: contact.ID})
}

// List GET /api/contacts.
func (h *ContactsHandler) List(c *fiber.Ctx) error {
	contacts, err := h.service.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewContactList(contacts))
}

// Get GET /api/contacts/:id.
func (h *ContactsHandler) Get(c *fiber.Ctx) error {
	contact, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"contact": dto.NewContactResponse(contact)})
}

// Update PATCH /api/contacts/:id.
func (h *ContactsHandler) Update(c *fiber.Ctx) error {
	identity, _ := auth.IdentityFromContext(c)
	var req validation.ContactUpdate
	if err := c.BodyParser(&req); err != nil {
		return malformedBody()
	}
	contact, err := h.service.Update(c.UserContext(), identity, c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(dto.ContactUpdatedResponse{Success: true, Contact: dto.NewContactResponse(contact)})
}

// Delete DELETE /api/contacts/:id.
func (h *ContactsHandler) Delete(c *fiber.Ctx) error {
	identity, _ := auth.IdentityFromContext(c)
	if err := h.service.Delete(c.UserContext(), identity, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
