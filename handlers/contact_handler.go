package handlers

import (
	"net/http"

	"news-cms/helper"
	"news-cms/models"
	"news-cms/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService services.ContactService
	Helper         *helper.HTTPHelper
}

func NewContactHandler(contactService services.ContactService, h *helper.HTTPHelper) *ContactHandler {
	return &ContactHandler{contactService: contactService, Helper: h}
}

// CreateContact godoc
// @Summary Submit a contact message
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Message"
// @Failure 400 {object} models.MessageResponse
// @Failure 429 {object} models.MessageResponse
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, gin.H{"message": "Murojaatingiz qabul qilindi", "contact": contact})
}

// GetContacts godoc
// @Summary Contact messages, newest first
// @Tags Contacts
// @Produce json
// @Security bearerAuth
// @Router /contacts [get]
func (h *ContactHandler) GetContacts(c *gin.Context) {
	contacts, err := h.contactService.GetContacts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"contacts": contacts})
}

// GetContact godoc
// @Summary One contact message
// @Tags Contacts
// @Produce json
// @Security bearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} models.Contact
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, err := paramID(c, "id", models.MsgInvalidID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	contact, err := h.contactService.GetContact(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, contact)
}
