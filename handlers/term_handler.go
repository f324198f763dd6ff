package handlers

import (
	"net/http"

	"news-cms/helper"
	"news-cms/models"
	"news-cms/services"

	"github.com/gin-gonic/gin"
)

type TermHandler struct {
	termService services.TermService
	Helper      *helper.HTTPHelper
}

func NewTermHandler(termService services.TermService, h *helper.HTTPHelper) *TermHandler {
	return &TermHandler{termService: termService, Helper: h}
}

// GetAlphabet godoc
// @Summary Letters that have terms
// @Tags Encyclopedia
// @Produce json
// @Router /encyclopedia/letter [get]
func (h *TermHandler) GetAlphabet(c *gin.Context) {
	letters, err := h.termService.Alphabet(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"letters": letters})
}

// GetTermsByLetter godoc
// @Summary Terms starting with a letter
// @Tags Encyclopedia
// @Produce json
// @Param letter path string true "Letter"
// @Failure 404 {object} models.MessageResponse
// @Router /encyclopedia/letter/{letter} [get]
func (h *TermHandler) GetTermsByLetter(c *gin.Context) {
	terms, err := h.termService.GetByLetter(c.Request.Context(), c.Param("letter"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"terms": terms})
}

// GetTerms godoc
// @Summary All terms
// @Tags Encyclopedia
// @Produce json
// @Router /encyclopedia/terms [get]
func (h *TermHandler) GetTerms(c *gin.Context) {
	terms, err := h.termService.GetTerms(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"terms": terms})
}

// CreateTerm godoc
// @Summary Create a term
// @Tags Encyclopedia
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param request body models.TermRequest true "Term"
// @Failure 400 {object} models.MessageResponse
// @Router /encyclopedia/terms [post]
func (h *TermHandler) CreateTerm(c *gin.Context) {
	var req models.TermRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	term, err := h.termService.CreateTerm(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, gin.H{"message": "Termin qo'shildi", "term": term})
}

// UpdateTerm godoc
// @Summary Update a term
// @Tags Encyclopedia
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param id path int true "Term ID"
// @Param request body models.TermRequest true "Term"
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /encyclopedia/terms/{id} [put]
func (h *TermHandler) UpdateTerm(c *gin.Context) {
	id, err := paramID(c, "id", models.MsgInvalidID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req models.TermRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	term, err := h.termService.UpdateTerm(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"message": "Termin yangilandi", "term": term})
}

// DeleteTerm godoc
// @Summary Delete a term
// @Tags Encyclopedia
// @Produce json
// @Security bearerAuth
// @Param id path int true "Term ID"
// @Failure 404 {object} models.MessageResponse
// @Router /encyclopedia/terms/{id} [delete]
func (h *TermHandler) DeleteTerm(c *gin.Context) {
	id, err := paramID(c, "id", models.MsgInvalidID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	term, err := h.termService.DeleteTerm(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"message": "Termin o'chirildi", "term": term})
}
