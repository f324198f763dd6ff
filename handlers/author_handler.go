package handlers

import (
	"net/http"

	"news-cms/helper"
	"news-cms/models"
	"news-cms/services"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	authorService services.AuthorService
	Helper        *helper.HTTPHelper
}

func NewAuthorHandler(authorService services.AuthorService, h *helper.HTTPHelper) *AuthorHandler {
	return &AuthorHandler{authorService: authorService, Helper: h}
}

// GetAuthors godoc
// @Summary Author records
// @Tags Author
// @Produce json
// @Router /author [get]
func (h *AuthorHandler) GetAuthors(c *gin.Context) {
	authors, err := h.authorService.GetAuthors(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"authors": authors})
}

// CreateAuthor godoc
// @Summary Create the author record
// @Tags Author
// @Accept multipart/form-data
// @Produce json
// @Security bearerAuth
// @Param fullName formData string true "Full name"
// @Param birthDate formData string false "Birth date"
// @Param birthPlace formData string false "Birth place"
// @Param education formData string false "Education"
// @Param website formData string false "Website"
// @Param achievements formData []string false "Achievements" collectionFormat(multi)
// @Param image formData file true "Portrait"
// @Failure 400 {object} models.MessageResponse
// @Router /author [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var form models.AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	author, err := h.authorService.CreateAuthor(c.Request.Context(), form)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, gin.H{"message": "Muallif qo'shildi", "author": author})
}

// UpdateAuthor godoc
// @Summary Update the author record
// @Tags Author
// @Accept multipart/form-data
// @Produce json
// @Security bearerAuth
// @Param id path int true "Author ID"
// @Failure 404 {object} models.MessageResponse
// @Router /author/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, err := paramID(c, "id", models.MsgInvalidID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var form models.AuthorForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	author, err := h.authorService.UpdateAuthor(c.Request.Context(), id, form)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"message": "Muallif yangilandi", "author": author})
}

// DeleteAuthor godoc
// @Summary Delete the author record
// @Tags Author
// @Produce json
// @Security bearerAuth
// @Param id path int true "Author ID"
// @Failure 404 {object} models.MessageResponse
// @Router /author/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, err := paramID(c, "id", models.MsgInvalidID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	author, err := h.authorService.DeleteAuthor(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"message": "Muallif o'chirildi", "author": author})
}
