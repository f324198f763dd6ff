package handlers

import (
	"net/http"

	"news-cms/helper"
	"news-cms/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService, h *helper.HTTPHelper) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, Helper: h}
}

// GetCategories godoc
// @Summary Known categories
// @Tags Categories
// @Produce json
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"categories": h.categoryService.GetCategories()})
}

// GetPostsByCategory godoc
// @Summary Posts in a category
// @Tags Categories
// @Produce json
// @Param category path string true "Category"
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /categories/{category} [get]
func (h *CategoryHandler) GetPostsByCategory(c *gin.Context) {
	posts, err := h.categoryService.PostsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"posts": posts})
}
