package handlers

import (
	"net/http"

	"news-cms/helper"
	"news-cms/models"
	"news-cms/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: h}
}

// GetTags godoc
// @Summary All tags
// @Tags Tags
// @Produce json
// @Router /tags [get]
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"tags": tags})
}

// GetPostsByTag godoc
// @Summary Posts carrying a tag
// @Tags Tags
// @Produce json
// @Param id path int true "Tag ID"
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /tags/{id} [get]
func (h *TagHandler) GetPostsByTag(c *gin.Context) {
	id, err := paramID(c, "id", models.MsgTagIDInvalid)
	if err != nil {
		_ = c.Error(err)
		return
	}

	posts, err := h.tagService.PostsByTag(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"posts": posts})
}

// CreateTag godoc
// @Summary Create a tag
// @Tags Tags
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param request body models.TagRequest true "Tag"
// @Success 201 {object} models.Tag
// @Failure 400 {object} models.MessageResponse
// @Failure 409 {object} models.MessageResponse
// @Router /tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.TagRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, gin.H{"message": "Tag yaratildi", "tag": tag})
}

// UpdateTag godoc
// @Summary Rename a tag
// @Tags Tags
// @Accept json
// @Produce json
// @Security bearerAuth
// @Param id path int true "Tag ID"
// @Param request body models.TagRequest true "Tag"
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Failure 409 {object} models.MessageResponse
// @Router /tags/{id} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, err := paramID(c, "id", models.MsgTagIDInvalid)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req models.TagRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	tag, err := h.tagService.UpdateTag(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"message": "Tag yangilandi", "tag": tag})
}

// DeleteTag godoc
// @Summary Delete a tag
// @Tags Tags
// @Produce json
// @Security bearerAuth
// @Param id path int true "Tag ID"
// @Failure 404 {object} models.MessageResponse
// @Router /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := paramID(c, "id", models.MsgTagIDInvalid)
	if err != nil {
		_ = c.Error(err)
		return
	}

	tag, err := h.tagService.DeleteTag(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"message": "Tag o'chirildi", "tag": tag})
}
