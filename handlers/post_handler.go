package handlers

import (
	"net/http"
	"strconv"

	"news-cms/helper"
	"news-cms/models"
	"news-cms/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, h *helper.HTTPHelper) *PostHandler {
	return &PostHandler{postService: postService, Helper: h}
}

// GetInitialPosts godoc
// @Summary Newest five posts
// @Tags Posts
// @Produce json
// @Success 200 {object} models.PostPage
// @Router /posts [get]
func (h *PostHandler) GetInitialPosts(c *gin.Context) {
	page, err := h.postService.ListInitial(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, page)
}

// GetPostBySlug godoc
// @Summary Fetch a post and count the view
// @Tags Posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.MessageResponse
// @Router /posts/{slug} [get]
func (h *PostHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.postService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, post)
}

// CreatePost godoc
// @Summary Create a post
// @Tags Posts
// @Accept multipart/form-data
// @Produce json
// @Security bearerAuth
// @Param title formData string true "Title"
// @Param category formData string true "Category"
// @Param content formData string true "Content"
// @Param tags formData []string false "Tag names" collectionFormat(multi)
// @Param highlighted formData bool false "Highlighted"
// @Param image formData file true "Image"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.MessageResponse
// @Failure 401 {object} models.MessageResponse
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	post, err := h.postService.Create(c.Request.Context(), form)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, gin.H{
		"message": "Post muvaffaqiyatli yaratildi",
		"post":    post,
	})
}

// UpdatePost godoc
// @Summary Update a post
// @Tags Posts
// @Accept multipart/form-data
// @Produce json
// @Security bearerAuth
// @Param slug path string true "Post slug"
// @Success 200 {object} models.Post
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /posts/{slug} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	post, err := h.postService.Update(c.Request.Context(), c.Param("slug"), form)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, gin.H{
		"message": "Post yangilandi",
		"post":    post,
	})
}

// DeletePost godoc
// @Summary Delete a post
// @Tags Posts
// @Produce json
// @Security bearerAuth
// @Param slug path string true "Post slug"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /posts/{slug} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.Delete(c.Request.Context(), c.Param("slug")); err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendMessage(c, http.StatusOK, "Post o'chirildi")
}

// GetHighlightedPosts godoc
// @Summary Highlighted posts, newest first
// @Tags Posts
// @Produce json
// @Router /highlighted [get]
func (h *PostHandler) GetHighlightedPosts(c *gin.Context) {
	posts, err := h.postService.ListHighlighted(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"posts": posts})
}

// LoadMorePosts godoc
// @Summary Next ten posts after skip
// @Tags Posts
// @Produce json
// @Param skip query int false "Posts to skip"
// @Success 200 {object} models.PostPage
// @Router /load-more [get]
func (h *PostHandler) LoadMorePosts(c *gin.Context) {
	skip, err := strconv.Atoi(c.Query("skip"))
	if err != nil {
		skip = 0
	}

	page, err := h.postService.LoadMore(c.Request.Context(), skip)
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, page)
}

// GetMostViewedPosts godoc
// @Summary Ten most viewed posts
// @Tags Posts
// @Produce json
// @Failure 404 {object} models.MessageResponse
// @Router /most-viewed [get]
func (h *PostHandler) GetMostViewedPosts(c *gin.Context) {
	posts, err := h.postService.MostViewed(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"posts": posts})
}

// SearchPosts godoc
// @Summary Case-insensitive title search
// @Tags Posts
// @Produce json
// @Param query query string true "Search text"
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /search [get]
func (h *PostHandler) SearchPosts(c *gin.Context) {
	posts, err := h.postService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"posts": posts})
}
