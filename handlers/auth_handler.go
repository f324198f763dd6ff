package handlers

import (
	"net/http"

	"news-cms/helper"
	"news-cms/models"
	"news-cms/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

// Login godoc
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusOK, models.LoginResponse{
		Message: "Muvaffaqiyatli login",
		Token:   token,
	})
}

// Logout godoc
// @Summary Admin logout
// @Tags Admin
// @Produce json
// @Security bearerAuth
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), c.GetHeader("Authorization")); err != nil {
		_ = c.Error(err)
		return
	}

	h.Helper.SendMessage(c, http.StatusOK, "Muvaffaqiyatli logout")
}
