package middleware

import (
	"news-cms/models"
	"news-cms/services"

	"github.com/gin-gonic/gin"
)

const (
	ContextAdminID  = "admin_id"
	ContextUsername = "username"
)

// VerifyAdmin rejects the request with 401 unless it carries a live admin token.
func VerifyAdmin(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := services.ExtractBearer(c.GetHeader("Authorization"))
		if !ok {
			_ = c.Error(models.NewUnauthorized(models.MsgTokenMissing))
			c.Abort()
			return
		}

		claims, err := authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextUsername, claims.Username)

		c.Next()
	}
}
