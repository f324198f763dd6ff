package middleware

import (
	"news-cms/helper"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler or middleware pushed with
// c.Error as {message}.
func ErrorHandler(h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		h.SendError(c, c.Errors.Last().Err)
	}
}
