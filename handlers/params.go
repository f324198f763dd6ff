package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"news-cms/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// paramID parses a numeric path parameter. Unknown ids, 0 included, are
// left for the service to report as not found.
func paramID(c *gin.Context, name, message string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, models.NewBadRequest(message)
	}
	return uint(id), nil
}

// bindError keeps validator errors for translation and hides decoder noise.
func bindError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return validationErrors
	}
	return &models.AppError{Status: http.StatusBadRequest, Message: models.MsgInvalidBody, Err: err}
}
