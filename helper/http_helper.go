package helper

import (
	"errors"
	"net/http"
	"strings"

	"news-cms/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/rs/zerolog/log"
)

// HTTPHelper renders responses and owns the request validator.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper hooks the translator and the domain validators into gin's
// binding engine.
func NewHTTPHelper() *HTTPHelper {
	h := &HTTPHelper{}

	english := en.New()
	uni := ut.New(english, english)
	h.Translator, _ = uni.GetTranslator("en")

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		h.Validate = v
	} else {
		h.Validate = validator.New()
	}

	_ = h.Validate.RegisterValidation("subject", func(fl validator.FieldLevel) bool {
		return models.Subject(fl.Field().String()).Valid()
	})
	_ = en_translations.RegisterDefaultTranslations(h.Validate, h.Translator)
	_ = h.Validate.RegisterTranslation("subject", h.Translator,
		func(ut ut.Translator) error {
			return ut.Add("subject", "{0} must be one of: {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			allowed := make([]string, 0, 3)
			for _, s := range models.AllSubjects() {
				allowed = append(allowed, string(s))
			}
			t, _ := ut.T("subject", fe.Field(), strings.Join(allowed, ", "))
			return t
		},
	)

	return h
}

// GetStatusCode resolves the HTTP status of err.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// SendError renders err as {message}. Unknown errors are logged and hidden.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)

	var message string
	var appErr *models.AppError
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &appErr):
		message = appErr.Message
		if appErr.Err != nil {
			log.Warn().Err(appErr.Err).Str("path", c.Request.URL.Path).Msg(appErr.Message)
		}
	case errors.As(err, &validationErrors):
		message = u.translate(validationErrors)
	default:
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		message = models.MsgInternal
	}

	c.AbortWithStatusJSON(status, models.MessageResponse{Message: message})
}

// SendSuccess writes data with the given status.
func (u *HTTPHelper) SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// SendMessage writes a bare {message} body.
func (u *HTTPHelper) SendMessage(c *gin.Context, status int, message string) {
	c.JSON(status, models.MessageResponse{Message: message})
}

func (u *HTTPHelper) translate(validationErrors validator.ValidationErrors) string {
	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		if u.Translator != nil {
			messages = append(messages, fe.Translate(u.Translator))
		} else {
			messages = append(messages, fe.Error())
		}
	}
	return strings.Join(messages, "; ")
}
