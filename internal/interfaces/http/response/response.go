package response

import (
	"errors"
	"fmt"
	"strings"

	domainerrors "captura-leads.backend/internal/domain/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Anything that is not an AppError is mapped
// from its sentinel, defaulting to 500.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// Abort sends an error response and stops the handler chain
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// BindError reports a request body or query that failed binding as a validation error
func BindError(c *gin.Context, err error) {
	Error(c, domainerrors.Validation(bindMessage(err)))
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return domainerrors.FromSentinel(err, "request failed")
}

func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
