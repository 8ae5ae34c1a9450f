package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"fiftymais/internal/adapter/http/middleware"
	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase"
	"fiftymais/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// validationErrorBody extends the error shape with one message per rejected field.
type validationErrorBody struct {
	pkg.HTTPError
	Fields map[string]string `json:"fields,omitempty"`
}

// writeBindError answers a failed bind. Tag failures list the offending
// fields; decode failures only get the generic error.
func writeBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		writeError(c, errInvalidPayload)
		return
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = validationMessage(fe)
	}
	c.JSON(errInvalidPayload.HTTPStatus, validationErrorBody{
		HTTPError: errInvalidPayload.ToHTTPError(),
		Fields:    fields,
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return "is invalid"
	}
}

func sessionFrom(c *gin.Context) entities.Session {
	s, _ := middleware.SessionFrom(c)
	return s
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// sessionError covers the failure shared by every authenticated route.
func sessionError(err error) (*pkg.AppError, bool) {
	if errors.Is(err, usecase.ErrInvalidSession) {
		return errUnauthorized, true
	}
	return nil, false
}
