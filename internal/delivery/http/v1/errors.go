package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-todo-stories/internal/models"
)

var errInvalidRequestBody = errors.New("invalid request body")

type apiError struct {
	Code    int                 `json:"-"`
	Message string              `json:"error"`
	Errors  []models.FieldError `json:"errors,omitempty"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, err)
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

// newModelError converts a business error into a response. Server side
// failures hide their cause behind the status text.
func newModelError(err *models.Error) apiError {
	status := statusForCode(err.Code)
	if status == http.StatusInternalServerError {
		return newStatusTextError(status)
	}

	apiErr := newAPIError(status, string(err.Code))
	apiErr.Errors = err.Errors
	return apiErr
}

func statusForCode(code models.ErrorCode) int {
	switch code {
	case models.CodeTaskError,
		models.CodeUserError,
		models.CodeMissingInput,
		models.CodeMissingTaskID,
		models.CodeMissingCredentials:
		return http.StatusBadRequest
	case models.CodeInvalidCredentials,
		models.CodeUserUnauthenticated,
		models.CodeInvalidToken,
		models.CodeTokenExpired:
		return http.StatusUnauthorized
	case models.CodeUserIsNotOwner:
		return http.StatusForbidden
	case models.CodeTaskNotFound:
		return http.StatusNotFound
	case models.CodeUsernameAlreadyExists:
		return http.StatusConflict
	case models.CodeTaskRepositoryError,
		models.CodeUserRepositoryError,
		models.CodeTokenError,
		models.CodePasswordHashError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
