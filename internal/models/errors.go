package models

import "strings"

// ErrorCode discriminates business errors. The set is closed: HTTP handlers
// switch over it exhaustively.
type ErrorCode string

const (
	CodeTaskError             ErrorCode = "TaskError"
	CodeUserError             ErrorCode = "UserError"
	CodeTaskRepositoryError   ErrorCode = "TaskRepositoryError"
	CodeUserRepositoryError   ErrorCode = "UserRepositoryError"
	CodeMissingInput          ErrorCode = "MissingInput"
	CodeMissingTaskID         ErrorCode = "MissingTaskId"
	CodeTaskNotFound          ErrorCode = "TaskNotFound"
	CodeUserIsNotOwner        ErrorCode = "UserIsNotOwner"
	CodeUsernameAlreadyExists ErrorCode = "UsernameAlreadyExists"
	CodeInvalidCredentials    ErrorCode = "InvalidCredentials"
	CodeUserUnauthenticated   ErrorCode = "UserUnauthenticated"
	CodeMissingCredentials    ErrorCode = "MissingCredentials"
	CodeInvalidToken          ErrorCode = "InvalidToken"
	CodeTokenExpired          ErrorCode = "TokenExpired"
	CodeTokenError            ErrorCode = "TokenError"
	CodePasswordHashError     ErrorCode = "PasswordHashError"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the record carried by every Err in the application. Errors is only
// set for entity validation failures and holds at most one entry.
type Error struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func NewError(code ErrorCode) *Error {
	return &Error{Code: code}
}

func NewErrorf(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func newValidationError(code ErrorCode, field, message string) *Error {
	return &Error{
		Code:   code,
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	for _, fe := range e.Errors {
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, models.NewError(models.CodeTaskNotFound)) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}
