package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what services hand back to routes instead of a plain
// error: it knows its HTTP status and serializes as {"message": "..."}.
type ErrorResponse interface {
	error
	Code() int
}

type simpleError struct {
	status  int
	Message string `json:"message"`
}

func (e *simpleError) Error() string { return e.Message }
func (e *simpleError) Code() int     { return e.status }

func NewSimple(status int, message string) ErrorResponse {
	return &simpleError{status: status, Message: message}
}

var (
	UnauthorizedError    = NewSimple(http.StatusUnauthorized, "UnAuthorized Access")
	ForbiddenAccessError = NewSimple(http.StatusForbidden, "Forbidden Access")
	AdminForbiddenError  = NewSimple(http.StatusForbidden, "forbidden")
	MalformedBodyError   = NewSimple(http.StatusBadRequest, "Malformed request body")
	DoctorExistsError    = NewSimple(http.StatusConflict, "Doctor already exists")
	InternalServerError  = NewSimple(http.StatusInternalServerError, "Internal server error")
)

func NewMissingParamError(name string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Missing required parameter '%s'", name))
}

// FromValidationError turns the first failed validator rule into a 400.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return MalformedBodyError
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return NewSimple(http.StatusBadRequest, fmt.Sprintf("Field '%s' is required", field))
	default:
		return NewSimple(http.StatusBadRequest, fmt.Sprintf("Field '%s' failed on '%s'", field, fe.Tag()))
	}
}
