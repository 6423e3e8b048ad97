package response

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOK      = "OK"
	StatusCreated = "Created"
	StatusError   = "Error"
)

var (
	ErrBadRequest     = errors.New("bad request")
	ErrServerInternal = errors.New("internal server error")
	ErrNotImplemented = errors.New("not implemented")
	ErrNotFound       = errors.New("not found")
	ErrRecordNotFound = errors.New("record not found")
	ErrRecordExists   = errors.New("record already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrTooLarge       = errors.New("request body too large")
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Created() Response {
	return Response{
		Status: StatusCreated,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string

	for _, err := range errs {
		errMsgs = append(errMsgs, FieldMessage(err.Field(), err.ActualTag(), err.Param()))
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMsgs, ", "),
	}
}

// FieldMessage renders a single failed validation rule.
func FieldMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("field %s is a required field", field)
	case "url":
		return fmt.Sprintf("field %s is not a valid URL", field)
	case "email":
		return fmt.Sprintf("field %s is not a valid email", field)
	case "max":
		return fmt.Sprintf("field %s must be at most %s characters", field, param)
	case "min":
		return fmt.Sprintf("field %s must contain at least %s items", field, param)
	case "oneof":
		return fmt.Sprintf("field %s must be one of [%s]", field, param)
	case "unique":
		return fmt.Sprintf("field %s must not contain duplicates", field)
	default:
		return fmt.Sprintf("field %s is not valid", field)
	}
}
