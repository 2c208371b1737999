package errors

import (
	"errors"
	"net/http"
)

var (
	NotFound            = HttpError{http.StatusNotFound, errors.New("not found")}
	Duplicate           = HttpError{http.StatusConflict, errors.New("duplicate")}
	Forbidden           = HttpError{http.StatusForbidden, errors.New("forbidden")}
	BadRequest          = HttpError{http.StatusBadRequest, errors.New("bad request")}
	Unauthorized        = HttpError{http.StatusUnauthorized, errors.New("unauthorized")}
	ConstraintViolation = HttpError{http.StatusUnprocessableEntity, errors.New("constraint violation")}
	InternalServerError = HttpError{http.StatusInternalServerError, errors.New("something went wrong, please try again")}
)

type HttpError struct {
	Code int
	Err  error
}

func (h HttpError) Unwrap() error {
	return h.Err
}

func (h HttpError) Error() string {
	return h.Err.Error()
}

// ValidationError carries field-keyed messages produced by request
// validation. It is rendered verbatim to the client and is never treated
// as an exceptional condition.
type ValidationError struct {
	Fields map[string]string
}

func (v ValidationError) Error() string {
	return "validation failed"
}
