package constants

import "net/http"

// CodedError is an error that carries the HTTP status code it should be
// reported with. The api error handler walks the Unwrap chain looking for one.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound = NewCodedError(http.StatusNotFound, "not found")

	ErrUnauthorized = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingToken = NewCodedError(http.StatusUnauthorized, "no provided token, please login")
	ErrExpiredToken = NewCodedError(http.StatusUnauthorized, "signature expired, please log in again")
	ErrInvalidToken = NewCodedError(http.StatusUnauthorized, "invalid token, please log in again")

	ErrBadDate = NewCodedError(http.StatusBadRequest, "malformed date, expected YYYY-M-D")
	ErrBadSeason = NewCodedError(http.StatusBadRequest, "volunteer season must be Spring or Fall")
)
