package constants

import "net/http"

// CodedError is an error carrying the HTTP status the api layer should
// answer with. The central echo error handler unwraps to the first
// CodedError in the chain.
type CodedError struct {
	message string
	code    int
}

func NewCodedError(code int, message string) *CodedError {
	return &CodedError{message: message, code: code}
}

func (e *CodedError) Error() string {
	return e.message
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound         = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized       = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie  = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrInvalidCredentials = NewCodedError(http.StatusUnauthorized, "invalid credentials")

	ErrUnknownCategory = NewCodedError(http.StatusBadRequest, "unknown equipment category")
	ErrInvalidQuantity = NewCodedError(http.StatusBadRequest, "quantity must be a positive integer")
	ErrInvalidWeight   = NewCodedError(http.StatusBadRequest, "eco weight must be between 0 and 100")

	ErrInsufficientScenarios = NewCodedError(http.StatusBadRequest, "at least two scenarios are required for a comparison")
	ErrNarrativeUnavailable  = NewCodedError(http.StatusServiceUnavailable, "narrative generator unavailable")
)
