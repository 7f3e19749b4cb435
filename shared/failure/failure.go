package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that knows the HTTP status it should be answered with.
// Details carries the rule that failed when Message is only a summary.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// MissingFieldsError answers automation callbacks that omit bookingId or status.
var MissingFieldsError = &Failure{Code: http.StatusBadRequest, Message: "Missing required fields"}

func (e *Failure) Error() string {
	if e.Details == "" {
		return e.Message
	}

	return e.Message + ": " + e.Details
}

func newFailure(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequestFromString rejects the request with a client facing message.
func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

// Validation is a 400 whose details name the field rule that failed.
func Validation(msg, details string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg, Details: details}
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

// NotFound reports a missing service, booking or draft step.
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

// Conflict reports a slot that is no longer free.
func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// InternalFromString hides the cause behind a message safe to show to customers.
func InternalFromString(msg string) error {
	return newFailure(http.StatusInternalServerError, msg)
}

// GetCode returns the status carried by err, 500 for anything that is not a Failure.
func GetCode(err error) int {
	if fail, ok := As(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// As unwraps err into a *Failure if there is one in the chain.
func As(err error) (*Failure, bool) {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail, true
	}

	return nil, false
}
