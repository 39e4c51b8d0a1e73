// Package apierr is the JSON error envelope shared by every HTTP response
// that isn't a successful allocation. It mirrors the three error kinds from
// the error-handling design: a caller-side InputInvalid, the planner's own
// Infeasible signal, and an unexpected Internal failure.
package apierr

import "net/http"

// Error is the wire shape for every non-2xx response:
// {"status_code": ..., "exception_case": "...", "detail": "..."}.
type Error struct {
	StatusCode    int    `json:"status_code"`
	ExceptionCase string `json:"exception_case"`
	Detail        string `json:"detail"`
}

func (e *Error) Error() string { return e.Detail }

// Invalid wraps a request validation failure. Maps to 422.
func Invalid(detail string) *Error {
	return &Error{StatusCode: http.StatusUnprocessableEntity, ExceptionCase: "InputInvalid", Detail: detail}
}

// Infeasible wraps the planner's ErrInfeasible signal. Maps to 400.
func Infeasible(detail string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, ExceptionCase: "UnfeasibleException", Detail: detail}
}

// Internal wraps any unexpected failure. Maps to 500.
func Internal(detail string) *Error {
	return &Error{StatusCode: http.StatusInternalServerError, ExceptionCase: "InternalError", Detail: detail}
}
