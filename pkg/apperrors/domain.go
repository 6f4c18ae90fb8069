package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the job-board domain.

// ErrNotFound converts a repository miss into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict reports a uniqueness violation. The external contract pins
// duplicate registration to 400, not 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusBadRequest)
}

// ErrInvalidCredentials is returned for both unknown-username and bad-password
// logins. One message for both cases, so the response never leaks which field
// was wrong.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInvalidToken is returned when a bearer token does not resolve to a user.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)
