package auth

import (
	"errors"
	"strconv"
)

// The bearer token is the user's own numeric id, unchanged from the original
// deployment: no signature, no expiry, no revocation. Callers depend on this
// exact contract, so it is kept as a documented simplification rather than
// silently replaced with a signed token.

var ErrMalformedToken = errors.New("malformed token")

// IssueToken returns the bearer token for a user id.
func IssueToken(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}

// ParseToken extracts the user id carried in a bearer token.
func ParseToken(token string) (uint, error) {
	id, err := strconv.ParseUint(token, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrMalformedToken
	}
	return uint(id), nil
}
