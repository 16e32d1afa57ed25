package login

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// Text codes surfaced alongside structured errors so API layers can map
// them without string matching.
const (
	TextCodeInvalidToken     = "INVALID_TOKEN"
	TextCodeInvalidCreds     = "INVALID_CREDENTIALS"
	TextCodeUserResolution   = "USER_RESOLUTION_FAILED"
	TextCodeEmptyPassword    = "EMPTY_PASSWORD"
	TextCodeInvalidAssertion = "INVALID_ASSERTION"
)

// ErrInvalidToken covers every token verification failure: bad signature,
// malformed token, elapsed expiry, and missing required claims. Callers
// cannot tell these cases apart.
var ErrInvalidToken = errors.New("invalid authentication token", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidToken).
	WithCode(errors.CodeUnauthorized)

// ErrUnableToResolveUser is the coarse signal when the current user cannot
// be resolved from a token.
var ErrUnableToResolveUser = errors.New("unable to resolve current user", errors.CategoryAuth).
	WithTextCode(TextCodeUserResolution).
	WithCode(errors.CodeUnauthorized)

// ErrMismatchedHashAndPassword covers unknown usernames and wrong
// passwords alike so the return value cannot be used for enumeration.
var ErrMismatchedHashAndPassword = errors.New("the credentials provided are invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds)

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryNotFound)

// ErrNoEmptyString rejects empty passwords before they reach bcrypt
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword)

// IsRecordNotFound reports whether err is a not-found storage error.
func IsRecordNotFound(err error) bool {
	return errors.IsNotFound(err)
}

// IsTokenExpiredError checks raw jwt errors for expiry. Decode collapses
// every verification failure to ErrInvalidToken, so this helper is for
// outer layers that parse tokens themselves, e.g. a bearer middleware
// deciding whether to prompt for re-authentication.
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is expired")
}

// isUniqueViolation matches the uniqueness errors the supported drivers
// report when an insert trips a unique constraint.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "Duplicate entry")
}
