package login

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginClaims is the claim set embedded in issued bearer tokens:
// `sub` carries the username, `id` the numeric user id, and `exp` the
// absolute expiry instant.
type LoginClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"id,omitempty"`
}

// Username returns the subject claim.
func (c *LoginClaims) Username() string {
	return c.RegisteredClaims.Subject
}

// Expires returns the expiration time
func (c *LoginClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *LoginClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// hasRequiredClaims reports whether both subject and user id are present.
// Ids are assigned by the directory starting at 1, so zero means absent.
func (c *LoginClaims) hasRequiredClaims() bool {
	return c.RegisteredClaims.Subject != "" && c.UserID > 0
}
