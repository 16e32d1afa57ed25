package login

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Config holds signing options for the token service
type Config interface {
	GetSigningKey() string
	GetSigningMethod() string
	GetTokenTTL() time.Duration
}

// TokenService signs and verifies bearer tokens
type TokenService interface {
	Issue(username string, userID int64, ttl ...time.Duration) (string, error)
	Decode(tokenString string) (*LoginClaims, error)
	IsValid(tokenString string) bool
}

// Directory is the user store consumed by the authentication and
// provisioning flows.
type Directory interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, record *User) (*User, error)
	GetOrProvision(ctx context.Context, record *User) (*User, error)
}

// UserProvisioner creates local user records for externally
// authenticated identities.
type UserProvisioner interface {
	ProvisionFromAssertion(ctx context.Context, assertion IdentityAssertion) (*User, error)
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] LOGIN "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] LOGIN "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] LOGIN "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] LOGIN "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
