package login

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// TokenServiceImpl implements the TokenService interface
type TokenServiceImpl struct {
	signingKey []byte
	tokenTTL   time.Duration
	logger     Logger
}

// NewTokenService creates a new TokenService instance
func NewTokenService(cfg Config, logger Logger) TokenService {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenServiceImpl{
		signingKey: []byte(cfg.GetSigningKey()),
		tokenTTL:   cfg.GetTokenTTL(),
		logger:     logger,
	}
}

// Issue signs a token asserting the given subject. The expiry instant is
// now plus the optional ttl override, or the configured TTL.
func (ts *TokenServiceImpl) Issue(username string, userID int64, ttl ...time.Duration) (string, error) {
	d := ts.tokenTTL
	if len(ttl) > 0 {
		d = ttl[0]
	}

	now := time.Now()
	claims := &LoginClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d)),
			ID:        uuid.NewString(),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign JWT")
	}

	return signedString, nil
}

// Decode parses and verifies a token string. Signature, expiry, and
// required-claims checks are one step; every failure is reported as
// ErrInvalidToken so verification internals do not leak to callers.
func (ts *TokenServiceImpl) Decode(tokenString string) (*LoginClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &LoginClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("TokenService decode encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	})

	if err != nil {
		ts.logger.Debug("TokenService decode failed", "error", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*LoginClaims)
	if !ok || !token.Valid {
		ts.logger.Error("TokenService decode could not map claims")
		return nil, ErrInvalidToken
	}

	if !claims.hasRequiredClaims() {
		// structurally valid but incomplete tokens are rejected too
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// IsValid reports whether Decode would succeed for the given token.
func (ts *TokenServiceImpl) IsValid(tokenString string) bool {
	_, err := ts.Decode(tokenString)
	return err == nil
}
