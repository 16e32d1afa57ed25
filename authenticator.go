package login

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Authenticator orchestrates credential verification, token issuance, and
// current-user resolution against the user directory.
type Authenticator struct {
	store        Directory
	tokenService TokenService
	provisioner  UserProvisioner
	logger       Logger
}

// Resolution is the outcome of resolving an external identity against the
// local directory.
type Resolution struct {
	Authenticated bool  `json:"status"`
	User          *User `json:"user,omitempty"`
}

// TokenSubject is the identity a decoded token asserts.
type TokenSubject struct {
	Username string `json:"username"`
	UserID   int64  `json:"id"`
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(store Directory, cfg Config) *Authenticator {
	return &Authenticator{
		store:        store,
		tokenService: NewTokenService(cfg, defLogger{}),
		provisioner:  NewProvisioner(store),
		logger:       defLogger{},
	}
}

func (s *Authenticator) WithLogger(logger Logger) *Authenticator {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithTokenService sets a custom token service, e.g. one sharing a logger.
func (s *Authenticator) WithTokenService(ts TokenService) *Authenticator {
	if ts != nil {
		s.tokenService = ts
	}
	return s
}

// WithProvisioner sets a custom provisioner for first-sight identities.
func (s *Authenticator) WithProvisioner(p UserProvisioner) *Authenticator {
	if p != nil {
		s.provisioner = p
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Authenticator) TokenService() TokenService {
	return s.tokenService
}

// Authenticate verifies a username/password pair. An unknown username and
// a wrong password both come back as ErrMismatchedHashAndPassword so the
// result cannot be used to enumerate accounts.
func (s *Authenticator) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if IsRecordNotFound(err) {
			return nil, ErrMismatchedHashAndPassword
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return nil, ErrMismatchedHashAndPassword
	}

	return user, nil
}

// Login verifies the credentials and issues a bearer token for the user.
func (s *Authenticator) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		s.logger.Error("Login verify identity error", "error", err)
		return "", err
	}

	return s.tokenService.Issue(user.Username, user.ID)
}

// ResolveCurrentUser resolves an externally authenticated assertion to a
// local user. Unknown identities are provisioned as a side effect and
// reported as unauthenticated; the caller retries once the record exists.
// Inactive users are unauthenticated without triggering provisioning.
func (s *Authenticator) ResolveCurrentUser(ctx context.Context, assertion IdentityAssertion) (Resolution, error) {
	user, err := s.store.GetByUsername(ctx, assertion.PreferredUsername)
	if err != nil {
		if !IsRecordNotFound(err) {
			return Resolution{}, err
		}

		if _, err := s.provisioner.ProvisionFromAssertion(ctx, assertion); err != nil {
			s.logger.Error("ResolveCurrentUser provisioning failed", "error", err)
			return Resolution{}, err
		}

		return Resolution{}, nil
	}

	if !user.IsActive {
		return Resolution{}, nil
	}

	return Resolution{Authenticated: true, User: user}, nil
}

// CurrentUserFromToken decodes the token and returns the subject it
// asserts. Any decode failure, including missing claims, is reported as
// the single ErrUnableToResolveUser.
func (s *Authenticator) CurrentUserFromToken(tokenString string) (*TokenSubject, error) {
	claims, err := s.tokenService.Decode(tokenString)
	if err != nil {
		s.logger.Error("CurrentUserFromToken decode failed", "error", err)
		return nil, ErrUnableToResolveUser
	}

	return &TokenSubject{
		Username: claims.Username(),
		UserID:   claims.UserID,
	}, nil
}

// IsValidToken reports whether the token would decode with both subject
// claims present.
func (s *Authenticator) IsValidToken(tokenString string) bool {
	return s.tokenService.IsValid(tokenString)
}
