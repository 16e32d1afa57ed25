package login

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Provisioner creates local user records for federated identities. The
// generated password exists only to satisfy the schema; it is hashed
// immediately and never surfaced, logged, or returned.
type Provisioner struct {
	store  Directory
	logger Logger
}

var _ UserProvisioner = (*Provisioner)(nil)

// NewProvisioner will create a new Provisioner
func NewProvisioner(store Directory) *Provisioner {
	return &Provisioner{
		store:  store,
		logger: defLogger{},
	}
}

func (p *Provisioner) WithLogger(l Logger) *Provisioner {
	if l != nil {
		p.logger = l
	}
	return p
}

// ProvisionFromAssertion finds or creates the user named by the
// assertion. Username and email both take the preferred username; first
// and last name both take the display name, matching the upstream claim
// granularity.
func (p *Provisioner) ProvisionFromAssertion(ctx context.Context, assertion IdentityAssertion) (*User, error) {
	if err := assertion.Validate(); err != nil {
		return nil, err
	}

	password, err := RandomPassword(DefaultRandomPasswordLength)
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to hash provisioned password")
	}

	record := &User{
		Username:     assertion.PreferredUsername,
		Email:        assertion.PreferredUsername,
		FirstName:    assertion.Name,
		LastName:     assertion.Name,
		PasswordHash: hash,
		IsActive:     true,
	}

	user, err := p.store.GetOrProvision(ctx, record)
	if err != nil {
		return nil, err
	}

	p.logger.Info("provisioned user from assertion", "username", user.Username, "id", user.ID)

	return user, nil
}
