package login

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/goliatone/go-errors"
)

// IdentityAssertion is the userinfo shape handed over by an upstream
// identity provider after it has authenticated the subject. It is input
// only; the record persisted locally is derived from it.
type IdentityAssertion struct {
	PreferredUsername string `json:"preferred_username"`
	Name              string `json:"name"`
}

// Validate rejects assertions missing either required field.
func (a IdentityAssertion) Validate() error {
	err := validation.ValidateStruct(&a,
		validation.Field(&a.PreferredUsername, validation.Required, validation.Length(1, 100)),
		validation.Field(&a.Name, validation.Required, validation.Length(1, 200)),
	)

	if err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "invalid identity assertion").
			WithTextCode(TextCodeInvalidAssertion)
	}

	return nil
}
