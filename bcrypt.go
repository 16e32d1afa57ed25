package login

import (
	"crypto/rand"
	"math/big"

	"github.com/goliatone/go-errors"
	"golang.org/x/crypto/bcrypt"
)

// DefaultRandomPasswordLength is the length of throwaway passwords
// generated during provisioning.
const DefaultRandomPasswordLength = 8

// passwordAlphabet is ASCII letters, digits, and punctuation.
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// HashPassword will generate a password hash
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost())
	return string(h), err
}

// ComparePasswordAndHash will validate the given cleartext
// password matches the hashed password
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedHashAndPassword
		}
		return err
	}
	return nil
}

// VerifyPassword reports whether password reproduces hash. A malformed
// hash counts as a mismatch rather than an error.
func VerifyPassword(password, hash string) bool {
	return ComparePasswordAndHash(password, hash) == nil
}

// RandomPassword generates a throwaway password of the given length drawn
// uniformly from passwordAlphabet. A non-positive length falls back to
// DefaultRandomPasswordLength.
func RandomPassword(length int) (string, error) {
	if length <= 0 {
		length = DefaultRandomPasswordLength
	}

	max := big.NewInt(int64(len(passwordAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, errors.CategoryInternal, "failed to draw random password character")
		}
		out[i] = passwordAlphabet[n.Int64()]
	}

	return string(out), nil
}
