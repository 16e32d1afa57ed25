package login

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/goliatone/go-errors"
)

// DefaultTokenTTL is the issuance TTL used when the config carries none.
const DefaultTokenTTL = 15 * time.Minute

// SignerConfig carries the signing secret and token options. Construct it
// explicitly or load it from the environment; there is no package-level
// secret.
type SignerConfig struct {
	SigningKey    string        `env:"LOGIN_SIGNING_KEY"`
	SigningMethod string        `env:"LOGIN_SIGNING_METHOD" envDefault:"HS256"`
	TokenTTL      time.Duration `env:"LOGIN_TOKEN_TTL" envDefault:"15m"`
}

var _ Config = SignerConfig{}

// LoadConfigFromEnv loads signer configuration from environment variables.
func LoadConfigFromEnv() (SignerConfig, error) {
	var cfg SignerConfig
	if err := env.Parse(&cfg); err != nil {
		return SignerConfig{}, errors.Wrap(err, errors.CategoryBadInput, "failed to parse signer configuration")
	}

	if cfg.SigningKey == "" {
		return SignerConfig{}, errors.New("signing key must be configured", errors.CategoryValidation)
	}

	return cfg, nil
}

func (c SignerConfig) GetSigningKey() string {
	return c.SigningKey
}

func (c SignerConfig) GetSigningMethod() string {
	if c.SigningMethod == "" {
		return "HS256"
	}
	return c.SigningMethod
}

func (c SignerConfig) GetTokenTTL() time.Duration {
	if c.TokenTTL <= 0 {
		return DefaultTokenTTL
	}
	return c.TokenTTL
}
