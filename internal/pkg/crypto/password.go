package crypto

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/motus-health/backend/internal/app/appconfig"
)

// Crypto hashes and verifies stored credentials.
type Crypto struct {
	cost int
}

func NewCrypto(conf *appconfig.Config) *Crypto {
	cost := conf.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Crypto{
		cost: cost,
	}
}

func (c *Crypto) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hashed), nil
}

func (c *Crypto) VerifyPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
