package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motus-health/backend/internal/app/appconfig"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	c := NewCrypto(&appconfig.Config{ConfigSpec: appconfig.ConfigSpec{BcryptCost: 4}})

	hashed, err := c.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hashed)

	assert.True(t, c.VerifyPassword(hashed, "correct horse battery staple"))
	assert.False(t, c.VerifyPassword(hashed, "incorrect horse"))
}

func TestPasswordHashSalted(t *testing.T) {
	c := NewCrypto(&appconfig.Config{ConfigSpec: appconfig.ConfigSpec{BcryptCost: 4}})

	first, err := c.HashPassword("same password")
	require.NoError(t, err)
	second, err := c.HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
