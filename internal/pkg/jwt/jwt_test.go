package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken(7, "agent1", "agent", "secret", 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "agent1", claims.Username)
	assert.Equal(t, "agent", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(7, "agent1", "agent", "secret", 15)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken(7, "agent1", "agent", "secret", -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateAccessTokenGarbage(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token", "secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
