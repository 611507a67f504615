package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costumerental/costume-rental-backend/internal/auth"
)

func TestGenerateAndParseToken(t *testing.T) {
	m := auth.NewJWTManager("test-secret", time.Minute)

	token, err := m.GenerateAccessToken("user-1", "alice@example.com", "admin")
	require.NoError(t, err)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := auth.NewJWTManager("secret-a", time.Minute)
	other := auth.NewJWTManager("secret-b", time.Minute)

	token, err := m.GenerateAccessToken("user-1", "alice@example.com", "client")
	require.NoError(t, err)

	_, err = other.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := auth.NewJWTManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken("user-1", "alice@example.com", "client")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	assert.Error(t, err)
}
