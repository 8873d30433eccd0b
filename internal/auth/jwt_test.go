package auth

import (
	"testing"
	"time"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, err := manager.Issue("user-1", domain.RoleInstructor)
	require.NoError(t, err)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, string(domain.RoleInstructor), claims.Role)
}

func TestTokenManager_ParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Issue("user-1", domain.RoleStudent)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_ParseRejectsExpired(t *testing.T) {
	token, err := NewTokenManager("test-secret", -time.Minute).Issue("user-1", domain.RoleStudent)
	require.NoError(t, err)

	_, err = NewTokenManager("test-secret", -time.Minute).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}
