package auth

import (
	"testing"
	"time"

	"libraryapi/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("test-secret", "user-1", entity.RoleAdmin, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Sub)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", "user-1", entity.RoleMember, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("test-secret", "user-1", entity.RoleMember, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("test-secret", token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("test-secret", "not-a-token")
	assert.Error(t, err)
}
