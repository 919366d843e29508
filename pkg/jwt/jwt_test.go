package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewManager("test-secret")
	userID := uuid.New().String()

	token, err := manager.GenerateToken(userID, "alice", time.Hour)
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").GenerateToken(uuid.New().String(), "alice", time.Hour)
	require.NoError(t, err)

	_, err = NewManager("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	manager := NewManager("test-secret")

	token, err := manager.GenerateToken(uuid.New().String(), "alice", -time.Minute)
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewManager("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
