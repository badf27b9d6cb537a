package auth

import (
	"testing"

	"akshaya-backend/internal/config"
	"akshaya-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "akshaya-backend"
	return NewJWTManager(cfg)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "s3cret!"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := testManager()
	user := &models.User{ID: 7, Email: "op@example.com", Role: "operator", IsActive: true}

	token, err := mgr.GenerateToken(user)
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "op@example.com", claims.Email)
	assert.Equal(t, "operator", claims.Role)
	assert.True(t, claims.IsActive)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	mgr := testManager()
	token, err := mgr.GenerateToken(&models.User{ID: 1, Email: "a@b.c"})
	require.NoError(t, err)

	other := testManager()
	other.cfg.JWT.Secret = "different"
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestTempTokenIsNotASessionToken(t *testing.T) {
	mgr := testManager()
	user := &models.User{ID: 3, Email: "admin@example.com"}

	temp, err := mgr.GenerateTempToken(user)
	require.NoError(t, err)

	claims, err := mgr.ValidateTempToken(temp)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)

	// A full session token must not pass temp validation.
	session, err := mgr.GenerateToken(user)
	require.NoError(t, err)
	_, err = mgr.ValidateTempToken(session)
	assert.Error(t, err)
}
