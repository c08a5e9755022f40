package jwt

import (
	"testing"
	"time"

	"pharma-info-service/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret: "test-secret",
		Expiry: 24 * time.Hour,
	})

	userID := uuid.New()
	token, err := service.GenerateToken(userID, "pharmacist")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "pharmacist", claims.Role)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "secret-a", Expiry: time.Hour})
	verifier := NewJWTService(config.JWTConfig{Secret: "secret-b", Expiry: time.Hour})

	token, err := issuer.GenerateToken(uuid.New(), "pharmacist")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: -time.Minute})

	token, err := service.GenerateToken(uuid.New(), "admin")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
}
