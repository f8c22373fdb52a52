package auth

import (
	"testing"
	"time"

	"leadforge/config"
	"leadforge/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"user", "admin"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), accessClaims.ExpiresAt.Time, 5*time.Second)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't have roles
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("access_secret", "refresh_secret"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("access_secret", "refresh_secret"))
	require.NoError(t, err)

	other, err := NewJWTService(newTestJWTConfig("other_access", "other_refresh"))
	require.NoError(t, err)

	accessToken, _, err := other.GenerateTokens(uuid.New(), []string{"user"})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_UnknownTokenType(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("access_secret", "refresh_secret"))
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(time.Minute).Unix(),
		"type": "session",
	})
	signed, err := token.SignedString([]byte("access_secret"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "unknown token type")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("access_secret", "refresh_secret"))
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"iat":  time.Now().Add(-time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Minute).Unix(),
		"type": service.TokenTypeAccess,
	})
	signed, err := token.SignedString([]byte("access_secret"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("access_secret", "refresh_secret"))
	require.NoError(t, err)

	first := jwtService.HashToken("token")
	assert.Len(t, first, 64)
	assert.Equal(t, first, jwtService.HashToken("token"))
	assert.NotEqual(t, first, jwtService.HashToken("other"))
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("access_secret", "refresh_secret"))
	require.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, jwtService.GetRefreshTokenDuration())
}
