// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"leadforge/config"
	"leadforge/internal/domain/service"
	"leadforge/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	parser        *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     time.Minute * 15,
		refreshTTL:    time.Hour * 24 * 7,
		parser:        jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user and roles.
func (s *jwtService) GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, roles, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, nil, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken verifies a token against the secret matching its "type" claim.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	unverified, _, err := s.parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	tokenType, _ := unverified.Claims.(jwt.MapClaims)["type"].(string)

	var secret string
	switch tokenType {
	case service.TokenTypeAccess:
		secret = s.accessSecret
	case service.TokenTypeRefresh:
		secret = s.refreshSecret
	default:
		return nil, errors.Errorf("unknown token type: %q", tokenType)
	}

	token, err := s.parser.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	return toClaims(mapClaims, tokenType)
}

// HashToken returns the hex SHA-256 of a raw token for storage.
func (s *jwtService) HashToken(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))

	return hex.EncodeToString(sum[:])
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
		"type": tokenType,
		"jti":  uuid.NewString(),
	}
	// Only add roles to the access token for stateless authorization.
	if roles != nil {
		claims["roles"] = roles
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func toClaims(mapClaims jwt.MapClaims, tokenType string) (*service.Claims, error) {
	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "subject is not a user id")
	}

	expiresAt, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "invalid exp claim")
	}

	issuedAt, err := mapClaims.GetIssuedAt()
	if err != nil {
		return nil, errors.Wrap(err, "invalid iat claim")
	}

	var roles []string
	if raw, ok := mapClaims["roles"].([]any); ok {
		roles = make([]string, 0, len(raw))
		for _, r := range raw {
			if role, ok := r.(string); ok {
				roles = append(roles, role)
			}
		}
	}

	return &service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: expiresAt,
			IssuedAt:  issuedAt,
		},
	}, nil
}
