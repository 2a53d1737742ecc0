package token

import (
	"errors"
	"time"

	"github.com/josephprado/schedjoeler-api/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the token identifier used for revocation alongside the
// registered claim set.
type Claims struct {
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

type Service struct {
	config config.AuthConfig
}

func NewService(config config.AuthConfig) *Service {
	return &Service{config: config}
}

// Generate signs a new token for the given subject and returns the signed
// string together with its token identifier.
func (s *Service) Generate(subject string) (string, string, error) {
	now := time.Now()
	tokenID := uuid.NewString()

	claims := &Claims{
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.TokenSecret))
	if err != nil {
		return "", "", err
	}

	return signed, tokenID, nil
}

// Validate parses and verifies a signed token string.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.TokenSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) Expiry() time.Duration {
	return s.config.TokenExpiry
}

// IssuedKey is the cache key under which an issued token is registered.
// Tokens absent from the registry are treated as revoked.
func IssuedKey(tokenID string) string {
	return "auth:token:" + tokenID
}
