package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/josephprado/schedjoeler-api/config"
	"github.com/josephprado/schedjoeler-api/pkg/response"
	"github.com/josephprado/schedjoeler-api/pkg/token"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	SubjectKey contextKey = "subject"
	TokenIDKey contextKey = "token_id"
)

type AuthMiddleware struct {
	tokenService *token.Service
	redisClient  *redis.Client
	config       config.AuthConfig
}

func NewAuthMiddleware(tokenService *token.Service, redisClient *redis.Client, config config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		redisClient:  redisClient,
		config:       config,
	}
}

// Authenticate accepts either HTTP Basic credentials checked against the
// configured account, or a bearer token issued by the token endpoint.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		if username, password, ok := r.BasicAuth(); ok {
			if !m.checkCredentials(username, password) {
				response.Unauthorized(w, "Invalid username or password")
				return
			}
			ctx := context.WithValue(r.Context(), SubjectKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.tokenService.Validate(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Check the issued-token registry (not revoked)
		if m.redisClient != nil {
			exists, err := m.redisClient.Exists(r.Context(), token.IssuedKey(claims.TokenID)).Result()
			if err != nil {
				response.InternalServerError(w, "Failed to validate token")
				return
			}
			if exists == 0 {
				response.Unauthorized(w, "Token has been revoked")
				return
			}
		}

		ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) checkCredentials(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(m.config.Username)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(m.config.PasswordHash), []byte(password)) == nil
}

// GetSubjectFromContext extracts the authenticated subject from context
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok
}

// GetTokenIDFromContext extracts the token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
