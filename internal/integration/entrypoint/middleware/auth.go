// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// UserIDKey is the context key for the authenticated user's ID.
const UserIDKey ContextKey = "user_id"

// AuthMiddleware guards endpoints behind a bearer access token.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// bearerToken extracts the token from an Authorization header value. On
// failure it reports the error code and message to respond with.
func bearerToken(header string) (string, domainerror.UserErrorCode, string) {
	switch {
	case header == "":
		return "", domainerror.ErrCodeMissingToken, "Authorization header is required"
	case !strings.HasPrefix(header, "Bearer "):
		return "", domainerror.ErrCodeInvalidToken, "Invalid authorization header format"
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", domainerror.ErrCodeMissingToken, "Token is required"
	}
	return token, "", ""
}

// Authenticate returns a Gin handler that validates the access token and
// stores the caller's identity in the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, code, msg := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c, code, msg)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			unauthorized(c, domainerror.ErrCodeInvalidToken, "Invalid or expired token")
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, code domainerror.UserErrorCode, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: msg,
		Code:  string(code),
	})
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(string(UserIDKey))
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
