// Package middleware holds the gin middleware chain: request logging,
// metrics, and the auth gate.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adilzhan/libra/internal/infrastructure/persistence/redis"
	apperrors "github.com/adilzhan/libra/pkg/errors"
	"github.com/adilzhan/libra/pkg/jwt"
	"github.com/adilzhan/libra/pkg/response"
)

// Context keys set by the auth gate.
const (
	ctxKeyLibrarianID = "librarian_id"
	ctxKeyEmail       = "email"
	ctxKeyToken       = "token"
)

// AuthMiddleware verifies the Bearer token, rejects blacklisted tokens and
// requires the librarian flag. Every catalog, roster and bookkeeping route
// sits behind it.
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewAuthMiddleware creates the auth gate.
func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireLibrarian authenticates the request and demands librarian
// privileges. The raw token is kept in the context so logout can blacklist
// the exact credential that authenticated the request.
func (m *AuthMiddleware) RequireLibrarian() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		blacklisted, err := m.sessionStore.IsInBlacklist(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if blacklisted {
			response.Error(c, apperrors.ErrTokenExpired)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ParseToken(token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		if !claims.IsLibrarian {
			response.Error(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}

		c.Set(ctxKeyLibrarianID, claims.LibrarianID)
		c.Set(ctxKeyEmail, claims.Email)
		c.Set(ctxKeyToken, token)

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetLibrarianID returns the authenticated librarian's id, 0 when anonymous.
func GetLibrarianID(c *gin.Context) uint {
	if v, exists := c.Get(ctxKeyLibrarianID); exists {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetToken returns the raw access token that authenticated the request.
func GetToken(c *gin.Context) string {
	if v, exists := c.Get(ctxKeyToken); exists {
		if t, ok := v.(string); ok {
			return t
		}
	}
	return ""
}

// MustGetLibrarianID is GetLibrarianID for handlers behind RequireLibrarian,
// where a missing id means a broken middleware chain.
func MustGetLibrarianID(c *gin.Context) uint {
	id := GetLibrarianID(c)
	if id == 0 {
		panic("librarian_id not found in context")
	}
	return id
}
