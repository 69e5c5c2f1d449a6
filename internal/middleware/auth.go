package middleware

import (
	"strings"

	"klodtattoo_backend/internal/logger"
	"klodtattoo_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminPredicate answers whether the request carries admin capability. The
// rest of the app treats it as opaque; swapping in a session- or SSO-based
// check means replacing only this function.
type AdminPredicate func(c *gin.Context) bool

// NewTokenAdminPredicate builds a predicate that accepts a bearer token
// matching the configured admin token. The token is bcrypt-hashed once at
// startup so the plaintext does not linger in memory comparisons.
func NewTokenAdminPredicate(adminToken string) AdminPredicate {
	if adminToken == "" {
		logger.Warn("admin token not configured; admin surface is disabled")
		return func(*gin.Context) bool { return false }
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminToken), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("failed to hash admin token", "error", err)
	}

	return func(c *gin.Context) bool {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return false
		}
		return bcrypt.CompareHashAndPassword(hash, []byte(token)) == nil
	}
}

// AdminAuthMiddleware rejects non-admin callers before any handler (and so
// before any mutation) runs.
func AdminAuthMiddleware(isAdmin AdminPredicate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdmin(c) {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Admin authorization required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
