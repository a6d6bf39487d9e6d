// Package middleware holds the gin middleware chain: authentication and
// request observability.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sue-zadeh/fieldbase/internal/application/dto"
	"github.com/sue-zadeh/fieldbase/internal/domain/service"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

// ContextKeyClaims is the gin context key the verified claims are stored under.
const ContextKeyClaims = "claims"

func extractBearer(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// RequireAuth verifies the bearer token, rejects revoked sessions and puts
// the claims on the request context.
func RequireAuth(tokens *service.TokenService, blacklist service.TokenBlacklist, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractBearer(c.GetHeader("Authorization"))
		if tokenStr == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			log.Warn(c.Request.Context(), "Token verification failed", logger.Error(err))
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		revoked, err := blacklist.IsRevoked(c.Request.Context(), claims.JTI)
		if err != nil {
			log.Error(c.Request.Context(), "Blacklist lookup failed", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.ErrorResponse(errors.Internal(err), requestID(c)))
			return
		}
		if revoked {
			abortUnauthorized(c, "token has been revoked")
			return
		}

		c.Set(ContextKeyClaims, claims)
		ctx := context.WithValue(c.Request.Context(), constants.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constants.ContextKeyUserRole, claims.Role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole allows only the listed roles past. Must run after RequireAuth.
func RequireRole(roles ...constants.UserRole) gin.HandlerFunc {
	allowed := make(map[constants.UserRole]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil || !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.ErrorResponse(errors.Forbidden("insufficient role"), requestID(c)))
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the verified claims set by RequireAuth, or nil.
func ClaimsFrom(c *gin.Context) *service.Claims {
	if value, ok := c.Get(ContextKeyClaims); ok {
		if claims, ok := value.(*service.Claims); ok {
			return claims
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.ErrorResponse(errors.Unauthorized(message), requestID(c)))
}
