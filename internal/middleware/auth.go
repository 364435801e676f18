package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
	authService "github.com/RootViper4/admin-portabitity/internal/auth/service"
)

// identityKey is the gin context key the resolved identity is stored under.
const identityKey = "admin_identity"

// Auth resolves the bearer token into an AdminIdentity and stores it in the
// gin context. Authentication failures fall back to the safe Guest state
// rather than rejecting the request; a missing role record is the one hard
// failure, because an authenticated-but-unauthorized principal must be
// forced out.
func Auth(svc authService.Service, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Set(identityKey, authModel.Guest(""))
			c.Next()
			return
		}

		identity, err := svc.ResolveToken(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, authModel.ErrRoleNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"error": gin.H{
						"code":    "ROLE_NOT_FOUND",
						"message": "no admin role assigned, signed out",
					},
				})
				return
			}

			logger.Debugw("token resolution failed, falling back to guest", "error", err)
			c.Set(identityKey, authModel.Guest(""))
			c.Next()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAuth aborts with 401 unless a resolvable principal is present.
// Guests (anonymous principals) pass; requests with no token at all do not.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		if identity.PrincipalID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHENTICATED",
					"message": "a bearer token is required",
				},
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the resolved identity carries an
// admin role. Guests read the empty views, never the raw snapshot.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		if !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"code":    "PERMISSION_DENIED",
					"message": "an admin role is required",
				},
			})
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity resolved by Auth, or Guest when the
// middleware did not run.
func IdentityFrom(c *gin.Context) authModel.AdminIdentity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(authModel.AdminIdentity); ok {
			return identity
		}
	}
	return authModel.Guest("")
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
