package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innovcell/ic_events/config/role"
	"github.com/innovcell/ic_events/environment"
	"github.com/innovcell/ic_events/routers/api/models"
	"github.com/innovcell/ic_events/utils/auth"
)

// requireRoles verifies the request's auth token and, when roles are given,
// checks the token's role is one of them. The verified claims are stored on
// the context for the handler.
func (r *apiV1Router) requireRoles(roles ...role.UserRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims := auth.GetJWTClaims(ctx.GetHeader(authHeaderName), []byte(r.env.Get(environment.JWTSecret)))
		if claims == nil {
			r.logger.Debug("invalid auth token")
			models.SendAPIError(ctx, http.StatusUnauthorized, "invalid auth token")
			return
		}

		if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
			r.logger.Debug("user's role cannot use this operation")
			models.SendAPIError(ctx, http.StatusForbidden, "you are not allowed to use this operation")
			return
		}

		ctx.Set(authClaimsKeyInCtx, claims)
		ctx.Next()
	}
}

func roleAllowed(userRole role.UserRole, allowed []role.UserRole) bool {
	for _, r := range allowed {
		if r == userRole {
			return true
		}
	}
	return false
}
