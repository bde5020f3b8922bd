package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gpulens/gpulens/internal/auth/handler"
)

const (
	ContextEmail = "authEmail"
	ContextRole  = "authRole"
)

// RequireAuth validates the bearer token and injects the caller identity
// into the gin context.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authenticator := handler.GetAuthenticator()
		if authenticator == nil {
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "auth is not configured"})
			return
		}

		token := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := authenticator.Validate(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		ctx.Set(ContextEmail, claims.Email)
		ctx.Set(ContextRole, claims.Role)
		ctx.Next()
	}
}
