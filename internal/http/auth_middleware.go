package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webapp-auth/internal/domain"
	"webapp-auth/internal/service"
)

const currentUserKey = "current_user"

// AuthRequired valida el token bearer y deja el usuario autorizado en el
// contexto. Los rechazos del codec no distinguen manipulación de
// expiración.
func AuthRequired(logger *zap.Logger, authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header missing"})
			return
		}

		_, token, found := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Token missing"})
			return
		}

		user, err := authSvc.Authorize(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenInvalid):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			case errors.Is(err, service.ErrUserNotFound):
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			default:
				logger.Error("authorize failed", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			}
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser obtiene el usuario autorizado desde el contexto.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	val, ok := c.Get(currentUserKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := val.(domain.User)
	return user, ok
}
