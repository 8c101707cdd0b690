package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler mantiene dependencias para el endpoint de perfil.
type UserHandler struct {
	logger *zap.Logger
}

// NewUserHandler crea una instancia de UserHandler.
func NewUserHandler(logger *zap.Logger) *UserHandler {
	return &UserHandler{logger: logger}
}

// GetUser maneja GET /api/user. El middleware AuthRequired ya resolvió
// el usuario; aquí solo se proyecta la vista pública.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		h.logger.Error("authorized request without user in context")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Public()})
}
