package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wcmap/toilet-map/internal/auth"
)

// sessionContextKey - ключ сессии в контексте Gin
const sessionContextKey = "session"

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// SessionMiddleware разрешает сессию по токену, если он передан.
// Запрос без токена продолжает выполняться как публичный.
func (h *Handler) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		sess, err := h.authService.Resolve(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, auth.ErrNoSession) {
				h.logger.WithError(err).Error("Failed to resolve session")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			// Просроченный или отозванный токен приравнивается к его отсутствию
			c.Next()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// AdminRequired - middleware для защищенных мутаций: без административной
// сессии запрос отклоняется до обращения к хранилищу
func (h *Handler) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFromContext(c)
		if sess == nil || !sess.IsAdmin {
			h.logger.Warn("Protected mutation attempted without admin session")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin session required"})
			return
		}
		c.Next()
	}
}

// sessionFromContext возвращает сессию запроса или nil для публичного вызова
func sessionFromContext(c *gin.Context) *auth.Session {
	val, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	sess, ok := val.(*auth.Session)
	if !ok {
		return nil
	}
	return sess
}
