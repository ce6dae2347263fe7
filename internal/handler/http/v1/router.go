package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Сессия разрешается для всех запросов: публичные продолжают без нее
	api.Use(h.SessionMiddleware())

	// Маршруты каталога туалетов
	toilets := api.Group("/toilets")
	{
		toilets.GET("", h.listToilets)
		toilets.GET("/:id", h.getToilet)
		toilets.POST("", h.createToilet)
		// Мутации защищены на сервере независимо от бэкенда хранилища
		toilets.PATCH("/:id", h.AdminRequired(), h.updateToilet)
		toilets.DELETE("/:id", h.AdminRequired(), h.deleteToilet)
	}

	// Маршруты аутентификации администратора
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", h.login)
		authRoutes.POST("/logout", h.AdminRequired(), h.logout)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
