package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	requireAPIKey := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Пользователи
	api.POST("/users", h.register)
	users := api.Group("/users/:id/check-ins")
	{
		users.GET("/history", h.checkInHistory)
		users.GET("/metrics", h.checkInMetrics)
	}

	// Спортзалы и отметки в них
	gyms := api.Group("/gyms")
	{
		gyms.POST("", requireAPIKey, h.createGym)
		gyms.GET("/search", h.searchGyms)
		gyms.GET("/nearby", h.nearbyGyms)
		gyms.GET("/:id", h.getGym)
		gyms.POST("/:id/check-ins", h.checkIn)
	}

	// Подтверждение отметки администратором
	api.PATCH("/check-ins/:id/validate", requireAPIKey, h.validateCheckIn)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
