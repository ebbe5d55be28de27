package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Жизненный цикл SOS-тревог
	sos := api.Group("/sos")
	{
		sos.POST("", h.createSOS)
		sos.GET("/nearby", h.nearbySOS)
		sos.GET("/:alertId", h.getSOS)
		sos.PATCH("/:alertId/location", h.updateSOSLocation)
		sos.PATCH("/:alertId/cancel", h.cancelSOS)
	}

	// Видеодоказательства
	api.POST("/evidence/video", h.submitVideoEvidence)

	// Распознавание лиц
	recognition := api.Group("/recognition")
	{
		recognition.POST("/image", h.scanImage)
		recognition.POST("/reload", h.reloadWatchlist)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
