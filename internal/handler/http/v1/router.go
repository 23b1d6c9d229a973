package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты экстренных случаев
	cases := api.Group("/emergency-cases")
	{
		cases.GET("", h.listCases)
		cases.POST("", h.createCase)
		cases.GET("/stats", h.getCaseStats)
		cases.GET("/:id", h.getCase)
		cases.PATCH("/:id/status", h.updateCaseStatus)
	}

	// Учебные материалы
	training := api.Group("/training")
	{
		training.GET("/quiz", h.listQuizQuestions)
		training.GET("/flashcards", h.listFlashcards)
		training.GET("/videos", h.listVideos)
		training.GET("/guides", h.listGuides)
	}

	// Слоты практических экзаменов
	api.GET("/booking/slots", h.listBookingSlots)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
