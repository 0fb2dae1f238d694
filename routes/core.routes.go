package routes

import (
	"inkwave/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCoreRoutes(
	router *gin.Engine,
	newsletterController *controllers.NewsletterController,
	contactController *controllers.ContactController,
) {
	router.POST("/subscribe", newsletterController.Subscribe)
	router.POST("/contact", contactController.SubmitMessage)
}
