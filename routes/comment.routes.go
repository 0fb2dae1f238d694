package routes

import (
	"inkwave/internal/controllers"
	"inkwave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterCommentRoutes(router *gin.Engine, commentController *controllers.CommentController) {
	authenticated := router.Group("/", middleware.AuthMiddleware())
	{
		authenticated.POST("/article/:slug/comments", commentController.SubmitComment)
		authenticated.DELETE("/comment/:slug", commentController.DeleteComment)
	}
}
