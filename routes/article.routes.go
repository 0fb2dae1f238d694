package routes

import (
	"inkwave/internal/controllers"
	"inkwave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController) {
	router.GET("/", articleController.Home)
	router.GET("/article/detail/:slug", middleware.OptionalAuthMiddleware(), articleController.GetArticleDetail)
	router.GET("/category/:slug", articleController.GetArticlesByCategory)

	authenticated := router.Group("/", middleware.AuthMiddleware())
	{
		authenticated.POST("/articles", articleController.CreateArticle)
		authenticated.PUT("/article/:slug", articleController.UpdateArticle)
		authenticated.DELETE("/article/:slug", articleController.DeleteArticle)
		authenticated.POST("/article/like/:slug", articleController.ToggleLike)
	}
}
